package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/osse101/hypernum/internal/bignum"
	"github.com/osse101/hypernum/internal/config"
	"github.com/osse101/hypernum/internal/format"
	"github.com/osse101/hypernum/internal/growth"
	"github.com/osse101/hypernum/internal/overflow"
)

var errUsage = errors.New("invalid arguments")

func parseNumber(s string) (bignum.Number, error) {
	x, err := bignum.Parse(s)
	if err != nil {
		return bignum.NaN(), fmt.Errorf("%w: %q is not a number: %v", errUsage, s, err)
	}
	return x, nil
}

func newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// FormatCommand renders a value in the formatter's notation.
type FormatCommand struct {
	f *format.Formatter
}

func (c *FormatCommand) Name() string { return "format" }

func (c *FormatCommand) Description() string {
	return "Format a value: format [-precision n] [-places n] [-small] <value>"
}

func (c *FormatCommand) Run(w io.Writer, args []string) error {
	o := format.DefaultOptions()
	fs := newFlags(c.Name())
	fs.IntVar(&o.Precision, "precision", o.Precision, "mantissa digits")
	fs.IntVar(&o.PlacesUnder1000, "places", o.PlacesUnder1000, "decimal places below 1000")
	fs.BoolVar(&o.Small, "small", false, "render tiny values")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: format takes one value", errUsage)
	}
	if o.Precision < 0 || o.Precision > config.MaxFormatPrecision {
		return fmt.Errorf("%w: precision must be between 0 and %d", errUsage, config.MaxFormatPrecision)
	}

	x, err := parseNumber(fs.Arg(0))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\t(%s)\n", c.f.Format(x, o), c.f.Regime(x, o))
	return nil
}

// SlogCommand prints the super-logarithm of a value.
type SlogCommand struct {
	f *format.Formatter
}

func (c *SlogCommand) Name() string { return "slog" }

func (c *SlogCommand) Description() string {
	return "Super-logarithm of a value: slog <value> [base]"
}

func (c *SlogCommand) Run(w io.Writer, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: slog takes a value and an optional base", errUsage)
	}
	x, err := parseNumber(args[0])
	if err != nil {
		return err
	}
	base := bignum.Ten
	if len(args) == 2 {
		if base, err = parseNumber(args[1]); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, c.f.Format(x.Slog(base), format.DefaultOptions()))
	return nil
}

// OverflowCommand tempers a value past a start point.
type OverflowCommand struct {
	f *format.Formatter
}

func (c *OverflowCommand) Name() string { return "overflow" }

func (c *OverflowCommand) Description() string {
	return "Temper a value: overflow <value> <start> <power> [meta]"
}

func (c *OverflowCommand) Run(w io.Writer, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return fmt.Errorf("%w: overflow takes a value, start, power and optional meta", errUsage)
	}
	x, err := parseNumber(args[0])
	if err != nil {
		return err
	}
	start, err := parseNumber(args[1])
	if err != nil {
		return err
	}
	power, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("%w: power %q: %v", errUsage, args[2], err)
	}
	meta := float64(overflow.DefaultMeta)
	if len(args) == 4 {
		if meta, err = strconv.ParseFloat(args[3], 64); err != nil {
			return fmt.Errorf("%w: meta %q: %v", errUsage, args[3], err)
		}
	}

	s, err := overflow.New(x, start, power, meta)
	if err != nil {
		return err
	}
	o := format.DefaultOptions()
	fmt.Fprintln(w, c.f.Format(s.After, o))
	if s.Tempered() {
		ratio := overflow.Ratio(s.Before, s.After, overflow.EffectiveStart(start, meta), meta)
		if power > 1 {
			fmt.Fprintln(w, c.f.FormatOverflow(ratio.Recip(), true))
		} else {
			fmt.Fprintln(w, c.f.FormatOverflow(ratio, false))
		}
	}
	return nil
}

// TierMaxCommand reports how many items of a tier a balance buys.
type TierMaxCommand struct {
	f         *format.Formatter
	tiersPath string
}

func (c *TierMaxCommand) Name() string { return "tier-max" }

func (c *TierMaxCommand) Description() string {
	return "Items a balance affords: tier-max [-tiers path] <tier> <balance>"
}

func (c *TierMaxCommand) Run(w io.Writer, args []string) error {
	fs := newFlags(c.Name())
	path := fs.String("tiers", c.tiersPath, "tier table file")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%w: tier-max takes a tier and a balance", errUsage)
	}
	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil || id < 1 {
		return fmt.Errorf("%w: tier must be a positive integer", errUsage)
	}
	balance, err := parseNumber(fs.Arg(1))
	if err != nil {
		return err
	}

	table, err := growth.LoadTable(*path)
	if err != nil {
		return err
	}
	p, err := table.BuyMax(id, balance)
	if err != nil {
		return err
	}
	o := format.DefaultOptions()
	fmt.Fprintf(w, "%s for %s\n", c.f.QuantifyInt("item", p.Bought), c.f.Format(p.Cost, o))
	return nil
}
