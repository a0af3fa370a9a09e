package bignum

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/osse101/hypernum/internal/domain"
)

// Parse reads a Number from text. Accepted forms:
//
//	123.45, 1,234,567       plain decimal, commas ignored
//	1.5e300, 2e1e20         mantissa and a recursively parsed exponent
//	e5, eee1.5              a run of leading e's lifts the rest that many layers
//	(e^12)3.4               explicit layer and magnitude
//	3F5, F5                 mantissa and height of a base-10 tower
//	2^^3.5                  base and height of a tower
//	NaN                     the invalid value
//
// A leading sign applies to the whole value. An upper-case E is read as e.
func Parse(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nan, fmt.Errorf("%w: empty string", domain.ErrInvalidNumber)
	}
	if s == "NaN" {
		return nan, nil
	}

	switch s[0] {
	case '-':
		n, err := Parse(s[1:])
		return n.Neg(), err
	case '+':
		return Parse(s[1:])
	}

	if base, height, ok := strings.Cut(s, "^^"); ok {
		return parseTetration(s, base, height)
	}
	if strings.HasPrefix(s, "(e^") {
		return parseLayered(s)
	}
	if mantissa, height, ok := strings.Cut(s, "F"); ok {
		return parseTower(s, mantissa, height)
	}

	s = strings.ReplaceAll(s, "E", "e")
	if s[0] == 'e' {
		return parseLeadingEs(s)
	}
	if mantissa, exponent, ok := strings.Cut(s, "e"); ok {
		return parseScientific(s, mantissa, exponent)
	}

	f, err := parseFloat(s)
	if err != nil {
		return nan, invalid(s, err)
	}
	if f == 0 {
		return parseTinyDecimal(s), nil
	}
	return FromFloat(f), nil
}

// FromString is Parse with errors folded into NaN.
func FromString(s string) Number {
	n, err := Parse(s)
	if err != nil {
		return nan
	}
	return n
}

// MustParse is Parse for constants known to be valid. It panics on error.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

func parseTetration(s, base, height string) (Number, error) {
	b, err := Parse(base)
	if err != nil {
		return nan, err
	}
	h, err := parseFloat(height)
	if err != nil {
		return nan, invalid(s, err)
	}
	return b.Tetrate(h, One), nil
}

func parseLayered(s string) (Number, error) {
	layer, mag, ok := strings.Cut(s[len("(e^"):], ")")
	if !ok {
		return nan, invalid(s, fmt.Errorf("missing closing parenthesis"))
	}
	l, err := strconv.Atoi(layer)
	if err != nil {
		return nan, invalid(s, err)
	}
	m, err := parseFloat(mag)
	if err != nil {
		return nan, invalid(s, err)
	}
	if l < 0 {
		return nan, invalid(s, fmt.Errorf("negative layer %d", l))
	}
	return FromComponents(1, l, m), nil
}

func parseTower(s, mantissa, height string) (Number, error) {
	h, err := parseFloat(height)
	if err != nil {
		return nan, invalid(s, err)
	}
	if mantissa != "" {
		m, err := parseFloat(mantissa)
		if err != nil {
			return nan, invalid(s, err)
		}
		if m <= 0 {
			return nan, invalid(s, fmt.Errorf("non-positive tower mantissa"))
		}
		h += math.Log10(m)
	}
	return Ten.Tetrate(h, One), nil
}

func parseLeadingEs(s string) (Number, error) {
	rest := strings.TrimLeft(s, "e")
	layers := len(s) - len(rest)
	if rest == "" {
		return nan, invalid(s, fmt.Errorf("missing magnitude"))
	}
	if f, err := parseFloat(rest); err == nil {
		return FromComponents(1, layers, f), nil
	}
	n, err := Parse(rest)
	if err != nil {
		return nan, err
	}
	for i := 0; i < layers; i++ {
		n = n.Pow10()
	}
	return n, nil
}

func parseScientific(s, mantissa, exponent string) (Number, error) {
	// ParseFloat underflows to zero without an error
	if f, err := parseFloat(s); err == nil && f != 0 {
		return FromFloat(f), nil
	}
	m, err := parseFloat(mantissa)
	if err != nil {
		return nan, invalid(s, err)
	}
	e, err := Parse(exponent)
	if err != nil {
		return nan, err
	}
	return FromFloat(m).Mul(e.Pow10()), nil
}

// parseFloat reads a finite float. Inf and NaN spellings are rejected.
func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("non-finite value")
	}
	return f, nil
}

// parseTinyDecimal reads a plain decimal that underflowed to zero, such as
// "0.000...01", by counting the zeros after the point. s is known to parse.
func parseTinyDecimal(s string) Number {
	whole, frac, _ := strings.Cut(strings.ReplaceAll(s, ",", ""), ".")
	digits := strings.TrimLeft(frac, "0")
	if strings.Trim(whole, "0") != "" || strings.Trim(digits, "0") == "" {
		return Zero
	}
	zeros := len(frac) - len(digits)
	m, err := strconv.ParseFloat("0."+digits, 64)
	if err != nil {
		return Zero
	}
	return FromFloat(m).Mul(FromFloat(-float64(zeros)).Pow10())
}

func invalid(s string, err error) error {
	return fmt.Errorf("%w: %q: %v", domain.ErrInvalidNumber, s, err)
}

// String renders x in a form Parse reads back.
func (x Number) String() string {
	switch {
	case x.IsNaN():
		return "NaN"
	case x.sign == 0:
		return "0"
	case x.sign < 0:
		return "-" + x.Abs().String()
	}

	switch {
	case x.layer == 0:
		if x.mag > 1e-7 && x.mag < 1e21 {
			return formatPlain(x.mag)
		}
		return formatPlain(x.Mantissa()) + "e" + formatPlain(x.Exponent())
	case x.layer == 1:
		exp := math.Floor(x.mag)
		return formatPlain(math.Pow(10, x.mag-exp)) + "e" + formatPlain(exp)
	case x.layer <= maxEsInARow:
		if x.mag < 0 {
			return "e-" + FromComponents(1, x.layer-1, -x.mag).String()
		}
		return strings.Repeat("e", x.layer) + formatPlain(x.mag)
	default:
		return "(e^" + strconv.Itoa(x.layer) + ")" + formatPlain(x.mag)
	}
}

func formatPlain(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// MarshalText implements encoding.TextMarshaler.
func (x Number) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Number) UnmarshalText(text []byte) error {
	n, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = n
	return nil
}
