package format

import (
	"fmt"
	"strings"

	"github.com/osse101/hypernum/internal/bignum"
)

// FormatTime renders a duration given in seconds. Sub-second durations pick
// the largest fitting SI prefix down to Planck time. With hms set, durations
// under a day read as M:SS or H:MM:SS; otherwise as hours and minutes.
// Beyond a year the unit is years and days, and beyond the age of the
// universe, "unis". Components use floor division, never rounding.
func (f *Formatter) FormatTime(seconds bignum.Number, hms bool) string {
	if seconds.IsNaN() {
		return symbolNaN
	}
	if seconds.Sign() <= 0 {
		return f.Format(seconds, DefaultOptions()) + " " + unitSeconds
	}

	for _, u := range subSecondUnits {
		if seconds.Lt(bignum.FromFloat(u.limit)) {
			return f.Format(seconds.Mul(bignum.FromFloat(u.scale)), DefaultOptions()) + " " + u.unit
		}
	}

	s := seconds.ToFloat()
	switch {
	case s < secondsPerMinute:
		return f.Format(seconds, DefaultOptions()) + " " + unitSeconds
	case s < secondsPerHour:
		if hms {
			return fmt.Sprintf("%s:%02d", f.FormatWhole(floorDiv(s, secondsPerMinute)), wholeMod(s, secondsPerMinute))
		}
		minutes := bignum.FromFloat(s / secondsPerMinute)
		return f.Format(minutes, DefaultOptions()) + " " + f.Pluralize(unitMinute, minutes)
	case s < secondsPerDay:
		if hms {
			return fmt.Sprintf("%s:%02d:%02d",
				f.FormatWhole(floorDiv(s, secondsPerHour)),
				wholeMod(s/secondsPerMinute, minutesPerHour),
				wholeMod(s, secondsPerMinute))
		}
		return f.joinUnits(
			span{unitHour, floorDiv(s, secondsPerHour)},
			span{unitMinute, floorMod(s/secondsPerMinute, minutesPerHour)})
	case s < secondsPerYear:
		return f.joinUnits(
			span{unitDay, floorDiv(s, secondsPerDay)},
			span{unitHour, floorMod(s/secondsPerHour, hoursPerDay)},
			span{unitMinute, floorMod(s/secondsPerMinute, minutesPerHour)})
	case s < secondsPerUniverse:
		return f.joinUnits(
			span{unitYear, floorDiv(s, secondsPerYear)},
			span{unitDay, floorMod(s/secondsPerDay, daysPerYear)})
	}
	return f.Format(seconds.Div(bignum.FromFloat(secondsPerUniverse)), DefaultOptions()) + " " + unitUniverses
}

type span struct {
	unit  string
	count bignum.Number
}

// joinUnits renders spans as "2 days, 1 hour".
func (f *Formatter) joinUnits(spans ...span) string {
	parts := make([]string, 0, len(spans))
	for _, sp := range spans {
		parts = append(parts, f.FormatWhole(sp.count)+" "+f.Pluralize(sp.unit, sp.count))
	}
	return strings.Join(parts, enumerationComma)
}

func floorDiv(s, unit float64) bignum.Number {
	return bignum.FromFloat(s / unit).Floor()
}

func floorMod(s, base float64) bignum.Number {
	return bignum.FromFloat(s).Floor().Mod(bignum.FromFloat(base))
}

func wholeMod(s, base float64) int {
	return int(floorMod(s, base).ToFloat())
}
