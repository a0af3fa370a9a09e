package format

import "github.com/osse101/hypernum/internal/bignum"

// ==================== Defaults ====================

const (
	DefaultPrecision       = 2
	DefaultPlacesUnder1000 = 2
	DefaultPluralCacheSize = 256

	// DefaultTowerThreshold is the smallest value rendered in F notation.
	DefaultTowerThreshold = "eeeee1000"
)

// ==================== Regime Thresholds ====================

var (
	thresholdExponentOnly    = bignum.MustParse("e1e9")
	thresholdRoundedMantissa = bignum.MustParse("1e1000000")
	thresholdExponential     = bignum.FromFloat(1e9)
	thresholdGrouped         = bignum.FromFloat(1e3)
	thresholdSmall           = bignum.FromFloat(0.0001)

	// Exponent bounds for inverted values, compared against the order of magnitude.
	invertedSuffixExponent  = bignum.FromFloat(1000)
	roundedMantissaExponent = bignum.FromFloat(1e6)

	// towerMantissaCutoff is the super-logarithm past which F notation drops
	// its leading mantissa.
	towerMantissaCutoff = bignum.FromFloat(1e6)
)

const (
	// minSmallPlaces is the decimal count forced for values below 0.1.
	minSmallPlaces = 4

	// exponentPrecision formats exponents that themselves need scientific notation.
	exponentPrecision = 3

	towerMantissaPlaces = 3
	groupedExponent     = 10000
)

// ==================== Symbols ====================

const (
	symbolTimes        = "×"
	symbolPow          = "^"
	symbolTet          = "^^"
	symbolPercent      = "%"
	symbolDivide       = "/"
	symbolTower        = "F"
	symbolInverse      = "⁻¹"
	symbolNaN          = "NaN"
	symbolExpoOrdinal  = " Expo "
	overflowRooted     = "rooted by "
	overflowRaised     = "raised by "
	enumerationAnd     = " and "
	enumerationComma   = ", "
	enumerationLastSep = ", and "
)

// ==================== Effect Thresholds ====================

var (
	effectPercentLimit = bignum.FromFloat(1000)
	effectReductionMin = bignum.FromFloat(0.001)
	effectTimesLimit   = bignum.MustParse("1e100000")
	effectTowerLimit   = bignum.MustParse("10^^100")
	effectShortTower   = bignum.MustParse("10^^4")
	effectedPowLimit   = bignum.FromFloat(10)
	effectedTimesLimit = bignum.FromFloat(2)
	percentScale       = bignum.FromFloat(100)
)

// ==================== Durations ====================

// Durations are measured in seconds.
const (
	secondsPerMinute   = 60
	secondsPerHour     = 3600
	secondsPerDay      = 86400
	secondsPerYear     = 31536000
	daysPerYear        = 365
	hoursPerDay        = 24
	minutesPerHour     = 60
	secondsPerUniverse = 4.351968e17
)

// subSecondUnits are checked in order; the first whose limit exceeds the
// duration wins and the duration is multiplied by scale.
var subSecondUnits = []struct {
	limit float64
	scale float64
	unit  string
}{
	{limit: 1e-30, scale: 5.391247e44, unit: "tP"},
	{limit: 1e-27, scale: 1e30, unit: "qs"},
	{limit: 1e-24, scale: 1e27, unit: "rs"},
	{limit: 1e-21, scale: 1e24, unit: "ys"},
	{limit: 1e-18, scale: 1e21, unit: "zs"},
	{limit: 1e-15, scale: 1e18, unit: "as"},
	{limit: 1e-12, scale: 1e15, unit: "fs"},
	{limit: 1e-9, scale: 1e12, unit: "ps"},
	{limit: 1e-6, scale: 1e9, unit: "ns"},
	{limit: 1e-3, scale: 1e6, unit: "μs"},
	{limit: 1, scale: 1e3, unit: "ms"},
}

const (
	unitSeconds   = "s"
	unitMinute    = "minute"
	unitHour      = "hour"
	unitDay       = "day"
	unitYear      = "year"
	unitUniverses = "unis"
)

// ==================== Plurals ====================

// pluralOverrides are checked before any suffix rule.
var pluralOverrides = map[string]string{
	"Antimatter":   "Antimatter",
	"Dilated Time": "Dilated Time",
	"day":          "days",
}

// pluralRules rewrite a trailing suffix; the first matching rule wins and
// the empty suffix always matches.
var pluralRules = []struct {
	suffix      string
	replacement string
}{
	{suffix: "y", replacement: "ies"},
	{suffix: "x", replacement: "xes"},
	{suffix: "", replacement: "s"},
}

// Panic messages for missing arguments
const (
	panicMissingWord = "format: pluralize requires a word"
	panicMissingName = "format: quantify requires a name"
	panicNilItems    = "format: enumeration requires items"
)
