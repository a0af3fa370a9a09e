package bignum

import "math"

// Normalization limits
const (
	// maxSignificantDigits is how far apart two magnitudes may be before the
	// smaller one no longer affects a sum.
	maxSignificantDigits = 17

	// expLimit is the largest magnitude kept on a layer before moving up one.
	expLimit = 9e15

	// firstNegLayer is the smallest layer-0 magnitude before moving to a
	// negative layer-1 exponent.
	firstNegLayer = 1 / 9e15

	// maxEsInARow is the deepest layer String renders as a run of "e" prefixes.
	maxEsInARow = 5

	// maxLayer bounds the layer count reachable through tetration shortcuts.
	maxLayer = 1e15
)

// Iteration caps for the hyperoperation loops
const (
	maxTetrateIterations = 10000
	slogIterations       = 100
)

// layerDown is log10(expLimit); a layer-n magnitude below it drops to layer n-1.
var layerDown = math.Log10(expLimit)

// log10Ln10 is log10(ln 10), used by Ln on layer-2 values.
var log10Ln10 = math.Log10(math.Ln10)

// Common values
var (
	Zero = Number{}
	One  = Number{sign: 1, layer: 0, mag: 1}
	Two  = Number{sign: 1, layer: 0, mag: 2}
	Ten  = Number{sign: 1, layer: 0, mag: 10}

	// NumberMax is the largest finite float64, the classic "Infinity" wall of
	// incremental games.
	NumberMax = FromFloat(math.MaxFloat64)
)
