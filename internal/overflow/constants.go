package overflow

// Parameter bounds
const (
	// startFloor lifted meta-1 layers is the smallest value whose meta-fold
	// logarithm is still positive.
	startFloor = 1.0001

	minMeta = 1
	maxMeta = 10

	// DefaultMeta lifts values a single layer.
	DefaultMeta = 1
)
