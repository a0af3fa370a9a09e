package growth

// Defaults
const (
	// DefaultScalingRate leaves the post-threshold exponent unscaled.
	DefaultScalingRate = 1.0

	// DefaultTablePath is where the service looks for its tier table.
	DefaultTablePath = "configs/tiers.json"
)

// Inverse search limits
const (
	// maxExactCount is the first purchase count float64 cannot step by one.
	// Counts at or beyond it are returned from the closed form unverified.
	maxExactCount = 1 << 53

	// maxFixups bounds the unit steps that settle a closed-form count
	// against the forward cost.
	maxFixups = 8
)

// Error detail messages wrapped around domain.ErrInvalidTier
const (
	msgBaseCost       = "base cost must be a positive finite number"
	msgMultiplier     = "cost multiplier must be greater than 1"
	msgNoBreakpoints  = "at least one breakpoint is required"
	msgScale          = "breakpoint scale must be at least 1 and non-decreasing"
	msgThreshold      = "breakpoint thresholds must exceed the base cost and increase"
	msgScalingRate    = "post threshold scaling rate must be at least 1"
	msgDuplicateTier  = "duplicate tier"
	msgEmptyTierTable = "tier table has no tiers"
)
