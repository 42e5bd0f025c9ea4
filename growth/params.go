package growth

import "image/color"

// TrunkParams drives the trunk layer. Angles are in degrees; Spread, Split,
// Branch and Variability are expected in [0, 1]. Nothing beyond the
// distributions is validated.
type TrunkParams struct {
	Spread      float64 `yaml:"spread"`
	Split       float64 `yaml:"split"`
	Branch      float64 `yaml:"branch"`
	Variability float64 `yaml:"variability"`

	DefaultBranchLength float64 `yaml:"default_branch_length"`
	DefaultBranchSize   float64 `yaml:"default_branch_size"`
	BranchSizeFalloff   float64 `yaml:"branch_size_falloff"`
	DefaultHeightMean   float64 `yaml:"default_height_mean"`
	SplitFalloffPeak    float64 `yaml:"split_falloff_peak"`
	LeanBias            float64 `yaml:"lean_bias"`
	VariabilityModifier float64 `yaml:"variability_modifier"`
	AngleSpreadPositive float64 `yaml:"angle_spread_positive"`
	AngleSpreadNegative float64 `yaml:"angle_spread_negative"`
	MaxChildren         int     `yaml:"max_children"`
}

// DefaultTrunkParams returns the stock trunk shape with the four
// user-facing knobs set.
func DefaultTrunkParams(spread, split, branch, variability float64) TrunkParams {
	return TrunkParams{
		Spread:              spread,
		Split:               split,
		Branch:              branch,
		Variability:         variability,
		DefaultBranchLength: 30,
		DefaultBranchSize:   50,
		BranchSizeFalloff:   2,
		DefaultHeightMean:   10,
		SplitFalloffPeak:    5,
		LeanBias:            0,
		VariabilityModifier: 0.4,
		AngleSpreadPositive: 10,
		AngleSpreadNegative: -10,
		MaxChildren:         5,
	}
}

// RGB is an opaque color.
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// RGBA converts c to an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// BranchParams drives the branch layer. Sizes are thicknesses, the base
// angle is in degrees. Spread and Variability are carried for callers that
// tune both layers together; the branch layer itself does not read them.
type BranchParams struct {
	Spread      float64 `yaml:"spread"`
	Branch      float64 `yaml:"branch"`
	Variability float64 `yaml:"variability"`

	BaseSizeReduction  float64 `yaml:"base_size_reduction"`
	MinimumSize        float64 `yaml:"minimum_size"`
	InitialBranchSize  float64 `yaml:"initial_branch_size"`
	InitialLength      float64 `yaml:"initial_length"`
	BaseAngleMeanDeg   float64 `yaml:"base_angle_mean_deg"`
	BaseAngleStdDevDeg float64 `yaml:"base_angle_std_dev_deg"`
	Color              RGB     `yaml:"color"`
}

// DefaultBranchParams returns the stock twig shape with the user-facing
// knobs set.
func DefaultBranchParams(spread, branch, variability float64) BranchParams {
	return BranchParams{
		Spread:             spread,
		Branch:             branch,
		Variability:        variability,
		BaseSizeReduction:  0.1,
		MinimumSize:        0.6,
		InitialBranchSize:  0.9,
		InitialLength:      10,
		BaseAngleMeanDeg:   20,
		BaseAngleStdDevDeg: 5,
		Color:              RGB{G: 255},
	}
}
