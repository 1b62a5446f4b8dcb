package models

// LayoutHints are the renderer sizing parameters derived from the number of plotted points
type LayoutHints struct {
	Height          int     `json:"height"`
	XAxisAngle      int     `json:"x_axis_angle"`
	XAxisHeight     int     `json:"x_axis_height"`
	StrokeWidth     float64 `json:"stroke_width"`
	DotRadius       float64 `json:"dot_radius"`
	ActiveDotRadius float64 `json:"active_dot_radius"`
	LegendPadding   int     `json:"legend_padding"`
	LongTickLabels  bool    `json:"long_tick_labels"`
}

// Threshold maps "at most MaxPoints points" to a value
type Threshold struct {
	MaxPoints int
	Value     int
}

// LayoutRules holds the step tables used to size a chart. Steps are checked in
// order; the first one whose MaxPoints is >= the point count wins, otherwise the
// matching fallback applies.
type LayoutRules struct {
	EmptyHeight     int
	HeightSteps     []Threshold
	MaxHeight       int
	AngleSteps      []Threshold
	SteepestAngle   int
	AxisHeightSteps []Threshold
	MaxAxisHeight   int
	DenseAbove      int
	Stroke          float64
	DenseStroke     float64
	Dot             float64
	DenseDot        float64
	ActiveDot       float64
	DenseActiveDot  float64
	LegendPadding   int
	DenseLegend     int
	LongLabelsUpTo  int
}
