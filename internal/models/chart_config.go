package models

// ChartType identifies the renderer chart kind
type ChartType string

const (
	ChartTypeLine      ChartType = "line"
	ChartTypeBar       ChartType = "bar"
	ChartTypeArea      ChartType = "area"
	ChartTypePie       ChartType = "pie"
	ChartTypeDoughnut  ChartType = "doughnut"
	ChartTypeRadar     ChartType = "radar"
	ChartTypeScatter   ChartType = "scatter"
	ChartTypeBubble    ChartType = "bubble"
	ChartTypePolarArea ChartType = "polarArea"
)

// ChartTypes lists every supported chart type in display order
var ChartTypes = []ChartType{
	ChartTypeLine, ChartTypeBar, ChartTypeArea, ChartTypePie, ChartTypeDoughnut,
	ChartTypeRadar, ChartTypeScatter, ChartTypeBubble, ChartTypePolarArea,
}

// IsValidChartType checks a chart type against the supported set
func IsValidChartType(t string) bool {
	for _, ct := range ChartTypes {
		if string(ct) == t {
			return true
		}
	}
	return false
}

const (
	LegendTop    = "top"
	LegendBottom = "bottom"
	LegendLeft   = "left"
	LegendRight  = "right"
	LegendHidden = "hidden"
)

// IsValidLegendPosition checks a legend position against the supported set
func IsValidLegendPosition(p string) bool {
	switch p {
	case LegendTop, LegendBottom, LegendLeft, LegendRight, LegendHidden:
		return true
	}
	return false
}

const (
	MarkerCircle  = "circle"
	MarkerRect    = "rect"
	MarkerDiamond = "diamond"
	MarkerStar    = "star"
)

// IsValidMarkerType checks a marker shape against the supported set
func IsValidMarkerType(m string) bool {
	switch m {
	case MarkerCircle, MarkerRect, MarkerDiamond, MarkerStar:
		return true
	}
	return false
}

// ChartConfiguration is the flat, user-editable description of a chart.
// Fields that only matter for some chart types (MarkerType, Fill, Smoothing)
// are kept here and interpreted per type at compile time.
type ChartConfiguration struct {
	Type           ChartType `json:"type"`
	Colors         []string  `json:"colors"`
	LegendPosition string    `json:"legendPosition"`
	ShowTitle      bool      `json:"showTitle"`
	TitleText      string    `json:"titleText"`
	Dark           bool      `json:"dark"`
	BorderWidth    float64   `json:"borderWidth"`
	Fill           bool      `json:"fill"`
	Smoothing      float64   `json:"smoothing"`
	FontSize       int       `json:"fontSize"`
	XAxisLabel     string    `json:"xAxisLabel"`
	YAxisLabel     string    `json:"yAxisLabel"`
	ShowGrid       bool      `json:"showGrid"`
	LegendFontSize int       `json:"legendFontSize"`
	TooltipFormat  string    `json:"tooltipFormat"`
	MarkerType     string    `json:"markerType"`
}

// ChartConfigurationPatch is a partial configuration; nil fields are left untouched
type ChartConfigurationPatch struct {
	Type           *ChartType `json:"type,omitempty" validate:"omitempty,chart_type"`
	Colors         []string   `json:"colors,omitempty" validate:"omitempty,max=24,dive,hexcolor"`
	LegendPosition *string    `json:"legendPosition,omitempty" validate:"omitempty,legend_position"`
	ShowTitle      *bool      `json:"showTitle,omitempty"`
	TitleText      *string    `json:"titleText,omitempty" validate:"omitempty,max=200"`
	Dark           *bool      `json:"dark,omitempty"`
	BorderWidth    *float64   `json:"borderWidth,omitempty" validate:"omitempty,gte=0,lte=10"`
	Fill           *bool      `json:"fill,omitempty"`
	Smoothing      *float64   `json:"smoothing,omitempty" validate:"omitempty,gte=0,lte=1"`
	FontSize       *int       `json:"fontSize,omitempty" validate:"omitempty,gte=6,lte=48"`
	XAxisLabel     *string    `json:"xAxisLabel,omitempty" validate:"omitempty,max=100"`
	YAxisLabel     *string    `json:"yAxisLabel,omitempty" validate:"omitempty,max=100"`
	ShowGrid       *bool      `json:"showGrid,omitempty"`
	LegendFontSize *int       `json:"legendFontSize,omitempty" validate:"omitempty,gte=6,lte=48"`
	TooltipFormat  *string    `json:"tooltipFormat,omitempty" validate:"omitempty,max=200"`
	MarkerType     *string    `json:"markerType,omitempty" validate:"omitempty,marker_type"`
}

// Palette is a named set of theme colors
type Palette struct {
	Name    string `json:"name"`
	Green   string `json:"green"`
	Blue    string `json:"blue"`
	Gray    string `json:"gray"`
	Neutral string `json:"neutral"`
	White   string `json:"white"`
	Black   string `json:"black"`
	Bg      string `json:"bg"`
}

// Accents returns the palette colors assigned to series by index
func (p Palette) Accents() []string {
	return []string{p.Green, p.Blue, p.Gray}
}

// Theme is the explicit styling context threaded into the compiler
type Theme struct {
	Palette       Palette  `json:"palette"`
	Dark          bool     `json:"dark"`
	Colors        []string `json:"colors,omitempty"`
	SeriesPalette []string `json:"series_palette,omitempty"`
	MarkerType    string   `json:"marker_type,omitempty"`
	Smoothing     *float64 `json:"smoothing,omitempty"`
}
