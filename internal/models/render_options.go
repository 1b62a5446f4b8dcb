package models

import (
	"strconv"
	"strings"
)

// ChartData is the chart-type-agnostic payload consumed by the renderer
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// ChartDataset is one series. Styling fields left empty are filled by the compiler.
type ChartDataset struct {
	Label                string    `json:"label"`
	Data                 []float64 `json:"data"`
	BorderColor          string    `json:"borderColor,omitempty"`
	BackgroundColor      string    `json:"backgroundColor,omitempty"`
	SliceColors          []string  `json:"sliceColors,omitempty"`
	BorderWidth          float64   `json:"borderWidth,omitempty"`
	Fill                 *bool     `json:"fill,omitempty"`
	Tension              *float64  `json:"tension,omitempty"`
	PointBackgroundColor string    `json:"pointBackgroundColor,omitempty"`
	PointBorderColor     string    `json:"pointBorderColor,omitempty"`
	PointStyle           string    `json:"pointStyle,omitempty"`
}

// IsEmpty reports whether there is nothing to plot
func (d ChartData) IsEmpty() bool {
	return len(d.Labels) == 0 || len(d.Datasets) == 0
}

// RenderOptions is the compiled, renderer-facing options object
type RenderOptions struct {
	Responsive          bool                    `json:"responsive"`
	MaintainAspectRatio bool                    `json:"maintainAspectRatio"`
	Plugins             PluginOptions           `json:"plugins"`
	Elements            ElementOptions          `json:"elements"`
	Scales              map[string]ScaleOptions `json:"scales,omitempty"`
}

type PluginOptions struct {
	Legend  LegendOptions  `json:"legend"`
	Title   TitleOptions   `json:"title"`
	Tooltip TooltipOptions `json:"tooltip"`
}

type FontSpec struct {
	Size   int    `json:"size,omitempty"`
	Weight string `json:"weight,omitempty"`
}

type LegendOptions struct {
	Display  bool         `json:"display"`
	Position string       `json:"position"`
	Labels   LegendLabels `json:"labels"`
}

type LegendLabels struct {
	BoxWidth      int      `json:"boxWidth"`
	Font          FontSpec `json:"font"`
	Color         string   `json:"color"`
	UsePointStyle bool     `json:"usePointStyle"`
}

type TitleOptions struct {
	Display bool     `json:"display"`
	Text    string   `json:"text"`
	Font    FontSpec `json:"font"`
	Color   string   `json:"color"`
}

// TooltipOptions carries the tooltip template; the renderer calls Format per point
type TooltipOptions struct {
	Mode            string `json:"mode"`
	Intersect       bool   `json:"intersect"`
	BackgroundColor string `json:"backgroundColor"`
	TitleColor      string `json:"titleColor"`
	BodyColor       string `json:"bodyColor"`
	BorderColor     string `json:"borderColor"`
	BorderWidth     int    `json:"borderWidth"`
	DisplayColors   bool   `json:"displayColors"`
	Template        string `json:"template"`
}

// Format substitutes the first {y} with the value and the first {label} with the
// category label. Anything else in the template is left as is.
func (t TooltipOptions) Format(value float64, label string) string {
	tmpl := t.Template
	if tmpl == "" {
		tmpl = "{y}"
	}
	out := strings.Replace(tmpl, "{y}", strconv.FormatFloat(value, 'f', -1, 64), 1)
	return strings.Replace(out, "{label}", label, 1)
}

// ElementOptions holds per-element defaults; nil sections do not apply to the chart type
type ElementOptions struct {
	Point *PointElement `json:"point,omitempty"`
	Line  *LineElement  `json:"line,omitempty"`
	Bar   *BarElement   `json:"bar,omitempty"`
	Arc   *ArcElement   `json:"arc,omitempty"`
}

type PointElement struct {
	Radius      float64 `json:"radius"`
	HoverRadius float64 `json:"hoverRadius"`
	PointStyle  string  `json:"pointStyle,omitempty"`
}

type LineElement struct {
	BorderWidth float64 `json:"borderWidth"`
	Tension     float64 `json:"tension"`
	Fill        bool    `json:"fill"`
}

type BarElement struct {
	BorderRadius  int  `json:"borderRadius"`
	BorderSkipped bool `json:"borderSkipped"`
}

type ArcElement struct {
	BorderWidth float64 `json:"borderWidth"`
}

type ScaleOptions struct {
	BeginAtZero bool       `json:"beginAtZero,omitempty"`
	Title       ScaleTitle `json:"title"`
	Ticks       ScaleTicks `json:"ticks"`
	Grid        ScaleGrid  `json:"grid"`
}

type ScaleTitle struct {
	Display bool     `json:"display"`
	Text    string   `json:"text"`
	Font    FontSpec `json:"font"`
}

type ScaleTicks struct {
	MaxRotation     int      `json:"maxRotation,omitempty"`
	MinRotation     int      `json:"minRotation"`
	AutoSkip        bool     `json:"autoSkip,omitempty"`
	AutoSkipPadding int      `json:"autoSkipPadding,omitempty"`
	Precision       *int     `json:"precision,omitempty"`
	Color           string   `json:"color"`
	Font            FontSpec `json:"font"`
}

type ScaleGrid struct {
	Display bool `json:"display"`
}

// CompiledChart bundles everything a renderer needs for one chart
type CompiledChart struct {
	Type    ChartType          `json:"type"`
	Config  ChartConfiguration `json:"config"`
	Data    ChartData          `json:"data"`
	Options RenderOptions      `json:"options"`
	Layout  LayoutHints        `json:"layout"`
}
