// Package charts builds the declarative chart-option documents consumed by
// the rendering layer. Builders are pure transforms from titles, category
// labels, colors and series data to an ApexCharts-shaped JSON schema; no
// drawing happens on this side.
package charts

const fontFamily = "Satoshi, sans-serif"

type Series struct {
	Name string    `json:"name"`
	Data []float64 `json:"data"`
}

type Chart struct {
	Type    string   `json:"type"`
	Stacked bool     `json:"stacked,omitempty"`
	Toolbar *Toggle  `json:"toolbar,omitempty"`
	Zoom    *Enabled `json:"zoom,omitempty"`
	Font    string   `json:"fontFamily,omitempty"`
}

type Toggle struct {
	Show bool `json:"show"`
}

type Enabled struct {
	Enabled bool `json:"enabled"`
}

type Title struct {
	Text  string     `json:"text"`
	Align string     `json:"align"`
	Style TitleStyle `json:"style"`
}

type TitleStyle struct {
	Color string `json:"color"`
}

type XAxis struct {
	Type       string   `json:"type"`
	Categories []string `json:"categories"`
	AxisBorder Toggle   `json:"axisBorder"`
	AxisTicks  Toggle   `json:"axisTicks"`
}

type YAxis struct {
	Title *YTitle  `json:"title,omitempty"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
}

type YTitle struct {
	Text string `json:"text"`
}

type Stroke struct {
	Curve string `json:"curve"`
	Width int    `json:"width"`
}

type Markers struct {
	Size int `json:"size"`
}

type Legend struct {
	Position string `json:"position"`
	OffsetY  int    `json:"offsetY,omitempty"`
}

type Bar struct {
	Horizontal   bool   `json:"horizontal"`
	BorderRadius int    `json:"borderRadius"`
	ColumnWidth  string `json:"columnWidth"`
}

type PlotOptions struct {
	Bar *Bar `json:"bar,omitempty"`
}

type Fill struct {
	Opacity float64 `json:"opacity"`
}

// Options is the full declarative document handed to the renderer.
type Options struct {
	Chart       Chart        `json:"chart"`
	Title       Title        `json:"title"`
	Colors      []string     `json:"colors,omitempty"`
	Labels      []string     `json:"labels,omitempty"`
	XAxis       *XAxis       `json:"xaxis,omitempty"`
	YAxis       *YAxis       `json:"yaxis,omitempty"`
	Stroke      *Stroke      `json:"stroke,omitempty"`
	Markers     *Markers     `json:"markers,omitempty"`
	Legend      *Legend      `json:"legend,omitempty"`
	PlotOptions *PlotOptions `json:"plotOptions,omitempty"`
	Fill        *Fill        `json:"fill,omitempty"`
	Series      []Series     `json:"series,omitempty"`
}

const titleColor = "#AEB7C0"

func title(text string) Title {
	return Title{Text: text, Align: "left", Style: TitleStyle{Color: titleColor}}
}

func categoryAxis(categories []string) *XAxis {
	return &XAxis{
		Type:       "category",
		Categories: categories,
		AxisBorder: Toggle{Show: false},
		AxisTicks:  Toggle{Show: false},
	}
}

// LineOptions configures a trend line chart over day categories, used for
// the heart-rate, body-battery and stress views.
func LineOptions(chartTitle string, categories, colors []string, series []Series) Options {
	return Options{
		Chart: Chart{
			Type:    "line",
			Toolbar: &Toggle{Show: false},
			Zoom:    &Enabled{Enabled: false},
		},
		Stroke:  &Stroke{Curve: "straight", Width: 3},
		Markers: &Markers{Size: 0},
		Colors:  colors,
		Title:   title(chartTitle),
		XAxis:   categoryAxis(categories),
		Series:  series,
	}
}

// ColumnOptions configures the stacked sleep column chart: one segment for
// REM hours and one for the non-REM remainder, with a fixed 0-12h axis.
func ColumnOptions(chartTitle string, categories, colors []string, series []Series) Options {
	yMin, yMax := 0.0, 12.0
	return Options{
		Chart: Chart{
			Type:    "bar",
			Stacked: true,
			Toolbar: &Toggle{Show: false},
			Zoom:    &Enabled{Enabled: false},
			Font:    fontFamily,
		},
		PlotOptions: &PlotOptions{Bar: &Bar{
			Horizontal:   false,
			BorderRadius: 5,
			ColumnWidth:  "75%",
		}},
		YAxis:  &YAxis{Title: &YTitle{Text: "Hours"}, Min: &yMin, Max: &yMax},
		Legend: &Legend{Position: "bottom", OffsetY: 10},
		Fill:   &Fill{Opacity: 1},
		Colors: colors,
		Title:  title(chartTitle),
		XAxis:  categoryAxis(categories),
		Series: series,
	}
}

// PieColors is the fixed vigorous/moderate/low palette of the intensity pie.
var PieColors = []string{"#FF6961", "#FFB54C", "#8CD47E"}

// PieOptions configures the activity-intensity pie chart.
func PieOptions(chartTitle string, labels []string, values []float64) Options {
	return Options{
		Chart: Chart{
			Type:    "pie",
			Toolbar: &Toggle{Show: false},
			Font:    fontFamily,
		},
		Title:  title(chartTitle),
		Colors: PieColors,
		Labels: labels,
		Legend: &Legend{Position: "bottom"},
		Series: []Series{{Name: chartTitle, Data: values}},
	}
}

// DonutOptions configures a donut chart, used for the heart-rate zone view.
func DonutOptions(chartTitle string, labels, colors []string, values []float64) Options {
	return Options{
		Chart: Chart{
			Type:    "donut",
			Toolbar: &Toggle{Show: false},
			Font:    fontFamily,
		},
		Title:  title(chartTitle),
		Colors: colors,
		Labels: labels,
		Legend: &Legend{Position: "bottom"},
		Series: []Series{{Name: chartTitle, Data: values}},
	}
}
