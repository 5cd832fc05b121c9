package kpi

// Color is the visual identity of one compared series in a chart
type Color struct {
	Name   string `json:"name"`
	Border string `json:"border"`
	Fill   string `json:"fill"`
}

// Palette is an ordered list of colours assigned to series by position
type Palette []Color

// DefaultPalette is used when no palette is passed to Analyze
var DefaultPalette = Palette{
	{Name: "blue", Border: "rgba(54, 162, 235, 1)", Fill: "rgba(54, 162, 235, 0.5)"},
	{Name: "red", Border: "rgba(255, 99, 132, 1)", Fill: "rgba(255, 99, 132, 0.5)"},
	{Name: "teal", Border: "rgba(75, 192, 192, 1)", Fill: "rgba(75, 192, 192, 0.5)"},
	{Name: "orange", Border: "rgba(255, 159, 64, 1)", Fill: "rgba(255, 159, 64, 0.5)"},
	{Name: "purple", Border: "rgba(153, 102, 255, 1)", Fill: "rgba(153, 102, 255, 0.5)"},
	{Name: "yellow", Border: "rgba(255, 205, 86, 1)", Fill: "rgba(255, 205, 86, 0.5)"},
	{Name: "grey", Border: "rgba(201, 203, 207, 1)", Fill: "rgba(201, 203, 207, 0.5)"},
}

// ColorForIndex returns the i-th colour of the default palette
func ColorForIndex(i int) Color {
	return DefaultPalette.At(i)
}

// At returns the colour for position i, wrapping around the palette.
// An empty palette yields the zero Color.
func (p Palette) At(i int) Color {
	n := len(p)
	if n == 0 {
		return Color{}
	}
	i %= n
	if i < 0 {
		i += n
	}
	return p[i]
}
