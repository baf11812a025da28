package lut

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// channelRamps are the visual-map colours for each channel in RenderChart.
var channelRamps = [3][]string{
	{"#000000", "#ff0000"},
	{"#000000", "#00ff00"},
	{"#000000", "#0000ff"},
}

// channelGrid exposes one channel of a PixelGrid as a plotter.GridXYZ.
type channelGrid struct {
	pixels  *PixelGrid
	channel int
}

func (g channelGrid) Dims() (c, r int)   { return Width, Height }
func (g channelGrid) Z(c, r int) float64 { return float64(g.pixels[r][c][g.channel]) }
func (g channelGrid) X(c int) float64    { return float64(c) }
func (g channelGrid) Y(r int) float64    { return float64(r) }

// RenderPlot draws the R, G and B bytes of p as three side-by-side heat maps
// on a fixed 0..255 scale and writes them to w as a PNG. Row 0 is at the top,
// matching the LUT image.
func RenderPlot(w io.Writer, p *PixelGrid, title string) error {
	pal := palette.Heat(256, 1)

	row := make([]*plot.Plot, len(channelNames))
	for c, name := range channelNames {
		pl := plot.New()
		pl.Title.Text = fmt.Sprintf("%s - %s channel", title, name)
		pl.X.Label.Text = "x (column)"
		pl.Y.Label.Text = "y (row)"
		pl.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

		hm := plotter.NewHeatMap(channelGrid{pixels: p, channel: c}, pal)
		hm.Min, hm.Max = 0, 255
		pl.Add(hm)
		row[c] = pl
	}

	img := vgimg.New(18*vg.Inch, 6*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(row),
		PadX:      vg.Millimeter,
		PadTop:    vg.Points(2),
		PadBottom: vg.Points(2),
		PadLeft:   vg.Points(2),
		PadRight:  vg.Points(2),
	}
	canvases := plot.Align([][]*plot.Plot{row}, tiles, dc)
	for c, pl := range row {
		pl.Draw(canvases[0][c])
	}

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return fmt.Errorf("write plot: %w", err)
	}
	return nil
}

// RenderChart writes an HTML page with one colored-scatter heat map per
// channel of p.
func RenderChart(w io.Writer, p *PixelGrid, title string) error {
	page := components.NewPage()
	for c, name := range channelNames {
		data := make([]opts.ScatterData, 0, Expected)
		for y := range p {
			for x := range p[y] {
				data = append(data, opts.ScatterData{Value: []interface{}{x, y, int(p[y][x][c])}})
			}
		}

		scatter := charts.NewScatter()
		scatter.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "640px", Height: "640px"}),
			charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s channel", name), Subtitle: fmt.Sprintf("%s %dx%d", title, Width, Height)}),
			charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
			charts.WithXAxisOpts(opts.XAxis{Min: -1, Max: Width, Name: "x (column)", NameLocation: "middle", NameGap: 25}),
			charts.WithYAxisOpts(opts.YAxis{Min: -1, Max: Height, Name: "y (row)", NameLocation: "middle", NameGap: 30}),
			charts.WithVisualMapOpts(opts.VisualMap{
				Show:       opts.Bool(true),
				Calculable: opts.Bool(true),
				Min:        0,
				Max:        255,
				Dimension:  "2",
				InRange:    &opts.VisualMapInRange{Color: channelRamps[c]},
			}),
		)
		scatter.AddSeries(name, data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 14}))
		page.AddCharts(scatter)
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
