package monitor

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/cluster.report/internal/agglo"
)

// pixelsPerInch converts configured pixel dimensions into vg lengths.
const pixelsPerInch = 96

// WriteScatterPNG renders the collection as a PNG scatter plot, one glyph
// color per cluster plus a cross marker on each centroid.
func WriteScatterPNG(path string, coll *agglo.Collection, widthPx, heightPx int) error {
	if coll.Len() == 0 {
		return fmt.Errorf("nothing to plot: empty collection")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d clusters, %d points", coll.Len(), coll.TotalPoints())
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	colors := generateColors(coll.Len())
	centroids := make(plotter.XYs, 0, coll.Len())

	for i := 0; i < coll.Len(); i++ {
		cluster := coll.Cluster(i)

		pts := make(plotter.XYs, cluster.Len())
		for k, member := range cluster.Points() {
			pts[k] = plotter.XY{X: member.X, Y: member.Y}
		}

		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("cluster %d scatter: %w", i, err)
		}
		scatter.GlyphStyle.Color = colors[i]
		scatter.GlyphStyle.Radius = vg.Points(3)
		p.Add(scatter)
		p.Legend.Add(fmt.Sprintf("cluster %d", i), scatter)

		s := agglo.Summarize(cluster)
		centroids = append(centroids, plotter.XY{X: s.CentroidX, Y: s.CentroidY})
	}

	centroidScatter, err := plotter.NewScatter(centroids)
	if err != nil {
		return fmt.Errorf("centroid scatter: %w", err)
	}
	centroidScatter.GlyphStyle.Color = color.Black
	centroidScatter.GlyphStyle.Radius = vg.Points(5)
	centroidScatter.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(centroidScatter)

	width := vg.Inch * vg.Length(widthPx) / pixelsPerInch
	height := vg.Inch * vg.Length(heightPx) / pixelsPerInch
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("save scatter plot: %w", err)
	}
	return nil
}

// generateColors creates a palette of distinct colors, one per cluster.
func generateColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}

	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL to RGB (0-255 range)
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64

	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}

	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
