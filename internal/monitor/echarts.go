package monitor

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/cluster.report/internal/agglo"
)

// WriteScatterHTML renders the collection as a standalone HTML scatter
// page, one series per cluster. Axis ranges are padded so edge points stay
// visible.
func WriteScatterHTML(path string, coll *agglo.Collection, widthPx, heightPx int) error {
	if coll.Len() == 0 {
		return fmt.Errorf("nothing to plot: empty collection")
	}

	minX, maxX := agglo.CoordinateMax, agglo.CoordinateMin
	minY, maxY := agglo.CoordinateMax, agglo.CoordinateMin
	for i := 0; i < coll.Len(); i++ {
		s := agglo.Summarize(coll.Cluster(i))
		minX = min(minX, s.MinX)
		maxX = max(maxX, s.MaxX)
		minY = min(minY, s.MinY)
		maxY = max(maxY, s.MaxY)
	}

	// Add a small padding so points at the edges are visible
	padX := (maxX - minX) * 0.05
	padY := (maxY - minY) * 0.05
	if padX == 0 {
		padX = 1.0
	}
	if padY == 0 {
		padY = 1.0
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Cluster Scatter",
			Width:     fmt.Sprintf("%dpx", widthPx),
			Height:    fmt.Sprintf("%dpx", heightPx),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Agglomerative clustering result",
			Subtitle: fmt.Sprintf("clusters=%d points=%d", coll.Len(), coll.TotalPoints()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: minX - padX, Max: maxX + padX, Name: "X"}),
		charts.WithYAxisOpts(opts.YAxis{Min: minY - padY, Max: maxY + padY, Name: "Y"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	for i := 0; i < coll.Len(); i++ {
		cluster := coll.Cluster(i)
		data := make([]opts.ScatterData, 0, cluster.Len())
		for _, p := range cluster.Points() {
			data = append(data, opts.ScatterData{
				Name:  fmt.Sprintf("%d", p.ID),
				Value: []interface{}{p.X, p.Y},
			})
		}
		scatter.AddSeries(fmt.Sprintf("cluster %d", i), data,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}))
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer file.Close()

	if err := scatter.Render(file); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
