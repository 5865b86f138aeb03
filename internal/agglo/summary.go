package agglo

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics for a single cluster, consumed by
// the run store and the plot renderers.
type Summary struct {
	Size               int
	CentroidX          float64
	CentroidY          float64
	MinX, MaxX         float64
	MinY, MaxY         float64
	RadialSpread       float64 // standard deviation of member distance to centroid
	MeanMemberDistance float64 // mean member distance to centroid
}

// Summarize computes the summary for a nonempty cluster. An empty cluster
// is a contract violation and panics.
func Summarize(c *Cluster) Summary {
	if c.Len() == 0 {
		panic("agglo: Summarize called with an empty cluster")
	}

	xs := make([]float64, c.Len())
	ys := make([]float64, c.Len())
	for i, p := range c.Points() {
		xs[i] = p.X
		ys[i] = p.Y
	}

	s := Summary{
		Size:      c.Len(),
		CentroidX: stat.Mean(xs, nil),
		CentroidY: stat.Mean(ys, nil),
		MinX:      floats.Min(xs),
		MaxX:      floats.Max(xs),
		MinY:      floats.Min(ys),
		MaxY:      floats.Max(ys),
	}

	centroid := Point{X: s.CentroidX, Y: s.CentroidY}
	radii := make([]float64, c.Len())
	for i, p := range c.Points() {
		radii[i] = PointDistance(p, centroid)
	}
	s.MeanMemberDistance = stat.Mean(radii, nil)
	if c.Len() > 1 {
		s.RadialSpread = stat.StdDev(radii, nil)
	}

	return s
}
