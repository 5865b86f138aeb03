package agglo

import (
	"fmt"
	"math"
)

// Method selects the linkage rule used to compute the distance between two
// clusters from their member points.
type Method int

const (
	// Average linkage: arithmetic mean of all pairwise point distances.
	Average Method = iota
	// Min linkage (nearest neighbor / single linkage): minimum pairwise distance.
	Min
	// Max linkage (farthest neighbor / complete linkage): maximum pairwise distance.
	Max
)

func (m Method) String() string {
	switch m {
	case Average:
		return "avg"
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// ParseMethod converts a CLI method name ("avg", "min", "max") to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "avg":
		return Average, nil
	case "min":
		return Min, nil
	case "max":
		return Max, nil
	default:
		return Average, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// PointDistance returns the Euclidean distance between two points.
func PointDistance(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// ClusterDistance computes the distance between two nonempty clusters under
// the given linkage method. The result is symmetric in a and b for all
// three methods. Passing an empty cluster is a contract violation and panics.
func ClusterDistance(a, b *Cluster, method Method) float64 {
	if a.Len() == 0 || b.Len() == 0 {
		panic("agglo: ClusterDistance called with an empty cluster")
	}

	switch method {
	case Min:
		best := PointDistance(a.points[0], b.points[0])
		for _, p := range a.points {
			for _, q := range b.points {
				if d := PointDistance(p, q); d < best {
					best = d
				}
			}
		}
		return best
	case Max:
		best := PointDistance(a.points[0], b.points[0])
		for _, p := range a.points {
			for _, q := range b.points {
				if d := PointDistance(p, q); d > best {
					best = d
				}
			}
		}
		return best
	default:
		var sum float64
		for _, p := range a.points {
			for _, q := range b.points {
				sum += PointDistance(p, q)
			}
		}
		return sum / float64(a.Len()*b.Len())
	}
}
