package agglo

import "sort"

// Constants for cluster storage configuration
const (
	// clusterChunk is the fixed capacity increment applied when a cluster's
	// backing storage fills up. The exact value is a tuning constant; any
	// chunked growth gives amortized O(1) appends.
	clusterChunk = 10

	// CoordinateMin and CoordinateMax bound the valid plane for loaded points.
	CoordinateMin = 0.0
	CoordinateMax = 1000.0
)

// Point is a single labeled survey point on the [0,1000] x [0,1000] plane.
// IDs are expected to be unique in the data source but the core does not
// enforce uniqueness itself.
type Point struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Cluster owns a growable, ordered sequence of points. Each cluster owns its
// backing storage exclusively; storage is never shared between clusters.
// After any merge the points are sorted ascending by ID.
type Cluster struct {
	points []Point
}

// NewCluster creates an empty cluster with capacityHint slots pre-reserved.
// A hint of zero (or a negative hint) allocates nothing until the first append.
func NewCluster(capacityHint int) *Cluster {
	c := &Cluster{}
	if capacityHint > 0 {
		c.points = make([]Point, 0, capacityHint)
	}
	return c
}

// Len returns the number of points in the cluster.
func (c *Cluster) Len() int { return len(c.points) }

// Cap returns the current capacity of the cluster's backing storage.
func (c *Cluster) Cap() int { return cap(c.points) }

// Points returns the cluster's points in storage order. The returned slice
// aliases the cluster's backing storage and must not be modified.
func (c *Cluster) Points() []Point { return c.points }

// At returns the point at index i.
func (c *Cluster) At(i int) Point { return c.points[i] }

// Append adds p as the new last point, growing the backing storage by fixed
// chunks when full.
func (c *Cluster) Append(p Point) {
	if len(c.points) == cap(c.points) {
		newCap := cap(c.points)
		for newCap <= len(c.points) {
			newCap += clusterChunk
		}
		grown := make([]Point, len(c.points), newCap)
		copy(grown, c.points)
		c.points = grown
	}
	c.points = append(c.points, p)
}

// Reserve grows the backing storage to hold at least n points. Requests at
// or below the current capacity are a no-op; storage is never shrunk here.
func (c *Cluster) Reserve(n int) error {
	if n < 0 {
		return ErrNegativeCapacity
	}
	if n <= cap(c.points) {
		return nil
	}
	grown := make([]Point, len(c.points), n)
	copy(grown, c.points)
	c.points = grown
	return nil
}

// Release frees the backing storage and resets the cluster to the empty
// state (size and capacity both zero).
func (c *Cluster) Release() {
	c.points = nil
}

// sortByID re-establishes the ascending-by-ID ordering invariant.
func (c *Cluster) sortByID() {
	sort.Slice(c.points, func(i, j int) bool {
		return c.points[i].ID < c.points[j].ID
	})
}
