package agglo

// Collection is an ordered sequence of clusters, mutated in place by the
// clustering loop. The sum of cluster sizes is constant across every
// operation after construction.
type Collection struct {
	clusters []Cluster
}

// NewCollection builds a collection of singleton clusters, one per input
// point, preserving input order.
func NewCollection(points []Point) *Collection {
	coll := &Collection{clusters: make([]Cluster, len(points))}
	for i, p := range points {
		coll.clusters[i].points = make([]Point, 0, 1)
		coll.clusters[i].Append(p)
	}
	return coll
}

// Len returns the number of clusters in the collection.
func (coll *Collection) Len() int { return len(coll.clusters) }

// Cluster returns the cluster at index i. The pointer stays valid until the
// next RemoveAndCompact call.
func (coll *Collection) Cluster(i int) *Cluster { return &coll.clusters[i] }

// TotalPoints returns the sum of all cluster sizes.
func (coll *Collection) TotalPoints() int {
	total := 0
	for i := range coll.clusters {
		total += coll.clusters[i].Len()
	}
	return total
}

// MergeInto appends every point of source onto target, growing target's
// storage as needed, then re-sorts target ascending by ID. Source is left
// unmodified; the caller is expected to follow up with RemoveAndCompact to
// drop the now-redundant source slot.
func MergeInto(target, source *Cluster) {
	for _, p := range source.points {
		target.Append(p)
	}
	target.sortByID()
}

// RemoveAndCompact drops the cluster at idx, moving every following cluster
// one slot earlier and shrinking the collection by exactly one. Moved
// clusters keep their internal ordering, so this is a plain ownership move
// rather than a merge. Returns the new cluster count. An out-of-bounds
// index is a contract violation and panics.
func (coll *Collection) RemoveAndCompact(idx int) int {
	if idx < 0 || idx >= len(coll.clusters) {
		panic("agglo: RemoveAndCompact index out of bounds")
	}

	coll.clusters[idx].Release()
	copy(coll.clusters[idx:], coll.clusters[idx+1:])

	last := len(coll.clusters) - 1
	coll.clusters[last] = Cluster{}
	coll.clusters = coll.clusters[:last]
	return len(coll.clusters)
}

// Release frees every cluster's storage and empties the collection.
func (coll *Collection) Release() {
	for i := range coll.clusters {
		coll.clusters[i].Release()
	}
	coll.clusters = nil
}
