package agglo

// FindNearestPair scans every unordered cluster pair and returns the indices
// (i, j) with i < j of the pair with minimum inter-cluster distance under
// the given method.
//
// Scan order is i ascending, then j ascending within i. The improvement
// test is non-strict, so on exact distance ties the last pair encountered
// in scan order wins. The rule is deterministic and encoded in the tie
// tests; changing it silently would change merge results on tied inputs.
//
// Requires at least two clusters; fewer is a contract violation and panics.
func FindNearestPair(coll *Collection, method Method) (int, int) {
	if coll.Len() < 2 {
		panic("agglo: FindNearestPair requires at least two clusters")
	}

	bestI, bestJ := 0, 1
	best := ClusterDistance(coll.Cluster(0), coll.Cluster(1), method)

	for i := 0; i < coll.Len(); i++ {
		for j := i + 1; j < coll.Len(); j++ {
			d := ClusterDistance(coll.Cluster(i), coll.Cluster(j), method)
			if d <= best {
				best = d
				bestI, bestJ = i, j
			}
		}
	}

	return bestI, bestJ
}
