// Package agglo implements agglomerative hierarchical clustering of labeled
// 2-D points.
//
// A Collection starts as one singleton Cluster per input point. The
// Agglomerator repeatedly finds the closest pair of clusters under the
// configured linkage Method (average, nearest-neighbor, or
// farthest-neighbor), merges the pair into the lower-indexed cluster, and
// compacts the freed slot away, until the requested number of clusters
// remains. The scan is exact: every pair is evaluated each iteration, and
// tie handling is fixed (last pair in scan order wins), so results are
// deterministic for a given input and method.
//
// The package also carries the program's I/O edges: the point-file loader
// and the textual cluster formatter.
package agglo
