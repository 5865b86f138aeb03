// Package monitor renders final clusterings for visual inspection:
// a PNG scatter plot via gonum/plot and a standalone HTML scatter page
// via go-echarts. Both renderers give each cluster its own color and mark
// cluster centroids.
package monitor
