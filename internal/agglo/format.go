package agglo

import (
	"fmt"
	"io"
	"strings"
)

// FormatCluster renders a cluster as space-separated "id[x,y]" tokens in
// storage order (ascending by ID after any merge).
func FormatCluster(c *Cluster) string {
	var b strings.Builder
	for i, p := range c.Points() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d[%g,%g]", p.ID, p.X, p.Y)
	}
	return b.String()
}

// WriteClusters writes the collection to w, one line per cluster, in the
// program's output format:
//
//	Clusters:
//	cluster 0: 1[1,1] 2[2,2]
//	cluster 1: 4[10,10]
func WriteClusters(w io.Writer, coll *Collection) error {
	if _, err := fmt.Fprintln(w, "Clusters:"); err != nil {
		return err
	}
	for i := 0; i < coll.Len(); i++ {
		if _, err := fmt.Fprintf(w, "cluster %d: %s\n", i, FormatCluster(coll.Cluster(i))); err != nil {
			return err
		}
	}
	return nil
}
