package agglo

import (
	"bytes"
	"errors"
	"testing"
)

func TestAgglomerator_NewDefault(t *testing.T) {
	a := NewDefaultAgglomerator()
	params := a.GetParams()
	if params.Method != DefaultMethod {
		t.Errorf("expected method %s, got %s", DefaultMethod, params.Method)
	}
	if params.TargetClusters != DefaultTargetClusters {
		t.Errorf("expected target %d, got %d", DefaultTargetClusters, params.TargetClusters)
	}
}

func TestAgglomerator_SetParams(t *testing.T) {
	a := NewDefaultAgglomerator()
	a.SetParams(Params{Method: Max, TargetClusters: 7})
	params := a.GetParams()
	if params.Method != Max || params.TargetClusters != 7 {
		t.Errorf("unexpected params after set: %+v", params)
	}
}

// The worked example: points 1..3 on the unit diagonal plus an outlier.
// First iteration merges {2},{3} (tie with {1},{2} resolved last-wins),
// second merges {1},{2 3}. Result at target 2: {1 2 3} and {4}.
func TestAgglomerator_Reduce_WorkedExample(t *testing.T) {
	coll := NewCollection([]Point{
		{ID: 1, X: 1, Y: 1},
		{ID: 2, X: 2, Y: 2},
		{ID: 3, X: 3, Y: 3},
		{ID: 4, X: 10, Y: 10},
	})

	iterations, err := NewAgglomerator(Average, 2).Reduce(coll)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iterations != 2 {
		t.Errorf("expected 2 iterations, got %d", iterations)
	}
	if coll.Len() != 2 {
		t.Fatalf("expected 2 clusters, got %d", coll.Len())
	}

	first := coll.Cluster(0)
	if first.Len() != 3 {
		t.Fatalf("expected first cluster of size 3, got %d", first.Len())
	}
	for i, wantID := range []int{1, 2, 3} {
		if first.At(i).ID != wantID {
			t.Errorf("first cluster slot %d: expected id %d, got %d", i, wantID, first.At(i).ID)
		}
	}

	second := coll.Cluster(1)
	if second.Len() != 1 || second.At(0).ID != 4 {
		t.Errorf("expected second cluster {4}, got %+v", second.Points())
	}
}

func TestAgglomerator_Reduce_TargetEqualsCount(t *testing.T) {
	points := []Point{
		{ID: 1, X: 1, Y: 1},
		{ID: 2, X: 9, Y: 9},
		{ID: 3, X: 20, Y: 20},
	}
	coll := NewCollection(points)

	iterations, err := NewAgglomerator(Average, 3).Reduce(coll)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iterations != 0 {
		t.Errorf("expected zero merges, got %d", iterations)
	}
	if coll.Len() != 3 {
		t.Fatalf("expected 3 clusters, got %d", coll.Len())
	}
	for i, p := range points {
		if coll.Cluster(i).At(0) != p {
			t.Errorf("cluster %d changed: %+v", i, coll.Cluster(i).Points())
		}
	}
}

func TestAgglomerator_Reduce_TargetOutOfRange(t *testing.T) {
	for _, target := range []int{0, -1, 4} {
		coll := NewCollection([]Point{{ID: 1}, {ID: 2}, {ID: 3}})
		_, err := NewAgglomerator(Average, target).Reduce(coll)
		if !errors.Is(err, ErrTargetOutOfRange) {
			t.Errorf("target %d: expected ErrTargetOutOfRange, got %v", target, err)
		}
	}
}

func TestAgglomerator_Reduce_Conservation(t *testing.T) {
	points := []Point{
		{ID: 1, X: 3, Y: 7}, {ID: 2, X: 12, Y: 40}, {ID: 3, X: 800, Y: 13},
		{ID: 4, X: 44, Y: 44}, {ID: 5, X: 45, Y: 45}, {ID: 6, X: 500, Y: 500},
		{ID: 7, X: 1, Y: 999},
	}

	for _, method := range []Method{Average, Min, Max} {
		for target := 1; target <= len(points); target++ {
			coll := NewCollection(points)
			if _, err := NewAgglomerator(method, target).Reduce(coll); err != nil {
				t.Fatalf("method %s target %d: %v", method, target, err)
			}
			if coll.Len() != target {
				t.Errorf("method %s target %d: got %d clusters", method, target, coll.Len())
			}
			if coll.TotalPoints() != len(points) {
				t.Errorf("method %s target %d: %d points conserved of %d",
					method, target, coll.TotalPoints(), len(points))
			}

			// Every original id appears exactly once across the result.
			seen := make(map[int]int)
			for i := 0; i < coll.Len(); i++ {
				for _, p := range coll.Cluster(i).Points() {
					seen[p.ID]++
				}
			}
			for _, p := range points {
				if seen[p.ID] != 1 {
					t.Errorf("method %s target %d: id %d appears %d times",
						method, target, p.ID, seen[p.ID])
				}
			}
		}
	}
}

func TestAgglomerator_Reduce_SingleLinkageChain(t *testing.T) {
	// Single linkage chains along the x axis: the two tight groups join
	// before the far point does.
	coll := NewCollection([]Point{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 1, Y: 0},
		{ID: 3, X: 2, Y: 0},
		{ID: 4, X: 50, Y: 0},
	})

	if _, err := NewAgglomerator(Min, 2).Reduce(coll); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coll.Cluster(0).Len() != 3 {
		t.Errorf("expected chained cluster of 3, got %d", coll.Cluster(0).Len())
	}
	if coll.Cluster(1).At(0).ID != 4 {
		t.Errorf("expected {4} to stay apart, got %+v", coll.Cluster(1).Points())
	}
}

func TestRun_GoldenOutput(t *testing.T) {
	coll := NewCollection([]Point{
		{ID: 1, X: 1, Y: 1},
		{ID: 2, X: 2, Y: 2},
		{ID: 3, X: 3, Y: 3},
		{ID: 4, X: 10, Y: 10},
	})

	result, err := Run(coll, 2, Average)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteClusters(&buf, result); err != nil {
		t.Fatalf("write clusters: %v", err)
	}

	want := "Clusters:\n" +
		"cluster 0: 1[1,1] 2[2,2] 3[3,3]\n" +
		"cluster 1: 4[10,10]\n"
	if buf.String() != want {
		t.Errorf("output mismatch:\nwant:\n%s\ngot:\n%s", want, buf.String())
	}
}
