package agglo

import (
	"errors"
	"testing"
)

func TestNewCluster_CapacityHint(t *testing.T) {
	c := NewCluster(5)
	if c.Len() != 0 {
		t.Errorf("expected empty cluster, got size %d", c.Len())
	}
	if c.Cap() != 5 {
		t.Errorf("expected capacity 5, got %d", c.Cap())
	}
}

func TestNewCluster_ZeroHint(t *testing.T) {
	c := NewCluster(0)
	if c.Len() != 0 || c.Cap() != 0 {
		t.Errorf("expected size=0 cap=0, got size=%d cap=%d", c.Len(), c.Cap())
	}
}

func TestNewCluster_NegativeHintAllocatesNothing(t *testing.T) {
	c := NewCluster(-3)
	if c.Len() != 0 || c.Cap() != 0 {
		t.Errorf("expected size=0 cap=0, got size=%d cap=%d", c.Len(), c.Cap())
	}
}

func TestCluster_AppendGrowsByChunk(t *testing.T) {
	c := NewCluster(0)
	c.Append(Point{ID: 1, X: 1, Y: 2})
	if c.Cap() != clusterChunk {
		t.Errorf("expected first growth to capacity %d, got %d", clusterChunk, c.Cap())
	}

	for i := 2; i <= clusterChunk+1; i++ {
		c.Append(Point{ID: i})
	}
	if c.Len() != clusterChunk+1 {
		t.Fatalf("expected %d points, got %d", clusterChunk+1, c.Len())
	}
	if c.Cap() != 2*clusterChunk {
		t.Errorf("expected second growth to capacity %d, got %d", 2*clusterChunk, c.Cap())
	}
}

func TestCluster_AppendPreservesOrder(t *testing.T) {
	c := NewCluster(1)
	for _, id := range []int{3, 1, 2} {
		c.Append(Point{ID: id})
	}
	want := []int{3, 1, 2}
	for i, p := range c.Points() {
		if p.ID != want[i] {
			t.Errorf("point %d: expected id %d, got %d", i, want[i], p.ID)
		}
	}
}

func TestCluster_Reserve(t *testing.T) {
	c := NewCluster(2)
	c.Append(Point{ID: 1})

	if err := c.Reserve(8); err != nil {
		t.Fatalf("unexpected reserve error: %v", err)
	}
	if c.Cap() != 8 {
		t.Errorf("expected capacity 8, got %d", c.Cap())
	}
	if c.Len() != 1 || c.At(0).ID != 1 {
		t.Errorf("reserve lost contents: size=%d", c.Len())
	}

	// Requests at or below current capacity are a no-op.
	if err := c.Reserve(3); err != nil {
		t.Fatalf("unexpected reserve error: %v", err)
	}
	if c.Cap() != 8 {
		t.Errorf("expected capacity to stay 8, got %d", c.Cap())
	}
}

func TestCluster_ReserveNegative(t *testing.T) {
	c := NewCluster(0)
	err := c.Reserve(-1)
	if !errors.Is(err, ErrNegativeCapacity) {
		t.Errorf("expected ErrNegativeCapacity, got %v", err)
	}
}

func TestCluster_Release(t *testing.T) {
	c := NewCluster(4)
	c.Append(Point{ID: 1})
	c.Release()
	if c.Len() != 0 || c.Cap() != 0 {
		t.Errorf("expected size=0 cap=0 after release, got size=%d cap=%d", c.Len(), c.Cap())
	}
}
