package agglo

import "fmt"

// Constants for clustering configuration
const (
	// DefaultMethod is the linkage rule used when none is selected.
	DefaultMethod = Average
	// DefaultTargetClusters is the final cluster count used when none is given.
	DefaultTargetClusters = 1
)

// Params contains the parameters driving an agglomerative clustering run.
type Params struct {
	Method         Method
	TargetClusters int
}

// DefaultParams returns the default clustering parameters.
func DefaultParams() Params {
	return Params{
		Method:         DefaultMethod,
		TargetClusters: DefaultTargetClusters,
	}
}

// ReducerInterface is the contract for anything that can reduce a collection
// to its configured target cluster count.
type ReducerInterface interface {
	Reduce(coll *Collection) (int, error)
	GetParams() Params
	SetParams(params Params)
}

// Agglomerator implements ReducerInterface using bottom-up agglomerative
// clustering: it repeatedly merges the two closest clusters under the
// configured linkage rule until the target count remains.
type Agglomerator struct {
	params Params
}

// NewAgglomerator creates an agglomerator with the specified parameters.
func NewAgglomerator(method Method, targetClusters int) *Agglomerator {
	return &Agglomerator{
		params: Params{
			Method:         method,
			TargetClusters: targetClusters,
		},
	}
}

// NewDefaultAgglomerator creates an agglomerator with default parameters.
func NewDefaultAgglomerator() *Agglomerator {
	params := DefaultParams()
	return NewAgglomerator(params.Method, params.TargetClusters)
}

// Reduce runs the clustering loop on coll in place until the target cluster
// count remains, returning the number of merge iterations performed. Each
// iteration merges the nearest pair into the lower-indexed cluster and
// compacts the higher-indexed slot away, so the loop always terminates
// after exactly initial-count minus target iterations.
func (a *Agglomerator) Reduce(coll *Collection) (int, error) {
	target := a.params.TargetClusters
	if target < 1 || target > coll.Len() {
		return 0, fmt.Errorf("%w: target %d with %d clusters", ErrTargetOutOfRange, target, coll.Len())
	}

	iterations := 0
	for coll.Len() > target {
		i, j := FindNearestPair(coll, a.params.Method)
		MergeInto(coll.Cluster(i), coll.Cluster(j))
		coll.RemoveAndCompact(j)
		iterations++
	}

	return iterations, nil
}

// GetParams returns the current clustering parameters.
func (a *Agglomerator) GetParams() Params {
	return a.params
}

// SetParams updates the clustering parameters.
func (a *Agglomerator) SetParams(params Params) {
	a.params = params
}

// Run reduces coll to target clusters under method and returns the same
// collection for callers that want the one-shot form.
func Run(coll *Collection, target int, method Method) (*Collection, error) {
	if _, err := NewAgglomerator(method, target).Reduce(coll); err != nil {
		return nil, err
	}
	return coll, nil
}

// Verify at compile time that *Agglomerator implements ReducerInterface.
var _ ReducerInterface = (*Agglomerator)(nil)
