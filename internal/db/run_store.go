package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run represents a persisted clustering run: the input parameters plus the
// headline results.
type Run struct {
	RunID          string `json:"run_id"`
	SourceFile     string `json:"source_file"`
	PointCount     int    `json:"point_count"`
	TargetClusters int    `json:"target_clusters"`
	Method         string `json:"method"`
	Iterations     int    `json:"iterations"`
	DurationNanos  int64  `json:"duration_nanos"`
	CreatedAt      int64  `json:"created_at"`
}

// RunCluster represents one final cluster of a persisted run, with its
// summary statistics and the rendered member list.
type RunCluster struct {
	RunID        string  `json:"run_id"`
	ClusterIndex int     `json:"cluster_index"`
	Size         int     `json:"size"`
	CentroidX    float64 `json:"centroid_x"`
	CentroidY    float64 `json:"centroid_y"`
	MinX         float64 `json:"min_x"`
	MaxX         float64 `json:"max_x"`
	MinY         float64 `json:"min_y"`
	MaxY         float64 `json:"max_y"`
	RadialSpread float64 `json:"radial_spread"`
	Members      string  `json:"members"`
}

// RunStore provides persistence for clustering runs.
type RunStore struct {
	db *DB
}

// NewRunStore creates a new RunStore.
func NewRunStore(db *DB) *RunStore {
	return &RunStore{db: db}
}

// InsertRun persists a run and its final clusters in a single transaction.
// If RunID is empty, a UUID is generated. Cluster rows inherit the run's ID.
func (s *RunStore) InsertRun(run *Run, clusters []*RunCluster) error {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.CreatedAt == 0 {
		run.CreatedAt = time.Now().UnixNano()
	}

	return retryOnBusy(func() error {
		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("begin run insert: %w", err)
		}
		defer tx.Rollback()

		_, err = tx.Exec(`
			INSERT INTO cluster_runs (
				run_id, source_file, point_count, target_clusters,
				method, iterations, duration_nanos, created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			run.RunID, run.SourceFile, run.PointCount, run.TargetClusters,
			run.Method, run.Iterations, run.DurationNanos, run.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert run: %w", err)
		}

		for _, c := range clusters {
			c.RunID = run.RunID
			_, err = tx.Exec(`
				INSERT INTO cluster_run_clusters (
					run_id, cluster_index, size, centroid_x, centroid_y,
					min_x, max_x, min_y, max_y, radial_spread, members
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				c.RunID, c.ClusterIndex, c.Size, c.CentroidX, c.CentroidY,
				c.MinX, c.MaxX, c.MinY, c.MaxY, c.RadialSpread, c.Members,
			)
			if err != nil {
				return fmt.Errorf("insert cluster %d: %w", c.ClusterIndex, err)
			}
		}

		return tx.Commit()
	})
}

// GetRun returns a single run by ID, or sql.ErrNoRows if absent.
func (s *RunStore) GetRun(runID string) (*Run, error) {
	row := s.db.QueryRow(`
		SELECT run_id, source_file, point_count, target_clusters,
		       method, iterations, duration_nanos, created_at
		FROM cluster_runs
		WHERE run_id = ?`, runID)

	var r Run
	err := row.Scan(
		&r.RunID, &r.SourceFile, &r.PointCount, &r.TargetClusters,
		&r.Method, &r.Iterations, &r.DurationNanos, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListRuns returns up to limit runs, newest first.
func (s *RunStore) ListRuns(limit int) ([]*Run, error) {
	rows, err := s.db.Query(`
		SELECT run_id, source_file, point_count, target_clusters,
		       method, iterations, duration_nanos, created_at
		FROM cluster_runs
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var r Run
		err := rows.Scan(
			&r.RunID, &r.SourceFile, &r.PointCount, &r.TargetClusters,
			&r.Method, &r.Iterations, &r.DurationNanos, &r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, &r)
	}
	return runs, rows.Err()
}

// ClustersForRun returns the final clusters of a run ordered by index.
func (s *RunStore) ClustersForRun(runID string) ([]*RunCluster, error) {
	rows, err := s.db.Query(`
		SELECT run_id, cluster_index, size, centroid_x, centroid_y,
		       min_x, max_x, min_y, max_y, radial_spread, members
		FROM cluster_run_clusters
		WHERE run_id = ?
		ORDER BY cluster_index`, runID)
	if err != nil {
		return nil, fmt.Errorf("query run clusters: %w", err)
	}
	defer rows.Close()

	var clusters []*RunCluster
	for rows.Next() {
		var c RunCluster
		err := rows.Scan(
			&c.RunID, &c.ClusterIndex, &c.Size, &c.CentroidX, &c.CentroidY,
			&c.MinX, &c.MaxX, &c.MinY, &c.MaxY, &c.RadialSpread, &c.Members,
		)
		if err != nil {
			return nil, fmt.Errorf("scan run cluster: %w", err)
		}
		clusters = append(clusters, &c)
	}
	return clusters, rows.Err()
}
