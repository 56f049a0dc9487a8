package domain

import "context"

// RecorderPort accepts new incidents, classifies them, and persists them
type RecorderPort interface {
	// Create normalizes the text, runs the priority classifier, and writes
	// the incident. The returned Incident carries the assigned priority,
	// confidence, and signal trace
	Create(ctx context.Context, in CreateInput) (Incident, error)
}

// ReaderPort defines the read interface for incidents
type ReaderPort interface {
	// List returns up to Limit rows ordered by occurred_at descending
	List(ctx context.Context, in ListInput) ([]Incident, error)

	// Get fetches one incident by id
	Get(ctx context.Context, id string) (Incident, error)
}
