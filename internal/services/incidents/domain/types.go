// Package domain defines core types and interfaces for incidents
package domain

import "time"

// Incident is the persisted incident log row
type Incident struct {
	ID      string // uuid
	EventID string

	Type     string // incident type label as reported (may be empty)
	Priority string // urgent | high | medium | low
	Status   string // open | closed

	Occurrence  string // normalized narrative
	ActionTaken string

	CallsignFrom string
	CallsignTo   string
	Reference    string

	Confidence        float64
	Signals           []string
	Reasoning         string
	ClassifierVersion int

	OccurredAt time.Time
	CreatedAt  time.Time
}

// CreateInput is the caller-supplied slice of a new incident. Priority and
// confidence are never accepted from callers; the classifier assigns them
type CreateInput struct {
	EventID      string
	Type         string
	Occurrence   string
	ActionTaken  string
	CallsignFrom string
	CallsignTo   string
	Reference    string
	OccurredAt   time.Time // zero = now
}

// ListInput defines filters for listing incidents. All filters AND together
type ListInput struct {
	EventID  string
	Type     string
	Priority string
	Status   string
	Since    time.Time // inclusive
	Until    time.Time // exclusive, zero = unbounded
	Limit    int       // hard-capped in service
}
