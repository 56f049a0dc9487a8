// Package domain defines types and interfaces for the classification audit trail
package domain

import "time"

// Event is one classification decision as recorded for analytics
type Event struct {
	OccurredAt        time.Time
	IncidentID        string
	EventID           string
	Priority          string
	Confidence        float64
	SignalCount       int
	Source            string // "incident" for persisted rows, "adhoc" for classify-only calls
	ClassifierVersion int
}

// Window defines a time range with a start (Since) and end (Until)
type Window struct {
	Since time.Time
	Until time.Time
}

// PriorityDayRow aggregates classifications by day and priority
type PriorityDayRow struct {
	Day               time.Time
	Priority          string
	Count             uint64
	AvgConfidence     float64
	ClassifierVersion int
}
