// Package domain holds DTOs for stats http and service contracts
package domain

// Query window kept small and explicit
// Dates are ISO8601 without timezone

// TimeRange defines a start and end date for queries
type TimeRange struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02" example:"2026-08-01"`
	End   string `json:"end" validate:"required,datetime=2006-01-02" example:"2026-08-31"`
}

// Priority buckets

// ByPriorityInput buckets classifications by day and priority
type ByPriorityInput struct {
	Range TimeRange `json:"range"`
}

// ByPriorityRow represents a row in the ByPriority output
type ByPriorityRow struct {
	Day               string  `json:"day" example:"2026-08-01"`
	Priority          string  `json:"priority" example:"urgent"`
	Count             int64   `json:"count" example:"42"`
	AvgConfidence     float64 `json:"avg_confidence" example:"0.82"`
	ClassifierVersion int     `json:"classifier_version" example:"1"`
}

// Type buckets

// ByTypeInput buckets logged incidents by type
type ByTypeInput struct {
	Range TimeRange `json:"range"`
	// optional filter
	Priority string `json:"priority,omitempty" validate:"omitempty,oneof=urgent high medium low" example:"urgent"`
}

// ByTypeRow represents a row in the ByType output
type ByTypeRow struct {
	Type     string `json:"type" example:"Medical"`
	Priority string `json:"priority" example:"urgent"`
	Count    int64  `json:"count" example:"7"`
}
