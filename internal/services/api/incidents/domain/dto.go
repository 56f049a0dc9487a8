// Package domain holds DTOs for the incidents http and service contracts
package domain

// CreateInput is one incident log request. Priority is never accepted
// from the caller; the classifier assigns it on write
type CreateInput struct {
	EventID      string `json:"event_id,omitempty" validate:"omitempty,max=100" example:"EVT-2026-014"`
	Type         string `json:"type,omitempty" validate:"omitempty,max=100" example:"Medical"`
	Occurrence   string `json:"occurrence,omitempty" validate:"omitempty,max=10000" example:"person collapsed near gate 3, not breathing"`
	ActionTaken  string `json:"action_taken,omitempty" validate:"omitempty,max=10000" example:"medics dispatched to gate 3"`
	CallsignFrom string `json:"callsign_from,omitempty" validate:"omitempty,max=50" example:"Alpha 1"`
	CallsignTo   string `json:"callsign_to,omitempty" validate:"omitempty,max=50" example:"Control"`
	Reference    string `json:"reference,omitempty" validate:"omitempty,max=200" example:"REF-8841"`
	OccurredAt   string `json:"occurred_at,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00" example:"2026-08-30T21:14:00Z"`
}

// Incident is the full row as served to clients
type Incident struct {
	ID                string   `json:"id"`
	EventID           string   `json:"event_id,omitempty"`
	Type              string   `json:"type,omitempty"`
	Priority          string   `json:"priority"`
	Status            string   `json:"status"`
	Occurrence        string   `json:"occurrence,omitempty"`
	ActionTaken       string   `json:"action_taken,omitempty"`
	CallsignFrom      string   `json:"callsign_from,omitempty"`
	CallsignTo        string   `json:"callsign_to,omitempty"`
	Reference         string   `json:"reference,omitempty"`
	Confidence        float64  `json:"confidence"`
	Signals           []string `json:"signals,omitempty"`
	Reasoning         string   `json:"reasoning,omitempty"`
	ClassifierVersion int      `json:"classifier_version"`
	OccurredAt        string   `json:"occurred_at"`
	CreatedAt         string   `json:"created_at"`
}

// SearchInput ranks logged incidents against a free-text query.
// A blank query returns the filtered set unranked
type SearchInput struct {
	Query     string  `json:"query,omitempty" validate:"omitempty,max=500" example:"medical emergency main stage"`
	EventID   string  `json:"event_id,omitempty" validate:"omitempty,max=100" example:"EVT-2026-014"`
	Type      string  `json:"type,omitempty" validate:"omitempty,max=100" example:"Medical"`
	Priority  string  `json:"priority,omitempty" validate:"omitempty,oneof=urgent high medium low" example:"urgent"`
	Status    string  `json:"status,omitempty" validate:"omitempty,oneof=open closed" example:"open"`
	From      string  `json:"from,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00" example:"2026-08-30T00:00:00Z"`
	To        string  `json:"to,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00" example:"2026-08-31T00:00:00Z"`
	Limit     int     `json:"limit,omitempty" validate:"omitempty,min=1,max=100" example:"20"`
	Threshold float64 `json:"threshold,omitempty" validate:"omitempty,gt=0,lte=1" example:"0.3"`
}

// SearchHit is one ranked result
type SearchHit struct {
	Incident   Incident `json:"incident"`
	Score      float64  `json:"score" example:"0.82"`
	Highlights []string `json:"highlights,omitempty"`
	Reason     string   `json:"relevance_reason" example:"exact phrase match in incident narrative"`
}

// RecentInput lists incidents newest first with optional filters
type RecentInput struct {
	EventID  string `json:"event_id,omitempty" validate:"omitempty,max=100" example:"EVT-2026-014"`
	Type     string `json:"type,omitempty" validate:"omitempty,max=100" example:"Medical"`
	Priority string `json:"priority,omitempty" validate:"omitempty,oneof=urgent high medium low" example:"urgent"`
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=open closed" example:"open"`
	From     string `json:"from,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00" example:"2026-08-30T00:00:00Z"`
	To       string `json:"to,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00" example:"2026-08-31T00:00:00Z"`
	Limit    int    `json:"limit,omitempty" validate:"omitempty,min=1,max=500" example:"50"`
}

// GetInput fetches one incident by id
type GetInput struct {
	ID string `json:"id" validate:"required,uuid4" example:"7b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"`
}
