// Package service contains incidents API workflows
package service

import (
	"context"
	"time"

	"incommand/internal/core/relevance"
	perr "incommand/internal/platform/errors"
	"incommand/internal/services/api/incidents/domain"
	incdom "incommand/internal/services/incidents/domain"
)

// Service defines the service contract for the incidents API
type Service interface{ domain.ServicePort }

// searchFetchLimit is how many candidate rows the scorer ranks; the SQL
// filters cut the corpus first, relevance ranking happens in memory
const searchFetchLimit = 500

// Svc implements the Service interface
type Svc struct {
	rec    incdom.RecorderPort
	rd     incdom.ReaderPort
	scorer *relevance.Scorer
}

// New creates a new incidents API service
func New(rec incdom.RecorderPort, rd incdom.ReaderPort, scorer *relevance.Scorer) *Svc {
	if rec == nil || rd == nil {
		panic("incidents api service requires recorder and reader ports")
	}
	if scorer == nil {
		panic("incidents api service requires a relevance scorer")
	}
	return &Svc{rec: rec, rd: rd, scorer: scorer}
}

// Create logs one incident; the classifier assigns priority on write
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Incident, error) {
	occurredAt, err := parseTime(in.OccurredAt)
	if err != nil {
		return domain.Incident{}, err
	}
	inc, err := s.rec.Create(ctx, incdom.CreateInput{
		EventID:      in.EventID,
		Type:         in.Type,
		Occurrence:   in.Occurrence,
		ActionTaken:  in.ActionTaken,
		CallsignFrom: in.CallsignFrom,
		CallsignTo:   in.CallsignTo,
		Reference:    in.Reference,
		OccurredAt:   occurredAt,
	})
	if err != nil {
		return domain.Incident{}, err
	}
	return toDTO(inc), nil
}

// Search fetches the filtered corpus and ranks it against the query
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) ([]domain.SearchHit, error) {
	from, err := parseTime(in.From)
	if err != nil {
		return nil, err
	}
	to, err := parseTime(in.To)
	if err != nil {
		return nil, err
	}

	rows, err := s.rd.List(ctx, incdom.ListInput{
		EventID:  in.EventID,
		Type:     in.Type,
		Priority: in.Priority,
		Status:   in.Status,
		Since:    from,
		Until:    to,
		Limit:    searchFetchLimit,
	})
	if err != nil {
		return nil, err
	}

	records := make([]relevance.Record, 0, len(rows))
	byID := make(map[string]incdom.Incident, len(rows))
	for _, inc := range rows {
		records = append(records, toRecord(inc))
		byID[inc.ID] = inc
	}

	hits := s.scorer.Search(records, relevance.Options{
		Query:     in.Query,
		Limit:     in.Limit,
		Threshold: in.Threshold,
	})

	out := make([]domain.SearchHit, 0, len(hits))
	for _, h := range hits {
		out = append(out, domain.SearchHit{
			Incident:   toDTO(byID[h.Record.ID]),
			Score:      h.Score,
			Highlights: h.Highlights,
			Reason:     h.Reason,
		})
	}
	return out, nil
}

// Recent lists incidents newest first
func (s *Svc) Recent(ctx context.Context, in domain.RecentInput) ([]domain.Incident, error) {
	from, err := parseTime(in.From)
	if err != nil {
		return nil, err
	}
	to, err := parseTime(in.To)
	if err != nil {
		return nil, err
	}
	rows, err := s.rd.List(ctx, incdom.ListInput{
		EventID:  in.EventID,
		Type:     in.Type,
		Priority: in.Priority,
		Status:   in.Status,
		Since:    from,
		Until:    to,
		Limit:    in.Limit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Incident, 0, len(rows))
	for _, inc := range rows {
		out = append(out, toDTO(inc))
	}
	return out, nil
}

// Get fetches one incident by id
func (s *Svc) Get(ctx context.Context, in domain.GetInput) (domain.Incident, error) {
	inc, err := s.rd.Get(ctx, in.ID)
	if err != nil {
		return domain.Incident{}, err
	}
	return toDTO(inc), nil
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, perr.New(perr.ErrorCodeValidation, "invalid timestamp, want RFC3339")
	}
	return t, nil
}

func toRecord(inc incdom.Incident) relevance.Record {
	return relevance.Record{
		ID:           inc.ID,
		EventID:      inc.EventID,
		Type:         inc.Type,
		Priority:     inc.Priority,
		Status:       inc.Status,
		Occurrence:   inc.Occurrence,
		ActionTaken:  inc.ActionTaken,
		CallsignFrom: inc.CallsignFrom,
		CallsignTo:   inc.CallsignTo,
		Reference:    inc.Reference,
		OccurredAt:   inc.OccurredAt,
	}
}

func toDTO(inc incdom.Incident) domain.Incident {
	return domain.Incident{
		ID:                inc.ID,
		EventID:           inc.EventID,
		Type:              inc.Type,
		Priority:          inc.Priority,
		Status:            inc.Status,
		Occurrence:        inc.Occurrence,
		ActionTaken:       inc.ActionTaken,
		CallsignFrom:      inc.CallsignFrom,
		CallsignTo:        inc.CallsignTo,
		Reference:         inc.Reference,
		Confidence:        inc.Confidence,
		Signals:           inc.Signals,
		Reasoning:         inc.Reasoning,
		ClassifierVersion: inc.ClassifierVersion,
		OccurredAt:        inc.OccurredAt.UTC().Format(time.RFC3339),
		CreatedAt:         inc.CreatedAt.UTC().Format(time.RFC3339),
	}
}
