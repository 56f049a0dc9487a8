// Package service contains stats workflows
package service

import (
	"context"
	"time"

	"incommand/internal/modkit/repokit"
	perr "incommand/internal/platform/errors"
	"incommand/internal/services/api/stats/domain"
	"incommand/internal/services/api/stats/repo"
	auditdom "incommand/internal/services/audit/domain"
)

// Service defines the stats service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the stats service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	audit  auditdom.QueryPort
}

// New constructs a stats service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], audit auditdom.QueryPort) *Svc {
	if db == nil {
		panic("stats.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("stats.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, audit: audit}
}

// ByPriority returns classification counts by day and priority from the audit trail
func (s *Svc) ByPriority(ctx context.Context, in domain.ByPriorityInput) ([]domain.ByPriorityRow, error) {
	if s.audit == nil {
		return nil, perr.New(perr.ErrorCodeUnavailable, "classification audit trail is not enabled")
	}
	w, err := parseWindow(in.Range)
	if err != nil {
		return nil, err
	}
	rows, err := s.audit.ByPriorityDay(ctx, w)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ByPriorityRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.ByPriorityRow{
			Day:               r.Day.Format("2006-01-02"),
			Priority:          r.Priority,
			Count:             int64(r.Count),
			AvgConfidence:     r.AvgConfidence,
			ClassifierVersion: r.ClassifierVersion,
		})
	}
	return out, nil
}

// ByType returns logged incident counts by type and priority
func (s *Svc) ByType(ctx context.Context, in domain.ByTypeInput) ([]domain.ByTypeRow, error) {
	if _, err := parseWindow(in.Range); err != nil {
		return nil, err
	}
	rows, err := s.Repo.ByType(ctx, in.Range.Start, in.Range.End, in.Priority)
	if err != nil {
		return nil, perr.FromPostgres(err, "stats by type")
	}
	out := make([]domain.ByTypeRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.ByTypeRow{Type: r.Type, Priority: r.Priority, Count: r.Count})
	}
	return out, nil
}

// parseWindow turns a date range into a half open window [start, end+1d)
func parseWindow(tr domain.TimeRange) (auditdom.Window, error) {
	start, err := time.Parse("2006-01-02", tr.Start)
	if err != nil {
		return auditdom.Window{}, perr.New(perr.ErrorCodeValidation, "invalid start date")
	}
	end, err := time.Parse("2006-01-02", tr.End)
	if err != nil {
		return auditdom.Window{}, perr.New(perr.ErrorCodeValidation, "invalid end date")
	}
	if end.Before(start) {
		return auditdom.Window{}, perr.New(perr.ErrorCodeValidation, "end date before start date")
	}
	return auditdom.Window{Since: start, Until: end.AddDate(0, 0, 1)}, nil
}
