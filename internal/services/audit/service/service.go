// Package service provides the audit service implementation
package service

import (
	"context"
	"time"

	dom "incommand/internal/services/audit/domain"
	"incommand/internal/services/audit/repo"
)

// Config for the audit service
type Config struct {
	// MaxWindowHours caps aggregation windows; 0 means unbounded
	MaxWindowHours int
}

// Service implements domain.WriterPort and domain.QueryPort directly against the CH repo
type Service struct {
	Storage *repo.CH
	Cfg     Config
}

// New constructs a new audit service with a required CH repo
func New(storage *repo.CH, cfg Config) *Service {
	if storage == nil {
		panic("audit service requires a CH repo")
	}
	return &Service{Storage: storage, Cfg: cfg}
}

// WriteBatch implements domain.WriterPort
func (s *Service) WriteBatch(ctx context.Context, xs []dom.Event) error {
	return s.Storage.WriteBatch(ctx, xs)
}

// WriteOne implements domain.WriterPort
func (s *Service) WriteOne(ctx context.Context, x dom.Event) error {
	return s.Storage.WriteBatch(ctx, []dom.Event{x})
}

// ByPriorityDay implements domain.QueryPort
func (s *Service) ByPriorityDay(ctx context.Context, w dom.Window) ([]dom.PriorityDayRow, error) {
	w = s.clampWindow(w)
	return s.Storage.ByPriorityDay(ctx, w)
}

func (s *Service) clampWindow(w dom.Window) dom.Window {
	if s.Cfg.MaxWindowHours <= 0 {
		return w
	}
	max := time.Duration(s.Cfg.MaxWindowHours) * time.Hour
	if w.Until.Sub(w.Since) > max {
		w.Since = w.Until.Add(-max)
	}
	return w
}
