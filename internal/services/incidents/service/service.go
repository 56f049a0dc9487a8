// Package service provides the incidents service implementation
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"incommand/internal/core/normalize"
	"incommand/internal/core/priority"
	"incommand/internal/modkit/repokit"
	perr "incommand/internal/platform/errors"
	auditdom "incommand/internal/services/audit/domain"
	"incommand/internal/services/incidents/domain"
	"incommand/internal/services/incidents/repo"
)

// Config for the incidents service
type Config struct {
	// HardLimit is the maximum allowed limit per List call; defaults to 500 if <=0
	HardLimit int
}

// Service implements domain.RecorderPort and domain.ReaderPort
type Service struct {
	DB         repokit.TxRunner
	Binder     repokit.Binder[repo.Storage]
	Norm       *normalize.Normalizer
	Classifier *priority.Classifier
	Audit      auditdom.WriterPort // optional, nil disables the audit trail
	Cfg        Config
}

// New constructs a new incidents service
func New(
	db repokit.TxRunner,
	b repokit.Binder[repo.Storage],
	cls *priority.Classifier,
	audit auditdom.WriterPort,
	cfg Config,
) *Service {
	if db == nil {
		panic("incidents.Service requires a non nil TxRunner")
	}
	if cls == nil {
		panic("incidents.Service requires a classifier")
	}
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 500
	}
	return &Service{
		DB: db, Binder: b, Norm: normalize.New(),
		Classifier: cls, Audit: audit, Cfg: cfg,
	}
}

// Create implements domain.RecorderPort
func (s *Service) Create(ctx context.Context, in domain.CreateInput) (domain.Incident, error) {
	occurrence := s.Norm.Normalize(in.Occurrence)
	if occurrence == "" && in.Type == "" {
		return domain.Incident{}, perr.New(perr.ErrorCodeValidation, "incident needs occurrence text or an incident type")
	}

	m := s.Classifier.Classify(occurrence, in.Type)

	occurredAt := in.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	inc := domain.Incident{
		ID:                uuid.NewString(),
		EventID:           in.EventID,
		Type:              in.Type,
		Priority:          string(m.Priority),
		Status:            "open",
		Occurrence:        occurrence,
		ActionTaken:       s.Norm.Normalize(in.ActionTaken),
		CallsignFrom:      in.CallsignFrom,
		CallsignTo:        in.CallsignTo,
		Reference:         in.Reference,
		Confidence:        m.Confidence,
		Signals:           m.Signals,
		Reasoning:         m.Reasoning,
		ClassifierVersion: m.ClassifierVersion,
		OccurredAt:        occurredAt,
		CreatedAt:         time.Now().UTC(),
	}

	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		return s.Binder.Bind(q).Insert(ctx, inc)
	})
	if err != nil {
		return domain.Incident{}, perr.FromPostgres(err, "insert incident")
	}

	// the audit trail is best effort and never blocks incident logging
	if s.Audit != nil {
		_ = s.Audit.WriteOne(ctx, auditdom.Event{
			OccurredAt:        inc.CreatedAt,
			IncidentID:        inc.ID,
			EventID:           inc.EventID,
			Priority:          inc.Priority,
			Confidence:        inc.Confidence,
			SignalCount:       len(inc.Signals),
			Source:            "incident",
			ClassifierVersion: inc.ClassifierVersion,
		})
	}

	return inc, nil
}

// List implements domain.ReaderPort
func (s *Service) List(ctx context.Context, in domain.ListInput) ([]domain.Incident, error) {
	limit := in.Limit
	if limit <= 0 || limit > s.Cfg.HardLimit {
		limit = s.Cfg.HardLimit
	}

	var rows []domain.Incident
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		rows, err = s.Binder.Bind(q).List(ctx, in, limit)
		return err
	})
	if err != nil {
		return nil, perr.FromPostgres(err, "list incidents")
	}
	return rows, nil
}

// Get implements domain.ReaderPort
func (s *Service) Get(ctx context.Context, id string) (domain.Incident, error) {
	var inc domain.Incident
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		inc, err = s.Binder.Bind(q).Get(ctx, id)
		return err
	})
	if err != nil {
		return domain.Incident{}, perr.FromPostgres(err, "get incident")
	}
	return inc, nil
}
