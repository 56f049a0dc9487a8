// Package service contains classify workflows
package service

import (
	"context"
	"time"

	"incommand/internal/core/normalize"
	"incommand/internal/core/priority"
	"incommand/internal/services/api/classify/domain"
	auditdom "incommand/internal/services/audit/domain"
)

// Service defines the service contract for classify
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	cls   *priority.Classifier
	norm  *normalize.Normalizer
	audit auditdom.WriterPort // optional, nil disables the trail
}

// New creates a new classify service
func New(cls *priority.Classifier, audit auditdom.WriterPort) *Svc {
	if cls == nil {
		panic("classify.Service requires a classifier")
	}
	return &Svc{cls: cls, norm: normalize.New(), audit: audit}
}

// Classify runs one report through the priority classifier
func (s *Svc) Classify(ctx context.Context, in domain.ClassifyInput) (domain.ClassifyResult, error) {
	m := s.cls.Classify(s.norm.Normalize(in.Text), in.Type)
	res := toResult(m)

	// adhoc classifications are traced but never persisted as incidents
	if s.audit != nil {
		_ = s.audit.WriteOne(ctx, auditdom.Event{
			OccurredAt:        time.Now().UTC(),
			Priority:          res.Priority,
			Confidence:        res.Confidence,
			SignalCount:       len(res.Signals),
			Source:            "adhoc",
			ClassifierVersion: res.ClassifierVersion,
		})
	}
	return res, nil
}

// ClassifyBatch classifies each item in order; output index matches input
func (s *Svc) ClassifyBatch(ctx context.Context, in domain.BatchInput) ([]domain.ClassifyResult, error) {
	out := make([]domain.ClassifyResult, 0, len(in.Items))
	events := make([]auditdom.Event, 0, len(in.Items))
	now := time.Now().UTC()
	for _, item := range in.Items {
		m := s.cls.Classify(s.norm.Normalize(item.Text), item.Type)
		res := toResult(m)
		out = append(out, res)
		events = append(events, auditdom.Event{
			OccurredAt:        now,
			Priority:          res.Priority,
			Confidence:        res.Confidence,
			SignalCount:       len(res.Signals),
			Source:            "adhoc",
			ClassifierVersion: res.ClassifierVersion,
		})
	}
	if s.audit != nil {
		_ = s.audit.WriteBatch(ctx, events)
	}
	return out, nil
}

func toResult(m priority.Match) domain.ClassifyResult {
	return domain.ClassifyResult{
		Priority:          string(m.Priority),
		Confidence:        m.Confidence,
		Signals:           m.Signals,
		Reasoning:         m.Reasoning,
		ClassifierVersion: m.ClassifierVersion,
	}
}
