package service

import (
	"context"
	"errors"
	"testing"

	"incommand/internal/core/lexicon"
	"incommand/internal/core/priority"
	"incommand/internal/core/version"
	"incommand/internal/services/api/classify/domain"
	auditdom "incommand/internal/services/audit/domain"
)

type memAudit struct {
	events []auditdom.Event
	err    error
}

func (m *memAudit) WriteBatch(_ context.Context, xs []auditdom.Event) error {
	m.events = append(m.events, xs...)
	return m.err
}

func (m *memAudit) WriteOne(_ context.Context, x auditdom.Event) error {
	m.events = append(m.events, x)
	return m.err
}

func newTestSvc(t *testing.T, audit auditdom.WriterPort) *Svc {
	t.Helper()
	p, err := lexicon.Load()
	if err != nil {
		t.Fatalf("load pack: %v", err)
	}
	return New(priority.New(p, version.Classifier), audit)
}

func TestClassify_AuditsAdhocEvent(t *testing.T) {
	t.Parallel()

	audit := &memAudit{}
	svc := newTestSvc(t, audit)

	res, err := svc.Classify(context.Background(), domain.ClassifyInput{
		Text: "caller reports a life threatening situation at gate 2",
	})
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if res.Priority != "urgent" {
		t.Fatalf("priority = %q, want urgent", res.Priority)
	}
	if res.ClassifierVersion != version.Classifier {
		t.Fatalf("classifier version = %d", res.ClassifierVersion)
	}
	if len(audit.events) != 1 {
		t.Fatalf("audit events = %d, want 1", len(audit.events))
	}
	ev := audit.events[0]
	if ev.Source != "adhoc" || ev.IncidentID != "" || ev.Priority != "urgent" {
		t.Fatalf("unexpected audit event: %+v", ev)
	}
	if ev.SignalCount != len(res.Signals) {
		t.Fatalf("signal count = %d, want %d", ev.SignalCount, len(res.Signals))
	}
}

func TestClassify_EmptyInputDefaultsToMedium(t *testing.T) {
	t.Parallel()

	svc := newTestSvc(t, nil)
	res, err := svc.Classify(context.Background(), domain.ClassifyInput{})
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if res.Priority != "medium" || res.Confidence != 0.3 {
		t.Fatalf("got %q/%v, want medium/0.3", res.Priority, res.Confidence)
	}
}

func TestClassify_AuditFailureDoesNotBlock(t *testing.T) {
	t.Parallel()

	audit := &memAudit{err: errors.New("ch down")}
	svc := newTestSvc(t, audit)

	if _, err := svc.Classify(context.Background(), domain.ClassifyInput{Text: "fire at the stage"}); err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
}

func TestClassifyBatch_OrderAndSingleWrite(t *testing.T) {
	t.Parallel()

	audit := &memAudit{}
	svc := newTestSvc(t, audit)

	out, err := svc.ClassifyBatch(context.Background(), domain.BatchInput{Items: []domain.ClassifyInput{
		{Text: "caller reports a life threatening situation at gate 2"},
		{Text: "routine update, all clear", Type: "Sit Rep"},
	}})
	if err != nil {
		t.Fatalf("ClassifyBatch returned error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if out[0].Priority != "urgent" || out[1].Priority != "low" {
		t.Fatalf("priorities = %q/%q, want urgent/low", out[0].Priority, out[1].Priority)
	}
	if len(audit.events) != 2 {
		t.Fatalf("audit events = %d, want 2", len(audit.events))
	}
	if audit.events[0].Priority != "urgent" || audit.events[1].Priority != "low" {
		t.Fatalf("audit order does not match input order: %+v", audit.events)
	}
}
