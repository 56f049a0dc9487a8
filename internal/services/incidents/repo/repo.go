// Package repo provides the incidents repository implementation
package repo

import (
	"context"
	"fmt"
	"strings"

	"incommand/internal/modkit/repokit"
	"incommand/internal/services/incidents/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the incidents repository
type Storage interface {
	Insert(ctx context.Context, inc domain.Incident) error
	List(ctx context.Context, in domain.ListInput, hardLimit int) ([]domain.Incident, error)
	Get(ctx context.Context, id string) (domain.Incident, error)
}

const incidentColumns = `
	i.id::text,
	i.event_id,
	i.incident_type,
	i.priority,
	i.status,
	i.occurrence,
	COALESCE(i.action_taken, ''),
	COALESCE(i.callsign_from, ''),
	COALESCE(i.callsign_to, ''),
	COALESCE(i.reference, ''),
	i.confidence,
	i.signals,
	i.reasoning,
	i.classifier_version,
	i.occurred_at,
	i.created_at`

// Insert implements Storage
func (s *pg) Insert(ctx context.Context, inc domain.Incident) error {
	const sql = `INSERT INTO incidents
		(id, event_id, incident_type, priority, status, occurrence, action_taken,
		callsign_from, callsign_to, reference, confidence, signals, reasoning,
		classifier_version, occurred_at, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		ON CONFLICT (id) DO NOTHING`
	_, err := s.q.Exec(ctx, sql,
		inc.ID, inc.EventID, inc.Type, inc.Priority, inc.Status,
		inc.Occurrence, inc.ActionTaken,
		inc.CallsignFrom, inc.CallsignTo, inc.Reference,
		inc.Confidence, inc.Signals, inc.Reasoning,
		inc.ClassifierVersion, inc.OccurredAt, inc.CreatedAt,
	)
	return err
}

// List implements Storage
func (s *pg) List(ctx context.Context, in domain.ListInput, hardLimit int) ([]domain.Incident, error) {
	// Dynamic WHERE with numbered args
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString("SELECT" + incidentColumns + "\nFROM incidents i\nWHERE 1=1\n")

	if !in.Since.IsZero() {
		sb.WriteString("  AND i.occurred_at >= " + arg(in.Since) + "\n")
	}
	if !in.Until.IsZero() {
		sb.WriteString("  AND i.occurred_at < " + arg(in.Until) + "\n")
	}
	if in.EventID != "" {
		sb.WriteString("  AND i.event_id = " + arg(in.EventID) + "\n")
	}
	if in.Type != "" {
		sb.WriteString("  AND i.incident_type = " + arg(in.Type) + "\n")
	}
	if in.Priority != "" {
		sb.WriteString("  AND i.priority = " + arg(in.Priority) + "\n")
	}
	if in.Status != "" {
		sb.WriteString("  AND i.status = " + arg(in.Status) + "\n")
	}

	sb.WriteString("ORDER BY i.occurred_at DESC, i.id DESC\nLIMIT " + arg(hardLimit))

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Incident, 0, hardLimit)
	for rows.Next() {
		inc, err := scanIncident(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inc)
	}
	return out, rows.Err()
}

// Get implements Storage
func (s *pg) Get(ctx context.Context, id string) (domain.Incident, error) {
	row := s.q.QueryRow(ctx, "SELECT"+incidentColumns+"\nFROM incidents i\nWHERE i.id = $1::uuid", id)
	return scanIncident(row)
}

type scanner interface{ Scan(dest ...any) error }

func scanIncident(r scanner) (domain.Incident, error) {
	var inc domain.Incident
	err := r.Scan(
		&inc.ID, &inc.EventID, &inc.Type, &inc.Priority, &inc.Status,
		&inc.Occurrence, &inc.ActionTaken,
		&inc.CallsignFrom, &inc.CallsignTo, &inc.Reference,
		&inc.Confidence, &inc.Signals, &inc.Reasoning,
		&inc.ClassifierVersion, &inc.OccurredAt, &inc.CreatedAt,
	)
	return inc, err
}
