// Package repo provides the clickhouse-backed audit repository
package repo

import (
	"context"

	"incommand/internal/platform/store"
	"incommand/internal/services/audit/domain"
)

const table = "classification_events"

// CH is the clickhouse repository for classification events
type CH struct {
	db store.Clickhouse
}

// NewCH constructs the repo over the store clickhouse seam
func NewCH(db store.Clickhouse) *CH {
	if db == nil {
		panic("audit repo requires a clickhouse seam")
	}
	return &CH{db: db}
}

// WriteBatch inserts events in column order of the table
func (r *CH) WriteBatch(ctx context.Context, xs []domain.Event) error {
	if len(xs) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(xs))
	for _, x := range xs {
		rows = append(rows, []any{
			x.OccurredAt,
			x.IncidentID,
			x.EventID,
			x.Priority,
			x.Confidence,
			uint16(x.SignalCount),
			x.Source,
			uint16(x.ClassifierVersion),
		})
	}
	return r.db.Insert(ctx, table, rows)
}

// ByPriorityDay aggregates classifications per day and priority
func (r *CH) ByPriorityDay(ctx context.Context, w domain.Window) ([]domain.PriorityDayRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			toStartOfDay(occurred_at) AS day,
			priority,
			count() AS n,
			avg(confidence) AS avg_confidence,
			classifier_version
		FROM `+table+`
		WHERE occurred_at >= ? AND occurred_at < ?
		GROUP BY day, priority, classifier_version
		ORDER BY day ASC, priority ASC`,
		w.Since, w.Until,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PriorityDayRow
	for rows.Next() {
		var (
			row domain.PriorityDayRow
			ver uint16
		)
		if err := rows.Scan(&row.Day, &row.Priority, &row.Count, &row.AvgConfidence, &ver); err != nil {
			return nil, err
		}
		row.ClassifierVersion = int(ver)
		out = append(out, row)
	}
	return out, rows.Err()
}
