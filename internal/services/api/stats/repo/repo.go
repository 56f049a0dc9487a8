// Package repo provides postgres access for stats
package repo

import (
	"context"

	"incommand/internal/modkit/repokit"
)

// Repo is the minimal persistence surface for stats
type Repo interface {
	ByType(ctx context.Context, start, end, priority string) ([]RowByType, error)
}

// RowByType represents a stats row by incident type and priority
type RowByType struct {
	Type     string
	Priority string
	Count    int64
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) ByType(ctx context.Context, start, end, priority string) ([]RowByType, error) {
	const sql = `
select coalesce(nullif(type, ''), 'unspecified') as type, priority, count(1) as n
from incidents
where occurred_at::date between $1 and $2
and ($3 = '' or priority = $3)
group by 1, priority
order by n desc, type asc
`
	rows, err := r.q.Query(ctx, sql, start, end, priority)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowByType
	for rows.Next() {
		var rr RowByType
		if err := rows.Scan(&rr.Type, &rr.Priority, &rr.Count); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
