package domain

import "context"

// WriterPort records classification events
type WriterPort interface {
	WriteBatch(ctx context.Context, xs []Event) error
	WriteOne(ctx context.Context, x Event) error
}

// QueryPort aggregates the recorded trail
type QueryPort interface {
	ByPriorityDay(ctx context.Context, w Window) ([]PriorityDayRow, error)
}
