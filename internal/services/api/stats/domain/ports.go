package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	ByPriority(ctx context.Context, in ByPriorityInput) ([]ByPriorityRow, error)
	ByType(ctx context.Context, in ByTypeInput) ([]ByTypeRow, error)
}
