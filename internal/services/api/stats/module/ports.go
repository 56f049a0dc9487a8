package module

import (
	"context"

	"incommand/internal/services/api/stats/domain"
	statssvc "incommand/internal/services/api/stats/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptStatsPort struct{ svc statssvc.Service }

// ByPriority returns classification counts by priority and day
func (a adaptStatsPort) ByPriority(ctx context.Context, in domain.ByPriorityInput) ([]domain.ByPriorityRow, error) {
	return a.svc.ByPriority(ctx, in)
}

// ByType returns incident counts by type and priority
func (a adaptStatsPort) ByType(ctx context.Context, in domain.ByTypeInput) ([]domain.ByTypeRow, error) {
	return a.svc.ByType(ctx, in)
}
