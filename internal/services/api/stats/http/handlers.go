// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"

	"incommand/internal/modkit/httpkit"
	"incommand/internal/services/api/stats/domain"
	svc "incommand/internal/services/api/stats/service"
)

// Register mounts stats endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// classification buckets by priority and day
	httpkit.PostJSON[domain.ByPriorityInput](r, "/priority", h.byPriority)

	// incident buckets by type
	httpkit.PostJSON[domain.ByTypeInput](r, "/type", h.byType)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /stats/priority Stats statsByPriority
// @Summary Classification counts by priority and day
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.ByPriorityInput true "Query"
// @Success 200 {array} domain.ByPriorityRow "ok"
// @Router /stats/priority [post]
func (h *handlers) byPriority(r *stdhttp.Request, in domain.ByPriorityInput) (any, error) {
	return h.svc.ByPriority(r.Context(), in)
}

// swagger:route POST /stats/type Stats statsByType
// @Summary Incident counts by type and priority
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.ByTypeInput true "Query"
// @Success 200 {array} domain.ByTypeRow "ok"
// @Router /stats/type [post]
func (h *handlers) byType(r *stdhttp.Request, in domain.ByTypeInput) (any, error) {
	return h.svc.ByType(r.Context(), in)
}
