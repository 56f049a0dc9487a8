// Package http provides http transport for classify
package http

import (
	stdhttp "net/http"

	"incommand/internal/modkit/httpkit"
	"incommand/internal/services/api/classify/domain"
	svc "incommand/internal/services/api/classify/service"
)

// Register mounts classify endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ClassifyInput](r, "/", h.classify)
	httpkit.PostJSON[domain.BatchInput](r, "/batch", h.classifyBatch)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /classify Classify classifyOne
// @Summary Classify one free-text report into a priority tier
// @Tags Classify
// @Accept json
// @Produce json
// @Param payload body domain.ClassifyInput true "Report"
// @Success 200 {object} domain.ClassifyResult "ok"
// @Router /classify [post]
func (h *handlers) classify(r *stdhttp.Request, in domain.ClassifyInput) (any, error) {
	return h.svc.Classify(r.Context(), in)
}

// swagger:route POST /classify/batch Classify classifyBatch
// @Summary Classify a batch of reports in one call
// @Tags Classify
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Reports"
// @Success 200 {array} domain.ClassifyResult "ok"
// @Router /classify/batch [post]
func (h *handlers) classifyBatch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	return h.svc.ClassifyBatch(r.Context(), in)
}
