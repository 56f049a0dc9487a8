// Package http provides http transport for the incidents API
package http

import (
	stdhttp "net/http"

	"incommand/internal/modkit/httpkit"
	"incommand/internal/services/api/incidents/domain"
	svc "incommand/internal/services/api/incidents/service"
)

// Register mounts incidents endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.PostJSON[domain.SearchInput](r, "/search", h.search)
	httpkit.PostJSON[domain.RecentInput](r, "/recent", h.recent)
	httpkit.PostJSON[domain.GetInput](r, "/get", h.get)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /incidents Incidents incidentsCreate
// @Summary Log an incident; priority is assigned by the classifier
// @Tags Incidents
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Incident"
// @Success 200 {object} domain.Incident "ok"
// @Router /incidents [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// swagger:route POST /incidents/search Incidents incidentsSearch
// @Summary Rank logged incidents against a free-text query
// @Tags Incidents
// @Accept json
// @Produce json
// @Param payload body domain.SearchInput true "Query"
// @Success 200 {array} domain.SearchHit "ok"
// @Router /incidents/search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Search(r.Context(), in)
}

// swagger:route POST /incidents/recent Incidents incidentsRecent
// @Summary List incidents newest first
// @Tags Incidents
// @Accept json
// @Produce json
// @Param payload body domain.RecentInput true "Filters"
// @Success 200 {array} domain.Incident "ok"
// @Router /incidents/recent [post]
func (h *handlers) recent(r *stdhttp.Request, in domain.RecentInput) (any, error) {
	return h.svc.Recent(r.Context(), in)
}

// swagger:route POST /incidents/get Incidents incidentsGet
// @Summary Fetch one incident by id
// @Tags Incidents
// @Accept json
// @Produce json
// @Param payload body domain.GetInput true "ID"
// @Success 200 {object} domain.Incident "ok"
// @Router /incidents/get [post]
func (h *handlers) get(r *stdhttp.Request, in domain.GetInput) (any, error) {
	return h.svc.Get(r.Context(), in)
}
