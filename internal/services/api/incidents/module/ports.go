package module

import (
	"context"

	apidom "incommand/internal/services/api/incidents/domain"
	incidentssvc "incommand/internal/services/api/incidents/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptIncidentsPort adapts the incidents API service to the domain port interface
type adaptIncidentsPort struct{ svc incidentssvc.Service }

// Create implements the domain ServicePort interface
func (a adaptIncidentsPort) Create(ctx context.Context, in apidom.CreateInput) (apidom.Incident, error) {
	return a.svc.Create(ctx, in)
}

// Search implements the domain ServicePort interface
func (a adaptIncidentsPort) Search(ctx context.Context, in apidom.SearchInput) ([]apidom.SearchHit, error) {
	return a.svc.Search(ctx, in)
}

// Recent implements the domain ServicePort interface
func (a adaptIncidentsPort) Recent(ctx context.Context, in apidom.RecentInput) ([]apidom.Incident, error) {
	return a.svc.Recent(ctx, in)
}

// Get implements the domain ServicePort interface
func (a adaptIncidentsPort) Get(ctx context.Context, in apidom.GetInput) (apidom.Incident, error) {
	return a.svc.Get(ctx, in)
}
