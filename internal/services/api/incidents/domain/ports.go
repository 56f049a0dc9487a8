package domain

import (
	"context"

	incdom "incommand/internal/services/incidents/domain"
)

// ServicePort defines the service contract for the incidents API
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (Incident, error)
	Search(ctx context.Context, in SearchInput) ([]SearchHit, error)
	Recent(ctx context.Context, in RecentInput) ([]Incident, error)
	Get(ctx context.Context, in GetInput) (Incident, error)
}

// Ports are dependencies injected into the incidents API module
type Ports struct {
	Recorder incdom.RecorderPort // required
	Reader   incdom.ReaderPort   // required
}
