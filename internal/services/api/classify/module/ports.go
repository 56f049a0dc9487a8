package module

import (
	"context"

	classifydom "incommand/internal/services/api/classify/domain"
	classifysvc "incommand/internal/services/api/classify/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptClassifyPort adapts the classify service to the domain port interface
type adaptClassifyPort struct{ svc classifysvc.Service }

// Classify implements the domain ServicePort interface
func (a adaptClassifyPort) Classify(ctx context.Context, in classifydom.ClassifyInput) (classifydom.ClassifyResult, error) {
	return a.svc.Classify(ctx, in)
}

// ClassifyBatch implements the domain ServicePort interface
func (a adaptClassifyPort) ClassifyBatch(ctx context.Context, in classifydom.BatchInput) ([]classifydom.ClassifyResult, error) {
	return a.svc.ClassifyBatch(ctx, in)
}
