package domain

import "context"

// ServicePort defines the service contract for classify
type ServicePort interface {
	Classify(ctx context.Context, in ClassifyInput) (ClassifyResult, error)
	ClassifyBatch(ctx context.Context, in BatchInput) ([]ClassifyResult, error)
}
