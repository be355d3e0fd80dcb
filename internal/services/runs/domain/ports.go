package domain

import "context"

// RecorderPort persists runs; the remap module consumes it
type RecorderPort interface {
	Record(ctx context.Context, in NewRun) (string, error)
}

// QueryPort reads run history
type QueryPort interface {
	Get(ctx context.Context, id string) (Run, error)
	Recent(ctx context.Context, in RecentInput) ([]Run, error)
	Stages(ctx context.Context, id string) ([]StageTrace, error)
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	RecorderPort
	QueryPort
}
