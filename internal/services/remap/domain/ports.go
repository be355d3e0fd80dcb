package domain

import "context"

// ServicePort is consumed by handlers and the CLI
type ServicePort interface {
	Remap(ctx context.Context, in RemapInput) (RemapOutput, error)
	Solve(ctx context.Context, in SolveInput) (SolveOutput, error)
}
