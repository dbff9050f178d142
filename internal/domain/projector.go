package domain

import (
	"context"
)

// Projector defines the interface for running projections
// Implemented in-process by the projection usecase and remotely by the gRPC client
type Projector interface {
	// Project validates input and returns the year-by-year trajectory
	// If startYear is nil, the implementation picks the current calendar year
	Project(ctx context.Context, input ProjectionInput, startYear *int) (*ProjectionResult, error)
}
