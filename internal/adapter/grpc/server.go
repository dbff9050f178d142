package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	projectorv1 "github.com/simaogato/nestegg-backend/internal/adapter/grpc/projector/v1"
	"github.com/simaogato/nestegg-backend/internal/domain"
)

// Server implements the ProjectionService gRPC server
type Server struct {
	projectorv1.UnimplementedProjectionServiceServer

	ProjectionService domain.Projector
}

// NewServer creates a new gRPC server instance
func NewServer(projectionService domain.Projector) *Server {
	return &Server{
		ProjectionService: projectionService,
	}
}

// Project handles the Project RPC
func (s *Server) Project(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	input, startYear, err := protoToProjectionInput(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	result, err := s.ProjectionService.Project(ctx, input, startYear)
	if err != nil {
		return nil, mapError(err)
	}

	return domainResultToProto(result), nil
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	// Validation messages are user-facing and pass through verbatim
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return status.Error(codes.InvalidArgument, validationErr.Message)
	}

	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", err.Error())
}
