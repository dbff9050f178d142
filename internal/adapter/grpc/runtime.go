package grpc

import (
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	projectorv1 "github.com/simaogato/nestegg-backend/internal/adapter/grpc/projector/v1"
	"github.com/simaogato/nestegg-backend/internal/domain"
)

// NewGRPCServer builds a gRPC server with the ProjectionService and the health
// service registered, both reporting SERVING.
// Calls are logged through logf and authenticated against apiToken.
func NewGRPCServer(projectionService domain.Projector, apiToken string, logf func(string, ...any)) (*grpclib.Server, *health.Server) {
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			LoggingInterceptor(logf),
			AuthInterceptor(apiToken),
		),
	)

	projectorv1.RegisterProjectionServiceServer(grpcServer, NewServer(projectionService))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(projectorv1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return grpcServer, healthServer
}
