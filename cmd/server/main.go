package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"

	grpcadapter "github.com/simaogato/nestegg-backend/internal/adapter/grpc"
	"github.com/simaogato/nestegg-backend/internal/config"
	"github.com/simaogato/nestegg-backend/internal/usecase/projection"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize Services (Use Cases)
	projectionService := projection.NewProjectionService()

	// 3. Start gRPC Server
	grpcServer, healthServer := grpcadapter.NewGRPCServer(projectionService, cfg.APIToken, log.Printf)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.GRPCAddr, err)
	}

	// Start server in a goroutine
	go func() {
		log.Printf("gRPC server listening on %s", lis.Addr())
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer, healthServer, cfg.ShutdownTimeout)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server.
// In-flight calls get up to timeout to finish before the server is stopped hard.
func waitForShutdown(grpcServer *grpclib.Server, healthServer *health.Server, timeout time.Duration) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	// Every service reports NOT_SERVING from here on
	healthServer.Shutdown()

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		log.Println("gRPC server stopped")
	case <-time.After(timeout):
		log.Printf("Graceful stop exceeded %s, forcing shutdown", timeout)
		grpcServer.Stop()
	}
}
