package grpc

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	authorizationKey = "authorization"
	requestIDKey     = "x-request-id"

	healthServicePrefix = "/grpc.health.v1.Health/"
)

type requestIDContextKey struct{}

// RequestIDFromContext returns the request id assigned by LoggingInterceptor
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}

// AuthInterceptor returns a gRPC unary server interceptor that validates
// the authorization token from request metadata.
// If the token is missing or invalid, it returns status.Unauthenticated.
// Health checks are not authenticated so orchestrators can probe the server.
func AuthInterceptor(validToken string) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if strings.HasPrefix(info.FullMethod, healthServicePrefix) {
			return handler(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		authHeaders := md.Get(authorizationKey)
		if len(authHeaders) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing authorization header")
		}

		if subtle.ConstantTimeCompare([]byte(authHeaders[0]), []byte(validToken)) != 1 {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		return handler(ctx, req)
	}
}

// LoggingInterceptor returns a gRPC unary server interceptor that tags each call
// with a request id and logs its method, status code and duration.
// An x-request-id sent by the caller is reused, otherwise a new one is generated.
func LoggingInterceptor(logf func(format string, args ...any)) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		requestID := incomingRequestID(ctx)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx = context.WithValue(ctx, requestIDContextKey{}, requestID)

		// No transport stream when the interceptor is invoked directly
		if grpc.ServerTransportStreamFromContext(ctx) != nil {
			if err := grpc.SetHeader(ctx, metadata.Pairs(requestIDKey, requestID)); err != nil && logf != nil {
				logf("request_id=%s method=%s set header: %v", requestID, info.FullMethod, err)
			}
		}

		start := time.Now()
		resp, err := handler(ctx, req)

		if logf != nil {
			logf("request_id=%s method=%s code=%s duration=%s",
				requestID, info.FullMethod, status.Code(err), time.Since(start))
		}

		return resp, err
	}
}

func incomingRequestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	ids := md.Get(requestIDKey)
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}
