package grpc

import (
	"context"
	"fmt"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	projectorv1 "github.com/simaogato/nestegg-backend/internal/adapter/grpc/projector/v1"
	"github.com/simaogato/nestegg-backend/internal/domain"
)

var _ domain.Projector = (*Client)(nil)

// Client calls a remote ProjectionService
type Client struct {
	conn   *grpclib.ClientConn
	client projectorv1.ProjectionServiceClient
	token  string
}

// NewClient creates a client for the server at addr
// The connection is established lazily on the first call
func NewClient(addr, token string) (*Client, error) {
	conn, err := grpclib.NewClient(addr, grpclib.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC client for %s: %w", addr, err)
	}

	return &Client{
		conn:   conn,
		client: projectorv1.NewProjectionServiceClient(conn),
		token:  token,
	}, nil
}

// Close closes the underlying connection
func (c *Client) Close() error {
	return c.conn.Close()
}

// Project runs a projection remotely
// Validation failures come back as *domain.ValidationError with the server's message
func (c *Client) Project(ctx context.Context, input domain.ProjectionInput, startYear *int) (*domain.ProjectionResult, error) {
	if c.token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, authorizationKey, c.token)
	}

	resp, err := c.client.Project(ctx, projectionInputToProto(input, startYear))
	if err != nil {
		return nil, statusToError(err)
	}

	result, err := protoToProjectionResult(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to decode projection response: %w", err)
	}

	return result, nil
}

// statusToError converts gRPC status errors back to domain errors where possible
func statusToError(err error) error {
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.InvalidArgument {
		return err
	}

	for _, known := range []*domain.ValidationError{
		domain.ErrRetirementAgeNotAfterCurrentAge,
		domain.ErrReturnBelowFloor,
	} {
		if st.Message() == known.Message {
			return known
		}
	}

	return &domain.ValidationError{Message: st.Message()}
}
