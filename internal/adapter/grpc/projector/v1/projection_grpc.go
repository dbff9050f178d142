// Package projectorv1 describes the projector.v1.ProjectionService gRPC API.
//
// Messages are google.protobuf.Struct values so the service needs no generated
// message types; field names are listed below as constants.
// The wire contract is written down in proto/projector/v1/projection.proto.
package projectorv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName = "projector.v1.ProjectionService"

	ProjectionService_Project_FullMethodName = "/projector.v1.ProjectionService/Project"
)

// Request fields
const (
	FieldCurrentAge          = "current_age"
	FieldRetirementAge       = "retirement_age"
	FieldCurrentSavings      = "current_savings"
	FieldAnnualContribution  = "annual_contribution"
	FieldAnnualReturnPercent = "annual_return_percent"
	FieldStartYear           = "start_year"
)

// Response fields
const (
	FieldRows               = "rows"
	FieldFinalBalance       = "final_balance"
	FieldTotalContributions = "total_contributions"
	FieldTotalGrowth        = "total_growth"

	FieldRowAge          = "age"
	FieldRowYear         = "year"
	FieldRowStartBalance = "start_balance"
	FieldRowContribution = "contribution"
	FieldRowGrowth       = "growth"
	FieldRowEndBalance   = "end_balance"
)

// ProjectionServiceClient is the client API for ProjectionService.
type ProjectionServiceClient interface {
	Project(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type projectionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProjectionServiceClient(cc grpc.ClientConnInterface) ProjectionServiceClient {
	return &projectionServiceClient{cc}
}

func (c *projectionServiceClient) Project(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ProjectionService_Project_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ProjectionServiceServer is the server API for ProjectionService.
// Implementations must embed UnimplementedProjectionServiceServer.
type ProjectionServiceServer interface {
	Project(context.Context, *structpb.Struct) (*structpb.Struct, error)
	mustEmbedUnimplementedProjectionServiceServer()
}

// UnimplementedProjectionServiceServer must be embedded to have forward compatible implementations.
type UnimplementedProjectionServiceServer struct{}

func (UnimplementedProjectionServiceServer) Project(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, errUnimplemented("Project")
}

func (UnimplementedProjectionServiceServer) mustEmbedUnimplementedProjectionServiceServer() {}

func RegisterProjectionServiceServer(s grpc.ServiceRegistrar, srv ProjectionServiceServer) {
	s.RegisterService(&ProjectionService_ServiceDesc, srv)
}

func _ProjectionService_Project_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProjectionServiceServer).Project(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProjectionService_Project_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProjectionServiceServer).Project(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// ProjectionService_ServiceDesc is the grpc.ServiceDesc for ProjectionService.
var ProjectionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ProjectionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Project",
			Handler:    _ProjectionService_Project_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "projector/v1/projection.proto",
}
