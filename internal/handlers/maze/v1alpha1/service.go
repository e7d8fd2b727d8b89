package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "mazeapi.v1alpha1.MazeService"

// Full method names
const (
	MazeService_CreateMaze_FullMethodName = "/" + ServiceName + "/CreateMaze"
	MazeService_GetMaze_FullMethodName    = "/" + ServiceName + "/GetMaze"
	MazeService_DeleteMaze_FullMethodName = "/" + ServiceName + "/DeleteMaze"
	MazeService_ListMazes_FullMethodName  = "/" + ServiceName + "/ListMazes"
	MazeService_Simulate_FullMethodName   = "/" + ServiceName + "/Simulate"
)

// MazeServiceServer is the server API for MazeService. Requests and
// responses are google.protobuf.Struct documents shaped like the JSON
// request and response types in this package.
type MazeServiceServer interface {
	CreateMaze(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetMaze(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteMaze(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListMazes(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Simulate(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedMazeServiceServer can be embedded to have forward
// compatible implementations
type UnimplementedMazeServiceServer struct{}

func (UnimplementedMazeServiceServer) CreateMaze(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateMaze not implemented")
}

func (UnimplementedMazeServiceServer) GetMaze(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetMaze not implemented")
}

func (UnimplementedMazeServiceServer) DeleteMaze(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteMaze not implemented")
}

func (UnimplementedMazeServiceServer) ListMazes(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListMazes not implemented")
}

func (UnimplementedMazeServiceServer) Simulate(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Simulate not implemented")
}

// RegisterMazeServiceServer registers srv with the gRPC server
func RegisterMazeServiceServer(s grpc.ServiceRegistrar, srv MazeServiceServer) {
	s.RegisterService(&MazeService_ServiceDesc, srv)
}

type unaryMethod func(MazeServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(MazeServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(MazeServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// MazeService_ServiceDesc is the grpc.ServiceDesc for MazeService
var MazeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MazeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateMaze",
			Handler:    unaryHandler(MazeService_CreateMaze_FullMethodName, MazeServiceServer.CreateMaze),
		},
		{
			MethodName: "GetMaze",
			Handler:    unaryHandler(MazeService_GetMaze_FullMethodName, MazeServiceServer.GetMaze),
		},
		{
			MethodName: "DeleteMaze",
			Handler:    unaryHandler(MazeService_DeleteMaze_FullMethodName, MazeServiceServer.DeleteMaze),
		},
		{
			MethodName: "ListMazes",
			Handler:    unaryHandler(MazeService_ListMazes_FullMethodName, MazeServiceServer.ListMazes),
		},
		{
			MethodName: "Simulate",
			Handler:    unaryHandler(MazeService_Simulate_FullMethodName, MazeServiceServer.Simulate),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mazeapi/v1alpha1/maze.proto",
}

// MazeServiceClient is the client API for MazeService
type MazeServiceClient interface {
	CreateMaze(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetMaze(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DeleteMaze(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListMazes(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Simulate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type mazeServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewMazeServiceClient wraps a client connection
func NewMazeServiceClient(cc grpc.ClientConnInterface) MazeServiceClient {
	return &mazeServiceClient{cc}
}

func (c *mazeServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mazeServiceClient) CreateMaze(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MazeService_CreateMaze_FullMethodName, in, opts)
}

func (c *mazeServiceClient) GetMaze(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MazeService_GetMaze_FullMethodName, in, opts)
}

func (c *mazeServiceClient) DeleteMaze(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MazeService_DeleteMaze_FullMethodName, in, opts)
}

func (c *mazeServiceClient) ListMazes(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MazeService_ListMazes_FullMethodName, in, opts)
}

func (c *mazeServiceClient) Simulate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MazeService_Simulate_FullMethodName, in, opts)
}
