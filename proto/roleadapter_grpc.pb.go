// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: roleadapter.proto

package proto

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	RoleAdapterService_Execute_FullMethodName = "/orchid.role.v1.RoleAdapterService/Execute"
)

// RoleAdapterServiceClient is the client API for RoleAdapterService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// RoleAdapterService is the external model-backed executor for routed
// steps. The orchestrator is transport-agnostic about what serves it.
type RoleAdapterServiceClient interface {
	Execute(ctx context.Context, in *ExecuteRequest, opts ...grpc.CallOption) (*ExecuteResponse, error)
}

type roleAdapterServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRoleAdapterServiceClient(cc grpc.ClientConnInterface) RoleAdapterServiceClient {
	return &roleAdapterServiceClient{cc}
}

func (c *roleAdapterServiceClient) Execute(ctx context.Context, in *ExecuteRequest, opts ...grpc.CallOption) (*ExecuteResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExecuteResponse)
	err := c.cc.Invoke(ctx, RoleAdapterService_Execute_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RoleAdapterServiceServer is the server API for RoleAdapterService service.
// All implementations must embed UnimplementedRoleAdapterServiceServer
// for forward compatibility.
//
// RoleAdapterService is the external model-backed executor for routed
// steps. The orchestrator is transport-agnostic about what serves it.
type RoleAdapterServiceServer interface {
	Execute(context.Context, *ExecuteRequest) (*ExecuteResponse, error)
	mustEmbedUnimplementedRoleAdapterServiceServer()
}

// UnimplementedRoleAdapterServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedRoleAdapterServiceServer struct{}

func (UnimplementedRoleAdapterServiceServer) Execute(context.Context, *ExecuteRequest) (*ExecuteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Execute not implemented")
}
func (UnimplementedRoleAdapterServiceServer) mustEmbedUnimplementedRoleAdapterServiceServer() {}
func (UnimplementedRoleAdapterServiceServer) testEmbeddedByValue()                            {}

// UnsafeRoleAdapterServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to RoleAdapterServiceServer will
// result in compilation errors.
type UnsafeRoleAdapterServiceServer interface {
	mustEmbedUnimplementedRoleAdapterServiceServer()
}

func RegisterRoleAdapterServiceServer(s grpc.ServiceRegistrar, srv RoleAdapterServiceServer) {
	// If the following call panics, it indicates UnimplementedRoleAdapterServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&RoleAdapterService_ServiceDesc, srv)
}

func _RoleAdapterService_Execute_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExecuteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoleAdapterServiceServer).Execute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoleAdapterService_Execute_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RoleAdapterServiceServer).Execute(ctx, req.(*ExecuteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RoleAdapterService_ServiceDesc is the grpc.ServiceDesc for RoleAdapterService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var RoleAdapterService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "orchid.role.v1.RoleAdapterService",
	HandlerType: (*RoleAdapterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Execute",
			Handler:    _RoleAdapterService_Execute_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "roleadapter.proto",
}
