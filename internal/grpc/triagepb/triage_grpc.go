package triagepb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FailureTriageService is the fully qualified gRPC service name.
const FailureTriageService = "triage.v1.FailureTriage"

// FailureTriageClient is the client API for the FailureTriage service.
type FailureTriageClient interface {
	ReportFailure(ctx context.Context, in *ReportFailureRequest, opts ...grpc.CallOption) (*ClassifiedFailure, error)
	GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error)
	GetPatterns(ctx context.Context, in *GetPatternsRequest, opts ...grpc.CallOption) (*GetPatternsResponse, error)
	Health(ctx context.Context, in *HealthRequest, opts ...grpc.CallOption) (*HealthResponse, error)
}

type failureTriageClient struct {
	cc grpc.ClientConnInterface
}

// NewFailureTriageClient returns a FailureTriage client over cc.
func NewFailureTriageClient(cc grpc.ClientConnInterface) FailureTriageClient {
	return &failureTriageClient{cc: cc}
}

func (c *failureTriageClient) ReportFailure(ctx context.Context, in *ReportFailureRequest, opts ...grpc.CallOption) (*ClassifiedFailure, error) {
	out := new(ClassifiedFailure)
	if err := c.cc.Invoke(ctx, "/triage.v1.FailureTriage/ReportFailure", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *failureTriageClient) GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error) {
	out := new(GetStatsResponse)
	if err := c.cc.Invoke(ctx, "/triage.v1.FailureTriage/GetStats", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *failureTriageClient) GetPatterns(ctx context.Context, in *GetPatternsRequest, opts ...grpc.CallOption) (*GetPatternsResponse, error) {
	out := new(GetPatternsResponse)
	if err := c.cc.Invoke(ctx, "/triage.v1.FailureTriage/GetPatterns", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *failureTriageClient) Health(ctx context.Context, in *HealthRequest, opts ...grpc.CallOption) (*HealthResponse, error) {
	out := new(HealthResponse)
	if err := c.cc.Invoke(ctx, "/triage.v1.FailureTriage/Health", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// FailureTriageServer is the server API for the FailureTriage service.
// Implementations should embed UnimplementedFailureTriageServer for forward
// compatibility.
type FailureTriageServer interface {
	ReportFailure(ctx context.Context, in *ReportFailureRequest) (*ClassifiedFailure, error)
	GetStats(ctx context.Context, in *GetStatsRequest) (*GetStatsResponse, error)
	GetPatterns(ctx context.Context, in *GetPatternsRequest) (*GetPatternsResponse, error)
	Health(ctx context.Context, in *HealthRequest) (*HealthResponse, error)
}

// UnimplementedFailureTriageServer returns codes.Unimplemented for all methods.
type UnimplementedFailureTriageServer struct{}

func (UnimplementedFailureTriageServer) ReportFailure(context.Context, *ReportFailureRequest) (*ClassifiedFailure, error) {
	return nil, status.Error(codes.Unimplemented, "method ReportFailure not implemented")
}

func (UnimplementedFailureTriageServer) GetStats(context.Context, *GetStatsRequest) (*GetStatsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStats not implemented")
}

func (UnimplementedFailureTriageServer) GetPatterns(context.Context, *GetPatternsRequest) (*GetPatternsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPatterns not implemented")
}

func (UnimplementedFailureTriageServer) Health(context.Context, *HealthRequest) (*HealthResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Health not implemented")
}

// RegisterFailureTriageServer registers srv on s.
func RegisterFailureTriageServer(s grpc.ServiceRegistrar, srv FailureTriageServer) {
	s.RegisterService(&FailureTriage_ServiceDesc, srv)
}

func reportFailureHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReportFailureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FailureTriageServer).ReportFailure(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/triage.v1.FailureTriage/ReportFailure",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FailureTriageServer).ReportFailure(ctx, req.(*ReportFailureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getStatsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FailureTriageServer).GetStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/triage.v1.FailureTriage/GetStats",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FailureTriageServer).GetStats(ctx, req.(*GetStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getPatternsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPatternsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FailureTriageServer).GetPatterns(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/triage.v1.FailureTriage/GetPatterns",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FailureTriageServer).GetPatterns(ctx, req.(*GetPatternsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func healthHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(HealthRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FailureTriageServer).Health(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/triage.v1.FailureTriage/Health",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FailureTriageServer).Health(ctx, req.(*HealthRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FailureTriage_ServiceDesc is the grpc.ServiceDesc for the FailureTriage
// service.
var FailureTriage_ServiceDesc = grpc.ServiceDesc{
	ServiceName: FailureTriageService,
	HandlerType: (*FailureTriageServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ReportFailure", Handler: reportFailureHandler},
		{MethodName: "GetStats", Handler: getStatsHandler},
		{MethodName: "GetPatterns", Handler: getPatternsHandler},
		{MethodName: "Health", Handler: healthHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/triage/v1/triage.proto",
}
