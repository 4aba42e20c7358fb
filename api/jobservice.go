// Package api is the playrunner.v1.JobService wire contract. Messages are
// protobuf well-known types carrying JSON-shaped documents, so the service
// needs no generated code.
package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "playrunner.v1.JobService"

const (
	MethodCreateJob       = "/" + ServiceName + "/CreateJob"
	MethodGetJob          = "/" + ServiceName + "/GetJob"
	MethodListJobs        = "/" + ServiceName + "/ListJobs"
	MethodStartJob        = "/" + ServiceName + "/StartJob"
	MethodCancelJob       = "/" + ServiceName + "/CancelJob"
	MethodPasswordsNeeded = "/" + ServiceName + "/PasswordsNeeded"
	MethodWatchJob        = "/" + ServiceName + "/WatchJob"
)

// JobServiceServer is the server API for JobService.
type JobServiceServer interface {
	CreateJob(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetJob(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ListJobs(context.Context, *structpb.Struct) (*structpb.Struct, error)
	StartJob(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CancelJob(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
	PasswordsNeeded(context.Context, *structpb.Struct) (*structpb.Struct, error)
	WatchJob(*wrapperspb.StringValue, grpc.ServerStreamingServer[structpb.Struct]) error
}

// JobServiceClient is the client API for JobService.
type JobServiceClient interface {
	CreateJob(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetJob(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListJobs(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	StartJob(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	CancelJob(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	PasswordsNeeded(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	WatchJob(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (grpc.ServerStreamingClient[structpb.Struct], error)
}

func RegisterJobServiceServer(s grpc.ServiceRegistrar, srv JobServiceServer) {
	s.RegisterService(&JobServiceDesc, srv)
}

// JobServiceDesc is the grpc.ServiceDesc for JobService.
var JobServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*JobServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateJob", Handler: unaryHandler(MethodCreateJob, JobServiceServer.CreateJob)},
		{MethodName: "GetJob", Handler: unaryHandler(MethodGetJob, JobServiceServer.GetJob)},
		{MethodName: "ListJobs", Handler: unaryHandler(MethodListJobs, JobServiceServer.ListJobs)},
		{MethodName: "StartJob", Handler: unaryHandler(MethodStartJob, JobServiceServer.StartJob)},
		{MethodName: "CancelJob", Handler: unaryHandler(MethodCancelJob, JobServiceServer.CancelJob)},
		{MethodName: "PasswordsNeeded", Handler: unaryHandler(MethodPasswordsNeeded, JobServiceServer.PasswordsNeeded)},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchJob",
			Handler:       watchJobHandler,
			ServerStreams: true,
		},
	},
	Metadata: "playrunner/v1/job_service",
}

// unaryHandler adapts one JobServiceServer method to a grpc.MethodHandler,
// running it through the server interceptor when one is installed.
func unaryHandler[Req any, Resp any](fullMethod string, call func(JobServiceServer, context.Context, *Req) (Resp, error)) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(JobServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(JobServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func watchJobHandler(srv interface{}, stream grpc.ServerStream) error {
	m := new(wrapperspb.StringValue)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(JobServiceServer).WatchJob(m, &grpc.GenericServerStream[wrapperspb.StringValue, structpb.Struct]{ServerStream: stream})
}

type jobServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewJobServiceClient(cc grpc.ClientConnInterface) JobServiceClient {
	return &jobServiceClient{cc: cc}
}

func invoke[Req any, Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in *Req, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobServiceClient) CreateJob(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct, structpb.Struct](ctx, c.cc, MethodCreateJob, in, opts)
}

func (c *jobServiceClient) GetJob(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[wrapperspb.StringValue, structpb.Struct](ctx, c.cc, MethodGetJob, in, opts)
}

func (c *jobServiceClient) ListJobs(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct, structpb.Struct](ctx, c.cc, MethodListJobs, in, opts)
}

func (c *jobServiceClient) StartJob(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct, structpb.Struct](ctx, c.cc, MethodStartJob, in, opts)
}

func (c *jobServiceClient) CancelJob(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	return invoke[wrapperspb.StringValue, wrapperspb.BoolValue](ctx, c.cc, MethodCancelJob, in, opts)
}

func (c *jobServiceClient) PasswordsNeeded(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct, structpb.Struct](ctx, c.cc, MethodPasswordsNeeded, in, opts)
}

func (c *jobServiceClient) WatchJob(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (grpc.ServerStreamingClient[structpb.Struct], error) {
	stream, err := c.cc.NewStream(ctx, &JobServiceDesc.Streams[0], MethodWatchJob, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[wrapperspb.StringValue, structpb.Struct]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}
