package v1alpha1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/dreamshade/recruit-api/internal/grpccodec"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "dreamshade.recruit.v1alpha1.RecruitService"

// Full method names
const (
	GenerateRecruitMethod = "/" + ServiceName + "/GenerateRecruit"
	GenerateBatchMethod   = "/" + ServiceName + "/GenerateBatch"
	GetRecruitMethod      = "/" + ServiceName + "/GetRecruit"
	ListRecruitsMethod    = "/" + ServiceName + "/ListRecruits"
	DeleteRecruitMethod   = "/" + ServiceName + "/DeleteRecruit"
	GetRecruitStatsMethod = "/" + ServiceName + "/GetRecruitStats"
	SetRankMethod         = "/" + ServiceName + "/SetRank"
	SetLevelMethod        = "/" + ServiceName + "/SetLevel"
)

// RecruitServiceServer is the server API for the recruit service
type RecruitServiceServer interface {
	GenerateRecruit(context.Context, *GenerateRecruitRequest) (*GenerateRecruitResponse, error)
	GenerateBatch(context.Context, *GenerateBatchRequest) (*GenerateBatchResponse, error)
	GetRecruit(context.Context, *GetRecruitRequest) (*GetRecruitResponse, error)
	ListRecruits(context.Context, *ListRecruitsRequest) (*ListRecruitsResponse, error)
	DeleteRecruit(context.Context, *DeleteRecruitRequest) (*DeleteRecruitResponse, error)
	GetRecruitStats(context.Context, *GetRecruitStatsRequest) (*GetRecruitStatsResponse, error)
	SetRank(context.Context, *SetRankRequest) (*SetRankResponse, error)
	SetLevel(context.Context, *SetLevelRequest) (*SetLevelResponse, error)
}

// RecruitServiceDesc describes the recruit service. Messages are JSON encoded,
// so callers must use the grpccodec content subtype.
var RecruitServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RecruitServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GenerateRecruit", Handler: unary(GenerateRecruitMethod, RecruitServiceServer.GenerateRecruit)},
		{MethodName: "GenerateBatch", Handler: unary(GenerateBatchMethod, RecruitServiceServer.GenerateBatch)},
		{MethodName: "GetRecruit", Handler: unary(GetRecruitMethod, RecruitServiceServer.GetRecruit)},
		{MethodName: "ListRecruits", Handler: unary(ListRecruitsMethod, RecruitServiceServer.ListRecruits)},
		{MethodName: "DeleteRecruit", Handler: unary(DeleteRecruitMethod, RecruitServiceServer.DeleteRecruit)},
		{MethodName: "GetRecruitStats", Handler: unary(GetRecruitStatsMethod, RecruitServiceServer.GetRecruitStats)},
		{MethodName: "SetRank", Handler: unary(SetRankMethod, RecruitServiceServer.SetRank)},
		{MethodName: "SetLevel", Handler: unary(SetLevelMethod, RecruitServiceServer.SetLevel)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dreamshade/recruit/v1alpha1/recruit.proto",
}

// RegisterRecruitServiceServer registers srv on s
func RegisterRecruitServiceServer(s grpc.ServiceRegistrar, srv RecruitServiceServer) {
	s.RegisterService(&RecruitServiceDesc, srv)
}

// unary adapts a typed server method to a grpc.MethodHandler
func unary[Req, Resp any](
	fullMethod string,
	call func(RecruitServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(RecruitServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(RecruitServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// RecruitServiceClient is the client API for the recruit service
type RecruitServiceClient interface {
	GenerateRecruit(ctx context.Context, in *GenerateRecruitRequest, opts ...grpc.CallOption) (*GenerateRecruitResponse, error)
	GenerateBatch(ctx context.Context, in *GenerateBatchRequest, opts ...grpc.CallOption) (*GenerateBatchResponse, error)
	GetRecruit(ctx context.Context, in *GetRecruitRequest, opts ...grpc.CallOption) (*GetRecruitResponse, error)
	ListRecruits(ctx context.Context, in *ListRecruitsRequest, opts ...grpc.CallOption) (*ListRecruitsResponse, error)
	DeleteRecruit(ctx context.Context, in *DeleteRecruitRequest, opts ...grpc.CallOption) (*DeleteRecruitResponse, error)
	GetRecruitStats(ctx context.Context, in *GetRecruitStatsRequest, opts ...grpc.CallOption) (*GetRecruitStatsResponse, error)
	SetRank(ctx context.Context, in *SetRankRequest, opts ...grpc.CallOption) (*SetRankResponse, error)
	SetLevel(ctx context.Context, in *SetLevelRequest, opts ...grpc.CallOption) (*SetLevelResponse, error)
}

type recruitServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewRecruitServiceClient creates a client that sends JSON encoded calls over cc
func NewRecruitServiceClient(cc grpc.ClientConnInterface) RecruitServiceClient {
	return &recruitServiceClient{cc: cc}
}

func invoke[Resp any](
	ctx context.Context,
	cc grpc.ClientConnInterface,
	method string,
	in any,
	opts []grpc.CallOption,
) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpccodec.CallOption()}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recruitServiceClient) GenerateRecruit(
	ctx context.Context, in *GenerateRecruitRequest, opts ...grpc.CallOption,
) (*GenerateRecruitResponse, error) {
	return invoke[GenerateRecruitResponse](ctx, c.cc, GenerateRecruitMethod, in, opts)
}

func (c *recruitServiceClient) GenerateBatch(
	ctx context.Context, in *GenerateBatchRequest, opts ...grpc.CallOption,
) (*GenerateBatchResponse, error) {
	return invoke[GenerateBatchResponse](ctx, c.cc, GenerateBatchMethod, in, opts)
}

func (c *recruitServiceClient) GetRecruit(
	ctx context.Context, in *GetRecruitRequest, opts ...grpc.CallOption,
) (*GetRecruitResponse, error) {
	return invoke[GetRecruitResponse](ctx, c.cc, GetRecruitMethod, in, opts)
}

func (c *recruitServiceClient) ListRecruits(
	ctx context.Context, in *ListRecruitsRequest, opts ...grpc.CallOption,
) (*ListRecruitsResponse, error) {
	return invoke[ListRecruitsResponse](ctx, c.cc, ListRecruitsMethod, in, opts)
}

func (c *recruitServiceClient) DeleteRecruit(
	ctx context.Context, in *DeleteRecruitRequest, opts ...grpc.CallOption,
) (*DeleteRecruitResponse, error) {
	return invoke[DeleteRecruitResponse](ctx, c.cc, DeleteRecruitMethod, in, opts)
}

func (c *recruitServiceClient) GetRecruitStats(
	ctx context.Context, in *GetRecruitStatsRequest, opts ...grpc.CallOption,
) (*GetRecruitStatsResponse, error) {
	return invoke[GetRecruitStatsResponse](ctx, c.cc, GetRecruitStatsMethod, in, opts)
}

func (c *recruitServiceClient) SetRank(
	ctx context.Context, in *SetRankRequest, opts ...grpc.CallOption,
) (*SetRankResponse, error) {
	return invoke[SetRankResponse](ctx, c.cc, SetRankMethod, in, opts)
}

func (c *recruitServiceClient) SetLevel(
	ctx context.Context, in *SetLevelRequest, opts ...grpc.CallOption,
) (*SetLevelResponse, error) {
	return invoke[SetLevelResponse](ctx, c.cc, SetLevelMethod, in, opts)
}
