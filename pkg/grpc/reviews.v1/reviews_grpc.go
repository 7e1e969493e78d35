package reviews_v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	AuthService_Login_FullMethodName = "/reviews.v1.AuthService/Login"

	ReviewService_CreateEmployee_FullMethodName      = "/reviews.v1.ReviewService/CreateEmployee"
	ReviewService_ListEmployees_FullMethodName       = "/reviews.v1.ReviewService/ListEmployees"
	ReviewService_UpdateEmployee_FullMethodName      = "/reviews.v1.ReviewService/UpdateEmployee"
	ReviewService_DeleteEmployee_FullMethodName      = "/reviews.v1.ReviewService/DeleteEmployee"
	ReviewService_CreateReview_FullMethodName        = "/reviews.v1.ReviewService/CreateReview"
	ReviewService_ListReviews_FullMethodName         = "/reviews.v1.ReviewService/ListReviews"
	ReviewService_GetReview_FullMethodName           = "/reviews.v1.ReviewService/GetReview"
	ReviewService_UpdateReview_FullMethodName        = "/reviews.v1.ReviewService/UpdateReview"
	ReviewService_DeleteReview_FullMethodName        = "/reviews.v1.ReviewService/DeleteReview"
	ReviewService_AssignReviewer_FullMethodName      = "/reviews.v1.ReviewService/AssignReviewer"
	ReviewService_ListReviewers_FullMethodName       = "/reviews.v1.ReviewService/ListReviewers"
	ReviewService_ListAssignedReviews_FullMethodName = "/reviews.v1.ReviewService/ListAssignedReviews"
	ReviewService_SubmitFeedback_FullMethodName      = "/reviews.v1.ReviewService/SubmitFeedback"
)

// AdminMethods are the ReviewService methods restricted to the admin role.
var AdminMethods = map[string]bool{
	ReviewService_CreateEmployee_FullMethodName: true,
	ReviewService_ListEmployees_FullMethodName:  true,
	ReviewService_UpdateEmployee_FullMethodName: true,
	ReviewService_DeleteEmployee_FullMethodName: true,
	ReviewService_CreateReview_FullMethodName:   true,
	ReviewService_ListReviews_FullMethodName:    true,
	ReviewService_GetReview_FullMethodName:      true,
	ReviewService_UpdateReview_FullMethodName:   true,
	ReviewService_DeleteReview_FullMethodName:   true,
	ReviewService_AssignReviewer_FullMethodName: true,
	ReviewService_ListReviewers_FullMethodName:  true,
}

// PublicMethods need no bearer token.
var PublicMethods = map[string]bool{
	AuthService_Login_FullMethodName: true,
}

type unaryCall func(srv interface{}, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryCall) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv, ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv, ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func invoke(ctx context.Context, cc grpc.ClientConnInterface, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// AuthService

type AuthServiceServer interface {
	Login(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type UnimplementedAuthServiceServer struct{}

func (UnimplementedAuthServiceServer) Login(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Login not implemented")
}

var AuthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "reviews.v1.AuthService",
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Login",
			Handler: unaryHandler(AuthService_Login_FullMethodName, func(srv interface{}, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return srv.(AuthServiceServer).Login(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "reviews/v1/reviews.proto",
}

func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&AuthService_ServiceDesc, srv)
}

type AuthServiceClient interface {
	Login(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type authServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthServiceClient(cc grpc.ClientConnInterface) AuthServiceClient {
	return &authServiceClient{cc}
}

func (c *authServiceClient) Login(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, AuthService_Login_FullMethodName, in, opts...)
}

// ReviewService

type ReviewServiceServer interface {
	CreateEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListEmployees(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateReview(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListReviews(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetReview(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateReview(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteReview(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AssignReviewer(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListReviewers(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListAssignedReviews(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SubmitFeedback(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func reviewMethod(name string, call func(ReviewServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: unaryHandler("/reviews.v1.ReviewService/"+name, func(srv interface{}, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
			return call(srv.(ReviewServiceServer), ctx, in)
		}),
	}
}

var ReviewService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "reviews.v1.ReviewService",
	HandlerType: (*ReviewServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		reviewMethod("CreateEmployee", ReviewServiceServer.CreateEmployee),
		reviewMethod("ListEmployees", ReviewServiceServer.ListEmployees),
		reviewMethod("UpdateEmployee", ReviewServiceServer.UpdateEmployee),
		reviewMethod("DeleteEmployee", ReviewServiceServer.DeleteEmployee),
		reviewMethod("CreateReview", ReviewServiceServer.CreateReview),
		reviewMethod("ListReviews", ReviewServiceServer.ListReviews),
		reviewMethod("GetReview", ReviewServiceServer.GetReview),
		reviewMethod("UpdateReview", ReviewServiceServer.UpdateReview),
		reviewMethod("DeleteReview", ReviewServiceServer.DeleteReview),
		reviewMethod("AssignReviewer", ReviewServiceServer.AssignReviewer),
		reviewMethod("ListReviewers", ReviewServiceServer.ListReviewers),
		reviewMethod("ListAssignedReviews", ReviewServiceServer.ListAssignedReviews),
		reviewMethod("SubmitFeedback", ReviewServiceServer.SubmitFeedback),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "reviews/v1/reviews.proto",
}

func RegisterReviewServiceServer(s grpc.ServiceRegistrar, srv ReviewServiceServer) {
	s.RegisterService(&ReviewService_ServiceDesc, srv)
}

// ReviewServiceClient calls ReviewService methods by full name, since every method
// shares the Struct in/out signature.
type ReviewServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReviewServiceClient(cc grpc.ClientConnInterface) *ReviewServiceClient {
	return &ReviewServiceClient{cc}
}

func (c *ReviewServiceClient) Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, method, in, opts...)
}

// CallMessage encodes req, invokes method and decodes the reply into resp.
func (c *ReviewServiceClient) CallMessage(ctx context.Context, method string, req, resp any, opts ...grpc.CallOption) error {
	in, err := Encode(req)
	if err != nil {
		return err
	}
	out, err := c.Call(ctx, method, in, opts...)
	if err != nil {
		return err
	}
	return Decode(out, resp)
}
