package grpcserver

import (
	"context"

	api "github.com/avk-dev/netguard/internal/grpc/api"
	"github.com/avk-dev/netguard/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func loggerInterceptor(logger logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		logger.Info("rpc %s started", info.FullMethod)
		defer logger.Info("rpc %s finished", info.FullMethod)
		logger.Debug("request data: %v", req)
		res, err := handler(ctx, req)
		if err != nil {
			logger.Error("error on rpc %s: %v", info.FullMethod, err)
		}
		return res, err
	}
}

func reqValidatorInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		switch info.FullMethod {
		case api.NetGuard_Screen_FullMethodName:
			reqMsg := req.(*api.ScreenRequest)
			if reqMsg.GetAddr() == "" || reqMsg.GetCallerId() == "" {
				return nil, status.Errorf(
					codes.InvalidArgument, "invalid request: missed required fields (addr, caller_id)",
				)
			}

		case api.NetGuard_Resolve_FullMethodName:
			reqMsg := req.(*api.ResolveRequest)
			if reqMsg.GetAddr() == "" {
				return nil, status.Errorf(
					codes.InvalidArgument, "invalid request: missed required field (addr)",
				)
			}

		case api.NetGuard_AddAllowRule_FullMethodName,
			api.NetGuard_AddDenyRule_FullMethodName,
			api.NetGuard_RemoveAllowRule_FullMethodName,
			api.NetGuard_RemoveDenyRule_FullMethodName:
			reqMsg := req.(*api.RuleData)
			if reqMsg.GetCidr() == "" {
				return nil, status.Errorf(
					codes.InvalidArgument, "invalid request: missed required field (cidr)",
				)
			}

		case api.NetGuard_ListRules_FullMethodName:
			reqMsg := req.(*api.ListRulesRequest)
			if list := reqMsg.GetList(); list != "allow" && list != "deny" {
				return nil, status.Errorf(
					codes.InvalidArgument, "invalid request: list must be \"allow\" or \"deny\"",
				)
			}

		case api.NetGuard_ResetQuota_FullMethodName:
			reqMsg := req.(*api.QuotaData)
			if reqMsg.GetCallerId() == "" {
				return nil, status.Errorf(
					codes.InvalidArgument, "invalid request: missed required field (caller_id)",
				)
			}
		}
		return handler(ctx, req)
	}
}
