package grpcserver

import (
	"context"
	"errors"

	"github.com/avk-dev/netguard/internal/core"
	"github.com/avk-dev/netguard/internal/core/model"
	"github.com/avk-dev/netguard/internal/core/service"
	api "github.com/avk-dev/netguard/internal/grpc/api"
	"github.com/avk-dev/netguard/netrange"
	"github.com/golang/protobuf/ptypes/empty"
	"github.com/golang/protobuf/ptypes/wrappers"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type serverHandler struct {
	api.UnimplementedNetGuardServer
	screensrv core.ScreeningService
}

func newHandler(screensrv core.ScreeningService) *serverHandler {
	return &serverHandler{screensrv: screensrv}
}

func (s *serverHandler) Screen(_ context.Context, req *api.ScreenRequest) (*wrappers.BoolValue, error) {
	ok, err := s.screensrv.Screen(req.GetAddr(), req.GetCallerId())
	return &wrappers.BoolValue{Value: ok}, errResponse(err)
}

func (s *serverHandler) Resolve(_ context.Context, req *api.ResolveRequest) (*api.Resolution, error) {
	addrBytes, family, err := s.screensrv.Resolve(req.GetAddr())
	if err != nil {
		return nil, errResponse(err)
	}
	return &api.Resolution{Family: family.String(), AddrBytes: addrBytes}, nil
}

func (s *serverHandler) AddAllowRule(_ context.Context, rule *api.RuleData) (*empty.Empty, error) {
	err := s.screensrv.AddRule(rule.GetCidr(), model.Allow)
	return &empty.Empty{}, errResponse(err)
}

func (s *serverHandler) AddDenyRule(_ context.Context, rule *api.RuleData) (*empty.Empty, error) {
	err := s.screensrv.AddRule(rule.GetCidr(), model.Deny)
	return &empty.Empty{}, errResponse(err)
}

func (s *serverHandler) RemoveAllowRule(_ context.Context, rule *api.RuleData) (*empty.Empty, error) {
	err := s.screensrv.RemoveRule(rule.GetCidr(), model.Allow)
	return &empty.Empty{}, errResponse(err)
}

func (s *serverHandler) RemoveDenyRule(_ context.Context, rule *api.RuleData) (*empty.Empty, error) {
	err := s.screensrv.RemoveRule(rule.GetCidr(), model.Deny)
	return &empty.Empty{}, errResponse(err)
}

func (s *serverHandler) ListRules(_ context.Context, req *api.ListRulesRequest) (*api.RuleList, error) {
	rules, err := s.screensrv.Rules(listType(req.GetList()))
	if err != nil {
		return nil, errResponse(err)
	}
	ruleList := &api.RuleList{Cidrs: make([]string, 0, len(rules))}
	for _, rule := range rules {
		ruleList.Cidrs = append(ruleList.Cidrs, rule.CIDR)
	}
	return ruleList, nil
}

func (s *serverHandler) ResetQuota(_ context.Context, quota *api.QuotaData) (*empty.Empty, error) {
	err := s.screensrv.ResetQuota(quota.GetCallerId())
	return &empty.Empty{}, errResponse(err)
}

func listType(list string) model.ListType {
	if list == "deny" {
		return model.Deny
	}
	return model.Allow
}

func errResponse(errSrv error) error {
	switch {
	case errSrv == nil:
		return nil
	case errors.Is(errSrv, service.ErrQuotaExceeded):
		return status.Error(codes.ResourceExhausted, errSrv.Error())
	case errors.Is(errSrv, netrange.ErrMalformedInput):
		return status.Error(codes.InvalidArgument, errSrv.Error())
	default:
		return status.Error(codes.Internal, errSrv.Error())
	}
}
