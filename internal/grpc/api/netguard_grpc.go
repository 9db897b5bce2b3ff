package api

import (
	"context"

	"github.com/golang/protobuf/ptypes/empty"
	"github.com/golang/protobuf/ptypes/wrappers"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	NetGuard_Screen_FullMethodName          = "/netguard.NetGuard/Screen"
	NetGuard_Resolve_FullMethodName         = "/netguard.NetGuard/Resolve"
	NetGuard_AddAllowRule_FullMethodName    = "/netguard.NetGuard/AddAllowRule"
	NetGuard_AddDenyRule_FullMethodName     = "/netguard.NetGuard/AddDenyRule"
	NetGuard_RemoveAllowRule_FullMethodName = "/netguard.NetGuard/RemoveAllowRule"
	NetGuard_RemoveDenyRule_FullMethodName  = "/netguard.NetGuard/RemoveDenyRule"
	NetGuard_ListRules_FullMethodName       = "/netguard.NetGuard/ListRules"
	NetGuard_ResetQuota_FullMethodName      = "/netguard.NetGuard/ResetQuota"
)

// NetGuardClient is the client API for the NetGuard service.
type NetGuardClient interface {
	Screen(ctx context.Context, in *ScreenRequest, opts ...grpc.CallOption) (*wrappers.BoolValue, error)
	Resolve(ctx context.Context, in *ResolveRequest, opts ...grpc.CallOption) (*Resolution, error)
	AddAllowRule(ctx context.Context, in *RuleData, opts ...grpc.CallOption) (*empty.Empty, error)
	AddDenyRule(ctx context.Context, in *RuleData, opts ...grpc.CallOption) (*empty.Empty, error)
	RemoveAllowRule(ctx context.Context, in *RuleData, opts ...grpc.CallOption) (*empty.Empty, error)
	RemoveDenyRule(ctx context.Context, in *RuleData, opts ...grpc.CallOption) (*empty.Empty, error)
	ListRules(ctx context.Context, in *ListRulesRequest, opts ...grpc.CallOption) (*RuleList, error)
	ResetQuota(ctx context.Context, in *QuotaData, opts ...grpc.CallOption) (*empty.Empty, error)
}

type netGuardClient struct {
	cc grpc.ClientConnInterface
}

func NewNetGuardClient(cc grpc.ClientConnInterface) NetGuardClient {
	return &netGuardClient{cc}
}

func (c *netGuardClient) Screen(ctx context.Context, in *ScreenRequest, opts ...grpc.CallOption) (*wrappers.BoolValue, error) {
	out := new(wrappers.BoolValue)
	if err := c.cc.Invoke(ctx, NetGuard_Screen_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *netGuardClient) Resolve(ctx context.Context, in *ResolveRequest, opts ...grpc.CallOption) (*Resolution, error) {
	out := new(Resolution)
	if err := c.cc.Invoke(ctx, NetGuard_Resolve_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *netGuardClient) AddAllowRule(ctx context.Context, in *RuleData, opts ...grpc.CallOption) (*empty.Empty, error) {
	out := new(empty.Empty)
	if err := c.cc.Invoke(ctx, NetGuard_AddAllowRule_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *netGuardClient) AddDenyRule(ctx context.Context, in *RuleData, opts ...grpc.CallOption) (*empty.Empty, error) {
	out := new(empty.Empty)
	if err := c.cc.Invoke(ctx, NetGuard_AddDenyRule_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *netGuardClient) RemoveAllowRule(ctx context.Context, in *RuleData, opts ...grpc.CallOption) (*empty.Empty, error) {
	out := new(empty.Empty)
	if err := c.cc.Invoke(ctx, NetGuard_RemoveAllowRule_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *netGuardClient) RemoveDenyRule(ctx context.Context, in *RuleData, opts ...grpc.CallOption) (*empty.Empty, error) {
	out := new(empty.Empty)
	if err := c.cc.Invoke(ctx, NetGuard_RemoveDenyRule_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *netGuardClient) ListRules(ctx context.Context, in *ListRulesRequest, opts ...grpc.CallOption) (*RuleList, error) {
	out := new(RuleList)
	if err := c.cc.Invoke(ctx, NetGuard_ListRules_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *netGuardClient) ResetQuota(ctx context.Context, in *QuotaData, opts ...grpc.CallOption) (*empty.Empty, error) {
	out := new(empty.Empty)
	if err := c.cc.Invoke(ctx, NetGuard_ResetQuota_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// NetGuardServer is the server API for the NetGuard service. Implementations
// must embed UnimplementedNetGuardServer for forward compatibility.
type NetGuardServer interface {
	Screen(context.Context, *ScreenRequest) (*wrappers.BoolValue, error)
	Resolve(context.Context, *ResolveRequest) (*Resolution, error)
	AddAllowRule(context.Context, *RuleData) (*empty.Empty, error)
	AddDenyRule(context.Context, *RuleData) (*empty.Empty, error)
	RemoveAllowRule(context.Context, *RuleData) (*empty.Empty, error)
	RemoveDenyRule(context.Context, *RuleData) (*empty.Empty, error)
	ListRules(context.Context, *ListRulesRequest) (*RuleList, error)
	ResetQuota(context.Context, *QuotaData) (*empty.Empty, error)
	mustEmbedUnimplementedNetGuardServer()
}

type UnimplementedNetGuardServer struct{}

func (UnimplementedNetGuardServer) Screen(context.Context, *ScreenRequest) (*wrappers.BoolValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Screen not implemented")
}
func (UnimplementedNetGuardServer) Resolve(context.Context, *ResolveRequest) (*Resolution, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Resolve not implemented")
}
func (UnimplementedNetGuardServer) AddAllowRule(context.Context, *RuleData) (*empty.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddAllowRule not implemented")
}
func (UnimplementedNetGuardServer) AddDenyRule(context.Context, *RuleData) (*empty.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddDenyRule not implemented")
}
func (UnimplementedNetGuardServer) RemoveAllowRule(context.Context, *RuleData) (*empty.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveAllowRule not implemented")
}
func (UnimplementedNetGuardServer) RemoveDenyRule(context.Context, *RuleData) (*empty.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveDenyRule not implemented")
}
func (UnimplementedNetGuardServer) ListRules(context.Context, *ListRulesRequest) (*RuleList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListRules not implemented")
}
func (UnimplementedNetGuardServer) ResetQuota(context.Context, *QuotaData) (*empty.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResetQuota not implemented")
}
func (UnimplementedNetGuardServer) mustEmbedUnimplementedNetGuardServer() {}

func RegisterNetGuardServer(s grpc.ServiceRegistrar, srv NetGuardServer) {
	s.RegisterService(&NetGuard_ServiceDesc, srv)
}

func _NetGuard_Screen_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScreenRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NetGuardServer).Screen(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NetGuard_Screen_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NetGuardServer).Screen(ctx, req.(*ScreenRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NetGuard_Resolve_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NetGuardServer).Resolve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NetGuard_Resolve_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NetGuardServer).Resolve(ctx, req.(*ResolveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NetGuard_AddAllowRule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RuleData)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NetGuardServer).AddAllowRule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NetGuard_AddAllowRule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NetGuardServer).AddAllowRule(ctx, req.(*RuleData))
	}
	return interceptor(ctx, in, info, handler)
}

func _NetGuard_AddDenyRule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RuleData)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NetGuardServer).AddDenyRule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NetGuard_AddDenyRule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NetGuardServer).AddDenyRule(ctx, req.(*RuleData))
	}
	return interceptor(ctx, in, info, handler)
}

func _NetGuard_RemoveAllowRule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RuleData)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NetGuardServer).RemoveAllowRule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NetGuard_RemoveAllowRule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NetGuardServer).RemoveAllowRule(ctx, req.(*RuleData))
	}
	return interceptor(ctx, in, info, handler)
}

func _NetGuard_RemoveDenyRule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RuleData)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NetGuardServer).RemoveDenyRule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NetGuard_RemoveDenyRule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NetGuardServer).RemoveDenyRule(ctx, req.(*RuleData))
	}
	return interceptor(ctx, in, info, handler)
}

func _NetGuard_ListRules_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRulesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NetGuardServer).ListRules(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NetGuard_ListRules_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NetGuardServer).ListRules(ctx, req.(*ListRulesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NetGuard_ResetQuota_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuotaData)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NetGuardServer).ResetQuota(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NetGuard_ResetQuota_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NetGuardServer).ResetQuota(ctx, req.(*QuotaData))
	}
	return interceptor(ctx, in, info, handler)
}

var NetGuard_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "netguard.NetGuard",
	HandlerType: (*NetGuardServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Screen", Handler: _NetGuard_Screen_Handler},
		{MethodName: "Resolve", Handler: _NetGuard_Resolve_Handler},
		{MethodName: "AddAllowRule", Handler: _NetGuard_AddAllowRule_Handler},
		{MethodName: "AddDenyRule", Handler: _NetGuard_AddDenyRule_Handler},
		{MethodName: "RemoveAllowRule", Handler: _NetGuard_RemoveAllowRule_Handler},
		{MethodName: "RemoveDenyRule", Handler: _NetGuard_RemoveDenyRule_Handler},
		{MethodName: "ListRules", Handler: _NetGuard_ListRules_Handler},
		{MethodName: "ResetQuota", Handler: _NetGuard_ResetQuota_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "netguard.proto",
}
