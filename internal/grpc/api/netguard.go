// Package api holds the protobuf types of the NetGuard gRPC API. The types
// are maintained by hand and kept in lockstep with netguard.proto.
package api

import (
	"github.com/golang/protobuf/proto"
)

type ScreenRequest struct {
	Addr     string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	CallerId string `protobuf:"bytes,2,opt,name=caller_id,json=callerId,proto3" json:"caller_id,omitempty"`
}

func (m *ScreenRequest) Reset()         { *m = ScreenRequest{} }
func (m *ScreenRequest) String() string { return proto.CompactTextString(m) }
func (*ScreenRequest) ProtoMessage()    {}

func (m *ScreenRequest) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

func (m *ScreenRequest) GetCallerId() string {
	if m != nil {
		return m.CallerId
	}
	return ""
}

type ResolveRequest struct {
	Addr string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *ResolveRequest) Reset()         { *m = ResolveRequest{} }
func (m *ResolveRequest) String() string { return proto.CompactTextString(m) }
func (*ResolveRequest) ProtoMessage()    {}

func (m *ResolveRequest) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

type Resolution struct {
	Family    string `protobuf:"bytes,1,opt,name=family,proto3" json:"family,omitempty"`
	AddrBytes []byte `protobuf:"bytes,2,opt,name=addr_bytes,json=addrBytes,proto3" json:"addr_bytes,omitempty"`
}

func (m *Resolution) Reset()         { *m = Resolution{} }
func (m *Resolution) String() string { return proto.CompactTextString(m) }
func (*Resolution) ProtoMessage()    {}

func (m *Resolution) GetFamily() string {
	if m != nil {
		return m.Family
	}
	return ""
}

func (m *Resolution) GetAddrBytes() []byte {
	if m != nil {
		return m.AddrBytes
	}
	return nil
}

type RuleData struct {
	Cidr string `protobuf:"bytes,1,opt,name=cidr,proto3" json:"cidr,omitempty"`
}

func (m *RuleData) Reset()         { *m = RuleData{} }
func (m *RuleData) String() string { return proto.CompactTextString(m) }
func (*RuleData) ProtoMessage()    {}

func (m *RuleData) GetCidr() string {
	if m != nil {
		return m.Cidr
	}
	return ""
}

type ListRulesRequest struct {
	List string `protobuf:"bytes,1,opt,name=list,proto3" json:"list,omitempty"`
}

func (m *ListRulesRequest) Reset()         { *m = ListRulesRequest{} }
func (m *ListRulesRequest) String() string { return proto.CompactTextString(m) }
func (*ListRulesRequest) ProtoMessage()    {}

func (m *ListRulesRequest) GetList() string {
	if m != nil {
		return m.List
	}
	return ""
}

type RuleList struct {
	Cidrs []string `protobuf:"bytes,1,rep,name=cidrs,proto3" json:"cidrs,omitempty"`
}

func (m *RuleList) Reset()         { *m = RuleList{} }
func (m *RuleList) String() string { return proto.CompactTextString(m) }
func (*RuleList) ProtoMessage()    {}

func (m *RuleList) GetCidrs() []string {
	if m != nil {
		return m.Cidrs
	}
	return nil
}

type QuotaData struct {
	CallerId string `protobuf:"bytes,1,opt,name=caller_id,json=callerId,proto3" json:"caller_id,omitempty"`
}

func (m *QuotaData) Reset()         { *m = QuotaData{} }
func (m *QuotaData) String() string { return proto.CompactTextString(m) }
func (*QuotaData) ProtoMessage()    {}

func (m *QuotaData) GetCallerId() string {
	if m != nil {
		return m.CallerId
	}
	return ""
}

func init() {
	proto.RegisterType((*ScreenRequest)(nil), "netguard.ScreenRequest")
	proto.RegisterType((*ResolveRequest)(nil), "netguard.ResolveRequest")
	proto.RegisterType((*Resolution)(nil), "netguard.Resolution")
	proto.RegisterType((*RuleData)(nil), "netguard.RuleData")
	proto.RegisterType((*ListRulesRequest)(nil), "netguard.ListRulesRequest")
	proto.RegisterType((*RuleList)(nil), "netguard.RuleList")
	proto.RegisterType((*QuotaData)(nil), "netguard.QuotaData")
}
