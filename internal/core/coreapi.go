package core

import (
	"github.com/avk-dev/netguard/internal/core/model"
	"github.com/avk-dev/netguard/netrange"
)

// ScreeningService decides whether addresses may pass and manages the rule
// lists the decision is based on.
type ScreeningService interface {
	Screen(addr string, callerID string) (bool, error)
	Resolve(addr string) ([]byte, netrange.Family, error)
	AddRule(cidr string, listType model.ListType) error
	RemoveRule(cidr string, listType model.ListType) error
	Rules(listType model.ListType) ([]*model.Rule, error)
	ResetQuota(callerID string) error
}

type RuleStorage interface {
	Save(rule *model.Rule, listType model.ListType) error
	Get(cidr string, listType model.ListType) (*model.Rule, error)
	GetList(listType model.ListType) ([]*model.Rule, error)
	Delete(cidr string, listType model.ListType) error
}

type QuotaStorage interface {
	Save(quota *model.Quota) error
	Get(id string) (*model.Quota, error)
	Delete(id string) error
}
