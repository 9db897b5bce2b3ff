package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/avk-dev/netguard/internal/core"
	"github.com/avk-dev/netguard/internal/core/model"
	"github.com/avk-dev/netguard/netrange"
)

// DefaultPolicy is the verdict when no rule covers an address.
type DefaultPolicy string

const (
	PolicyAllow DefaultPolicy = "allow"
	PolicyDeny  DefaultPolicy = "deny"
)

// ErrQuotaExceeded marks a screening refused because the caller spent its
// query quota, not because the address was denied.
var ErrQuotaExceeded = errors.New("query quota exceeded")

var (
	errScreen     = "failed to screen address"
	errCheckList  = "failed to check address against"
	errResolve    = "failed to resolve address"
	errAddRule    = "failed to add rule to"
	errRemoveRule = "failed to remove rule from"
	errListRules  = "failed to list rules of"
	errResetQuota = "failed to reset quota"
)

// QuotaSettings sizes the per-caller query quota. A zero capacity disables
// the quota entirely.
type QuotaSettings struct {
	Capacity uint
	Window   time.Duration
}

type ScreenService struct {
	ruleStorage  core.RuleStorage
	quotaStorage core.QuotaStorage
	quota        QuotaSettings
	policy       DefaultPolicy
}

func New(ruleStorage core.RuleStorage, quotaStorage core.QuotaStorage, quota QuotaSettings, policy DefaultPolicy) *ScreenService {
	return &ScreenService{
		ruleStorage:  ruleStorage,
		quotaStorage: quotaStorage,
		quota:        quota,
		policy:       policy,
	}
}

// Screen reports whether addr may pass: allow rules win, then deny rules,
// then the default policy. The caller's quota is charged first; an
// exhausted quota fails the check with ErrQuotaExceeded.
func (srv *ScreenService) Screen(addr string, callerID string) (bool, error) {
	ok, err := srv.takeQuota(callerID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, fmt.Errorf("%s %q: %w", errScreen, callerID, ErrQuotaExceeded)
	}

	allowed, err := srv.inList(addr, model.Allow)
	if err != nil {
		return false, err
	}
	if allowed {
		return true, nil
	}

	denied, err := srv.inList(addr, model.Deny)
	if err != nil {
		return false, err
	}
	if denied {
		return false, nil
	}

	return srv.policy == PolicyAllow, nil
}

// Resolve exposes the lenient parser: the address bytes and the detected
// family.
func (srv *ScreenService) Resolve(addr string) ([]byte, netrange.Family, error) {
	family, err := netrange.DetectFamily(addr)
	if err != nil {
		return nil, 0, fmt.Errorf("%s %q: %w", errResolve, addr, err)
	}
	addrBytes, err := netrange.ParseAddress(addr)
	if err != nil {
		return nil, 0, fmt.Errorf("%s %q: %w", errResolve, addr, err)
	}
	return addrBytes, family, nil
}

func (srv *ScreenService) AddRule(cidr string, listType model.ListType) error {
	rule, err := model.NewRule(cidr)
	if err != nil {
		return fmt.Errorf("%s %s: %w", errAddRule, listType, err)
	}

	existing, err := srv.ruleStorage.Get(rule.CIDR, listType)
	if err != nil {
		return fmt.Errorf("%s %s: %w", errAddRule, listType, err)
	}
	if existing != nil {
		return nil
	}

	if err := srv.ruleStorage.Save(rule, listType); err != nil {
		return fmt.Errorf("%s %s: %w", errAddRule, listType, err)
	}

	return nil
}

func (srv *ScreenService) RemoveRule(cidr string, listType model.ListType) error {
	if err := srv.ruleStorage.Delete(cidr, listType); err != nil {
		return fmt.Errorf("%s %s: %w", errRemoveRule, listType, err)
	}
	return nil
}

func (srv *ScreenService) Rules(listType model.ListType) ([]*model.Rule, error) {
	rules, err := srv.ruleStorage.GetList(listType)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", errListRules, listType, err)
	}
	return rules, nil
}

func (srv *ScreenService) ResetQuota(callerID string) error {
	quota, err := srv.quotaStorage.Get(callerID)
	if err != nil {
		return fmt.Errorf("%s %q: %w", errResetQuota, callerID, err)
	}
	if quota == nil {
		return fmt.Errorf("%s: quota %q not found", errResetQuota, callerID)
	}

	quota.Reset()

	if err := srv.quotaStorage.Save(quota); err != nil {
		return fmt.Errorf("%s %q: %w", errResetQuota, callerID, err)
	}
	return nil
}

func (srv *ScreenService) inList(addr string, listType model.ListType) (bool, error) {
	rules, err := srv.ruleStorage.GetList(listType)
	if err != nil {
		return false, fmt.Errorf("%s %s: %w", errCheckList, listType, err)
	}
	for _, rule := range rules {
		if rule.Covers(addr) {
			return true, nil
		}
	}
	return false, nil
}

func (srv *ScreenService) takeQuota(callerID string) (bool, error) {
	if srv.quota.Capacity == 0 {
		return true, nil
	}

	quota, err := srv.quotaStorage.Get(callerID)
	if err != nil {
		return false, fmt.Errorf("%s %q: %w", errScreen, callerID, err)
	}
	if quota == nil {
		quota = model.NewQuota(callerID, srv.quota.Capacity, srv.quota.Window)
	}
	if !quota.Take() {
		return false, nil
	}

	if err := srv.quotaStorage.Save(quota); err != nil {
		return false, fmt.Errorf("%s %q: %w", errScreen, callerID, err)
	}
	return true, nil
}
