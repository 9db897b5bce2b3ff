package mem

import (
	"sync"

	"github.com/avk-dev/netguard/internal/core/model"
)

type RuleMemStorage struct {
	allow, deny map[string]*model.Rule
	amtx, dmtx  *sync.RWMutex
}

func NewRuleMemStorage() *RuleMemStorage {
	return &RuleMemStorage{
		allow: map[string]*model.Rule{},
		deny:  map[string]*model.Rule{},
		amtx:  &sync.RWMutex{},
		dmtx:  &sync.RWMutex{},
	}
}

func (storage *RuleMemStorage) Save(rule *model.Rule, listType model.ListType) error {
	rules, mtx := storage.rulesOfList(listType)
	mtx.Lock()
	rules[rule.CIDR] = rule
	mtx.Unlock()
	return nil
}

func (storage *RuleMemStorage) Get(cidr string, listType model.ListType) (*model.Rule, error) {
	rules, mtx := storage.rulesOfList(listType)
	mtx.RLock()
	defer mtx.RUnlock()
	return rules[cidr], nil
}

func (storage *RuleMemStorage) GetList(listType model.ListType) ([]*model.Rule, error) {
	rules, mtx := storage.rulesOfList(listType)
	mtx.RLock()
	defer mtx.RUnlock()

	ruleList := make([]*model.Rule, 0, len(rules))
	for _, rule := range rules {
		ruleList = append(ruleList, rule)
	}

	return ruleList, nil
}

func (storage *RuleMemStorage) Delete(cidr string, listType model.ListType) error {
	rules, mtx := storage.rulesOfList(listType)
	mtx.Lock()
	delete(rules, cidr)
	mtx.Unlock()
	return nil
}

func (storage *RuleMemStorage) rulesOfList(listType model.ListType) (map[string]*model.Rule, *sync.RWMutex) {
	if listType == model.Deny {
		return storage.deny, storage.dmtx
	}
	return storage.allow, storage.amtx
}
