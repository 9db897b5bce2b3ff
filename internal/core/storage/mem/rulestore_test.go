package mem

import (
	"fmt"
	"sync"
	"testing"

	"github.com/avk-dev/netguard/internal/core/model"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ruleMemStorageTestSuit struct {
	suite.Suite
	allowed        []*model.Rule
	denied         []*model.Rule
	ruleMemStorage *RuleMemStorage
}

func (suite *ruleMemStorageTestSuit) SetupSuite() {
	suite.allowed = mustRules(suite.T(), "10.0.0.0/8", "192.168.0.0/16", "2001:dead:beef::/48")
	suite.denied = mustRules(suite.T(), "203.0.113.0/24", "198.51.100.0/24", "fe80::/10")
}

func (suite *ruleMemStorageTestSuit) SetupTest() {
	ruleStorage := NewRuleMemStorage()
	for _, rule := range suite.allowed {
		ruleStorage.allow[rule.CIDR] = rule
	}
	for _, rule := range suite.denied {
		ruleStorage.deny[rule.CIDR] = rule
	}
	suite.ruleMemStorage = ruleStorage
}

func (suite *ruleMemStorageTestSuit) TestSave() {
	storageConsumers := 10
	wg := sync.WaitGroup{}

	for i := 0; i < storageConsumers; i++ {
		i := i
		wg.Add(1)
		go func() {
			rule, err := model.NewRule(fmt.Sprintf("172.16.%d.0/24", i))
			require.NoError(suite.T(), err)
			err = suite.ruleMemStorage.Save(rule, model.Deny)
			require.NoError(suite.T(), err)
			wg.Done()
		}()
	}

	wg.Wait()
	require.Equal(suite.T(), len(suite.denied)+storageConsumers, len(suite.ruleMemStorage.deny))
	require.Equal(suite.T(), len(suite.allowed), len(suite.ruleMemStorage.allow))
}

func (suite *ruleMemStorageTestSuit) TestGet() {
	wg := sync.WaitGroup{}

	for _, allowedRule := range suite.allowed {
		allowedRule := allowedRule
		wg.Add(1)
		go func() {
			foundInAllow, err := suite.ruleMemStorage.Get(allowedRule.CIDR, model.Allow)
			require.NoError(suite.T(), err)
			require.NotNil(suite.T(), foundInAllow)
			require.Equal(suite.T(), allowedRule.CIDR, foundInAllow.CIDR)

			notFoundInDeny, err := suite.ruleMemStorage.Get(allowedRule.CIDR, model.Deny)
			require.NoError(suite.T(), err)
			require.Nil(suite.T(), notFoundInDeny)

			wg.Done()
		}()
	}

	wg.Wait()
}

func (suite *ruleMemStorageTestSuit) TestGetList() {
	storageConsumers := 10
	wg := sync.WaitGroup{}

	for i := 0; i < storageConsumers; i++ {
		wg.Add(1)
		go func() {
			list, err := suite.ruleMemStorage.GetList(model.Allow)
			require.NoError(suite.T(), err)
			require.Equal(suite.T(), len(suite.allowed), len(list))

			list, err = suite.ruleMemStorage.GetList(model.Deny)
			require.NoError(suite.T(), err)
			require.Equal(suite.T(), len(suite.denied), len(list))

			wg.Done()
		}()
	}

	wg.Wait()
}

func (suite *ruleMemStorageTestSuit) TestDelete() {
	wg := sync.WaitGroup{}

	for _, deniedRule := range suite.denied {
		deniedRule := deniedRule
		wg.Add(1)
		go func() {
			err := suite.ruleMemStorage.Delete(deniedRule.CIDR, model.Deny)
			require.NoError(suite.T(), err)
			wg.Done()
		}()
	}

	wg.Wait()
	require.Equal(suite.T(), 0, len(suite.ruleMemStorage.deny))
	require.Equal(suite.T(), len(suite.allowed), len(suite.ruleMemStorage.allow))
}

func TestRuleMemStorageTestSuit(t *testing.T) {
	suite.Run(t, new(ruleMemStorageTestSuit))
}

func mustRules(t *testing.T, cidrs ...string) []*model.Rule {
	t.Helper()
	rules := make([]*model.Rule, 0, len(cidrs))
	for _, cidr := range cidrs {
		rule, err := model.NewRule(cidr)
		require.NoError(t, err)
		rules = append(rules, rule)
	}
	return rules
}
