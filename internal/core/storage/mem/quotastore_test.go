package mem

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/avk-dev/netguard/internal/core/model"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type quotaMemStorageTestSuit struct {
	suite.Suite
	quotas          []*model.Quota
	quotaMemStorage *QuotaMemStorage
}

func (suite *quotaMemStorageTestSuit) SetupSuite() {
	suite.quotas = []*model.Quota{
		model.NewQuota("caller0", 5, time.Minute),
		model.NewQuota("caller1", 5, time.Minute),
		model.NewQuota("caller2", 5, time.Minute),
	}
}

func (suite *quotaMemStorageTestSuit) SetupTest() {
	quotaStorage := NewQuotaMemStorage()
	for _, quota := range suite.quotas {
		quotaStorage.quotas[quota.ID] = quota
	}
	suite.quotaMemStorage = quotaStorage
}

func (suite *quotaMemStorageTestSuit) TestSave() {
	storageConsumers := 10
	wg := sync.WaitGroup{}

	for i := len(suite.quotas); i < len(suite.quotas)+storageConsumers; i++ {
		i := i
		wg.Add(1)
		go func() {
			quota := model.NewQuota(fmt.Sprint("caller", i), 5, time.Minute)
			err := suite.quotaMemStorage.Save(quota)
			require.NoError(suite.T(), err)
			wg.Done()
		}()
	}

	wg.Wait()
	require.Equal(suite.T(), len(suite.quotas)+storageConsumers, len(suite.quotaMemStorage.quotas))
}

func (suite *quotaMemStorageTestSuit) TestGet() {
	wg := sync.WaitGroup{}

	for _, quota := range suite.quotas {
		quota := quota
		wg.Add(1)
		go func() {
			foundQuota, err := suite.quotaMemStorage.Get(quota.ID)
			require.NoError(suite.T(), err)
			require.NotNil(suite.T(), foundQuota)
			require.Equal(suite.T(), quota.ID, foundQuota.ID)
			wg.Done()
		}()
	}

	wg.Wait()
}

func (suite *quotaMemStorageTestSuit) TestDelete() {
	wg := sync.WaitGroup{}

	for _, quota := range suite.quotas {
		quota := quota
		wg.Add(1)
		go func() {
			err := suite.quotaMemStorage.Delete(quota.ID)
			require.NoError(suite.T(), err)
			wg.Done()
		}()
	}

	wg.Wait()
	require.Equal(suite.T(), 0, len(suite.quotaMemStorage.quotas))
}

func TestQuotaMemStorageTestSuit(t *testing.T) {
	suite.Run(t, new(quotaMemStorageTestSuit))
}
