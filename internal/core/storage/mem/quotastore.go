package mem

import (
	"sync"

	"github.com/avk-dev/netguard/internal/core/model"
)

type QuotaMemStorage struct {
	quotas map[string]*model.Quota
	mtx    *sync.RWMutex
}

func NewQuotaMemStorage() *QuotaMemStorage {
	return &QuotaMemStorage{
		quotas: map[string]*model.Quota{},
		mtx:    &sync.RWMutex{},
	}
}

func (storage *QuotaMemStorage) Get(id string) (*model.Quota, error) {
	storage.mtx.RLock()
	defer storage.mtx.RUnlock()
	return storage.quotas[id], nil
}

func (storage *QuotaMemStorage) Save(quota *model.Quota) error {
	storage.mtx.Lock()
	storage.quotas[quota.ID] = quota
	storage.mtx.Unlock()
	return nil
}

func (storage *QuotaMemStorage) Delete(id string) error {
	storage.mtx.Lock()
	delete(storage.quotas, id)
	storage.mtx.Unlock()
	return nil
}
