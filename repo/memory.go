package repo

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/uphy/productfeed/model"
)

type (
	MemoryStore struct {
		mu       sync.RWMutex
		products []model.Product
		// FailWith makes FetchProducts fail; used to simulate an unreachable store.
		FailWith error
	}
)

func NewMemoryStore(products ...model.Product) *MemoryStore {
	s := &MemoryStore{}
	s.products = append(s.products, products...)
	return s
}

// NewMemoryStoreFromFile seeds a memory store from a product export file.
func NewMemoryStoreFromFile(file string) (*MemoryStore, error) {
	products, err := LoadProductsFile(file)
	if err != nil {
		return nil, err
	}
	return NewMemoryStore(products...), nil
}

func (s *MemoryStore) FetchProducts(ctx context.Context) ([]model.Product, error) {
	if s.FailWith != nil {
		return nil, fetchError("memory", s.FailWith)
	}
	if err := ctx.Err(); err != nil {
		return nil, fetchError("memory", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make([]model.Product, len(s.products))
	copy(products, s.products)
	return products, nil
}

func (s *MemoryStore) PutProducts(products []model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range products {
		replaced := false
		for i := range s.products {
			if s.products[i].ID == p.ID {
				s.products[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			s.products = append(s.products, p)
		}
	}
	return nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	s.products = nil
	s.mu.Unlock()
	return nil
}

// LoadProductsFile reads product records from a JSON file. Both a bare array
// and a query response envelope ({"result": [...]}) are accepted.
func LoadProductsFile(file string) ([]model.Product, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	if trimmed := bytes.TrimSpace(b); len(trimmed) > 0 && trimmed[0] == '[' {
		var products []model.Product
		if err := json.Unmarshal(trimmed, &products); err != nil {
			return nil, errors.Wrapf(err, "failed to parse product file: file=%s", file)
		}
		return products, nil
	}
	var envelope queryResponse
	if err := json.Unmarshal(b, &envelope); err != nil {
		return nil, errors.Wrapf(err, "failed to parse product file: file=%s", file)
	}
	if envelope.Result == nil {
		return nil, errors.Errorf("no products in file: file=%s", file)
	}
	return *envelope.Result, nil
}
