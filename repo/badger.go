package repo

import (
	"context"
	"encoding/json"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
	"github.com/uphy/productfeed/model"
)

type (
	BadgerStore struct {
		db *badger.DB
	}
)

var productPrefix = []byte("p:")

// NewBadgerStore opens the local product store in dir. An empty dir opens
// an in-memory database.
func NewBadgerStore(dir string) (*BadgerStore, error) {
	options := badger.DefaultOptions(dir)
	if dir == "" {
		options = options.WithInMemory(true)
	}
	options.Logger = nil

	db, err := badger.Open(options)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open badger store: dir=%s", dir)
	}
	return &BadgerStore{db}, nil
}

func (r *BadgerStore) FetchProducts(ctx context.Context) ([]model.Product, error) {
	products := make([]model.Product, 0)
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = productPrefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			if err := item.Value(func(val []byte) error {
				var p model.Product
				if err := json.Unmarshal(val, &p); err != nil {
					return errors.Wrapf(err, "corrupt product record: key=%s", item.Key())
				}
				products = append(products, p)
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fetchError("badger", err)
	}
	return products, nil
}

func (r *BadgerStore) PutProducts(products []model.Product) error {
	wb := r.db.NewWriteBatch()
	defer wb.Cancel()
	for _, p := range products {
		if p.ID == "" {
			return errors.Errorf("product without id: sku=%s", p.SKU)
		}
		b, err := json.Marshal(p)
		if err != nil {
			return err
		}
		if err := wb.Set([]byte(ProductKey(p.ID).Key()), b); err != nil {
			return err
		}
	}
	return wb.Flush()
}

func (r *BadgerStore) Close() error {
	return r.db.Close()
}
