package repo

import (
	"context"
	"fmt"
	"io"

	"github.com/uphy/productfeed/model"
)

type (
	// ProductStore is the content store the feed is generated from.
	ProductStore interface {
		io.Closer
		// FetchProducts returns every record of kind "product" in store order.
		// Failures are reported as *UpstreamFetchError.
		FetchProducts(ctx context.Context) ([]model.Product, error)
	}
	// ProductWriter is implemented by stores that can be populated locally.
	ProductWriter interface {
		PutProducts(products []model.Product) error
	}
	Key interface {
		Key() string
	}
	productKey string

	// UpstreamFetchError reports that the content store could not be queried.
	UpstreamFetchError struct {
		Store string
		Err   error
	}
)

func ProductKey(id string) Key {
	return productKey(id)
}

func (k productKey) Key() string {
	return "p:" + string(k)
}

func (e *UpstreamFetchError) Error() string {
	return fmt.Sprintf("failed to fetch products from %s: %v", e.Store, e.Err)
}

func (e *UpstreamFetchError) Unwrap() error {
	return e.Err
}

func (e *UpstreamFetchError) Cause() error {
	return e.Err
}

func fetchError(store string, err error) error {
	return &UpstreamFetchError{Store: store, Err: err}
}
