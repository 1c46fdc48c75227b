package generator

import (
	"context"

	"github.com/labstack/gommon/log"
	"github.com/uphy/productfeed/feed"
	"github.com/uphy/productfeed/repo"
)

const (
	DefaultCurrency  = "NOK"
	DefaultImageType = "main"
)

type (
	Options struct {
		// Currency is set on every price element.
		Currency string
		// ImageType is set on every image element.
		ImageType string
	}

	// FeedGenerator builds the product catalog from a content store.
	// It keeps no state between calls and is safe for concurrent use.
	FeedGenerator struct {
		store   repo.ProductStore
		options Options
	}
)

func DefaultOptions() Options {
	return Options{Currency: DefaultCurrency, ImageType: DefaultImageType}
}

func New(store repo.ProductStore, options Options) *FeedGenerator {
	if options.Currency == "" {
		options.Currency = DefaultCurrency
	}
	if options.ImageType == "" {
		options.ImageType = DefaultImageType
	}
	return &FeedGenerator{store: store, options: options}
}

// Generate fetches every product and maps it into a fresh catalog tree.
func (g *FeedGenerator) Generate(ctx context.Context) (*feed.Catalog, error) {
	products, err := g.store.FetchProducts(ctx)
	if err != nil {
		return nil, Fail(StageFetch, err)
	}
	catalog, err := Transform(products, g.options)
	if err != nil {
		return nil, Fail(StageTransform, err)
	}
	log.Debugf("generated catalog: products=%d", catalog.Len())
	return catalog, nil
}
