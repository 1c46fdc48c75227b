// Package model defines the product records read from the content store.
package model

import "github.com/shopspring/decimal"

type (
	// Product is a single "product" document as projected by the feed query.
	Product struct {
		ID          string                    `json:"_id"`
		Title       string                    `json:"title"`
		SKU         string                    `json:"sku"`
		Description Optional[string]          `json:"description"`
		Price       decimal.Decimal           `json:"price"`
		InStock     bool                      `json:"inStock"`
		Weight      Optional[decimal.Decimal] `json:"weight"`
		Dimensions  Optional[Dimensions]      `json:"dimensions"`
		Attributes  []Attribute               `json:"attributes"`
		Images      []Image                   `json:"images"`
	}
	Dimensions struct {
		Width  Optional[decimal.Decimal] `json:"width"`
		Height Optional[decimal.Decimal] `json:"height"`
		Depth  Optional[decimal.Decimal] `json:"depth"`
	}
	Attribute struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	// Image is an image reference. Asset is nil when the reference did not resolve.
	Image struct {
		Asset *Asset `json:"asset"`
	}
	Asset struct {
		URL string `json:"url"`
	}
)

// URL returns the resolved asset URL and whether the reference resolved.
func (i Image) URL() (string, bool) {
	if i.Asset == nil || i.Asset.URL == "" {
		return "", false
	}
	return i.Asset.URL, true
}
