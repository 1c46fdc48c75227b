package generator

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/uphy/productfeed/feed"
	"github.com/uphy/productfeed/model"
)

// Transform maps product records into the catalog tree, one product element
// per record. Absent optional values become empty elements. Attribute and
// image order is kept as fetched.
func Transform(products []model.Product, options Options) (*feed.Catalog, error) {
	catalog := &feed.Catalog{Products: make([]feed.Product, 0, len(products))}
	for i, p := range products {
		item, err := transformProduct(p, options)
		if err != nil {
			return nil, errors.Wrapf(err, "product %d (id=%s)", i, p.ID)
		}
		catalog.Products = append(catalog.Products, item)
	}
	return catalog, nil
}

func transformProduct(p model.Product, options Options) (feed.Product, error) {
	dims := p.Dimensions.OrElse(model.Dimensions{})
	item := feed.Product{
		ID:          p.ID,
		Name:        p.Title,
		SKU:         p.SKU,
		Description: p.Description.OrElse(""),
		Price: feed.Price{
			Currency: options.Currency,
			Amount:   p.Price.String(),
		},
		InStock: p.InStock,
		Weight:  formatNumber(p.Weight),
		Dimensions: feed.Dimensions{
			Width:  formatNumber(dims.Width),
			Height: formatNumber(dims.Height),
			Depth:  formatNumber(dims.Depth),
		},
	}

	for _, a := range p.Attributes {
		item.Attributes.Attribute = append(item.Attributes.Attribute, feed.Attribute{
			Name:  a.Name,
			Value: a.Value,
		})
	}
	for j, img := range p.Images {
		url, ok := img.URL()
		if !ok {
			return feed.Product{}, errors.Errorf("image %d has no resolved asset url", j)
		}
		item.Images.Image = append(item.Images.Image, feed.Image{
			Type: options.ImageType,
			URL:  url,
		})
	}
	return item, nil
}

func formatNumber(v model.Optional[decimal.Decimal]) string {
	if d, ok := v.Get(); ok {
		return d.String()
	}
	return ""
}
