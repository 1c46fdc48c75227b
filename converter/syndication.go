package converter

import (
	"time"

	"github.com/gorilla/feeds"
	"github.com/pkg/errors"
	"github.com/uphy/productfeed/feed"
)

// toFeed maps the catalog to a syndication feed with one item per product.
// gorilla/feeds dereferences every Link, so each item always gets one.
func toFeed(catalog *feed.Catalog, options Options) (*feeds.Feed, error) {
	if catalog == nil {
		return nil, errors.New("no catalog to convert")
	}
	now := time.Now()
	f := &feeds.Feed{
		Title:       options.Title,
		Link:        &feeds.Link{Href: options.Link},
		Description: options.Description,
		Created:     now,
		Updated:     now,
	}
	for _, p := range catalog.Products {
		href := options.Link
		if len(p.Images.Image) > 0 {
			href = p.Images.Image[0].URL
		}
		item := &feeds.Item{
			Id:          p.ID,
			Title:       p.Name,
			Link:        &feeds.Link{Href: href},
			Description: p.Description,
			Created:     now,
			Updated:     now,
		}
		f.Items = append(f.Items, item)
	}
	return f, nil
}
