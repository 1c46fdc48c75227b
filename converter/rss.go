package converter

import "github.com/uphy/productfeed/feed"

type rssConverter struct {
	options Options
}

func (c *rssConverter) Convert(catalog *feed.Catalog) (*Result, error) {
	f, err := toFeed(catalog, c.options)
	if err != nil {
		return nil, err
	}
	rss, err := f.ToRss()
	if err != nil {
		return nil, err
	}
	return newResult("application/rss+xml", rss), nil
}
