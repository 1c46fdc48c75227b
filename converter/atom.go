package converter

import "github.com/uphy/productfeed/feed"

type atomConverter struct {
	options Options
}

func (c *atomConverter) Convert(catalog *feed.Catalog) (*Result, error) {
	f, err := toFeed(catalog, c.options)
	if err != nil {
		return nil, err
	}
	atom, err := f.ToAtom()
	if err != nil {
		return nil, err
	}
	return newResult("application/atom+xml", atom), nil
}
