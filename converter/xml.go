package converter

import (
	"encoding/xml"

	"github.com/pkg/errors"
	"github.com/uphy/productfeed/feed"
)

const indent = "  "

type xmlConverter struct {
	pretty bool
}

// Convert renders the catalog without an XML declaration, so the document
// starts directly with <catalog>.
func (c *xmlConverter) Convert(catalog *feed.Catalog) (*Result, error) {
	if catalog == nil {
		return nil, errors.New("no catalog to serialize")
	}
	var (
		b   []byte
		err error
	)
	if c.pretty {
		b, err = xml.MarshalIndent(catalog, "", indent)
	} else {
		b, err = xml.Marshal(catalog)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal catalog")
	}
	return newResult("application/xml", string(b)), nil
}
