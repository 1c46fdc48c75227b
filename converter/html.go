package converter

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/pkg/errors"
	"github.com/uphy/productfeed/feed"
)

//go:embed template.html
var htmlTemplate string

var parsedHTMLTemplate = template.Must(template.New("converter-html").Parse(htmlTemplate))

type htmlConverter struct {
	options Options
}

func (c *htmlConverter) Convert(catalog *feed.Catalog) (*Result, error) {
	if catalog == nil {
		return nil, errors.New("no catalog to render")
	}
	buf := new(bytes.Buffer)
	if err := parsedHTMLTemplate.Execute(buf, map[string]interface{}{
		"Title":   c.options.Title,
		"Catalog": catalog,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to render catalog")
	}
	return newResult("text/html", buf.String()), nil
}
