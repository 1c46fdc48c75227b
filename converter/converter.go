package converter

import "github.com/uphy/productfeed/feed"

const FormatXML = "xml"

type (
	Converter interface {
		Convert(*feed.Catalog) (*Result, error)
	}
	Result struct {
		ContentType string
		Result      string
	}
	// Options configures the converters. Title, Link and Description only
	// apply to the syndication and preview formats.
	Options struct {
		Pretty      bool
		Title       string
		Link        string
		Description string
	}
)

func DefaultOptions() Options {
	return Options{Pretty: true, Title: "Products"}
}

// GetConverter returns the converter for format, or nil when unsupported.
// An empty format selects the XML product feed.
func GetConverter(name string, options Options) Converter {
	switch name {
	case "", FormatXML:
		return &xmlConverter{pretty: options.Pretty}
	case "rss":
		return &rssConverter{options}
	case "atom":
		return &atomConverter{options}
	case "html":
		return &htmlConverter{options}
	}
	return nil
}

func newResult(contentType, result string) *Result {
	return &Result{contentType, result}
}
