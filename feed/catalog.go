// Package feed holds the element tree of the product feed document.
//
// The tree is built fresh for every generation and mirrors the XML schema one
// to one, so encoding/xml can render it without custom marshalers.
package feed

import "encoding/xml"

type (
	Catalog struct {
		XMLName  xml.Name  `xml:"catalog"`
		Products []Product `xml:"product"`
	}
	Product struct {
		ID          string     `xml:"id,attr"`
		Name        string     `xml:"name"`
		SKU         string     `xml:"sku"`
		Description string     `xml:"description"`
		Price       Price      `xml:"price"`
		InStock     bool       `xml:"inStock"`
		Weight      string     `xml:"weight"`
		Dimensions  Dimensions `xml:"dimensions"`
		Attributes  Attributes `xml:"attributes"`
		Images      Images     `xml:"images"`
	}
	Price struct {
		Currency string `xml:"currency,attr"`
		Amount   string `xml:",chardata"`
	}
	Dimensions struct {
		Width  string `xml:"width"`
		Height string `xml:"height"`
		Depth  string `xml:"depth"`
	}
	// Attributes and Images are containers; they render even with no children.
	Attributes struct {
		Attribute []Attribute `xml:"attribute"`
	}
	Attribute struct {
		Name  string `xml:"name,attr"`
		Value string `xml:",chardata"`
	}
	Images struct {
		Image []Image `xml:"image"`
	}
	Image struct {
		Type string `xml:"type,attr"`
		URL  string `xml:",chardata"`
	}
)

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Products)
}
