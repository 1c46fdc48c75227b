package converter

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/uphy/productfeed/feed"
)

func widgetCatalog() *feed.Catalog {
	return &feed.Catalog{Products: []feed.Product{{
		ID:          "abc123",
		Name:        "Widget",
		SKU:         "W-100",
		Description: "A widget",
		Price:       feed.Price{Currency: "NOK", Amount: "199.5"},
		InStock:     true,
		Weight:      "1.2",
		Dimensions:  feed.Dimensions{Width: "10", Height: "5", Depth: "2"},
		Attributes:  feed.Attributes{Attribute: []feed.Attribute{{Name: "color", Value: "red"}}},
		Images:      feed.Images{Image: []feed.Image{{Type: "main", URL: "http://example.com/a.jpg"}}},
	}}}
}

func TestXMLConvertCompact(t *testing.T) {
	result, err := GetConverter(FormatXML, Options{Pretty: false}).Convert(widgetCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<catalog><product id="abc123"><name>Widget</name><sku>W-100</sku><description>A widget</description>` +
		`<price currency="NOK">199.5</price><inStock>true</inStock><weight>1.2</weight>` +
		`<dimensions><width>10</width><height>5</height><depth>2</depth></dimensions>` +
		`<attributes><attribute name="color">red</attribute></attributes>` +
		`<images><image type="main">http://example.com/a.jpg</image></images></product></catalog>`
	if diff := cmp.Diff(want, result.Result); diff != "" {
		t.Errorf("xml mismatch (-want +got):\n%s", diff)
	}
	if result.ContentType != "application/xml" {
		t.Errorf("content type = %s", result.ContentType)
	}
}

func TestXMLConvertHeadless(t *testing.T) {
	for _, pretty := range []bool{true, false} {
		result, err := GetConverter("", Options{Pretty: pretty}).Convert(widgetCatalog())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(result.Result, "<?xml") {
			t.Errorf("pretty=%v: output has an xml declaration", pretty)
		}
		if !strings.HasPrefix(result.Result, "<catalog>") {
			t.Errorf("pretty=%v: output does not start with <catalog>: %q", pretty, result.Result[:20])
		}
	}
}

func TestXMLConvertPretty(t *testing.T) {
	result, err := GetConverter(FormatXML, DefaultOptions()).Convert(widgetCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(result.Result, "<catalog>\n  <product id=\"abc123\">\n    <name>Widget</name>") {
		t.Errorf("unexpected indentation:\n%s", result.Result)
	}
}

func TestXMLConvertEmptyContainersAndOptionals(t *testing.T) {
	catalog := &feed.Catalog{Products: []feed.Product{{
		ID:    "x",
		Name:  "X",
		SKU:   "X-1",
		Price: feed.Price{Currency: "NOK", Amount: "0"},
	}}}
	result, err := GetConverter(FormatXML, Options{}).Convert(catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, fragment := range []string{
		"<description></description>",
		`<price currency="NOK">0</price>`,
		"<inStock>false</inStock>",
		"<weight></weight>",
		"<dimensions><width></width><height></height><depth></depth></dimensions>",
		"<attributes></attributes>",
		"<images></images>",
	} {
		if !strings.Contains(result.Result, fragment) {
			t.Errorf("output misses %s:\n%s", fragment, result.Result)
		}
	}
	if strings.Contains(result.Result, "null") {
		t.Errorf("absent values must not render as null:\n%s", result.Result)
	}
}

func TestXMLConvertEmptyCatalog(t *testing.T) {
	result, err := GetConverter(FormatXML, Options{}).Convert(&feed.Catalog{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Result != "<catalog></catalog>" {
		t.Errorf("empty catalog = %q", result.Result)
	}
}

func TestXMLConvertNil(t *testing.T) {
	if _, err := GetConverter(FormatXML, Options{}).Convert(nil); err == nil {
		t.Fatal("expected error for nil catalog")
	}
}

func TestXMLRoundTrip(t *testing.T) {
	want := widgetCatalog()
	want.Products = append(want.Products, feed.Product{
		ID:          "esc",
		Name:        `Fish & "Chips" <large>`,
		Description: "line one\nline two",
		Price:       feed.Price{Currency: "NOK", Amount: "0"},
		Attributes: feed.Attributes{Attribute: []feed.Attribute{
			{Name: "a", Value: "1"}, {Name: "b", Value: "2"}, {Name: "c", Value: "3"},
		}},
	})
	for _, pretty := range []bool{true, false} {
		result, err := GetConverter(FormatXML, Options{Pretty: pretty}).Convert(want)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var got feed.Catalog
		if err := xml.Unmarshal([]byte(result.Result), &got); err != nil {
			t.Fatalf("pretty=%v: output is not well-formed: %v", pretty, err)
		}
		opts := cmp.Options{cmpopts.IgnoreFields(feed.Catalog{}, "XMLName"), cmpopts.EquateEmpty()}
		if diff := cmp.Diff(want, &got, opts); diff != "" {
			t.Errorf("pretty=%v: round trip mismatch (-want +got):\n%s", pretty, diff)
		}
	}
}

func TestGetConverterUnknown(t *testing.T) {
	if c := GetConverter("csv", DefaultOptions()); c != nil {
		t.Fatalf("expected nil converter, got %T", c)
	}
}
