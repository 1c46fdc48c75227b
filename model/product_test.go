package model

import (
	"encoding/json"
	"testing"
)

const widgetJSON = `{
  "_id": "abc123",
  "title": "Widget",
  "sku": "W-100",
  "description": "A widget",
  "price": 199.5,
  "inStock": true,
  "weight": 1.2,
  "dimensions": {"width": 10, "height": 5},
  "attributes": [{"name": "color", "value": "red"}],
  "images": [{"asset": {"url": "http://example.com/a.jpg"}}, {"asset": null}]
}`

func TestProductUnmarshal(t *testing.T) {
	var p Product
	if err := json.Unmarshal([]byte(widgetJSON), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "abc123" || p.Title != "Widget" || p.SKU != "W-100" || !p.InStock {
		t.Fatalf("scalar fields not decoded: %+v", p)
	}
	if got := p.Price.String(); got != "199.5" {
		t.Errorf("price = %s, want 199.5", got)
	}
	if d, ok := p.Description.Get(); !ok || d != "A widget" {
		t.Errorf("description = %q, %v", d, ok)
	}
	dims, ok := p.Dimensions.Get()
	if !ok {
		t.Fatal("dimensions should be present")
	}
	if !dims.Width.IsPresent() || !dims.Height.IsPresent() {
		t.Error("width and height should be present")
	}
	if dims.Depth.IsPresent() {
		t.Error("depth is missing in the source and should be absent")
	}
	if len(p.Attributes) != 1 || p.Attributes[0] != (Attribute{"color", "red"}) {
		t.Errorf("attributes = %+v", p.Attributes)
	}
	if u, ok := p.Images[0].URL(); !ok || u != "http://example.com/a.jpg" {
		t.Errorf("image 0 url = %q, %v", u, ok)
	}
	if _, ok := p.Images[1].URL(); ok {
		t.Error("unresolved image reference should report no url")
	}
}

func TestProductUnmarshalAbsentOptionals(t *testing.T) {
	var p Product
	if err := json.Unmarshal([]byte(`{"_id":"x","title":"X","sku":"X-1","price":0,"inStock":false,"description":null}`), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Description.IsPresent() {
		t.Error("null description should be absent")
	}
	if p.Weight.IsPresent() {
		t.Error("missing weight should be absent")
	}
	if p.Dimensions.IsPresent() {
		t.Error("missing dimensions should be absent")
	}
	if p.Attributes != nil || p.Images != nil {
		t.Error("missing lists should decode as nil")
	}
}
