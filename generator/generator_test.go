package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/uphy/productfeed/model"
	"github.com/uphy/productfeed/repo"
)

func TestGenerate(t *testing.T) {
	store := repo.NewMemoryStore(decodeProducts(t, `[
		{"_id": "a", "title": "A", "price": 10},
		{"_id": "b", "title": "B", "price": 20}
	]`)...)
	g := New(store, Options{Currency: "SEK"})

	catalog, err := g.Generate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.Len() != 2 {
		t.Fatalf("products = %d, want 2", catalog.Len())
	}
	for _, p := range catalog.Products {
		if p.Price.Currency != "SEK" {
			t.Errorf("currency = %s, want SEK", p.Price.Currency)
		}
	}
}

func TestGenerateFetchFailure(t *testing.T) {
	cause := errors.New("connection refused")
	store := repo.NewMemoryStore()
	store.FailWith = cause

	_, err := New(store, DefaultOptions()).Generate(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var failure *GenerationFailure
	if !errors.As(err, &failure) || failure.Stage != StageFetch {
		t.Fatalf("expected fetch GenerationFailure, got %v", err)
	}
	var upstream *repo.UpstreamFetchError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamFetchError in chain, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("cause not preserved: %v", err)
	}
}

func TestGenerateTransformFailure(t *testing.T) {
	store := repo.NewMemoryStore(model.Product{ID: "bad", Images: []model.Image{{}}})

	_, err := New(store, DefaultOptions()).Generate(context.Background())
	var failure *GenerationFailure
	if !errors.As(err, &failure) || failure.Stage != StageTransform {
		t.Fatalf("expected transform GenerationFailure, got %v", err)
	}
}
