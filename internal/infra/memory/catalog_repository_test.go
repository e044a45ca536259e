package memory

import (
	"context"
	"testing"
	"time"

	"area-match-service/internal/domain"
)

func TestCatalogRepositoryCaches(t *testing.T) {
	loader := &countingLoader{
		CatalogLoader: NewStaticCatalogLoader(sampleCatalog()),
	}
	repo := NewCatalogRepository(loader, time.Minute)

	if _, err := repo.GetCatalog(context.Background()); err != nil {
		t.Fatalf("get catalog: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	if _, err := repo.GetCatalog(context.Background()); err != nil {
		t.Fatalf("get catalog 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
}

func TestStaticCatalogLoaderRejectsEmpty(t *testing.T) {
	loader := NewStaticCatalogLoader(domain.Catalog{})
	if _, err := loader.LoadCatalog(context.Background()); err != domain.ErrCatalogNotFound {
		t.Fatalf("expected ErrCatalogNotFound, got %v", err)
	}
}

type countingLoader struct {
	CatalogLoader
	calls int
}

func (l *countingLoader) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	l.calls++
	return l.CatalogLoader.LoadCatalog(ctx)
}

func sampleCatalog() domain.Catalog {
	return domain.Catalog{
		ID: "catalog-test",
		Areas: []domain.Area{
			{Slug: "tokyo", Name: "Tokyo", Tagline: "The city that has everything"},
		},
		Questions: []domain.QuizQuestion{
			{
				ID:     1,
				Prompt: "What best describes your ideal scenery?",
				Options: []domain.QuizOption{
					{Text: "Skylines", Scores: map[string]int{"tokyo": 3}},
					{Text: "Snowfields", Scores: map[string]int{"hokkaido": 3}},
				},
			},
		},
		PropertyTypeMapping: map[string][]string{
			"tokyo": {"Modern Apartment"},
		},
	}
}
