package content

import (
	"testing"

	"area-match-service/internal/app"
)

func TestDefaultCatalogParses(t *testing.T) {
	catalog, err := Default()
	if err != nil {
		t.Fatalf("load embedded catalog: %v", err)
	}
	if len(catalog.Areas) != 8 {
		t.Fatalf("expected 8 areas, got %d", len(catalog.Areas))
	}
	if len(catalog.Questions) != 5 {
		t.Fatalf("expected 5 quiz questions, got %d", len(catalog.Questions))
	}
	if len(catalog.Genres) == 0 || len(catalog.Properties) == 0 || len(catalog.FAQs) == 0 {
		t.Fatalf("expected non-empty genres, properties, and FAQs")
	}
}

// The bundled question set awards at most 3 points per question across 5
// questions; the derived maximum must stay at 15 when content is edited.
func TestDefaultCatalogMaxScore(t *testing.T) {
	catalog := MustDefault()
	if got := app.MaxScore(catalog.Questions); got != 15 {
		t.Fatalf("expected bundled max score 15, got %d", got)
	}
}

func TestDefaultCatalogCrossReferences(t *testing.T) {
	catalog := MustDefault()

	areas := make(map[string]struct{}, len(catalog.Areas))
	for _, a := range catalog.Areas {
		areas[a.Slug] = struct{}{}
	}

	seenIDs := make(map[int]struct{}, len(catalog.Questions))
	for _, q := range catalog.Questions {
		if _, dup := seenIDs[q.ID]; dup {
			t.Fatalf("duplicate question id %d", q.ID)
		}
		seenIDs[q.ID] = struct{}{}
		if len(q.Options) == 0 {
			t.Fatalf("question %d has no options", q.ID)
		}
		for _, opt := range q.Options {
			for slug := range opt.Scores {
				if _, ok := areas[slug]; !ok {
					t.Fatalf("question %d option %q scores unknown area %q", q.ID, opt.Text, slug)
				}
			}
		}
	}

	// Every area must have a representative property type; the engine's
	// Apartment fallback should never fire on bundled content.
	for slug := range areas {
		if len(catalog.PropertyTypeMapping[slug]) == 0 {
			t.Fatalf("area %q missing property type mapping", slug)
		}
	}

	for _, g := range catalog.Genres {
		for _, slug := range g.RelatedAreas {
			if _, ok := areas[slug]; !ok {
				t.Fatalf("genre %q references unknown area %q", g.Slug, slug)
			}
		}
	}
	for _, p := range catalog.Properties {
		if _, ok := areas[p.Area]; !ok {
			t.Fatalf("property %q references unknown area %q", p.ID, p.Area)
		}
	}
}
