// Package content bundles the static site datasets (areas, genres,
// properties, FAQs, quiz) and parses them into a domain.Catalog. It is the
// default catalog source when no database is configured.
package content

import (
	"embed"
	"encoding/json"
	"fmt"

	"area-match-service/internal/domain"
)

//go:embed data/*.json
var dataFS embed.FS

// DefaultCatalogID names the bundled dataset.
const DefaultCatalogID = "japan-v1"

// Default parses the embedded datasets into a catalog.
func Default() (domain.Catalog, error) {
	catalog := domain.Catalog{ID: DefaultCatalogID}

	if err := readJSON("data/areas.json", &catalog.Areas); err != nil {
		return domain.Catalog{}, err
	}
	if err := readJSON("data/genres.json", &catalog.Genres); err != nil {
		return domain.Catalog{}, err
	}
	if err := readJSON("data/properties.json", &catalog.Properties); err != nil {
		return domain.Catalog{}, err
	}
	if err := readJSON("data/faq.json", &catalog.FAQs); err != nil {
		return domain.Catalog{}, err
	}

	var quiz struct {
		Questions           []domain.QuizQuestion `json:"questions"`
		PropertyTypeMapping map[string][]string   `json:"propertyTypeMapping"`
	}
	if err := readJSON("data/quiz.json", &quiz); err != nil {
		return domain.Catalog{}, err
	}
	catalog.Questions = quiz.Questions
	catalog.PropertyTypeMapping = quiz.PropertyTypeMapping

	return catalog, nil
}

// MustDefault is for wiring paths where a broken embedded dataset is a
// programming error, not a runtime condition.
func MustDefault() domain.Catalog {
	catalog, err := Default()
	if err != nil {
		panic(err)
	}
	return catalog
}

func readJSON(name string, v any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
