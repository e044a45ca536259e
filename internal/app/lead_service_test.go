package app_test

import (
	"context"
	"testing"

	"area-match-service/internal/app"
	"area-match-service/internal/domain"
	"area-match-service/internal/infra/memory"
)

func TestLeadSubmit(t *testing.T) {
	store := memory.NewLeadStore()
	service := app.NewLeadService(store)

	saved, err := service.Submit(context.Background(), domain.Lead{
		Name:           "Alice",
		Email:          "alice@example.com",
		Country:        "Germany",
		Purpose:        "investment",
		Budget:         "¥30M–¥60M",
		PreferredAreas: []string{"osaka", "fukuoka"},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if saved.ID == "" || saved.SubmittedAt.IsZero() {
		t.Fatalf("expected id and timestamp to be assigned, got %+v", saved)
	}

	leads := store.Leads()
	if len(leads) != 1 || leads[0].ID != saved.ID {
		t.Fatalf("expected lead stored, got %+v", leads)
	}
}

func TestLeadSubmitValidates(t *testing.T) {
	store := memory.NewLeadStore()
	service := app.NewLeadService(store)

	cases := []domain.Lead{
		{},
		{Name: "Alice", Email: "not-an-email", Country: "DE", Purpose: "investment"},
		{Name: "Alice", Email: "alice@example.com", Country: "DE", Purpose: "speculation"},
	}
	for _, lead := range cases {
		if _, err := service.Submit(context.Background(), lead); err == nil {
			t.Fatalf("expected validation error for %+v", lead)
		}
	}
	if len(store.Leads()) != 0 {
		t.Fatalf("invalid leads must not be stored")
	}
}
