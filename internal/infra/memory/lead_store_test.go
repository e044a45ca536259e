package memory

import (
	"context"
	"testing"

	"area-match-service/internal/domain"
)

func TestLeadStoreKeepsSubmissionOrder(t *testing.T) {
	store := NewLeadStore()

	if err := store.SaveLead(context.Background(), domain.Lead{ID: "l1", Name: "Alice"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.SaveLead(context.Background(), domain.Lead{ID: "l2", Name: "Bob"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	leads := store.Leads()
	if len(leads) != 2 || leads[0].ID != "l1" || leads[1].ID != "l2" {
		t.Fatalf("unexpected leads: %+v", leads)
	}

	// The returned slice is a copy; mutating it must not affect the store.
	leads[0].Name = "mutated"
	if store.Leads()[0].Name != "Alice" {
		t.Fatalf("store leaked internal slice")
	}
}
