package redis

import (
	"context"
	"encoding/json"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"area-match-service/internal/domain"
)

func TestLeadStoreAppendsToInbox(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewLeadStore(client)

	lead := domain.Lead{ID: "l1", Name: "Alice", Email: "alice@example.com", Country: "DE", Purpose: "investment"}
	if err := store.SaveLead(context.Background(), lead); err != nil {
		t.Fatalf("save lead: %v", err)
	}

	raw, err := mr.Lpop("leads:inbox")
	if err != nil {
		t.Fatalf("lpop: %v", err)
	}
	var stored domain.Lead
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatalf("unmarshal stored lead: %v", err)
	}
	if stored.ID != "l1" || stored.Email != "alice@example.com" {
		t.Fatalf("unexpected stored lead: %+v", stored)
	}
}
