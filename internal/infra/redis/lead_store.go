package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"area-match-service/internal/domain"
)

const leadsKey = "leads:inbox"

// LeadStore appends contact leads to a Redis list so a CRM exporter can
// drain them independently of this service.
type LeadStore struct {
	client *redis.Client
}

func NewLeadStore(client *redis.Client) *LeadStore {
	return &LeadStore{client: client}
}

func (s *LeadStore) SaveLead(ctx context.Context, lead domain.Lead) error {
	raw, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("marshal lead: %w", err)
	}
	if err := s.client.RPush(ctx, leadsKey, raw).Err(); err != nil {
		return fmt.Errorf("push lead: %w", err)
	}
	return nil
}
