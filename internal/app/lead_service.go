package app

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"area-match-service/internal/domain"
)

// LeadRepository stores contact-form submissions.
type LeadRepository interface {
	SaveLead(ctx context.Context, lead domain.Lead) error
}

// LeadService validates and records contact leads.
type LeadService struct {
	leads    LeadRepository
	validate *validator.Validate
	now      func() time.Time
	newID    func() string
}

func NewLeadService(leads LeadRepository) *LeadService {
	return &LeadService{
		leads:    leads,
		validate: validator.New(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Submit assigns the lead an ID and timestamp and persists it. The ID and
// SubmittedAt fields of the input are ignored.
func (s *LeadService) Submit(ctx context.Context, lead domain.Lead) (domain.Lead, error) {
	if err := s.validate.Struct(lead); err != nil {
		return domain.Lead{}, fmt.Errorf("validate lead: %w", err)
	}

	lead.ID = s.newID()
	lead.SubmittedAt = s.now()
	if err := s.leads.SaveLead(ctx, lead); err != nil {
		return domain.Lead{}, fmt.Errorf("save lead: %w", err)
	}
	return lead, nil
}
