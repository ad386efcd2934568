package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/openscribe/scribe/ent"
)

// WebhookService records processed external events so redelivered webhooks
// are handled exactly once.
type WebhookService struct {
	client  *ent.Client
	billing *BillingService
}

// NewWebhookService creates a new WebhookService.
func NewWebhookService(client *ent.Client, billing *BillingService) *WebhookService {
	if client == nil {
		panic("NewWebhookService: client must not be nil")
	}
	if billing == nil {
		panic("NewWebhookService: billing must not be nil")
	}
	return &WebhookService{client: client, billing: billing}
}

// MarkEventProcessed claims an event id. Returns ErrAlreadyProcessed when a
// prior delivery already claimed it; the unique constraint on event_id makes
// the claim race-free.
func (s *WebhookService) MarkEventProcessed(ctx context.Context, eventID, source string) error {
	_, err := s.client.WebhookEvent.Create().
		SetID(uuid.New().String()).
		SetEventID(eventID).
		SetSource(source).
		SetReceivedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyProcessed
		}
		return fmt.Errorf("failed to record webhook event: %w", err)
	}
	return nil
}

// ProcessInvoicePaid credits minutes to a user for a paid invoice event.
// Duplicate event ids return nil without re-crediting.
func (s *WebhookService) ProcessInvoicePaid(ctx context.Context, eventID, userID string, minutes int) error {
	if minutes <= 0 {
		return NewValidationError("minutes", "must be positive")
	}

	if err := s.MarkEventProcessed(ctx, eventID, "subscription"); err != nil {
		if err == ErrAlreadyProcessed {
			return nil
		}
		return err
	}

	return s.billing.Add(ctx, userID, minutes)
}
