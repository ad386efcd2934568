package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openscribe/scribe/pkg/services"
	testdb "github.com/openscribe/scribe/test/database"
)

func TestWebhookService_MarkEventProcessed(t *testing.T) {
	client := testdb.NewTestClient(t)
	billing := services.NewBillingService(client.Client)
	webhooks := services.NewWebhookService(client.Client, billing)
	ctx := context.Background()

	require.NoError(t, webhooks.MarkEventProcessed(ctx, "evt-1", "stt"))

	err := webhooks.MarkEventProcessed(ctx, "evt-1", "stt")
	assert.ErrorIs(t, err, services.ErrAlreadyProcessed)

	// Different event ids are independent.
	assert.NoError(t, webhooks.MarkEventProcessed(ctx, "evt-2", "stt"))
}

func TestWebhookService_ProcessInvoicePaid(t *testing.T) {
	client := testdb.NewTestClient(t)
	billing := services.NewBillingService(client.Client)
	webhooks := services.NewWebhookService(client.Client, billing)
	ctx := context.Background()

	userID := uuid.New().String()

	require.NoError(t, webhooks.ProcessInvoicePaid(ctx, "inv-1", userID, 120))

	minutes, err := billing.Minutes(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 120, minutes)

	// Redelivery of the same invoice event must not credit twice.
	require.NoError(t, webhooks.ProcessInvoicePaid(ctx, "inv-1", userID, 120))

	minutes, err = billing.Minutes(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 120, minutes)
}

func TestWebhookService_ProcessInvoicePaidRejectsNonPositiveMinutes(t *testing.T) {
	client := testdb.NewTestClient(t)
	billing := services.NewBillingService(client.Client)
	webhooks := services.NewWebhookService(client.Client, billing)

	err := webhooks.ProcessInvoicePaid(context.Background(), "inv-1", uuid.New().String(), 0)
	assert.True(t, services.IsValidationError(err))
}
