package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openscribe/scribe/pkg/services"
	testdb "github.com/openscribe/scribe/test/database"
)

func TestBillingService_DeductGuardsBalance(t *testing.T) {
	client := testdb.NewTestClient(t)
	billing := services.NewBillingService(client.Client)
	ctx := context.Background()

	userID := uuid.New().String()
	require.NoError(t, billing.Add(ctx, userID, 10))

	ok, err := billing.Deduct(ctx, userID, 7)
	require.NoError(t, err)
	assert.True(t, ok)

	// 3 left; a second deduction of 7 must refuse without mutation.
	ok, err = billing.Deduct(ctx, userID, 7)
	require.NoError(t, err)
	assert.False(t, ok)

	minutes, err := billing.Minutes(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, minutes)
}

func TestBillingService_ConcurrentDeducts(t *testing.T) {
	client := testdb.NewTestClient(t)
	billing := services.NewBillingService(client.Client)
	ctx := context.Background()

	userID := uuid.New().String()
	require.NoError(t, billing.Add(ctx, userID, 10))

	// Two concurrent deductions of 7 against a balance of 10: exactly one
	// wins, and the balance never goes negative.
	var wg sync.WaitGroup
	results := make([]bool, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := billing.Deduct(ctx, userID, 7)
			require.NoError(t, err)
			results[i] = ok
		}(i)
	}
	wg.Wait()

	assert.NotEqual(t, results[0], results[1], "exactly one deduction must win")

	minutes, err := billing.Minutes(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, minutes)
}

func TestBillingService_DeductZeroIsNoop(t *testing.T) {
	client := testdb.NewTestClient(t)
	billing := services.NewBillingService(client.Client)

	ok, err := billing.Deduct(context.Background(), uuid.New().String(), 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBillingService_AddCreatesMissingRow(t *testing.T) {
	client := testdb.NewTestClient(t)
	billing := services.NewBillingService(client.Client)
	ctx := context.Background()

	userID := uuid.New().String()

	// Missing row reads as zero.
	minutes, err := billing.Minutes(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, minutes)

	require.NoError(t, billing.Add(ctx, userID, 30))
	require.NoError(t, billing.Add(ctx, userID, 15))

	minutes, err = billing.Minutes(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 45, minutes)
}

func TestBillingService_EnsureBalanceIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	billing := services.NewBillingService(client.Client)
	ctx := context.Background()

	userID := uuid.New().String()
	require.NoError(t, billing.Add(ctx, userID, 30))

	// Ensuring after a credit must not reset the balance.
	require.NoError(t, billing.EnsureBalance(ctx, userID))

	minutes, err := billing.Minutes(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 30, minutes)
}

func TestBillingService_TrialLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	billing := services.NewBillingService(client.Client)
	ctx := context.Background()

	anonID := uuid.New().String()

	used, err := billing.CheckTrial(ctx, "", anonID)
	require.NoError(t, err)
	assert.False(t, used)

	require.NoError(t, billing.RecordTrial(ctx, "", anonID))

	used, err = billing.CheckTrial(ctx, "", anonID)
	require.NoError(t, err)
	assert.True(t, used)

	// Recording again is harmless (the flag flip is idempotent).
	require.NoError(t, billing.RecordTrial(ctx, "", anonID))
}

func TestBillingService_BindTrialToUser(t *testing.T) {
	client := testdb.NewTestClient(t)
	billing := services.NewBillingService(client.Client)
	ctx := context.Background()

	anonID := uuid.New().String()
	userID := uuid.New().String()

	require.NoError(t, billing.RecordTrial(ctx, "", anonID))
	require.NoError(t, billing.BindTrialToUser(ctx, userID, anonID))

	// The consumed trial follows the new account.
	used, err := billing.CheckTrial(ctx, userID, "")
	require.NoError(t, err)
	assert.True(t, used)
}

func TestBillingService_CheckTrialRequiresOwner(t *testing.T) {
	client := testdb.NewTestClient(t)
	billing := services.NewBillingService(client.Client)

	_, err := billing.CheckTrial(context.Background(), "", "")
	assert.True(t, services.IsValidationError(err))
}
