package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/openscribe/scribe/ent"
	"github.com/openscribe/scribe/ent/anontoken"
	"github.com/openscribe/scribe/ent/balance"
	"github.com/openscribe/scribe/ent/predicate"
	"github.com/openscribe/scribe/ent/trialusage"
)

// BillingService is the metering ledger: atomic balance deductions, trial
// usage recording, and trial-to-user binding on signup.
type BillingService struct {
	client *ent.Client
}

// NewBillingService creates a new BillingService.
func NewBillingService(client *ent.Client) *BillingService {
	if client == nil {
		panic("NewBillingService: client must not be nil")
	}
	return &BillingService{client: client}
}

// Deduct atomically subtracts minutes from the user's balance. The update is
// conditional on minutes_balance >= minutes, so concurrent deductions are
// linearizable and the balance can never go negative. Returns false without
// mutation when the balance is insufficient.
func (s *BillingService) Deduct(ctx context.Context, userID string, minutes int) (bool, error) {
	if minutes <= 0 {
		return true, nil
	}

	n, err := s.client.Balance.Update().
		Where(
			balance.UserIDEQ(userID),
			balance.MinutesBalanceGTE(minutes),
		).
		AddMinutesBalance(-minutes).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to deduct balance: %w", err)
	}

	return n == 1, nil
}

// Add credits minutes to the user's balance, creating a zero-based row first
// if the user has none.
func (s *BillingService) Add(ctx context.Context, userID string, minutes int) error {
	err := s.client.Balance.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetMinutesBalance(minutes).
		OnConflictColumns(balance.FieldUserID).
		Update(func(b *ent.BalanceUpsert) {
			b.AddMinutesBalance(minutes)
			b.SetUpdatedAt(time.Now())
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to add balance: %w", err)
	}
	return nil
}

// EnsureBalance creates the user's zero-based balance row if missing.
// Called on user registration.
func (s *BillingService) EnsureBalance(ctx context.Context, userID string) error {
	err := s.client.Balance.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetMinutesBalance(0).
		OnConflictColumns(balance.FieldUserID).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to ensure balance: %w", err)
	}
	return nil
}

// Minutes returns the user's current balance. A missing row reads as zero.
func (s *BillingService) Minutes(ctx context.Context, userID string) (int, error) {
	b, err := s.client.Balance.Query().
		Where(balance.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to load balance: %w", err)
	}
	return b.MinutesBalance, nil
}

// RecordTrial appends a TrialUsage row and flips the anon token's used_trial
// flag. The flag flip is an idempotent upsert, so concurrent recordings for
// the same anon id converge.
func (s *BillingService) RecordTrial(ctx context.Context, userID, anonID string) error {
	if userID == "" && anonID == "" {
		return NewValidationError("owner", "either user_id or anon_id is required")
	}

	create := s.client.TrialUsage.Create().
		SetID(uuid.New().String()).
		SetUsedAt(time.Now())
	if userID != "" {
		create.SetUserID(userID)
	}
	if anonID != "" {
		create.SetAnonID(anonID)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to record trial usage: %w", err)
	}

	if anonID != "" {
		err := s.client.AnonToken.Create().
			SetID(uuid.New().String()).
			SetAnonID(anonID).
			SetUsedTrial(true).
			OnConflictColumns(anontoken.FieldAnonID).
			Update(func(t *ent.AnonTokenUpsert) {
				t.SetUsedTrial(true)
			}).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to mark anon token: %w", err)
		}
	}

	return nil
}

// CheckTrial reports whether the identified caller has already consumed a
// trial: a TrialUsage row exists for the user, or the anon token is marked.
func (s *BillingService) CheckTrial(ctx context.Context, userID, anonID string) (bool, error) {
	var preds []predicate.TrialUsage
	if userID != "" {
		preds = append(preds, trialusage.UserIDEQ(userID))
	}
	if anonID != "" {
		preds = append(preds, trialusage.AnonIDEQ(anonID))
	}
	if len(preds) == 0 {
		return false, NewValidationError("owner", "either user_id or anon_id is required")
	}

	used, err := s.client.TrialUsage.Query().
		Where(trialusage.Or(preds...)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to query trial usage: %w", err)
	}
	if used {
		return true, nil
	}

	if anonID != "" {
		marked, err := s.client.AnonToken.Query().
			Where(
				anontoken.AnonIDEQ(anonID),
				anontoken.UsedTrial(true),
			).
			Exist(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to query anon token: %w", err)
		}
		if marked {
			return true, nil
		}
	}

	return false, nil
}

// BindTrialToUser reattributes anonymous TrialUsage rows to a freshly signed
// up user, so the consumed trial follows the account.
func (s *BillingService) BindTrialToUser(ctx context.Context, userID, anonID string) error {
	if userID == "" || anonID == "" {
		return NewValidationError("owner", "both user_id and anon_id are required")
	}

	_, err := s.client.TrialUsage.Update().
		Where(
			trialusage.AnonIDEQ(anonID),
			trialusage.UserIDIsNil(),
		).
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to bind trial usage: %w", err)
	}
	return nil
}
