package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"karobar-dashboard/internal/model"
	"karobar-dashboard/internal/payment"
	"karobar-dashboard/pkg/easypaisa"
	"karobar-dashboard/pkg/jazzcash"
)

// Checkout validates the request, builds the vendor redirect, waits out the
// simulated gateway delay, then either fails transiently or records the
// transaction and upgrades the user's tier. Failures mutate nothing and are
// never retried here.
func (uc *implUseCase) Checkout(ctx context.Context, input payment.CheckoutInput) (payment.CheckoutOutput, error) {
	if err := validate(input); err != nil {
		return payment.CheckoutOutput{}, err
	}

	now := uc.now()
	txnID := uuid.New().String()

	checkoutURL, err := uc.checkoutURL(input, txnID, now)
	if err != nil {
		return payment.CheckoutOutput{}, err
	}

	if err := uc.simulateGateway(ctx); err != nil {
		uc.l.Warnf(ctx, "uc.Checkout gateway %s: %v", input.Provider, err)
		return payment.CheckoutOutput{}, err
	}

	txn := model.Transaction{
		ID:        txnID,
		UserID:    input.UserID,
		Provider:  input.Provider,
		Amount:    input.Amount,
		Currency:  "PKR",
		Plan:      string(input.Plan),
		Status:    model.TransactionCompleted,
		CreatedAt: now,
	}
	if _, err := uc.repo.CreateTransaction(ctx, txn); err != nil {
		uc.l.Errorf(ctx, "uc.Checkout CreateTransaction: %v", err)
		return payment.CheckoutOutput{}, err
	}

	if err := uc.tiers.SetTier(ctx, input.UserID, input.Plan); err != nil {
		uc.l.Errorf(ctx, "uc.Checkout SetTier: %v", err)
		return payment.CheckoutOutput{}, err
	}

	uc.l.Infof(ctx, "payment completed: user=%s provider=%s plan=%s txn=%s",
		input.UserID, input.Provider, input.Plan, txnID)

	return payment.CheckoutOutput{Transaction: txn, CheckoutURL: checkoutURL}, nil
}

func validate(input payment.CheckoutInput) error {
	if input.UserID == "" {
		return payment.ErrMissingUser
	}
	if input.Amount <= 0 {
		return payment.ErrInvalidAmount
	}
	switch input.Plan {
	case model.TierStarter, model.TierProfessional:
	default:
		return payment.ErrUnknownTier
	}
	switch input.Provider {
	case model.ProviderJazzCash, model.ProviderEasyPaisa:
	default:
		return payment.ErrUnknownProvider
	}
	return nil
}

func (uc *implUseCase) checkoutURL(input payment.CheckoutInput, txnID string, now time.Time) (string, error) {
	switch input.Provider {
	case model.ProviderJazzCash:
		return uc.jazz.CheckoutURL(jazzcash.CheckoutRequest{
			Amount:      input.Amount,
			OrderRef:    txnID,
			Description: fmt.Sprintf("%s plan upgrade", input.Plan),
			RequestedAt: now,
		}), nil
	case model.ProviderEasyPaisa:
		return uc.easy.CheckoutURL(easypaisa.CheckoutRequest{
			Amount:      input.Amount,
			OrderRef:    txnID,
			RequestedAt: now,
		}), nil
	default:
		return "", payment.ErrUnknownProvider
	}
}

// simulateGateway waits the configured delay (honoring ctx cancellation)
// then rolls the transient-failure dice.
func (uc *implUseCase) simulateGateway(ctx context.Context) error {
	if uc.cfg.SimulatedDelay > 0 {
		timer := time.NewTimer(uc.cfg.SimulatedDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if uc.roll() < uc.cfg.FailureRate {
		return payment.ErrGatewayUnavailable
	}
	return nil
}
