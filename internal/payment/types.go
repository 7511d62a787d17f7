package payment

import "karobar-dashboard/internal/model"

// --- UseCase Inputs ---

type CheckoutInput struct {
	UserID   string
	Provider model.PaymentProvider
	Amount   float64
	Plan     model.Tier
}

// --- UseCase Outputs ---

type CheckoutOutput struct {
	Transaction model.Transaction
	// CheckoutURL is the vendor sandbox redirect the mocked gateway would
	// have sent the user to.
	CheckoutURL string
}
