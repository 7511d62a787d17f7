package payment

import "context"

// UseCase defines the business logic interface for the payment domain.
type UseCase interface {
	// Checkout runs one mocked gateway payment. On success the user's tier
	// is upgraded to the purchased plan; on any failure nothing is mutated.
	Checkout(ctx context.Context, input CheckoutInput) (CheckoutOutput, error)
}
