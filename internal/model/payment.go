package model

import "time"

// PaymentProvider identifies a regional payment gateway.
type PaymentProvider string

const (
	ProviderJazzCash  PaymentProvider = "jazzcash"
	ProviderEasyPaisa PaymentProvider = "easypaisa"
)

// Transaction statuses.
const (
	TransactionCompleted = "completed"
	TransactionFailed    = "failed"
)

// Transaction is a recorded checkout attempt against the mocked gateway.
type Transaction struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Provider  PaymentProvider `json:"provider"`
	Amount    float64         `json:"amount"`
	Currency  string          `json:"currency"`
	Plan      string          `json:"plan"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}
