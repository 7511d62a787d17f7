package repository

import (
	"context"

	"karobar-dashboard/internal/model"
)

// TransactionRepository records completed checkout attempts.
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, t model.Transaction) (model.Transaction, error)
	ListTransactions(ctx context.Context, userID string) ([]model.Transaction, error)
}
