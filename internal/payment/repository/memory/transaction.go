package memory

import (
	"context"
	"sync"

	"karobar-dashboard/internal/model"
	"karobar-dashboard/internal/payment/repository"
)

type implRepository struct {
	mu           sync.RWMutex
	transactions []model.Transaction
}

// New creates an empty in-memory transaction repository.
func New() repository.TransactionRepository {
	return &implRepository{}
}

func (r *implRepository) CreateTransaction(ctx context.Context, t model.Transaction) (model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = append(r.transactions, t)
	return t, nil
}

func (r *implRepository) ListTransactions(ctx context.Context, userID string) ([]model.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Transaction
	for _, t := range r.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}
