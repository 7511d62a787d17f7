package usecase

import (
	"math/rand"
	"time"

	"karobar-dashboard/internal/payment/repository"
	"karobar-dashboard/internal/tier"
	"karobar-dashboard/pkg/easypaisa"
	"karobar-dashboard/pkg/jazzcash"
	"karobar-dashboard/pkg/log"
)

// Config tunes the mocked gateway behavior.
type Config struct {
	// SimulatedDelay is how long the fake gateway "processes" a payment.
	SimulatedDelay time.Duration
	// FailureRate is the probability in [0,1] that a checkout fails with a
	// transient gateway error.
	FailureRate float64
}

// implUseCase is the private implementation of payment.UseCase.
type implUseCase struct {
	l     log.Logger
	repo  repository.TransactionRepository
	tiers tier.Manager
	jazz  *jazzcash.Client
	easy  *easypaisa.Client
	cfg   Config

	now  func() time.Time
	roll func() float64 // uniform [0,1); swapped out in tests
}

// New creates a new payment UseCase implementation.
func New(l log.Logger, repo repository.TransactionRepository, tiers tier.Manager,
	jazz *jazzcash.Client, easy *easypaisa.Client, cfg Config) *implUseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		tiers: tiers,
		jazz:  jazz,
		easy:  easy,
		cfg:   cfg,
		now:   time.Now,
		roll:  rand.Float64,
	}
}
