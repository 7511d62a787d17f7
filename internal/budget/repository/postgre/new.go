package postgre

import (
	"database/sql"
	"fmt"

	"karobar-dashboard/internal/budget/repository"
	"karobar-dashboard/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed BudgetRepository.
func New(db *sql.DB, l log.Logger) repository.BudgetRepository {
	if db == nil {
		panic("budget/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("budget/repository/postgre.%s", method)
}
