package postgre

import (
	"database/sql"
	"fmt"

	"karobar-dashboard/internal/report/repository"
	"karobar-dashboard/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed ProjectRepository.
func New(db *sql.DB, l log.Logger) repository.ProjectRepository {
	if db == nil {
		panic("report/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("report/repository/postgre.%s", method)
}
