package postgre

import (
	"context"
	"database/sql"
	"encoding/json"

	"karobar-dashboard/internal/budget/repository"
	"karobar-dashboard/internal/model"
)

// Categories are stored as a JSONB column: they are always read and written
// as a whole with their budget, never queried independently.

func (r *implRepository) CreateBudget(ctx context.Context, b model.Budget) (model.Budget, error) {
	const query = `
		INSERT INTO budgets (id, name, total_amount, period, status, categories, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	cats, err := json.Marshal(b.Categories)
	if err != nil {
		return model.Budget{}, repository.ErrFailedToInsert
	}

	if _, err := r.db.ExecContext(ctx, query,
		b.ID, b.Name, b.TotalAmount, b.Period, b.Status, cats, b.CreatedAt, b.UpdatedAt,
	); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBudget"), err)
		return model.Budget{}, repository.ErrFailedToInsert
	}
	return b, nil
}

// GetOneBudget returns a zero-value Budget (ID == "") when not found.
func (r *implRepository) GetOneBudget(ctx context.Context, id string) (model.Budget, error) {
	const query = `
		SELECT id, name, total_amount, period, status, categories, created_at, updated_at
		FROM budgets WHERE id = $1`

	b, err := r.scanBudget(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Budget{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneBudget"), err)
		return model.Budget{}, repository.ErrFailedToGet
	}
	return b, nil
}

func (r *implRepository) ListBudgets(ctx context.Context) ([]model.Budget, error) {
	const query = `
		SELECT id, name, total_amount, period, status, categories, created_at, updated_at
		FROM budgets ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBudgets"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var budgets []model.Budget
	for rows.Next() {
		b, err := r.scanBudget(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListBudgets"), err)
			return nil, repository.ErrFailedToList
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListBudgets"), err)
		return nil, repository.ErrFailedToList
	}
	return budgets, nil
}

func (r *implRepository) UpdateBudget(ctx context.Context, b model.Budget) (model.Budget, error) {
	const query = `
		UPDATE budgets
		SET name = $2, total_amount = $3, period = $4, status = $5, categories = $6, updated_at = $7
		WHERE id = $1`

	cats, err := json.Marshal(b.Categories)
	if err != nil {
		return model.Budget{}, repository.ErrFailedToUpdate
	}

	res, err := r.db.ExecContext(ctx, query,
		b.ID, b.Name, b.TotalAmount, b.Period, b.Status, cats, b.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateBudget"), err)
		return model.Budget{}, repository.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Budget{}, repository.ErrFailedToUpdate
	}
	return b, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanBudget(row rowScanner) (model.Budget, error) {
	var (
		b    model.Budget
		cats []byte
	)
	if err := row.Scan(&b.ID, &b.Name, &b.TotalAmount, &b.Period, &b.Status, &cats, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return model.Budget{}, err
	}
	if len(cats) > 0 {
		if err := json.Unmarshal(cats, &b.Categories); err != nil {
			return model.Budget{}, err
		}
	}
	return b, nil
}
