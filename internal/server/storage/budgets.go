package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"teamspace/internal/server/models"
)

type BudgetRepository interface {
	Get(ctx context.Context, teamID string) (*models.Budget, error)

	// Add applies delta atomically and returns the new total. Concurrent
	// clients cannot lose each other's increments: the arithmetic happens
	// in one statement at the database.
	Add(ctx context.Context, teamID string, delta float64) (*models.Budget, error)
}

type Budgets struct {
	db *sql.DB
}

func NewBudgets(db *sql.DB) *Budgets {
	return &Budgets{db: db}
}

// Get returns the team's total, zero if the team never had an update.
func (r *Budgets) Get(ctx context.Context, teamID string) (*models.Budget, error) {
	query := `SELECT total FROM budgets WHERE team_id = $1`

	b := &models.Budget{TeamID: teamID}
	err := r.db.QueryRowContext(ctx, query, teamID).Scan(&b.Total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return b, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return b, nil
}

func (r *Budgets) Add(ctx context.Context, teamID string, delta float64) (*models.Budget, error) {
	query := `INSERT INTO budgets (team_id, total) VALUES ($1, $2)
	          ON CONFLICT (team_id)
	          DO UPDATE SET total = budgets.total + EXCLUDED.total, updated_at = now()
	          RETURNING total`

	b := &models.Budget{TeamID: teamID}
	err := r.db.QueryRowContext(ctx, query, teamID, delta).Scan(&b.Total)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return b, nil
}

var _ BudgetRepository = (*Budgets)(nil)
