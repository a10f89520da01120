package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"teamspace/internal/server/models"
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	ListByOwner(ctx context.Context, ownerEmail string) ([]models.Team, error)
}

type Teams struct {
	db *sql.DB
}

func NewTeams(db *sql.DB) *Teams {
	return &Teams{db: db}
}

// Create inserts the team with a freshly assigned id. The store, never the
// client, owns id assignment.
func (r *Teams) Create(ctx context.Context, team *models.Team) error {
	team.ID = uuid.NewString()

	query := `INSERT INTO teams (id, owner_email, name, description)
	          VALUES ($1, $2, $3, $4)
	          RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		team.ID, team.OwnerEmail, team.Name, team.Description).Scan(&team.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *Teams) ListByOwner(ctx context.Context, ownerEmail string) ([]models.Team, error) {
	query := `SELECT id, owner_email, name, description, created_at FROM teams
	          WHERE owner_email = $1
	          ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.OwnerEmail, &t.Name, &t.Description, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}
