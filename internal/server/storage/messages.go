package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"teamspace/internal/server/models"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	ListByTeam(ctx context.Context, teamID string) ([]models.Message, error)
}

type Messages struct {
	db *sql.DB
}

func NewMessages(db *sql.DB) *Messages {
	return &Messages{db: db}
}

func (r *Messages) Create(ctx context.Context, msg *models.Message) error {
	msg.ID = uuid.NewString()

	query := `INSERT INTO messages (id, team_id, sender_email, text, sent_at)
	          VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.ExecContext(ctx, query,
		msg.ID, msg.TeamID, msg.SenderEmail, msg.Text, msg.SentAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *Messages) ListByTeam(ctx context.Context, teamID string) ([]models.Message, error) {
	query := `SELECT id, team_id, sender_email, text, sent_at FROM messages
	          WHERE team_id = $1
	          ORDER BY sent_at`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var msgs []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.TeamID, &m.SenderEmail, &m.Text, &m.SentAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

var _ MessageRepository = (*Messages)(nil)
