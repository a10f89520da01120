package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"teamspace/internal/server/models"
)

type PhotoRepository interface {
	Create(ctx context.Context, photo *models.Photo) error
	ListByTeam(ctx context.Context, teamID string) ([]models.Photo, error)
	Delete(ctx context.Context, photoID string) error
}

type Photos struct {
	db *sql.DB
}

func NewPhotos(db *sql.DB) *Photos {
	return &Photos{db: db}
}

func (r *Photos) Create(ctx context.Context, photo *models.Photo) error {
	photo.ID = uuid.NewString()

	query := `INSERT INTO photos (id, team_id, image_data, uploaded_at)
	          VALUES ($1, $2, $3, $4)`

	if _, err := r.db.ExecContext(ctx, query,
		photo.ID, photo.TeamID, photo.ImageData, photo.UploadedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *Photos) ListByTeam(ctx context.Context, teamID string) ([]models.Photo, error) {
	query := `SELECT id, team_id, image_data, uploaded_at FROM photos
	          WHERE team_id = $1
	          ORDER BY uploaded_at`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var photos []models.Photo
	for rows.Next() {
		var p models.Photo
		if err := rows.Scan(&p.ID, &p.TeamID, &p.ImageData, &p.UploadedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (r *Photos) Delete(ctx context.Context, photoID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM photos WHERE id = $1`, photoID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

var _ PhotoRepository = (*Photos)(nil)
var _ TeamRepository = (*Teams)(nil)
var _ UserRepository = (*Users)(nil)
