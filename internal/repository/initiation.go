package repository

import (
	"context"
	"errors"

	"github.com/clearhire/clearhire-api/internal/database"
	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/jackc/pgx/v5"
)

type InitiationRepository struct {
	db *database.DB
}

func NewInitiationRepository(db *database.DB) *InitiationRepository {
	return &InitiationRepository{db: db}
}

func (r *InitiationRepository) Create(ctx context.Context, meta *models.InitiationMetadata) error {
	return Create(ctx, r.db, meta)
}

func (r *InitiationRepository) FindByFormID(ctx context.Context, formID string) (*models.InitiationMetadata, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT * FROM initiation_metadata WHERE form_id = $1`, formID)
	if err != nil {
		return nil, err
	}
	rec, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return models.InitiationMetadataFromRecord(rec)
}

type NotificationLogRepository struct {
	db *database.DB
}

func NewNotificationLogRepository(db *database.DB) *NotificationLogRepository {
	return &NotificationLogRepository{db: db}
}

func (r *NotificationLogRepository) Append(ctx context.Context, entry *models.NotificationLog) error {
	return Create(ctx, r.db, entry)
}

func (r *NotificationLogRepository) FindAllByFormID(ctx context.Context, formID string) ([]*models.NotificationLog, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT * FROM notification_log WHERE form_id = $1 ORDER BY id
	`, formID)
	if err != nil {
		return nil, err
	}
	return collectAll(rows, models.NotificationLogFromRecord)
}
