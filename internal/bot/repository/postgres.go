package repository

import (
	"context"
	"database/sql"
	"errors"

	"team-chat-platform/backend/internal/bot/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a bot repository backed by db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const botColumns = "id, org_id, name, description, created_by, created_at"

// GetBotByID returns the bot for id, or nil if not found.
func (r *PostgresRepository) GetBotByID(ctx context.Context, id string) (*domain.Bot, error) {
	var b domain.Bot
	err := r.db.QueryRowContext(ctx,
		"SELECT "+botColumns+" FROM bots WHERE id = $1", id).
		Scan(&b.ID, &b.OrgID, &b.Name, &b.Description, &b.CreatedBy, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// ListBotsByOrg returns all bots belonging to the given org.
func (r *PostgresRepository) ListBotsByOrg(ctx context.Context, orgID string) ([]*domain.Bot, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+botColumns+" FROM bots WHERE org_id = $1 ORDER BY created_at", orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Bot
	for rows.Next() {
		var b domain.Bot
		if err := rows.Scan(&b.ID, &b.OrgID, &b.Name, &b.Description, &b.CreatedBy, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}

// CreateBot persists the bot. The bot must have ID set and be valid.
func (r *PostgresRepository) CreateBot(ctx context.Context, b *domain.Bot) error {
	if err := b.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO bots (id, org_id, name, description, created_by, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		b.ID, b.OrgID, b.Name, b.Description, b.CreatedBy, b.CreatedAt)
	return err
}

// UpdateBot updates name and description.
func (r *PostgresRepository) UpdateBot(ctx context.Context, b *domain.Bot) error {
	if err := b.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"UPDATE bots SET name = $2, description = $3 WHERE id = $1",
		b.ID, b.Name, b.Description)
	return err
}

// DeleteBot removes the bot.
func (r *PostgresRepository) DeleteBot(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM bots WHERE id = $1", id)
	return err
}
