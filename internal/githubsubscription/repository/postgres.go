package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"team-chat-platform/backend/internal/githubsubscription/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a GitHub subscription repository backed by db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const subColumns = "id, channel_id, org_id, repo, events, created_by, created_at"

// GetSubscriptionByID returns the subscription for id, or nil if not found.
func (r *PostgresRepository) GetSubscriptionByID(ctx context.Context, id string) (*domain.Subscription, error) {
	var s domain.Subscription
	err := r.db.QueryRowContext(ctx,
		"SELECT "+subColumns+" FROM github_subscriptions WHERE id = $1", id).
		Scan(&s.ID, &s.ChannelID, &s.OrgID, &s.Repo, pq.Array(&s.Events), &s.CreatedBy, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// ListSubscriptionsByChannel returns all subscriptions routing into the channel.
func (r *PostgresRepository) ListSubscriptionsByChannel(ctx context.Context, channelID string) ([]*domain.Subscription, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+subColumns+" FROM github_subscriptions WHERE channel_id = $1 ORDER BY created_at", channelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Subscription
	for rows.Next() {
		var s domain.Subscription
		if err := rows.Scan(&s.ID, &s.ChannelID, &s.OrgID, &s.Repo, pq.Array(&s.Events), &s.CreatedBy, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// CreateSubscription persists the subscription.
func (r *PostgresRepository) CreateSubscription(ctx context.Context, s *domain.Subscription) error {
	if err := s.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO github_subscriptions (id, channel_id, org_id, repo, events, created_by, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		s.ID, s.ChannelID, s.OrgID, s.Repo, pq.Array(s.Events), s.CreatedBy, s.CreatedAt)
	return err
}

// UpdateEvents replaces the subscribed event list.
func (r *PostgresRepository) UpdateEvents(ctx context.Context, id string, events []string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE github_subscriptions SET events = $2 WHERE id = $1", id, pq.Array(events))
	return err
}

// DeleteSubscription removes the subscription.
func (r *PostgresRepository) DeleteSubscription(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM github_subscriptions WHERE id = $1", id)
	return err
}
