package repository

import (
	"context"
	"database/sql"
	"errors"

	"team-chat-platform/backend/internal/dmparticipant/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a DM participant repository backed by db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const participantColumns = "id, channel_id, user_id, last_read_at, created_at"

// GetParticipantByID returns the participant row for id, or nil if not found.
func (r *PostgresRepository) GetParticipantByID(ctx context.Context, id string) (*domain.Participant, error) {
	return scanParticipant(r.db.QueryRowContext(ctx,
		"SELECT "+participantColumns+" FROM dm_participants WHERE id = $1", id))
}

// GetParticipantByChannelAndUser returns the participant row for (channel, user), or nil if not found.
func (r *PostgresRepository) GetParticipantByChannelAndUser(ctx context.Context, channelID, userID string) (*domain.Participant, error) {
	return scanParticipant(r.db.QueryRowContext(ctx,
		"SELECT "+participantColumns+" FROM dm_participants WHERE channel_id = $1 AND user_id = $2", channelID, userID))
}

// ListParticipantsByChannel returns all participant rows for the channel.
func (r *PostgresRepository) ListParticipantsByChannel(ctx context.Context, channelID string) ([]*domain.Participant, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+participantColumns+" FROM dm_participants WHERE channel_id = $1 ORDER BY created_at", channelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Participant
	for rows.Next() {
		var p domain.Participant
		if err := rows.Scan(&p.ID, &p.ChannelID, &p.UserID, &p.LastReadAt, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// CreateParticipant persists the participant row.
func (r *PostgresRepository) CreateParticipant(ctx context.Context, p *domain.Participant) error {
	if err := p.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO dm_participants (id, channel_id, user_id, created_at) VALUES ($1, $2, $3, $4)",
		p.ID, p.ChannelID, p.UserID, p.CreatedAt)
	return err
}

// DeleteParticipant removes the participant row.
func (r *PostgresRepository) DeleteParticipant(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM dm_participants WHERE id = $1", id)
	return err
}

// TouchLastRead stamps the participant's read cursor to now.
func (r *PostgresRepository) TouchLastRead(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE dm_participants SET last_read_at = NOW() WHERE id = $1", id)
	return err
}

func scanParticipant(row *sql.Row) (*domain.Participant, error) {
	var p domain.Participant
	if err := row.Scan(&p.ID, &p.ChannelID, &p.UserID, &p.LastReadAt, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
