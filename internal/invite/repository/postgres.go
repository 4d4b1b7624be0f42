package repository

import (
	"context"
	"database/sql"
	"errors"

	"team-chat-platform/backend/internal/invite/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an invite repository backed by db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const inviteColumns = "id, org_id, email, role, created_by, expires_at, created_at"

// GetInviteByID returns the invite for id, or nil if not found.
func (r *PostgresRepository) GetInviteByID(ctx context.Context, id string) (*domain.Invite, error) {
	var i domain.Invite
	err := r.db.QueryRowContext(ctx,
		"SELECT "+inviteColumns+" FROM invites WHERE id = $1", id).
		Scan(&i.ID, &i.OrgID, &i.Email, &i.Role, &i.CreatedBy, &i.ExpiresAt, &i.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}

// ListInvitesByOrg returns all pending invites for the org.
func (r *PostgresRepository) ListInvitesByOrg(ctx context.Context, orgID string) ([]*domain.Invite, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+inviteColumns+" FROM invites WHERE org_id = $1 ORDER BY created_at", orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Invite
	for rows.Next() {
		var i domain.Invite
		if err := rows.Scan(&i.ID, &i.OrgID, &i.Email, &i.Role, &i.CreatedBy, &i.ExpiresAt, &i.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &i)
	}
	return out, rows.Err()
}

// CreateInvite persists the invite.
func (r *PostgresRepository) CreateInvite(ctx context.Context, i *domain.Invite) error {
	if err := i.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO invites (id, org_id, email, role, created_by, expires_at, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		i.ID, i.OrgID, i.Email, i.Role, i.CreatedBy, i.ExpiresAt, i.CreatedAt)
	return err
}

// DeleteInvite removes (revokes) the invite.
func (r *PostgresRepository) DeleteInvite(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM invites WHERE id = $1", id)
	return err
}
