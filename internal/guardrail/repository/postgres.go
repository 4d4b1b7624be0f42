package repository

import (
	"context"
	"database/sql"
	"errors"

	"team-chat-platform/backend/internal/guardrail/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a guardrail rule repository backed by db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const ruleColumns = "id, org_id, rules, enabled, created_at"

// GetRuleByID returns the rule for id, or nil if not found.
func (r *PostgresRepository) GetRuleByID(ctx context.Context, id string) (*domain.Rule, error) {
	var rule domain.Rule
	err := r.db.QueryRowContext(ctx,
		"SELECT "+ruleColumns+" FROM guardrail_policies WHERE id = $1", id).
		Scan(&rule.ID, &rule.OrgID, &rule.Rules, &rule.Enabled, &rule.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

// ListRulesByOrg returns all rules for the org, enabled or not.
func (r *PostgresRepository) ListRulesByOrg(ctx context.Context, orgID string) ([]*domain.Rule, error) {
	return r.listByOrg(ctx, orgID, false)
}

// GetEnabledRulesByOrg returns the enabled rules for the org.
func (r *PostgresRepository) GetEnabledRulesByOrg(ctx context.Context, orgID string) ([]*domain.Rule, error) {
	return r.listByOrg(ctx, orgID, true)
}

func (r *PostgresRepository) listByOrg(ctx context.Context, orgID string, enabledOnly bool) ([]*domain.Rule, error) {
	q := "SELECT " + ruleColumns + " FROM guardrail_policies WHERE org_id = $1"
	if enabledOnly {
		q += " AND enabled"
	}
	q += " ORDER BY created_at"

	rows, err := r.db.QueryContext(ctx, q, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Rule
	for rows.Next() {
		var rule domain.Rule
		if err := rows.Scan(&rule.ID, &rule.OrgID, &rule.Rules, &rule.Enabled, &rule.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &rule)
	}
	return out, rows.Err()
}

// CreateRule persists the rule. The rule must have ID set.
func (r *PostgresRepository) CreateRule(ctx context.Context, rule *domain.Rule) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO guardrail_policies (id, org_id, rules, enabled, created_at) VALUES ($1, $2, $3, $4, $5)",
		rule.ID, rule.OrgID, rule.Rules, rule.Enabled, rule.CreatedAt)
	return err
}

// UpdateRule updates the rule's module text and enabled flag.
func (r *PostgresRepository) UpdateRule(ctx context.Context, rule *domain.Rule) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE guardrail_policies SET rules = $2, enabled = $3 WHERE id = $1",
		rule.ID, rule.Rules, rule.Enabled)
	return err
}

// DeleteRule removes the rule.
func (r *PostgresRepository) DeleteRule(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM guardrail_policies WHERE id = $1", id)
	return err
}
