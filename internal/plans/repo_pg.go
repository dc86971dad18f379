package plans

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new plan.
func (r *PGRepo) Create(ctx context.Context, plan Plan) error {
	const query = `
INSERT INTO plans (id, player_name, skill_level, input_text, issues, document, catalog_version, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	issuesPayload, err := json.Marshal(plan.IssueIDs)
	if err != nil {
		return err
	}
	documentPayload, err := json.Marshal(plan.Document)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		plan.ID,
		plan.PlayerName,
		plan.SkillLevel,
		plan.InputText,
		issuesPayload,
		documentPayload,
		plan.CatalogVersion,
		plan.CreatedAt,
	)
	return err
}

// GetByID returns a plan by ID.
func (r *PGRepo) GetByID(ctx context.Context, planID string) (Plan, error) {
	const query = `
SELECT id, player_name, skill_level, input_text, issues, document, catalog_version, created_at
FROM plans
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, planID)
	plan, err := scanPlan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Plan{}, ErrNotFound
	}
	return plan, err
}

// List returns plans newest first, with limit/offset.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Plan, error) {
	const query = `
SELECT id, player_name, skill_level, input_text, issues, document, catalog_version, created_at
FROM plans
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := []Plan{}
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (Plan, error) {
	var plan Plan
	var issuesPayload []byte
	var documentPayload []byte
	if err := row.Scan(
		&plan.ID,
		&plan.PlayerName,
		&plan.SkillLevel,
		&plan.InputText,
		&issuesPayload,
		&documentPayload,
		&plan.CatalogVersion,
		&plan.CreatedAt,
	); err != nil {
		return Plan{}, err
	}
	if len(issuesPayload) > 0 {
		if err := json.Unmarshal(issuesPayload, &plan.IssueIDs); err != nil {
			return Plan{}, err
		}
	}
	if len(documentPayload) > 0 {
		if err := json.Unmarshal(documentPayload, &plan.Document); err != nil {
			return Plan{}, err
		}
	}
	return plan, nil
}
