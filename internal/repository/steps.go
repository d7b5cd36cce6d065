package repository

import (
	"context"
	"database/sql"

	"github.com/skillforge/journey-service/internal/models"
)

// CreateStep inserts a step after confirming, in the same transaction,
// that the parent journey belongs to userID. The foreign key keeps a
// concurrent journey delete from leaving the insert dangling.
func (r *Repository) CreateStep(ctx context.Context, step *models.Step, userID int64) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		var owned bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM journeys WHERE id = $1 AND user_id = $2)`,
			step.JourneyID, userID).Scan(&owned)
		if err != nil {
			return translate(err)
		}
		if !owned {
			return ErrNotFound
		}

		description := sql.NullString{String: step.Description, Valid: step.Description != ""}
		err = tx.QueryRowContext(ctx, `
			INSERT INTO steps (title, description, journey_id)
			VALUES ($1, $2, $3)
			RETURNING id, is_complete, created_at`,
			step.Title, description, step.JourneyID).
			Scan(&step.ID, &step.IsComplete, &step.CreatedAt)
		return translate(err)
	})
}

// FindStep retrieves a step only if its parent journey is owned by
// userID. Steps carry no owner column, so ownership always resolves
// through the join.
func (r *Repository) FindStep(ctx context.Context, id, userID int64) (*models.Step, error) {
	step := &models.Step{}
	var description sql.NullString
	query := `
		SELECT s.id, s.title, s.description, s.is_complete, s.created_at, s.journey_id
		FROM steps s
		JOIN journeys j ON j.id = s.journey_id
		WHERE s.id = $1 AND j.user_id = $2`
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&step.ID, &step.Title, &description, &step.IsComplete, &step.CreatedAt, &step.JourneyID)
	if err != nil {
		return nil, translate(err)
	}
	step.Description = description.String
	return step, nil
}

// ListSteps returns the steps of a journey in creation order
func (r *Repository) ListSteps(ctx context.Context, journeyID int64) ([]models.Step, error) {
	query := `
		SELECT id, title, description, is_complete, created_at, journey_id
		FROM steps
		WHERE journey_id = $1
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, journeyID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	steps := []models.Step{}
	for rows.Next() {
		var step models.Step
		var description sql.NullString
		if err := rows.Scan(&step.ID, &step.Title, &description,
			&step.IsComplete, &step.CreatedAt, &step.JourneyID); err != nil {
			return nil, translate(err)
		}
		step.Description = description.String
		steps = append(steps, step)
	}
	return steps, translate(rows.Err())
}

// UpdateStep updates a step scoped through its parent journey's owner
func (r *Repository) UpdateStep(ctx context.Context, step *models.Step, userID int64) error {
	query := `
		UPDATE steps
		SET title = $1, description = $2, is_complete = $3
		FROM journeys j
		WHERE steps.id = $4 AND j.id = steps.journey_id AND j.user_id = $5`
	description := sql.NullString{String: step.Description, Valid: step.Description != ""}
	res, err := r.db.ExecContext(ctx, query, step.Title, description, step.IsComplete, step.ID, userID)
	if err != nil {
		return translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return translate(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteStep deletes a step scoped through its parent journey's owner
func (r *Repository) DeleteStep(ctx context.Context, id, userID int64) error {
	query := `
		DELETE FROM steps
		USING journeys j
		WHERE steps.id = $1 AND j.id = steps.journey_id AND j.user_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return translate(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleStepComplete flips the completion flag of an owned step and
// returns the updated row
func (r *Repository) ToggleStepComplete(ctx context.Context, id, userID int64) (*models.Step, error) {
	step := &models.Step{}
	var description sql.NullString
	query := `
		UPDATE steps
		SET is_complete = NOT is_complete
		FROM journeys j
		WHERE steps.id = $1 AND j.id = steps.journey_id AND j.user_id = $2
		RETURNING steps.id, steps.title, steps.description, steps.is_complete,
		          steps.created_at, steps.journey_id`
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&step.ID, &step.Title, &description, &step.IsComplete, &step.CreatedAt, &step.JourneyID)
	if err != nil {
		return nil, translate(err)
	}
	step.Description = description.String
	return step, nil
}
