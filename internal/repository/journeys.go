package repository

import (
	"context"
	"database/sql"

	"github.com/skillforge/journey-service/internal/models"
)

// CreateJourney creates a new journey owned by journey.UserID
func (r *Repository) CreateJourney(ctx context.Context, journey *models.Journey) error {
	query := `
		INSERT INTO journeys (title, description, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	description := sql.NullString{String: journey.Description, Valid: journey.Description != ""}
	err := r.db.QueryRowContext(ctx, query, journey.Title, description, journey.UserID).
		Scan(&journey.ID, &journey.CreatedAt)
	return translate(err)
}

// ListJourneys returns the journeys owned by userID with a count of
// their steps
func (r *Repository) ListJourneys(ctx context.Context, userID int64) ([]models.Journey, error) {
	query := `
		SELECT j.id, j.title, j.description, j.created_at, j.user_id, COUNT(s.id)
		FROM journeys j
		LEFT JOIN steps s ON s.journey_id = j.id
		WHERE j.user_id = $1
		GROUP BY j.id
		ORDER BY j.id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	journeys := []models.Journey{}
	for rows.Next() {
		var journey models.Journey
		var description sql.NullString
		if err := rows.Scan(&journey.ID, &journey.Title, &description,
			&journey.CreatedAt, &journey.UserID, &journey.StepsCount); err != nil {
			return nil, translate(err)
		}
		journey.Description = description.String
		journeys = append(journeys, journey)
	}
	return journeys, translate(rows.Err())
}

// FindJourney retrieves a journey only if it is owned by userID; a
// mismatch is indistinguishable from absence.
func (r *Repository) FindJourney(ctx context.Context, id, userID int64) (*models.Journey, error) {
	journey := &models.Journey{}
	var description sql.NullString
	query := `
		SELECT id, title, description, created_at, user_id
		FROM journeys
		WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&journey.ID, &journey.Title, &description, &journey.CreatedAt, &journey.UserID)
	if err != nil {
		return nil, translate(err)
	}
	journey.Description = description.String
	return journey, nil
}

// UpdateJourney updates title and description of an owned journey
func (r *Repository) UpdateJourney(ctx context.Context, journey *models.Journey) error {
	query := `
		UPDATE journeys
		SET title = $1, description = $2
		WHERE id = $3 AND user_id = $4`
	description := sql.NullString{String: journey.Description, Valid: journey.Description != ""}
	res, err := r.db.ExecContext(ctx, query, journey.Title, description, journey.ID, journey.UserID)
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

// DeleteJourney deletes an owned journey. Child steps are removed by
// the ON DELETE CASCADE constraint inside the same statement, so the
// cascade cannot be partial.
func (r *Repository) DeleteJourney(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM journeys WHERE id = $1 AND user_id = $2`, id, userID)
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
