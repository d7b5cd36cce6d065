package service

import (
	"context"
	"fmt"

	"github.com/skillforge/journey-service/internal/models"
)

// CreateStep adds a step to a journey the caller owns. Ownership of
// the parent journey is verified inside the same transaction as the
// insert.
func (s *Service) CreateStep(ctx context.Context, userID, journeyID int64, title, description string) (*models.Step, error) {
	if title == "" || journeyID == 0 {
		return nil, fmt.Errorf("%w: title and journey_id are required", ErrValidation)
	}

	step := &models.Step{
		Title:       title,
		Description: description,
		JourneyID:   journeyID,
	}
	if err := s.store.CreateStep(ctx, step, userID); err != nil {
		return nil, mapStoreErr(err)
	}

	s.log.Infof("Step %d created in journey %d", step.ID, journeyID)
	return step, nil
}

// GetStep returns a step whose parent journey the caller owns
func (s *Service) GetStep(ctx context.Context, id, userID int64) (*models.Step, error) {
	step, err := s.store.FindStep(ctx, id, userID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return step, nil
}

// UpdateStep applies a partial update to an owned step; nil fields
// keep their current value
func (s *Service) UpdateStep(ctx context.Context, id, userID int64, title, description *string, isComplete *bool) (*models.Step, error) {
	step, err := s.store.FindStep(ctx, id, userID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if title != nil {
		if *title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		step.Title = *title
	}
	if description != nil {
		step.Description = *description
	}
	if isComplete != nil {
		step.IsComplete = *isComplete
	}

	if err := s.store.UpdateStep(ctx, step, userID); err != nil {
		return nil, mapStoreErr(err)
	}
	return step, nil
}

// DeleteStep deletes an owned step
func (s *Service) DeleteStep(ctx context.Context, id, userID int64) error {
	if err := s.store.DeleteStep(ctx, id, userID); err != nil {
		return mapStoreErr(err)
	}
	return nil
}

// ToggleStepComplete flips the completion flag of an owned step
func (s *Service) ToggleStepComplete(ctx context.Context, id, userID int64) (*models.Step, error) {
	step, err := s.store.ToggleStepComplete(ctx, id, userID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return step, nil
}
