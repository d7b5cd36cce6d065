package service

import (
	"context"
	"fmt"

	"github.com/skillforge/journey-service/internal/models"
)

// CreateJourney creates a journey for the authenticated user. The
// owner always comes from the verified identity, never the request
// body.
func (s *Service) CreateJourney(ctx context.Context, userID int64, title, description string) (*models.Journey, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	journey := &models.Journey{
		Title:       title,
		Description: description,
		UserID:      userID,
	}
	if err := s.store.CreateJourney(ctx, journey); err != nil {
		return nil, mapStoreErr(err)
	}

	s.log.Infof("Journey %d created for user %d", journey.ID, userID)
	return journey, nil
}

// ListJourneys returns the caller's journeys
func (s *Service) ListJourneys(ctx context.Context, userID int64) ([]models.Journey, error) {
	journeys, err := s.store.ListJourneys(ctx, userID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return journeys, nil
}

// GetJourney returns an owned journey together with its steps
func (s *Service) GetJourney(ctx context.Context, id, userID int64) (*models.Journey, error) {
	journey, err := s.store.FindJourney(ctx, id, userID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	steps, err := s.store.ListSteps(ctx, journey.ID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	journey.Steps = steps
	return journey, nil
}

// UpdateJourney applies a partial update to an owned journey; nil
// fields keep their current value
func (s *Service) UpdateJourney(ctx context.Context, id, userID int64, title, description *string) (*models.Journey, error) {
	journey, err := s.store.FindJourney(ctx, id, userID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if title != nil {
		if *title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		journey.Title = *title
	}
	if description != nil {
		journey.Description = *description
	}

	if err := s.store.UpdateJourney(ctx, journey); err != nil {
		return nil, mapStoreErr(err)
	}
	return journey, nil
}

// DeleteJourney deletes an owned journey and, atomically, every step
// inside it
func (s *Service) DeleteJourney(ctx context.Context, id, userID int64) error {
	if err := s.store.DeleteJourney(ctx, id, userID); err != nil {
		return mapStoreErr(err)
	}
	s.log.Infof("Journey %d deleted by user %d", id, userID)
	return nil
}
