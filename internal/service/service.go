// Package service holds the business logic. Every resource operation
// is scoped to the authenticated caller's user id: resources that are
// absent and resources owned by someone else are both reported as not
// found.
package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/skillforge/journey-service/internal/auth"
	"github.com/skillforge/journey-service/internal/models"
)

// Store is the persistence surface the service depends on
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByLogin(ctx context.Context, login string) (*models.User, error)

	CreateJourney(ctx context.Context, journey *models.Journey) error
	ListJourneys(ctx context.Context, userID int64) ([]models.Journey, error)
	FindJourney(ctx context.Context, id, userID int64) (*models.Journey, error)
	UpdateJourney(ctx context.Context, journey *models.Journey) error
	DeleteJourney(ctx context.Context, id, userID int64) error

	CreateStep(ctx context.Context, step *models.Step, userID int64) error
	FindStep(ctx context.Context, id, userID int64) (*models.Step, error)
	ListSteps(ctx context.Context, journeyID int64) ([]models.Step, error)
	UpdateStep(ctx context.Context, step *models.Step, userID int64) error
	DeleteStep(ctx context.Context, id, userID int64) error
	ToggleStepComplete(ctx context.Context, id, userID int64) (*models.Step, error)

	RevokeToken(ctx context.Context, jti string) error
	DeleteRevokedTokensBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Mailer sends account notifications. Optional: a nil Mailer disables
// them.
type Mailer interface {
	SendWelcome(to, username string) error
}

// Service handles business logic
type Service struct {
	store      Store
	tokens     *auth.TokenManager
	mailer     Mailer
	log        *logrus.Logger
	bcryptCost int
}

// NewService initializes a new service
func NewService(store Store, tokens *auth.TokenManager, mailer Mailer, log *logrus.Logger, bcryptCost int) *Service {
	return &Service{store: store, tokens: tokens, mailer: mailer, log: log, bcryptCost: bcryptCost}
}
