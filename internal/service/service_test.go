package service

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/skillforge/journey-service/internal/auth"
	"github.com/skillforge/journey-service/internal/models"
	"github.com/skillforge/journey-service/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// fakeStore is an in-memory Store that mirrors the database
// constraints the service relies on: unique username/email, ownership
// scoping and cascade delete of steps.
type fakeStore struct {
	mu       sync.Mutex
	users    map[int64]*models.User
	journeys map[int64]*models.Journey
	steps    map[int64]*models.Step
	revoked  map[string]time.Time
	nextID   int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    map[int64]*models.User{},
		journeys: map[int64]*models.Journey{},
		steps:    map[int64]*models.Step{},
		revoked:  map[string]time.Time{},
	}
}

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) CreateUser(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username || (user.Email != "" && u.Email == user.Email) {
			return repository.ErrDuplicate
		}
	}
	user.ID = f.id()
	user.CreatedAt = time.Now()
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeStore) FindUserByLogin(_ context.Context, login string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == login || (u.Email != "" && u.Email == login) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStore) CreateJourney(_ context.Context, journey *models.Journey) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	journey.ID = f.id()
	journey.CreatedAt = time.Now()
	clone := *journey
	f.journeys[journey.ID] = &clone
	return nil
}

func (f *fakeStore) ListJourneys(_ context.Context, userID int64) ([]models.Journey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	journeys := []models.Journey{}
	for _, j := range f.journeys {
		if j.UserID != userID {
			continue
		}
		clone := *j
		for _, s := range f.steps {
			if s.JourneyID == j.ID {
				clone.StepsCount++
			}
		}
		journeys = append(journeys, clone)
	}
	return journeys, nil
}

func (f *fakeStore) FindJourney(_ context.Context, id, userID int64) (*models.Journey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.journeys[id]
	if !ok || j.UserID != userID {
		return nil, repository.ErrNotFound
	}
	clone := *j
	return &clone, nil
}

func (f *fakeStore) UpdateJourney(_ context.Context, journey *models.Journey) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.journeys[journey.ID]
	if !ok || j.UserID != journey.UserID {
		return repository.ErrNotFound
	}
	j.Title = journey.Title
	j.Description = journey.Description
	return nil
}

func (f *fakeStore) DeleteJourney(_ context.Context, id, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.journeys[id]
	if !ok || j.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.journeys, id)
	for sid, s := range f.steps {
		if s.JourneyID == id {
			delete(f.steps, sid)
		}
	}
	return nil
}

func (f *fakeStore) CreateStep(_ context.Context, step *models.Step, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.journeys[step.JourneyID]
	if !ok || j.UserID != userID {
		return repository.ErrNotFound
	}
	step.ID = f.id()
	step.CreatedAt = time.Now()
	clone := *step
	f.steps[step.ID] = &clone
	return nil
}

func (f *fakeStore) findOwnedStep(id, userID int64) (*models.Step, bool) {
	s, ok := f.steps[id]
	if !ok {
		return nil, false
	}
	j, ok := f.journeys[s.JourneyID]
	if !ok || j.UserID != userID {
		return nil, false
	}
	return s, true
}

func (f *fakeStore) FindStep(_ context.Context, id, userID int64) (*models.Step, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.findOwnedStep(id, userID)
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *s
	return &clone, nil
}

func (f *fakeStore) ListSteps(_ context.Context, journeyID int64) ([]models.Step, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	steps := []models.Step{}
	for _, s := range f.steps {
		if s.JourneyID == journeyID {
			steps = append(steps, *s)
		}
	}
	return steps, nil
}

func (f *fakeStore) UpdateStep(_ context.Context, step *models.Step, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.findOwnedStep(step.ID, userID)
	if !ok {
		return repository.ErrNotFound
	}
	s.Title = step.Title
	s.Description = step.Description
	s.IsComplete = step.IsComplete
	return nil
}

func (f *fakeStore) DeleteStep(_ context.Context, id, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.findOwnedStep(id, userID); !ok {
		return repository.ErrNotFound
	}
	delete(f.steps, id)
	return nil
}

func (f *fakeStore) ToggleStepComplete(_ context.Context, id, userID int64) (*models.Step, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.findOwnedStep(id, userID)
	if !ok {
		return nil, repository.ErrNotFound
	}
	s.IsComplete = !s.IsComplete
	clone := *s
	return &clone, nil
}

func (f *fakeStore) RevokeToken(_ context.Context, jti string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.revoked[jti]; !ok {
		f.revoked[jti] = time.Now()
	}
	return nil
}

func (f *fakeStore) IsTokenRevoked(_ context.Context, jti string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.revoked[jti]
	return ok, nil
}

func (f *fakeStore) DeleteRevokedTokensBefore(_ context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for jti, at := range f.revoked {
		if at.Before(cutoff) {
			delete(f.revoked, jti)
			n++
		}
	}
	return n, nil
}

func newTestService() (*Service, *fakeStore, *auth.TokenManager) {
	store := newFakeStore()
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour, store)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	svc := NewService(store, tokens, nil, logger, bcrypt.MinCost)
	return svc, store, tokens
}
