package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStep_RequiresOwnedJourney(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()

	const userA, userB int64 = 1, 2

	journey, err := svc.CreateJourney(context.Background(), userA, "A's journey", "")
	require.NoError(t, err)

	// B may not attach steps to A's journey, and learns nothing from
	// the attempt
	_, err = svc.CreateStep(context.Background(), userB, journey.ID, "intrude", "")
	assert.ErrorIs(t, err, ErrNotFound)

	// a journey that does not exist reads the same
	_, err = svc.CreateStep(context.Background(), userA, 9999, "orphan", "")
	assert.ErrorIs(t, err, ErrNotFound)

	step, err := svc.CreateStep(context.Background(), userA, journey.ID, "read docs", "")
	require.NoError(t, err)
	assert.Equal(t, journey.ID, step.JourneyID)
	assert.False(t, step.IsComplete)
}

func TestCreateStep_Validation(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()

	_, err := svc.CreateStep(context.Background(), 1, 1, "", "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateStep(context.Background(), 1, 0, "title", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSteps_TransitiveOwnership(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()

	const userA, userB int64 = 1, 2

	journey, err := svc.CreateJourney(context.Background(), userA, "A's journey", "")
	require.NoError(t, err)
	step, err := svc.CreateStep(context.Background(), userA, journey.ID, "read docs", "")
	require.NoError(t, err)

	// steps carry no owner field; access is resolved through the
	// parent journey
	_, err = svc.GetStep(context.Background(), step.ID, userB)
	assert.ErrorIs(t, err, ErrNotFound)

	title := "stolen"
	_, err = svc.UpdateStep(context.Background(), step.ID, userB, &title, nil, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteStep(context.Background(), step.ID, userB)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ToggleStepComplete(context.Background(), step.ID, userB)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.GetStep(context.Background(), step.ID, userA)
	require.NoError(t, err)
	assert.Equal(t, "read docs", got.Title)
}

func TestUpdateStep_PartialUpdate(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()

	journey, err := svc.CreateJourney(context.Background(), 1, "Learn Go", "")
	require.NoError(t, err)
	step, err := svc.CreateStep(context.Background(), 1, journey.ID, "read docs", "twice")
	require.NoError(t, err)

	done := true
	updated, err := svc.UpdateStep(context.Background(), step.ID, 1, nil, nil, &done)
	require.NoError(t, err)
	assert.Equal(t, "read docs", updated.Title)
	assert.Equal(t, "twice", updated.Description)
	assert.True(t, updated.IsComplete)
}

func TestToggleStepComplete(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()

	journey, err := svc.CreateJourney(context.Background(), 1, "Learn Go", "")
	require.NoError(t, err)
	step, err := svc.CreateStep(context.Background(), 1, journey.ID, "read docs", "")
	require.NoError(t, err)

	toggled, err := svc.ToggleStepComplete(context.Background(), step.ID, 1)
	require.NoError(t, err)
	assert.True(t, toggled.IsComplete)

	toggled, err = svc.ToggleStepComplete(context.Background(), step.ID, 1)
	require.NoError(t, err)
	assert.False(t, toggled.IsComplete, "toggling twice restores the flag")
}
