package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository/mocks"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssertOwned(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	plansRepo := mocks.NewMockPlansRepositoryI(ctrl)
	exercisesRepo := mocks.NewMockExercisesRepositoryI(ctrl)
	logsRepo := mocks.NewMockWorkoutLogsRepositoryI(ctrl)
	guard := service.NewOwnershipGuard(plansRepo, exercisesRepo, logsRepo)

	owner := uuid.New()
	stranger := uuid.New()
	entityID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		Caller       uuid.UUID
		Kind         service.Kind
		MockPrepFunc func()
	}{
		{
			Desc:   "own plan",
			Caller: owner,
			Kind:   service.KindPlan,
			MockPrepFunc: func() {
				plansRepo.EXPECT().GetByID(gomock.Any(), entityID).Return(&entity.WorkoutPlan{ID: entityID, UserID: owner}, nil)
			},
		},
		{
			Desc:   "foreign plan",
			Error:  errorvalues.ErrPlanNotFound,
			Caller: stranger,
			Kind:   service.KindPlan,
			MockPrepFunc: func() {
				plansRepo.EXPECT().GetByID(gomock.Any(), entityID).Return(&entity.WorkoutPlan{ID: entityID, UserID: owner}, nil)
			},
		},
		{
			Desc:   "missing plan",
			Error:  errorvalues.ErrPlanNotFound,
			Caller: owner,
			Kind:   service.KindPlan,
			MockPrepFunc: func() {
				plansRepo.EXPECT().GetByID(gomock.Any(), entityID).Return(nil, errorvalues.ErrPlanNotFound)
			},
		},
		{
			Desc:   "own exercise through plan",
			Caller: owner,
			Kind:   service.KindExercise,
			MockPrepFunc: func() {
				exercisesRepo.EXPECT().GetByID(gomock.Any(), entityID).Return(&entity.Exercise{ID: entityID, PlanOwnerID: owner}, nil)
			},
		},
		{
			Desc:   "foreign exercise",
			Error:  errorvalues.ErrExerciseNotFound,
			Caller: stranger,
			Kind:   service.KindExercise,
			MockPrepFunc: func() {
				exercisesRepo.EXPECT().GetByID(gomock.Any(), entityID).Return(&entity.Exercise{ID: entityID, PlanOwnerID: owner}, nil)
			},
		},
		{
			Desc:   "foreign log",
			Error:  errorvalues.ErrLogNotFound,
			Caller: stranger,
			Kind:   service.KindLog,
			MockPrepFunc: func() {
				logsRepo.EXPECT().GetByID(gomock.Any(), entityID).Return(&entity.WorkoutLog{ID: entityID, UserID: owner}, nil)
			},
		},
		{
			Desc:   "store timeout is not hidden",
			Error:  errorvalues.ErrTimeout,
			Caller: owner,
			Kind:   service.KindLog,
			MockPrepFunc: func() {
				logsRepo.EXPECT().GetByID(gomock.Any(), entityID).Return(nil, errorvalues.ErrTimeout)
			},
		},
		{
			Desc:         "unknown kind",
			Error:        errorvalues.ErrInternal,
			Caller:       owner,
			Kind:         service.Kind(42),
			MockPrepFunc: func() {},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			owned, err := guard.AssertOwned(ctx, tc.Caller, tc.Kind, entityID)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				assert.Nil(t, owned)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Caller, owned.OwnerID())
		})
	}
}

func TestOwnershipFailuresLookAlike(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	plansRepo := mocks.NewMockPlansRepositoryI(ctrl)
	guard := service.NewOwnershipGuard(plansRepo, mocks.NewMockExercisesRepositoryI(ctrl), mocks.NewMockWorkoutLogsRepositoryI(ctrl))

	owner, stranger := uuid.New(), uuid.New()
	foreignID, missingID := uuid.New(), uuid.New()
	plansRepo.EXPECT().GetByID(gomock.Any(), foreignID).Return(&entity.WorkoutPlan{ID: foreignID, UserID: owner}, nil)
	plansRepo.EXPECT().GetByID(gomock.Any(), missingID).Return(nil, errorvalues.ErrPlanNotFound)

	_, foreignErr := guard.Plan(context.Background(), stranger, foreignID)
	_, missingErr := guard.Plan(context.Background(), stranger, missingID)
	require.Error(t, foreignErr)
	assert.Equal(t, missingErr.Error(), foreignErr.Error())
	assert.True(t, errors.Is(foreignErr, errorvalues.ErrNotFound))
}

func TestGuardTypedHelpers(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	plansRepo := mocks.NewMockPlansRepositoryI(ctrl)
	exercisesRepo := mocks.NewMockExercisesRepositoryI(ctrl)
	logsRepo := mocks.NewMockWorkoutLogsRepositoryI(ctrl)
	guard := service.NewOwnershipGuard(plansRepo, exercisesRepo, logsRepo)
	owner := uuid.New()
	ctx := context.Background()

	plan := &entity.WorkoutPlan{ID: uuid.New(), UserID: owner, Title: "Push Day"}
	plansRepo.EXPECT().GetByID(gomock.Any(), plan.ID).Return(plan, nil)
	gotPlan, err := guard.Plan(ctx, owner, plan.ID)
	require.NoError(t, err)
	assert.Same(t, plan, gotPlan)

	ex := &entity.Exercise{ID: uuid.New(), PlanID: plan.ID, PlanOwnerID: owner}
	exercisesRepo.EXPECT().GetByID(gomock.Any(), ex.ID).Return(ex, nil)
	gotEx, err := guard.Exercise(ctx, owner, ex.ID)
	require.NoError(t, err)
	assert.Same(t, ex, gotEx)

	wl := &entity.WorkoutLog{ID: uuid.New(), UserID: owner}
	logsRepo.EXPECT().GetByID(gomock.Any(), wl.ID).Return(wl, nil)
	gotLog, err := guard.Log(ctx, owner, wl.ID)
	require.NoError(t, err)
	assert.Same(t, wl, gotLog)
}
