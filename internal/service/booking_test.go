package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dtapi/booking-go/internal/core"
	"github.com/dtapi/booking-go/internal/data"
	"github.com/dtapi/booking-go/internal/domain/auth"
	"github.com/dtapi/booking-go/internal/domain/model"
	apperrors "github.com/dtapi/booking-go/internal/errors"
	"github.com/dtapi/booking-go/internal/mocks"
	"github.com/dtapi/booking-go/internal/testutil"
)

func newTestBookingService(t *testing.T, repo core.JobRepository) *BookingService {
	t.Helper()
	return MustNewBookingService(BookingServiceOptions{
		Repo: repo,
		Time: data.NewFixedTimeProvider(testutil.TestTime()),
	})
}

func TestNewBookingService_RequiresRepo(t *testing.T) {
	_, err := NewBookingService(BookingServiceOptions{})
	require.Error(t, err)
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockJobRepository(ctrl)
	svc := newTestBookingService(t, repo)

	t.Run("success", func(t *testing.T) {
		req := &model.CreateJobRequest{
			CustomerID:   "customer-1",
			Title:        "Phone interpretation",
			Body:         "30 minute phone session",
			LanguageFrom: "en",
			LanguageTo:   "sv",
		}
		created := &model.Job{ID: "job-1", Status: model.JobStatusPending, CustomerID: "customer-1"}
		repo.EXPECT().Create(gomock.Any(), req).Return(created, nil)

		job, err := svc.Create(context.Background(), auth.Session{Role: auth.RoleCustomer}, req)
		require.NoError(t, err)
		assert.Equal(t, "job-1", job.ID)
		assert.False(t, req.ByAdmin)
	})

	t.Run("admin actor marks the job", func(t *testing.T) {
		req := &model.CreateJobRequest{
			CustomerID:   "customer-1",
			Title:        "Phone interpretation",
			Body:         "30 minute phone session",
			LanguageFrom: "en",
			LanguageTo:   "sv",
		}
		repo.EXPECT().Create(gomock.Any(), req).Return(&model.Job{ID: "job-2"}, nil)

		_, err := svc.Create(context.Background(), auth.Session{Role: auth.RoleAdmin}, req)
		require.NoError(t, err)
		assert.True(t, req.ByAdmin)
	})

	t.Run("validation failure never reaches the store", func(t *testing.T) {
		_, err := svc.Create(context.Background(), auth.Session{}, &model.CreateJobRequest{})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("nil request", func(t *testing.T) {
		_, err := svc.Create(context.Background(), auth.Session{}, nil)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestBookingService_AcceptJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockJobRepository(ctrl)
	svc := newTestBookingService(t, repo)
	ctx := context.Background()

	t.Run("success binds the translator", func(t *testing.T) {
		translatorID := "t-1"
		accepted := &model.Job{ID: "job-1", Status: model.JobStatusAccepted, TranslatorID: &translatorID}
		repo.EXPECT().
			ConditionalUpdate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params core.ConditionalUpdateParams) (*model.Job, error) {
				assert.Equal(t, "job-1", params.JobID)
				assert.Equal(t, model.JobStatusAccepted, params.Target)
				assert.ElementsMatch(t,
					[]model.JobStatus{model.JobStatusPending, model.JobStatusAssigned},
					params.Expected)
				require.NotNil(t, params.TranslatorID)
				assert.Equal(t, "t-1", *params.TranslatorID)
				return accepted, nil
			})

		job, err := svc.AcceptJob(ctx, "job-1", "t-1")
		require.NoError(t, err)
		assert.Equal(t, model.JobStatusAccepted, job.Status)
	})

	t.Run("lost race surfaces conflict", func(t *testing.T) {
		other := "t-other"
		repo.EXPECT().ConditionalUpdate(gomock.Any(), gomock.Any()).Return(nil, data.ErrNotUpdated)
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(&model.Job{
			ID: "job-1", Status: model.JobStatusAccepted, TranslatorID: &other,
		}, nil)

		_, err := svc.AcceptJob(ctx, "job-1", "t-1")
		require.Error(t, err)
		assert.True(t, apperrors.IsConflict(err))
	})

	t.Run("terminal state surfaces invalid transition", func(t *testing.T) {
		repo.EXPECT().ConditionalUpdate(gomock.Any(), gomock.Any()).Return(nil, data.ErrNotUpdated)
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(&model.Job{
			ID: "job-1", Status: model.JobStatusCancelled,
		}, nil)

		_, err := svc.AcceptJob(ctx, "job-1", "t-1")
		require.Error(t, err)
		assert.True(t, apperrors.IsInvalidTransition(err))
	})

	t.Run("missing job surfaces not found", func(t *testing.T) {
		repo.EXPECT().ConditionalUpdate(gomock.Any(), gomock.Any()).Return(nil, data.ErrNotUpdated)
		repo.EXPECT().GetByID(gomock.Any(), "nope").Return(nil, apperrors.NotFound("Resource not found"))

		_, err := svc.AcceptJob(ctx, "nope", "t-1")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("empty translator id", func(t *testing.T) {
		_, err := svc.AcceptJob(ctx, "job-1", "  ")
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestBookingService_CancelJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockJobRepository(ctrl)
	svc := newTestBookingService(t, repo)
	ctx := context.Background()

	t.Run("records withdrawn timestamp", func(t *testing.T) {
		repo.EXPECT().
			ConditionalUpdate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params core.ConditionalUpdateParams) (*model.Job, error) {
				assert.Equal(t, model.JobStatusCancelled, params.Target)
				require.NotNil(t, params.WithdrawnAt)
				assert.Equal(t, testutil.TestTime(), *params.WithdrawnAt)
				return &model.Job{ID: "job-1", Status: model.JobStatusCancelled}, nil
			})

		job, err := svc.CancelJob(ctx, "job-1")
		require.NoError(t, err)
		assert.Equal(t, model.JobStatusCancelled, job.Status)
	})

	t.Run("already cancelled is idempotent", func(t *testing.T) {
		repo.EXPECT().ConditionalUpdate(gomock.Any(), gomock.Any()).Return(nil, data.ErrNotUpdated)
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(&model.Job{
			ID: "job-1", Status: model.JobStatusCancelled,
		}, nil)

		job, err := svc.CancelJob(ctx, "job-1")
		require.NoError(t, err)
		assert.Equal(t, model.JobStatusCancelled, job.Status)
	})

	t.Run("completed job cannot be cancelled", func(t *testing.T) {
		repo.EXPECT().ConditionalUpdate(gomock.Any(), gomock.Any()).Return(nil, data.ErrNotUpdated)
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(&model.Job{
			ID: "job-1", Status: model.JobStatusCompleted,
		}, nil)

		_, err := svc.CancelJob(ctx, "job-1")
		require.Error(t, err)
		assert.True(t, apperrors.IsInvalidTransition(err))
	})
}

func TestBookingService_EndJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockJobRepository(ctrl)
	svc := newTestBookingService(t, repo)
	ctx := context.Background()

	t.Run("records session duration from clock format", func(t *testing.T) {
		repo.EXPECT().
			ConditionalUpdate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params core.ConditionalUpdateParams) (*model.Job, error) {
				assert.Equal(t, model.JobStatusCompleted, params.Target)
				require.NotNil(t, params.SessionTimeSeconds)
				assert.Equal(t, int64(1830), *params.SessionTimeSeconds)
				require.NotNil(t, params.SessionEndedAt)
				return &model.Job{ID: "job-1", Status: model.JobStatusCompleted}, nil
			})

		_, err := svc.EndJob(ctx, "job-1", "00:30:30")
		require.NoError(t, err)
	})

	t.Run("empty session time records only the end timestamp", func(t *testing.T) {
		repo.EXPECT().
			ConditionalUpdate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params core.ConditionalUpdateParams) (*model.Job, error) {
				assert.Nil(t, params.SessionTimeSeconds)
				require.NotNil(t, params.SessionEndedAt)
				return &model.Job{ID: "job-1", Status: model.JobStatusCompleted}, nil
			})

		_, err := svc.EndJob(ctx, "job-1", "")
		require.NoError(t, err)
	})

	t.Run("garbage session time is a validation error", func(t *testing.T) {
		_, err := svc.EndJob(ctx, "job-1", "half an hour")
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestBookingService_Reopen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockJobRepository(ctrl)
	svc := newTestBookingService(t, repo)

	repo.EXPECT().
		ConditionalUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params core.ConditionalUpdateParams) (*model.Job, error) {
			assert.Equal(t, model.JobStatusPending, params.Target)
			assert.ElementsMatch(t,
				[]model.JobStatus{model.JobStatusCancelled, model.JobStatusNotCalled},
				params.Expected)
			// Reopen clears the previous assignment.
			require.NotNil(t, params.TranslatorID)
			assert.Empty(t, *params.TranslatorID)
			return &model.Job{ID: "job-1", Status: model.JobStatusPending}, nil
		})

	job, err := svc.Reopen(context.Background(), "job-1")
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusPending, job.Status)
}

func TestBookingService_CustomerNotCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockJobRepository(ctrl)
	svc := newTestBookingService(t, repo)

	repo.EXPECT().
		ConditionalUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params core.ConditionalUpdateParams) (*model.Job, error) {
			assert.Equal(t, model.JobStatusNotCalled, params.Target)
			assert.Equal(t, []model.JobStatus{model.JobStatusAccepted}, params.Expected)
			return &model.Job{ID: "job-1", Status: model.JobStatusNotCalled}, nil
		})

	job, err := svc.CustomerNotCall(context.Background(), "job-1")
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusNotCalled, job.Status)
}

func TestBookingService_UpdateJobMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockJobRepository(ctrl)
	svc := newTestBookingService(t, repo)
	ctx := context.Background()

	t.Run("flagged without comment rejected before any write", func(t *testing.T) {
		flagged := true
		_, err := svc.UpdateJobMetadata(ctx, "job-1", model.MetadataPatch{Flagged: &flagged})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("empty patch rejected", func(t *testing.T) {
		_, err := svc.UpdateJobMetadata(ctx, "job-1", model.MetadataPatch{})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("valid patch applied", func(t *testing.T) {
		flagged := true
		comment := "customer dispute"
		patch := model.MetadataPatch{Flagged: &flagged, AdminComments: &comment}
		repo.EXPECT().UpdateMetadata(gomock.Any(), "job-1", patch).
			Return(&model.Job{ID: "job-1", Flagged: true, AdminComments: &comment}, nil)

		job, err := svc.UpdateJobMetadata(ctx, "job-1", patch)
		require.NoError(t, err)
		assert.True(t, job.Flagged)
	})
}

func TestBookingService_StoreJobEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockJobRepository(ctrl)
	svc := newTestBookingService(t, repo)
	ctx := context.Background()

	t.Run("requires an email", func(t *testing.T) {
		_, err := svc.StoreJobEmail(ctx, core.SetJobEmailParams{JobID: "job-1"})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("stores email and reference", func(t *testing.T) {
		ref := "PO-1234"
		params := core.SetJobEmailParams{JobID: "job-1", UserEmail: "a@example.com", Reference: &ref}
		email := "a@example.com"
		repo.EXPECT().SetJobEmail(gomock.Any(), params).
			Return(&model.Job{ID: "job-1", UserEmail: &email, Reference: &ref}, nil)

		job, err := svc.StoreJobEmail(ctx, params)
		require.NoError(t, err)
		require.NotNil(t, job.UserEmail)
		assert.Equal(t, "a@example.com", *job.UserEmail)
	})
}

func TestBookingService_RepoErrorPassesThroughMapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockJobRepository(ctrl)
	svc := newTestBookingService(t, repo)

	repo.EXPECT().ConditionalUpdate(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := svc.StartJob(context.Background(), "job-1")
	require.Error(t, err)
	assert.False(t, apperrors.IsConflict(err))
}
