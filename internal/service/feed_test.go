package service

import (
	"context"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dtapi/booking-go/internal/domain/model"
	apperrors "github.com/dtapi/booking-go/internal/errors"
	"github.com/dtapi/booking-go/internal/mocks"
	"github.com/dtapi/booking-go/internal/notify"
	"github.com/dtapi/booking-go/internal/testutil"
)

func TestApplyDistanceFeed_RejectsBeforeAnyWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repo expectations: a batch with one bad row must not touch the store.
	repo := mocks.NewMockJobRepository(ctrl)
	svc := newTestBookingService(t, repo)
	ctx := context.Background()

	flagged := true

	tests := []struct {
		name string
		req  DistanceFeedRequest
	}{
		{
			name: "flagged without comment",
			req: DistanceFeedRequest{Rows: []DistanceFeedRow{
				{JobID: "job-1", DistanceKm: testutil.Float64Ptr(12.5)},
				{JobID: "job-2", Flagged: &flagged},
			}},
		},
		{
			name: "missing job id",
			req: DistanceFeedRequest{Rows: []DistanceFeedRow{
				{DistanceKm: testutil.Float64Ptr(12.5)},
			}},
		},
		{
			name: "negative distance",
			req: DistanceFeedRequest{Rows: []DistanceFeedRow{
				{JobID: "job-1", DistanceKm: testutil.Float64Ptr(-1)},
			}},
		},
		{
			name: "unparseable session time",
			req: DistanceFeedRequest{Rows: []DistanceFeedRow{
				{JobID: "job-1", SessionTime: testutil.StringPtr("lots")},
			}},
		},
		{
			name: "row with nothing to update",
			req: DistanceFeedRequest{Rows: []DistanceFeedRow{
				{JobID: "job-1"},
			}},
		},
		{
			name: "empty batch",
			req:  DistanceFeedRequest{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applied, err := svc.ApplyDistanceFeed(ctx, tt.req)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Zero(t, applied)
		})
	}
}

func TestApplyDistanceFeed_AppliesDistanceAndMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockJobRepository(ctrl)
	svc := newTestBookingService(t, repo)

	flagged := true
	comment := "route mismatch"
	byAdmin := true

	repo.EXPECT().UpsertDistance(gomock.Any(), "job-1", model.DistancePatch{
		DistanceKm:      testutil.Float64Ptr(12.5),
		DurationMinutes: testutil.IntPtr(25),
	}).Return(nil)

	repo.EXPECT().UpdateMetadata(gomock.Any(), "job-2", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, patch model.MetadataPatch) (*model.Job, error) {
			require.NotNil(t, patch.Flagged)
			assert.True(t, *patch.Flagged)
			require.NotNil(t, patch.SessionTimeSeconds)
			assert.Equal(t, int64(1800), *patch.SessionTimeSeconds)
			require.NotNil(t, patch.ByAdmin)
			assert.True(t, *patch.ByAdmin)
			return &model.Job{ID: "job-2"}, nil
		})

	applied, err := svc.ApplyDistanceFeed(context.Background(), DistanceFeedRequest{Rows: []DistanceFeedRow{
		{JobID: "job-1", DistanceKm: testutil.Float64Ptr(12.5), DurationMinutes: testutil.IntPtr(25)},
		{JobID: "job-2", Flagged: &flagged, AdminComments: &comment, SessionTime: testutil.StringPtr("30:00"), ByAdmin: &byAdmin},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, applied)
}

func TestApplyDistanceFeed_UnknownJobIsNotInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockJobRepository(ctrl)
	svc := newTestBookingService(t, repo)

	fkErr := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "job_distances_job_id_fkey"}
	repo.EXPECT().UpsertDistance(gomock.Any(), "job-missing", gomock.Any()).Return(fkErr)

	_, err := svc.ApplyDistanceFeed(context.Background(), DistanceFeedRequest{Rows: []DistanceFeedRow{
		{JobID: "job-missing", DistanceKm: testutil.Float64Ptr(3)},
	}})
	require.Error(t, err)
	assert.True(t, apperrors.IsForeignKey(err))
	assert.False(t, apperrors.IsInternal(err))
}

func TestResendNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockJobRepository(ctrl)
	translators := mocks.NewMockTranslatorRepository(ctrl)

	var sent int
	dispatcher := NewDispatcher(DispatcherOptions{
		Sinks: []SinkRegistration{
			{Name: "push", Channel: notify.ChannelPush, Sink: notify.SinkFunc(func(context.Context, notify.Message) error {
				sent++
				return nil
			})},
		},
		Translators: translators,
	})

	svc := MustNewBookingService(BookingServiceOptions{Repo: repo, Dispatcher: dispatcher})
	ctx := context.Background()

	t.Run("re-offers a pending job", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(pendingJob(), nil)
		translators.EXPECT().ListActive(gomock.Any()).Return([]*model.Translator{
			{ID: "t-1", Active: true},
		}, nil)
		translators.EXPECT().ContactsByIDs(gomock.Any(), []string{"t-1"}).Return([]*model.Contact{
			{TranslatorID: "t-1", DeviceToken: "tok-1"},
		}, nil)

		summary, err := svc.ResendNotifications(ctx, "job-1")
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Attempted)
		assert.Equal(t, 1, sent)
	})

	t.Run("re-offers an accepted job without touching state", func(t *testing.T) {
		// Resending is a pure re-dispatch: no status precondition, no writes.
		repo.EXPECT().GetByID(gomock.Any(), "job-2").Return(&model.Job{
			ID: "job-2", Status: model.JobStatusAccepted,
		}, nil)
		translators.EXPECT().ListActive(gomock.Any()).Return([]*model.Translator{
			{ID: "t-1", Active: true},
		}, nil)
		translators.EXPECT().ContactsByIDs(gomock.Any(), []string{"t-1"}).Return([]*model.Contact{
			{TranslatorID: "t-1", DeviceToken: "tok-1"},
		}, nil)

		summary, err := svc.ResendNotifications(ctx, "job-2")
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Attempted)
	})
}

func TestResendSmsNotifications_UsesOnlySmsSinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockJobRepository(ctrl)
	translators := mocks.NewMockTranslatorRepository(ctrl)

	var pushSent, smsSent int
	dispatcher := NewDispatcher(DispatcherOptions{
		Sinks: []SinkRegistration{
			{Name: "push", Channel: notify.ChannelPush, Sink: notify.SinkFunc(func(context.Context, notify.Message) error {
				pushSent++
				return nil
			})},
			{Name: "sms", Channel: notify.ChannelSMS, Sink: notify.SinkFunc(func(context.Context, notify.Message) error {
				smsSent++
				return nil
			})},
		},
		Translators: translators,
	})

	svc := MustNewBookingService(BookingServiceOptions{Repo: repo, Dispatcher: dispatcher})

	repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(pendingJob(), nil)
	translators.EXPECT().ListActive(gomock.Any()).Return([]*model.Translator{
		{ID: "t-1", Active: true},
	}, nil)
	translators.EXPECT().ContactsByIDs(gomock.Any(), []string{"t-1"}).Return([]*model.Contact{
		{TranslatorID: "t-1", Phone: "+46700000001"},
	}, nil)

	summary, err := svc.ResendSmsNotifications(context.Background(), "job-1")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Attempted)
	assert.Zero(t, pushSent)
	assert.Equal(t, 1, smsSent)
}

func TestResendNotifications_NoSinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockJobRepository(ctrl)
	svc := newTestBookingService(t, repo)

	_, err := svc.ResendNotifications(context.Background(), "job-1")
	require.Error(t, err)
}
