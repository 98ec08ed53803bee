package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobStatus_Valid(t *testing.T) {
	valid := []JobStatus{
		JobStatusCreated, JobStatusPending, JobStatusAssigned, JobStatusAccepted,
		JobStatusInProgress, JobStatusCompleted, JobStatusCancelled, JobStatusNotCalled,
	}
	for _, s := range valid {
		assert.True(t, s.Valid(), "status %q should be valid", s)
	}

	assert.False(t, JobStatus("running").Valid())
	assert.False(t, JobStatus("").Valid())
}

func TestJobStatus_Terminal(t *testing.T) {
	assert.True(t, JobStatusCompleted.Terminal())
	assert.True(t, JobStatusCancelled.Terminal())
	assert.True(t, JobStatusNotCalled.Terminal())
	assert.False(t, JobStatusPending.Terminal())
	assert.False(t, JobStatusAccepted.Terminal())
}

func TestJobStatus_UnmarshalText(t *testing.T) {
	var s JobStatus
	require.NoError(t, s.UnmarshalText([]byte(" Pending ")))
	assert.Equal(t, JobStatusPending, s)

	assert.Error(t, s.UnmarshalText([]byte("bogus")))
}

func TestCreateJobRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateJobRequest
		wantErr string
	}{
		{
			name: "valid",
			req: CreateJobRequest{
				CustomerID: "cust-1",
				Title:      "EN-FR session", Body: "Phone interpretation",
				LanguageFrom: "en", LanguageTo: "fr",
			},
		},
		{
			name: "missing customer",
			req: CreateJobRequest{
				Title: "t", Body: "b", LanguageFrom: "en", LanguageTo: "fr",
			},
			wantErr: "customer_id is required",
		},
		{
			name:    "missing title",
			req:     CreateJobRequest{CustomerID: "c", Body: "b", LanguageFrom: "en", LanguageTo: "fr"},
			wantErr: "title is required",
		},
		{
			name: "missing body",
			req: CreateJobRequest{
				CustomerID: "c", Title: "t", LanguageFrom: "en", LanguageTo: "fr",
			},
			wantErr: "body is required",
		},
		{
			name:    "missing language pair",
			req:     CreateJobRequest{CustomerID: "c", Title: "t", Body: "b"},
			wantErr: "language_from is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMetadataPatch_Validate(t *testing.T) {
	flagged := true
	notFlagged := false
	empty := ""
	comment := "late arrival"
	negative := int64(-1)

	tests := []struct {
		name    string
		patch   MetadataPatch
		wantErr bool
	}{
		{name: "empty patch", patch: MetadataPatch{}},
		{name: "flagged with comment", patch: MetadataPatch{Flagged: &flagged, AdminComments: &comment}},
		{name: "flagged without comment", patch: MetadataPatch{Flagged: &flagged}, wantErr: true},
		{name: "flagged with blank comment", patch: MetadataPatch{Flagged: &flagged, AdminComments: &empty}, wantErr: true},
		{name: "unflagged without comment", patch: MetadataPatch{Flagged: &notFlagged}},
		{name: "negative session time", patch: MetadataPatch{SessionTimeSeconds: &negative}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patch.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDistancePatch_Validate(t *testing.T) {
	km := 12.5
	badKm := -0.5
	mins := 18

	assert.NoError(t, (&DistancePatch{DistanceKm: &km, DurationMinutes: &mins}).Validate())
	assert.Error(t, (&DistancePatch{DistanceKm: &badKm}).Validate())
	assert.True(t, (&DistancePatch{}).Empty())
}

func TestParseSessionTime(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "00:42:10", want: 2530},
		{in: "01:00:00", want: 3600},
		{in: "00:18", want: 18 * 60},
		{in: "90", want: 90},
		{in: " 90 ", want: 90},
		{in: "", wantErr: true},
		{in: "1:2:3:4", wantErr: true},
		{in: "aa:bb", wantErr: true},
		{in: "-5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSessionTime(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
