package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtapi/booking-go/internal/domain/model"
)

func TestNewEligibilityPolicy_EmptyFallsBackToDefault(t *testing.T) {
	policy, err := NewEligibilityPolicy("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultEligibilityExpression, policy.expression)
}

func TestNewEligibilityPolicy_InvalidExpression(t *testing.T) {
	_, err := NewEligibilityPolicy("not a valid [[ expression", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid eligibility expression")
}

func TestEligibilityPolicy_DefaultExpression(t *testing.T) {
	policy, err := NewEligibilityPolicy("", nil)
	require.NoError(t, err)

	job := &model.Job{
		ID:           "job-1",
		Status:       model.JobStatusPending,
		LanguageFrom: "en",
		LanguageTo:   "sv",
		Region:       "stockholm",
	}

	tests := []struct {
		name       string
		translator model.Translator
		want       bool
	}{
		{
			name: "matching pair and region",
			translator: model.Translator{
				ID: "t-1", LanguageFrom: "en", LanguageTo: "sv", Region: "stockholm", Active: true,
			},
			want: true,
		},
		{
			name: "wrong language pair",
			translator: model.Translator{
				ID: "t-2", LanguageFrom: "en", LanguageTo: "fi", Region: "stockholm", Active: true,
			},
			want: false,
		},
		{
			name: "wrong region",
			translator: model.Translator{
				ID: "t-3", LanguageFrom: "en", LanguageTo: "sv", Region: "malmo", Active: true,
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := policy.EligibleTranslator(job, &tt.translator)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEligibilityPolicy_RegionlessJobMatchesAnywhere(t *testing.T) {
	policy, err := NewEligibilityPolicy("", nil)
	require.NoError(t, err)

	job := &model.Job{ID: "job-1", LanguageFrom: "en", LanguageTo: "sv"}
	translator := &model.Translator{ID: "t-1", LanguageFrom: "en", LanguageTo: "sv", Region: "malmo"}

	got, err := policy.EligibleTranslator(job, translator)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestEligibilityPolicy_CustomExpression(t *testing.T) {
	policy, err := NewEligibilityPolicy("translator.active", nil)
	require.NoError(t, err)

	active := &model.Translator{ID: "t-1", Active: true}
	inactive := &model.Translator{ID: "t-2"}
	job := &model.Job{ID: "job-1"}

	got, err := policy.EligibleTranslator(job, active)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = policy.EligibleTranslator(job, inactive)
	require.NoError(t, err)
	assert.False(t, got)
}

type stubEvaluator struct {
	validateErr error
	result      any
	evalErr     error
}

func (s stubEvaluator) Validate(string) error { return s.validateErr }

func (s stubEvaluator) Evaluate(string, any) (any, error) { return s.result, s.evalErr }

func TestEligibilityPolicy_NonBooleanResult(t *testing.T) {
	policy, err := NewEligibilityPolicy("job.id", stubEvaluator{result: "job-1"})
	require.NoError(t, err)

	_, err = policy.Eligible(map[string]any{}, map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want boolean")
}

func TestEligibilityPolicy_EvaluateError(t *testing.T) {
	policy, err := NewEligibilityPolicy("job.id", stubEvaluator{evalErr: errors.New("boom")})
	require.NoError(t, err)

	_, err = policy.Eligible(map[string]any{}, map[string]any{})
	require.Error(t, err)
}
