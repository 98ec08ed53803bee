package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtapi/booking-go/internal/domain/model"
)

func TestParseLimitOffset(t *testing.T) {
	cases := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 50, 0},
		{"explicit values", "limit=25&offset=10", 25, 10},
		{"clamps above max", "limit=9999", 200, 0},
		{"clamps below one", "limit=0&offset=-5", 1, 0},
		{"ignores garbage", "limit=abc&offset=xyz", 50, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/jobs?"+tc.query, nil)
			lim, off := ParseLimitOffset(req, 50, 200)
			assert.Equal(t, tc.wantLimit, lim)
			assert.Equal(t, tc.wantOffset, off)
		})
	}
}

func TestJobFilterFromQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet,
		"/jobs?status=pending&customer_id=customer-1&translator_id=translator-1&created_from=2024-01-01T00:00:00Z", nil)

	filter := jobFilterFromQuery(req)

	require.NotNil(t, filter.Status)
	assert.Equal(t, model.JobStatusPending, *filter.Status)
	require.NotNil(t, filter.CustomerID)
	assert.Equal(t, "customer-1", *filter.CustomerID)
	require.NotNil(t, filter.TranslatorID)
	assert.Equal(t, "translator-1", *filter.TranslatorID)
	require.NotNil(t, filter.CreatedFrom)
	assert.Nil(t, filter.CreatedTo)
}

func TestJobFilterFromQuery_InvalidValuesDropped(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/jobs?status=bogus&created_from=yesterday", nil)

	filter := jobFilterFromQuery(req)

	assert.Nil(t, filter.Status)
	assert.Nil(t, filter.CreatedFrom)
}

func TestHistoryFilterFromQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet,
		"/jobs/history?as=translator&status=completed&from=2024-01-01T00:00:00Z&to=2024-02-01T00:00:00Z&limit=20", nil)

	filter := historyFilterFromQuery(req)

	assert.True(t, filter.AsTranslator)
	require.NotNil(t, filter.Status)
	assert.Equal(t, model.JobStatusCompleted, *filter.Status)
	require.NotNil(t, filter.From)
	require.NotNil(t, filter.To)
	assert.Equal(t, 20, filter.Limit)
}

func TestSafeRedirectPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/jobs", "/jobs"},
		{"/jobs?limit=5", "/jobs?limit=5"},
		{"https://evil.example/", "/"},
		{"//evil.example/path", "/"},
		{"jobs", "/"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, safeRedirectPath(tc.in), "input %q", tc.in)
	}
}
