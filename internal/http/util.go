package httpx

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dtapi/booking-go/internal/domain/model"
)

// parseIntQuery returns the integer value of a query param or a default.
// It is tolerant of missing/invalid values.
func parseIntQuery(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// ParseLimitOffset parses common pagination params and clamps to sane bounds.
// - defLimit: default limit when not specified
// - maxLimit: maximum allowed limit (values > maxLimit are clamped to maxLimit).
func ParseLimitOffset(r *http.Request, defLimit, maxLimit int) (int, int) {
	// Defensive: ensure maxLimit is at least 1 to avoid clamping to 0 or negatives
	if maxLimit < 1 {
		maxLimit = 1
	}

	lim := parseIntQuery(r, "limit", defLimit)
	off := parseIntQuery(r, "offset", 0)
	if lim < 1 {
		lim = 1
	}
	if lim > maxLimit {
		lim = maxLimit
	}
	if off < 0 {
		off = 0
	}
	return lim, off
}

// parseTimeQuery returns the RFC 3339 time value of a query param, or nil when
// missing or unparseable.
func parseTimeQuery(r *http.Request, key string) *time.Time {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil
	}
	return &t
}

// parseStatusQuery returns the status query param as a validated JobStatus,
// or nil when missing or invalid.
func parseStatusQuery(r *http.Request) *model.JobStatus {
	v := r.URL.Query().Get("status")
	if v == "" {
		return nil
	}
	status := model.JobStatus(v)
	if !status.Valid() {
		return nil
	}
	return &status
}

// jobFilterFromQuery builds an admin listing filter from query params.
func jobFilterFromQuery(r *http.Request) model.JobFilter {
	filter := model.JobFilter{
		Status:      parseStatusQuery(r),
		CreatedFrom: parseTimeQuery(r, "created_from"),
		CreatedTo:   parseTimeQuery(r, "created_to"),
	}
	if v := r.URL.Query().Get("customer_id"); v != "" {
		filter.CustomerID = &v
	}
	if v := r.URL.Query().Get("translator_id"); v != "" {
		filter.TranslatorID = &v
	}
	filter.Limit, filter.Offset = ParseLimitOffset(r, defaultPageLimit, maxPageLimit)
	return filter
}

// historyFilterFromQuery builds a history filter from query params. The caller
// fills in UserID from the session.
func historyFilterFromQuery(r *http.Request) model.HistoryFilter {
	filter := model.HistoryFilter{
		AsTranslator: r.URL.Query().Get("as") == "translator",
		Status:       parseStatusQuery(r),
		From:         parseTimeQuery(r, "from"),
		To:           parseTimeQuery(r, "to"),
	}
	filter.Limit, filter.Offset = ParseLimitOffset(r, defaultPageLimit, maxPageLimit)
	return filter
}
