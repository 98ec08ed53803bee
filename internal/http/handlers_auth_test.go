package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/dtapi/booking-go/internal/domain/auth"
	mockauth "github.com/dtapi/booking-go/internal/mocks/auth"
	"github.com/dtapi/booking-go/internal/service"
)

type authHarness struct {
	handlers *AuthHandlers
	sessions *mockauth.MemorySessionStore
}

func newAuthHarness(t *testing.T) *authHarness {
	t.Helper()
	sessions := mockauth.NewMemorySessionStore()
	svc := service.NewAuthService(service.AuthServiceOptions{
		Provider: mockauth.NewMockAuthProvider(),
		Sessions: sessions,
		Roles:    mockauth.StaticRoleMapper{TranslatorGroup: "translators"},
	})
	return &authHarness{
		handlers: &AuthHandlers{Svc: svc},
		sessions: sessions,
	}
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthLogin_RedirectsToProvider(t *testing.T) {
	h := newAuthHarness(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/login?redirect_uri=/jobs", nil)
	rec := httptest.NewRecorder()

	h.handlers.Login(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://mock-idp/auth", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	state := cookieByName(cookies, "oauth_state")
	require.NotNil(t, state)
	assert.Equal(t, "state-1", state.Value)
	nonce := cookieByName(cookies, "oauth_nonce")
	require.NotNil(t, nonce)
	assert.Equal(t, "nonce-1", nonce.Value)
	redirect := cookieByName(cookies, "post_login_redirect")
	require.NotNil(t, redirect)
	assert.Equal(t, "/jobs", redirect.Value)
}

func TestAuthLogin_RejectsAbsoluteRedirect(t *testing.T) {
	h := newAuthHarness(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/login?redirect_uri=https://evil.example/steal", nil)
	rec := httptest.NewRecorder()

	h.handlers.Login(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	redirect := cookieByName(rec.Result().Cookies(), "post_login_redirect")
	require.NotNil(t, redirect)
	assert.Equal(t, "/", redirect.Value)
}

func TestAuthCallback_CompletesLogin(t *testing.T) {
	h := newAuthHarness(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&state=state-1", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "state-1"})
	req.AddCookie(&http.Cookie{Name: "oauth_nonce", Value: "nonce-1"})
	req.AddCookie(&http.Cookie{Name: "post_login_redirect", Value: "/jobs"})
	rec := httptest.NewRecorder()

	h.handlers.Callback(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/jobs", rec.Header().Get("Location"))

	sessionCookie := cookieByName(rec.Result().Cookies(), "session_id")
	require.NotNil(t, sessionCookie)
	require.NotEmpty(t, sessionCookie.Value)

	sess, err := h.sessions.Get(context.Background(), sessionCookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "mock-user-1", sess.UserID)
	assert.Equal(t, domainauth.RoleTranslator, sess.Role)
}

func TestAuthCallback_MissingCode(t *testing.T) {
	h := newAuthHarness(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?state=state-1", nil)
	rec := httptest.NewRecorder()

	h.handlers.Callback(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "missing_code", body["kind"])
}

func TestAuthCallback_StateMismatch(t *testing.T) {
	h := newAuthHarness(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&state=state-1", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "state-2"})
	rec := httptest.NewRecorder()

	h.handlers.Callback(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "invalid_state", body["kind"])
}

func TestAuthStatus(t *testing.T) {
	h := newAuthHarness(t)

	t.Run("unauthenticated without cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
		rec := httptest.NewRecorder()

		h.handlers.Status(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"authenticated":false`)
	})

	t.Run("authenticated with stored session", func(t *testing.T) {
		require.NoError(t, h.sessions.Save(context.Background(), domainauth.Session{
			ID:        "sess-1",
			UserID:    "user-1",
			Role:      domainauth.RoleTranslator,
			ExpiresAt: time.Now().Add(time.Hour),
		}))

		req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
		req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-1"})
		rec := httptest.NewRecorder()

		h.handlers.Status(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"authenticated":true`)
		assert.Contains(t, rec.Body.String(), `"user-1"`)
	})

	t.Run("expired session clears cookie", func(t *testing.T) {
		require.NoError(t, h.sessions.Save(context.Background(), domainauth.Session{
			ID:        "sess-old",
			UserID:    "user-1",
			Role:      domainauth.RoleTranslator,
			ExpiresAt: time.Now().Add(-time.Minute),
		}))

		req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
		req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-old"})
		rec := httptest.NewRecorder()

		h.handlers.Status(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"authenticated":false`)
		cleared := cookieByName(rec.Result().Cookies(), "session_id")
		require.NotNil(t, cleared)
		assert.Equal(t, -1, cleared.MaxAge)
	})
}

func TestAuthLogout(t *testing.T) {
	h := newAuthHarness(t)
	require.NoError(t, h.sessions.Save(context.Background(), domainauth.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		Role:      domainauth.RoleTranslator,
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-1"})
	rec := httptest.NewRecorder()

	h.handlers.Logout(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	_, err := h.sessions.Get(context.Background(), "sess-1")
	assert.ErrorIs(t, err, mockauth.ErrNotFound)

	cleared := cookieByName(rec.Result().Cookies(), "session_id")
	require.NotNil(t, cleared)
	assert.Equal(t, -1, cleared.MaxAge)
}

func TestAuthLogout_AJAXGetsJSON(t *testing.T) {
	h := newAuthHarness(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout?redirect_uri=/jobs", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()

	h.handlers.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "/jobs", body["redirect_to"])
}
