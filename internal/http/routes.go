package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/dtapi/booking-go/internal/domain/auth"
	"github.com/dtapi/booking-go/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Booking      *service.BookingService
	Query        *service.QueryService
	Auth         *service.AuthService
	CookieDomain string
	Logger       *slog.Logger // Logger for HTTP middleware (optional)
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	jobHandlers := &JobHandlers{Booking: services.Booking, Query: services.Query}
	var authHandlers *AuthHandlers
	if services.Auth != nil {
		authHandlers = &AuthHandlers{Svc: services.Auth, CookieDomain: services.CookieDomain, Logger: services.Logger}
	}

	registerJobRoutes(mux, jobHandlers, services.Auth)
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	if authHandlers != nil {
		registerAuthRoutes(mux, authHandlers)
	}

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return Recover(logger)(Logging(logger)(mux))
}

func registerJobRoutes(mux *http.ServeMux, h *JobHandlers, auth *service.AuthService) {
	// Nil-safe middleware factories so the router stays testable without auth.
	authed := func(hh http.Handler) http.Handler {
		if auth != nil {
			return RequireAuth(auth)(hh)
		}
		return hh
	}
	roleOnly := func(role domainauth.Role) func(http.Handler) http.Handler {
		return func(hh http.Handler) http.Handler {
			if auth != nil {
				return RequireRole(auth, role)(hh)
			}
			return hh
		}
	}
	translatorOnly := roleOnly(domainauth.RoleTranslator)
	adminOnly := roleOnly(domainauth.RoleAdmin)

	mux.Handle("GET /jobs", authed(http.HandlerFunc(h.Index)))
	mux.Handle("GET /jobs/{id}", authed(http.HandlerFunc(h.Show)))
	mux.Handle("POST /jobs", authed(http.HandlerFunc(h.Create)))
	mux.Handle("PATCH /jobs/{id}", authed(http.HandlerFunc(h.Update)))
	mux.Handle("POST /jobs/cancel", authed(http.HandlerFunc(h.Cancel)))
	mux.Handle("POST /jobs/end", authed(http.HandlerFunc(h.End)))
	mux.Handle("POST /jobs/not-call", authed(http.HandlerFunc(h.NotCall)))
	mux.Handle("POST /jobs/reopen", authed(http.HandlerFunc(h.Reopen)))
	mux.Handle("GET /jobs/history", authed(http.HandlerFunc(h.History)))
	mux.Handle("POST /jobs/email", authed(http.HandlerFunc(h.StoreEmail)))

	mux.Handle("POST /jobs/accept", translatorOnly(http.HandlerFunc(h.Accept)))
	mux.Handle("POST /jobs/{id}/accept", translatorOnly(http.HandlerFunc(h.AcceptByID)))
	mux.Handle("GET /jobs/potential", translatorOnly(http.HandlerFunc(h.Potential)))

	mux.Handle("PATCH /jobs/{id}/metadata", adminOnly(http.HandlerFunc(h.UpdateMetadata)))
	mux.Handle("POST /distance-feed", adminOnly(http.HandlerFunc(h.DistanceFeed)))
	mux.Handle("POST /jobs/resend-push", adminOnly(http.HandlerFunc(h.ResendPush)))
	mux.Handle("POST /jobs/resend-sms", adminOnly(http.HandlerFunc(h.ResendSms)))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /auth/login", h.Login)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
}
