// Package httpx provides HTTP handlers and utilities for the booking system API.
package httpx

import (
	"errors"
	"net/http"

	"github.com/dtapi/booking-go/internal/core"
	"github.com/dtapi/booking-go/internal/domain/model"
	"github.com/dtapi/booking-go/internal/service"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// JobHandlers provides HTTP handlers for job lifecycle and query operations.
type JobHandlers struct {
	Booking *service.BookingService
	Query   *service.QueryService
}

// jobIDPayload carries the job identifier for lifecycle operations that take
// a JSON body instead of a path parameter.
type jobIDPayload struct {
	JobID string `json:"job_id"`
}

// acceptPayload identifies the job and the accepting translator.
type acceptPayload struct {
	JobID        string `json:"job_id"`
	TranslatorID string `json:"translator_id,omitempty"`
}

// endPayload identifies the job and the reported session time.
type endPayload struct {
	JobID       string `json:"job_id"`
	SessionTime string `json:"session_time,omitempty"`
}

// emailPayload carries the customer email to attach to a job.
type emailPayload struct {
	JobID     string  `json:"job_id"`
	UserEmail string  `json:"user_email"`
	Reference *string `json:"reference,omitempty"`
}

// Index handles GET /jobs. Admins receive the full filtered listing; other
// users receive their own jobs (translator side with ?as=translator).
func (h *JobHandlers) Index(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, Kind: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	if session.Role.CanViewAllJobs() {
		jobs, err := h.Query.AllJobs(r.Context(), *session, jobFilterFromQuery(r))
		if err != nil {
			WriteAppError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
		return
	}

	asTranslator := r.URL.Query().Get("as") == "translator"
	jobs, err := h.Query.UserJobs(r.Context(), session.UserID, asTranslator)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
}

// Show handles GET /jobs/{id}.
func (h *JobHandlers) Show(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("id")
	if jobID == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, Kind: "invalid_path", Err: errors.New("job id is required")})
		return
	}

	job, err := h.Query.GetJob(r.Context(), jobID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// Create handles POST /jobs.
func (h *JobHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, Kind: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	var req model.CreateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.CustomerID == "" {
		req.CustomerID = session.UserID
	}

	job, err := h.Booking.Create(r.Context(), *session, &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, job)
}

// Update handles PATCH /jobs/{id}.
func (h *JobHandlers) Update(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("id")
	if jobID == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, Kind: "invalid_path", Err: errors.New("job id is required")})
		return
	}

	var req model.UpdateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Booking.UpdateJob(r.Context(), jobID, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// UpdateMetadata handles PATCH /jobs/{id}/metadata (admin only).
func (h *JobHandlers) UpdateMetadata(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("id")
	if jobID == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, Kind: "invalid_path", Err: errors.New("job id is required")})
		return
	}

	var patch model.MetadataPatch
	if !DecodeJSON(w, r, &patch) {
		return
	}

	job, err := h.Booking.UpdateJobMetadata(r.Context(), jobID, patch)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// Accept handles POST /jobs/accept. The translator defaults to the session
// user; admins may accept on another translator's behalf by naming one.
func (h *JobHandlers) Accept(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, Kind: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	var req acceptPayload
	if !DecodeJSON(w, r, &req) {
		return
	}

	translatorID := req.TranslatorID
	if translatorID == "" || !session.Role.CanViewAllJobs() {
		translatorID = session.UserID
	}

	job, err := h.Booking.AcceptJob(r.Context(), req.JobID, translatorID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// AcceptByID handles POST /jobs/{id}/accept. Shares the accept code path with
// the payload form.
func (h *JobHandlers) AcceptByID(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, Kind: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	job, err := h.Booking.AcceptJob(r.Context(), r.PathValue("id"), session.UserID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// Cancel handles POST /jobs/cancel.
func (h *JobHandlers) Cancel(w http.ResponseWriter, r *http.Request) {
	var req jobIDPayload
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Booking.CancelJob(r.Context(), req.JobID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// End handles POST /jobs/end.
func (h *JobHandlers) End(w http.ResponseWriter, r *http.Request) {
	var req endPayload
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Booking.EndJob(r.Context(), req.JobID, req.SessionTime)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// NotCall handles POST /jobs/not-call.
func (h *JobHandlers) NotCall(w http.ResponseWriter, r *http.Request) {
	var req jobIDPayload
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Booking.CustomerNotCall(r.Context(), req.JobID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// Reopen handles POST /jobs/reopen.
func (h *JobHandlers) Reopen(w http.ResponseWriter, r *http.Request) {
	var req jobIDPayload
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Booking.Reopen(r.Context(), req.JobID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// History handles GET /jobs/history.
func (h *JobHandlers) History(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, Kind: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	filter := historyFilterFromQuery(r)
	filter.UserID = session.UserID

	jobs, total, err := h.Query.UserJobsHistory(r.Context(), filter)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"jobs": jobs, "total": total})
}

// Potential handles GET /jobs/potential for the translator in session.
func (h *JobHandlers) Potential(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, Kind: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	jobs, err := h.Query.PotentialJobs(r.Context(), session.UserID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
}

// StoreEmail handles POST /jobs/email.
func (h *JobHandlers) StoreEmail(w http.ResponseWriter, r *http.Request) {
	var req emailPayload
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Booking.StoreJobEmail(r.Context(), core.SetJobEmailParams{
		JobID:     req.JobID,
		UserEmail: req.UserEmail,
		Reference: req.Reference,
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// DistanceFeed handles POST /distance-feed (admin only). The whole batch is
// validated before any row is written.
func (h *JobHandlers) DistanceFeed(w http.ResponseWriter, r *http.Request) {
	var req service.DistanceFeedRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if _, err := h.Booking.ApplyDistanceFeed(r.Context(), req); err != nil {
		WriteAppError(w, err)
		return
	}
	// Legacy envelope expected by the feed exporter.
	WriteJSON(w, http.StatusOK, map[string]string{"success": "Record updated"})
}

// ResendPush handles POST /jobs/resend-push (admin only).
func (h *JobHandlers) ResendPush(w http.ResponseWriter, r *http.Request) {
	var req jobIDPayload
	if !DecodeJSON(w, r, &req) {
		return
	}

	if _, err := h.Booking.ResendNotifications(r.Context(), req.JobID); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"success": "Push sent"})
}

// ResendSms handles POST /jobs/resend-sms (admin only).
func (h *JobHandlers) ResendSms(w http.ResponseWriter, r *http.Request) {
	var req jobIDPayload
	if !DecodeJSON(w, r, &req) {
		return
	}

	if _, err := h.Booking.ResendSmsNotifications(r.Context(), req.JobID); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"success": "SMS sent"})
}
