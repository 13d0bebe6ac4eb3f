// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/mergington/activities/internal/metrics"
	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/registry"
	"github.com/mergington/activities/internal/service"
)

// ActivityHandler holds all HTTP handlers for the signup API.
type ActivityHandler struct {
	svc *service.SignupService
}

// NewActivityHandler constructs an ActivityHandler.
func NewActivityHandler(svc *service.SignupService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, model.ErrorResponse{Detail: detail})
}

// activityName extracts the {activity} path segment. Names may contain spaces
// ("Soccer Team"); chi hands back the raw segment, so percent-unescape it
// before matching registry keys.
func activityName(r *http.Request) string {
	raw := chi.URLParam(r, "activity")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// ─── Handlers ─────────────────────────────────────────────────────────────────

// Index handles GET /
// The UI lives under /static; the API root just points there.
func (h *ActivityHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// ListActivities handles GET /activities
// Returns a JSON object mapping activity name to its record.
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListActivities(r.Context()))
}

// GetActivity handles GET /activities/{activity}
// Returns a single activity by its exact name.
func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.svc.GetActivity(r.Context(), activityName(r))
	if err != nil {
		if errors.Is(err, registry.ErrActivityNotFound) {
			writeError(w, http.StatusNotFound, "Activity not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get activity")
		return
	}
	writeJSON(w, http.StatusOK, activity)
}

// Signup handles POST /activities/{activity}/signup?email=
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email := r.URL.Query().Get("email")

	msg, err := h.svc.Signup(r.Context(), name, email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired):
			metrics.Signups.WithLabelValues(name, "missing_email").Inc()
			writeError(w, http.StatusBadRequest, "email query parameter is required")
		case errors.Is(err, registry.ErrActivityNotFound):
			metrics.Signups.WithLabelValues(name, "not_found").Inc()
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, registry.ErrAlreadyEnrolled):
			metrics.Signups.WithLabelValues(name, "conflict").Inc()
			writeError(w, http.StatusBadRequest, "Student already signed up for this activity")
		default:
			writeError(w, http.StatusInternalServerError, "failed to sign up")
		}
		return
	}

	metrics.Signups.WithLabelValues(name, "ok").Inc()
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: msg})
}

// Remove handles DELETE /activities/{activity}/remove?email=
func (h *ActivityHandler) Remove(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email := r.URL.Query().Get("email")

	msg, err := h.svc.Remove(r.Context(), name, email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired):
			metrics.Removals.WithLabelValues(name, "missing_email").Inc()
			writeError(w, http.StatusBadRequest, "email query parameter is required")
		case errors.Is(err, registry.ErrActivityNotFound):
			metrics.Removals.WithLabelValues(name, "not_found").Inc()
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, registry.ErrParticipantNotFound):
			metrics.Removals.WithLabelValues(name, "not_enrolled").Inc()
			writeError(w, http.StatusNotFound, "Student not found in this activity")
		default:
			writeError(w, http.StatusInternalServerError, "failed to remove participant")
		}
		return
	}

	metrics.Removals.WithLabelValues(name, "ok").Inc()
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: msg})
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
