package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"teamsync-backend/internal/logger"
	"teamsync-backend/internal/service"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// writeError maps service errors onto HTTP status codes. Anything not in
// the taxonomy is a persistence or programming failure and surfaces as a
// generic 500 so internals never leak.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeMessage(w, status, "server error")
		return
	}
	writeMessage(w, status, err.Error())
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrJoinCodeRequired),
		errors.Is(err, service.ErrInvalidProjectStatus),
		errors.Is(err, service.ErrInvalidDecision),
		errors.Is(err, service.ErrInvalidTaskStatus),
		errors.Is(err, service.ErrMeetingFieldsRequired),
		errors.Is(err, service.ErrTaskFieldsRequired),
		errors.Is(err, service.ErrSignupFieldsRequired),
		errors.Is(err, service.ErrInvalidRole):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrAdminOnly),
		errors.Is(err, service.ErrMemberOnly),
		errors.Is(err, service.ErrNotProjectOwner),
		errors.Is(err, service.ErrNotAssignedTask):
		return http.StatusForbidden
	case errors.Is(err, service.ErrProjectNotFound),
		errors.Is(err, service.ErrJoinRequestNotFound),
		errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrNotificationNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAlreadyMember),
		errors.Is(err, service.ErrAlreadyRequested),
		errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
