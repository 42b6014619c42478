package http

import (
	"net/http"
	"strconv"

	"teamsync-backend/internal/security"

	"github.com/gorilla/mux"
)

// mustClaims fetches the caller's claims or answers 401. The auth
// middleware always sets them on protected routes; this is the backstop.
func mustClaims(w http.ResponseWriter, r *http.Request) (*security.UserClaims, bool) {
	claims, ok := ClaimsFrom(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "no token provided")
	}
	return claims, ok
}

// pathID parses a numeric path variable.
func pathID(r *http.Request, name string) (int32, bool) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(id), true
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
