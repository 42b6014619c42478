package http

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"

	"teamsync-backend/internal/config"
	"teamsync-backend/internal/security"
)

// RouterDeps bundles everything the HTTP layer needs from the wiring code.
type RouterDeps struct {
	Config        *config.Config
	Tokens        security.TokenManager
	Auth          *AuthHandler
	Projects      *ProjectHandler
	Memberships   *MembershipHandler
	Tasks         *TaskHandler
	Notifications *NotificationHandler
}

// NewRouter assembles the full API surface. Public auth endpoints are rate
// limited per client IP; everything else requires a valid access token.
func NewRouter(deps RouterDeps) *mux.Router {
	r := mux.NewRouter()

	r.Use(RequestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", HealthCheck).Methods(http.MethodGet)

	limiter := NewIPRateLimiter(deps.Config.RateLimit.RequestsPerMinute, deps.Config.RateLimit.Burst, 10*time.Minute)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.Use(limiter.Middleware)
	auth.HandleFunc("/signup", deps.Auth.Signup).Methods(http.MethodPost)
	auth.HandleFunc("/login", deps.Auth.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", deps.Auth.Refresh).Methods(http.MethodPost)

	protected := api.PathPrefix("").Subrouter()
	protected.Use(Authenticate(deps.Tokens))

	projects := protected.PathPrefix("/projects").Subrouter()
	projects.HandleFunc("", deps.Projects.Create).Methods(http.MethodPost)
	projects.HandleFunc("/ongoing", deps.Projects.Ongoing).Methods(http.MethodGet)
	projects.HandleFunc("/mine", deps.Projects.Mine).Methods(http.MethodGet)
	projects.HandleFunc("/member-projects", deps.Projects.MemberProjects).Methods(http.MethodGet)
	projects.HandleFunc("/join-requests", deps.Memberships.ListPending).Methods(http.MethodGet)
	projects.HandleFunc("/my-join-requests", deps.Memberships.ListOwn).Methods(http.MethodGet)
	projects.HandleFunc("/join-request", deps.Memberships.RequestToJoin).Methods(http.MethodPost)
	projects.HandleFunc("/join-request/{projectId:[0-9]+}/{userId:[0-9]+}", deps.Memberships.Decide).Methods(http.MethodPatch)
	projects.HandleFunc("/{id:[0-9]+}", deps.Projects.Get).Methods(http.MethodGet)
	projects.HandleFunc("/{id:[0-9]+}/members", deps.Projects.AddMembers).Methods(http.MethodPost)
	projects.HandleFunc("/{id:[0-9]+}/meetings", deps.Projects.AddMeeting).Methods(http.MethodPost)

	tasks := protected.PathPrefix("/tasks").Subrouter()
	tasks.HandleFunc("", deps.Tasks.Create).Methods(http.MethodPost)
	tasks.HandleFunc("", deps.Tasks.List).Methods(http.MethodGet)
	tasks.HandleFunc("/{id:[0-9]+}", deps.Tasks.Get).Methods(http.MethodGet)
	tasks.HandleFunc("/{id:[0-9]+}", deps.Tasks.Update).Methods(http.MethodPut)
	tasks.HandleFunc("/{id:[0-9]+}", deps.Tasks.Delete).Methods(http.MethodDelete)
	tasks.HandleFunc("/{id:[0-9]+}/progress", deps.Tasks.UpdateProgress).Methods(http.MethodPatch)

	notifications := protected.PathPrefix("/notifications").Subrouter()
	notifications.HandleFunc("", deps.Notifications.List).Methods(http.MethodGet)
	notifications.HandleFunc("/{id:[0-9]+}/read", deps.Notifications.MarkAsRead).Methods(http.MethodPatch)

	return r
}
