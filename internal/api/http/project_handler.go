package http

import (
	"encoding/json"
	"net/http"
	"time"

	"teamsync-backend/internal/domain"
	"teamsync-backend/internal/service"
)

type ProjectHandler struct {
	projectSvc service.ProjectService
}

func NewProjectHandler(projectSvc service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectSvc: projectSvc}
}

type createProjectRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Status      domain.ProjectStatus `json:"status"`
	Members     []int32              `json:"members"`
}

type projectResponse struct {
	Message string          `json:"message"`
	Project *domain.Project `json:"project"`
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}

	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.projectSvc.CreateProject(r.Context(), claims.UserID, req.Name, req.Description, req.Status, req.Members)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, projectResponse{Message: "project created successfully", Project: project})
}

func (h *ProjectHandler) listResponse(w http.ResponseWriter, r *http.Request, projects []domain.Project, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Ongoing(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectSvc.ListActiveProjects(r.Context())
	h.listResponse(w, r, projects, err)
}

func (h *ProjectHandler) Mine(w http.ResponseWriter, r *http.Request) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}
	projects, err := h.projectSvc.ListMyProjects(r.Context(), claims.UserID)
	h.listResponse(w, r, projects, err)
}

func (h *ProjectHandler) MemberProjects(w http.ResponseWriter, r *http.Request) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}
	projects, err := h.projectSvc.ListMemberProjects(r.Context(), claims.UserID)
	h.listResponse(w, r, projects, err)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid project id")
		return
	}

	project, err := h.projectSvc.GetProject(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

type addMembersRequest struct {
	Members []int32 `json:"members"`
}

func (h *ProjectHandler) AddMembers(w http.ResponseWriter, r *http.Request) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req addMembersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.projectSvc.AddMembers(r.Context(), claims.UserID, id, req.Members)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

type addMeetingRequest struct {
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
	Link  string    `json:"link"`
}

func (h *ProjectHandler) AddMeeting(w http.ResponseWriter, r *http.Request) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req addMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	meeting, err := h.projectSvc.AddMeeting(r.Context(), claims.UserID, id, req.Title, req.Date, req.Link)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, meeting)
}
