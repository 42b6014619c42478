package http

import (
	"encoding/json"
	"net/http"

	"teamsync-backend/internal/domain"
	"teamsync-backend/internal/service"
)

type MembershipHandler struct {
	membershipSvc service.MembershipService
}

func NewMembershipHandler(membershipSvc service.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipSvc: membershipSvc}
}

type joinRequestBody struct {
	JoinCode string `json:"join_code"`
}

func (h *MembershipHandler) RequestToJoin(w http.ResponseWriter, r *http.Request) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}

	var req joinRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.membershipSvc.RequestToJoin(r.Context(), claims.UserID, req.JoinCode); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Join request sent. Awaiting admin approval.")
}

func (h *MembershipHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}

	requests, err := h.membershipSvc.ListPendingJoinRequests(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if requests == nil {
		requests = []domain.JoinRequestSummary{}
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *MembershipHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}

	requests, err := h.membershipSvc.ListOwnJoinRequests(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if requests == nil {
		requests = []domain.JoinRequestSummary{}
	}
	writeJSON(w, http.StatusOK, requests)
}

type decideRequest struct {
	Status domain.JoinRequestStatus `json:"status"`
}

func (h *MembershipHandler) Decide(w http.ResponseWriter, r *http.Request) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}
	projectID, ok := pathID(r, "projectId")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid project id")
		return
	}
	userID, ok := pathID(r, "userId")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req decideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.membershipSvc.DecideJoinRequest(r.Context(), claims.UserID, projectID, userID, req.Status); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Join request "+string(req.Status))
}
