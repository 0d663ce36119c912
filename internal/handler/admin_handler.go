package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
)

type AdminPostsResponse struct {
	Posts []models.Post `json:"posts"`
}

type UpdateStatusRequest struct {
	Action string `json:"action" validate:"required,oneof=approve decline pending"`
}

type AdminUsersResponse struct {
	Users []models.StudentWithStats `json:"users"`
}

// AdminListPosts serves the per-status moderation views plus free-text
// search. No filter returns everything, most recent first.
func (h *Handlers) AdminListPosts(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)

	status := r.URL.Query().Get("status")
	search := r.URL.Query().Get("search")

	posts, err := h.ModerationService.ListPosts(r.Context(), actor, status, search)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, AdminPostsResponse{Posts: posts}, http.StatusOK)
}

func (h *Handlers) UpdatePostStatus(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)
	postID := mux.Vars(r)["id"]

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Invalid status action", http.StatusBadRequest)
		return
	}

	post, err := h.ModerationService.TransitionStatus(r.Context(), actor, postID, req.Action)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) AdminDeletePost(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)
	postID := mux.Vars(r)["id"]

	if err := h.ModerationService.DeletePost(r.Context(), actor, postID); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Post deleted"}, http.StatusOK)
}

// AdminStats recomputes the dashboard counters on every request.
func (h *Handlers) AdminStats(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)

	counts, err := h.ModerationService.ComputeCounts(r.Context(), actor)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, counts, http.StatusOK)
}

func (h *Handlers) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)

	users, err := h.AdminService.ListStudents(r.Context(), actor)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, AdminUsersResponse{Users: users}, http.StatusOK)
}

func (h *Handlers) PromoteUser(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)
	studentID := mux.Vars(r)["id"]

	if err := h.AdminService.PromoteStudent(r.Context(), actor, studentID); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "User promoted to admin"}, http.StatusOK)
}

func (h *Handlers) AdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)
	studentID := mux.Vars(r)["id"]

	if err := h.AdminService.DeleteStudent(r.Context(), actor, studentID); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "User deleted"}, http.StatusOK)
}
