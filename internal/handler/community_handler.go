package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
)

type CreatePostRequest struct {
	Content     string `json:"content" validate:"required"`
	IsAnonymous bool   `json:"isAnonymous"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type FeedResponse struct {
	Posts []models.FeedPost `json:"posts"`
}

type ToggleLikeResponse struct {
	Liked bool `json:"liked"`
	Count int  `json:"count"`
}

type CommentsResponse struct {
	Comments []models.Comment `json:"comments"`
}

// GetFeed returns the public projection: approved posts only, with display
// names, counts and the viewer's like state.
func (h *Handlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	viewerID, _ := r.Context().Value("studentID").(string)

	feed, err := h.FeedService.ProjectPublicFeed(r.Context(), viewerID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, FeedResponse{Posts: feed}, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.CommunityService.CreatePost(r.Context(), actor.StudentID, req.Content, req.IsAnonymous)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) ToggleLike(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)
	postID := mux.Vars(r)["id"]

	liked, count, err := h.CommunityService.ToggleLike(r.Context(), actor.StudentID, postID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, ToggleLikeResponse{Liked: liked, Count: count}, http.StatusOK)
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	comments, err := h.CommunityService.GetComments(r.Context(), postID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, CommentsResponse{Comments: comments}, http.StatusOK)
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)
	postID := mux.Vars(r)["id"]

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := h.CommunityService.CreateComment(r.Context(), actor.StudentID, postID, req.Content)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusCreated)
}
