package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
)

type MoodRequest struct {
	Score int    `json:"score" validate:"required,min=1,max=5"`
	Note  string `json:"note" validate:"max=500"`
}

type MoodsResponse struct {
	Moods []models.MoodEntry `json:"moods"`
}

func (h *Handlers) RecordMood(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)

	var req MoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := h.MoodService.RecordMood(r.Context(), actor.StudentID, req.Score, req.Note)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, entry, http.StatusCreated)
}

func (h *Handlers) GetMoodHistory(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	moods, err := h.MoodService.GetMoodHistory(r.Context(), actor.StudentID, limit)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, MoodsResponse{Moods: moods}, http.StatusOK)
}
