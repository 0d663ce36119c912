package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
)

type JournalRequest struct {
	Title   string `json:"title" validate:"max=255"`
	Content string `json:"content" validate:"required"`
}

type JournalsResponse struct {
	Journals []models.Journal `json:"journals"`
}

func (h *Handlers) GetJournals(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)

	journals, err := h.JournalService.GetJournals(r.Context(), actor.StudentID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, JournalsResponse{Journals: journals}, http.StatusOK)
}

func (h *Handlers) CreateJournal(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)

	var req JournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	journal, err := h.JournalService.CreateJournal(r.Context(), actor.StudentID, req.Title, req.Content)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, journal, http.StatusCreated)
}

func (h *Handlers) UpdateJournal(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)
	journalID := mux.Vars(r)["id"]

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	journal, err := h.JournalService.UpdateJournal(r.Context(), actor.StudentID, journalID, req.Title, req.Content)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, journal, http.StatusOK)
}

func (h *Handlers) DeleteJournal(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)
	journalID := mux.Vars(r)["id"]

	if err := h.JournalService.DeleteJournal(r.Context(), actor.StudentID, journalID); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Journal deleted"}, http.StatusOK)
}
