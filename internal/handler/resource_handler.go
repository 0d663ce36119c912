package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
)

type ResourceRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Type        string `json:"type" validate:"required,max=50"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Phone       string `json:"phone" validate:"max=50"`
}

type ResourcesResponse struct {
	Resources []models.WellnessResource `json:"resources"`
}

// GetResources is public so hotlines stay reachable without an account.
func (h *Handlers) GetResources(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	resourceType := r.URL.Query().Get("type")

	resources, err := h.ResourceService.ListResources(r.Context(), search, resourceType)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, ResourcesResponse{Resources: resources}, http.StatusOK)
}

func (h *Handlers) CreateResource(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)

	var req ResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resource, err := h.ResourceService.CreateResource(r.Context(), actor, &models.WellnessResource{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		URL:         req.URL,
		Phone:       req.Phone,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, resource, http.StatusCreated)
}

func (h *Handlers) UpdateResource(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)
	resourceID := mux.Vars(r)["id"]

	var req ResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resource := &models.WellnessResource{
		ResourceID:  resourceID,
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		URL:         req.URL,
		Phone:       req.Phone,
	}

	if err := h.ResourceService.UpdateResource(r.Context(), actor, resource); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, resource, http.StatusOK)
}

func (h *Handlers) DeleteResource(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)
	resourceID := mux.Vars(r)["id"]

	if err := h.ResourceService.DeleteResource(r.Context(), actor, resourceID); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Resource deleted"}, http.StatusOK)
}
