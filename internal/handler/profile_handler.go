package handlers

import (
	"encoding/json"
	"net/http"
)

type UpdateProfileRequest struct {
	FullName string `json:"fullName" validate:"required,max=100"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

type AvatarResponse struct {
	AvatarURL string `json:"avatarUrl"`
}

func (h *Handlers) GetCurrentStudent(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)

	student, err := h.ProfileService.GetProfile(r.Context(), actor.StudentID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, StudentResponse{
		StudentID: student.StudentID,
		FullName:  student.FullName,
		Email:     student.Email,
		IsAdmin:   student.IsAdmin,
		AvatarURL: student.AvatarURL,
		CreatedAt: student.CreatedAt,
	}, http.StatusOK)
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.ProfileService.UpdateProfile(r.Context(), actor.StudentID, req.FullName); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Profile updated"}, http.StatusOK)
}

func (h *Handlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.ProfileService.ChangePassword(r.Context(), actor.StudentID, req.CurrentPassword, req.NewPassword); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Password updated"}, http.StatusOK)
}

func (h *Handlers) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)

	// size limit comes from the config
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "File is too large or malformed", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		WriteError(w, "Failed to read file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	allowedTypes := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/webp": true,
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		WriteError(w, "Unsupported file type. Allowed: JPEG, PNG, WebP", http.StatusBadRequest)
		return
	}

	avatarURL, err := h.ProfileService.UploadAvatar(r.Context(), actor.StudentID, header.Filename, file, header.Size)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, AvatarResponse{AvatarURL: avatarURL}, http.StatusCreated)
}
