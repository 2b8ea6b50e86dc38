package http

import (
	"encoding/json"
	"net/http"

	"github.com/ken122189/backend-P7/internal/core/ports"
)

type PositionHandler struct {
	service ports.PositionService
}

func NewPositionHandler(service ports.PositionService) *PositionHandler {
	return &PositionHandler{
		service: service,
	}
}

type createPositionRequest struct {
	Code string `json:"position_code"`
	Name string `json:"position_name"`
}

type updatePositionRequest struct {
	Code *string `json:"position_code"`
	Name *string `json:"position_name"`
}

func (h *PositionHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createPositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// The owner comes from the access token, never from the request body.
	position, err := h.service.Create(r.Context(), ports.CreatePositionInput{
		Code:   req.Code,
		Name:   req.Name,
		UserID: identity.ID,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, position)
}

func (h *PositionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	positions, err := h.service.GetAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, positions)
}

func (h *PositionHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "position_id")
	if !ok {
		return
	}

	position, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, position)
}

func (h *PositionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "position_id")
	if !ok {
		return
	}

	var req updatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	position, err := h.service.Update(r.Context(), id, ports.UpdatePositionInput{
		Code: req.Code,
		Name: req.Name,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, position)
}

func (h *PositionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "position_id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
