package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/renaldy/spaces-api/internal/api/response"
	"github.com/renaldy/spaces-api/internal/domain"
	"github.com/renaldy/spaces-api/internal/service"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

// SpaceHandler handles space endpoints
type SpaceHandler struct {
	spaceService *service.SpaceService
}

// NewSpaceHandler creates a new space handler
func NewSpaceHandler(spaceService *service.SpaceService) *SpaceHandler {
	return &SpaceHandler{spaceService: spaceService}
}

// Create handles space creation
func (h *SpaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.SpaceCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	space, err := h.spaceService.Create(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	response.Created(w, space)
}

// List handles listing all spaces
func (h *SpaceHandler) List(w http.ResponseWriter, r *http.Request) {
	spaces, err := h.spaceService.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	response.OK(w, spaces)
}

// Get handles getting a space by ID
func (h *SpaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := spaceID(w, r)
	if !ok {
		return
	}

	space, err := h.spaceService.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	response.OK(w, space)
}

// Update handles partially updating a space
func (h *SpaceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := spaceID(w, r)
	if !ok {
		return
	}

	var input domain.SpaceUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	space, err := h.spaceService.Update(r.Context(), id, input)
	if err != nil {
		respondError(w, err)
		return
	}

	response.OK(w, space)
}

// Delete handles deleting a space
func (h *SpaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := spaceID(w, r)
	if !ok {
		return
	}

	if err := h.spaceService.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	response.NoContent(w)
}

// spaceID extracts and parses the space ID path parameter, answering the
// request itself when the parameter is missing or malformed.
func spaceID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "spaceID")
	if raw == "" {
		response.BadRequest(w, "missing space ID")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		response.BadRequest(w, "invalid space ID")
		return uuid.Nil, false
	}

	return id, true
}

// respondError logs the failure and maps its kind to a status code.
func respondError(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("request failed")

	switch domain.KindOf(err) {
	case domain.ErrorKindValidation:
		response.BadRequest(w, err.Error())
	case domain.ErrorKindNotFound:
		response.NotFound(w, err.Error())
	default:
		response.InternalError(w, err.Error())
	}
}
