package handler

import (
	"net/http"

	"github.com/portrussell/marina-go/internal/model"
	"github.com/portrussell/marina-go/internal/service"
)

// CatwayHandler handles HTTP requests for catways.
type CatwayHandler struct {
	service *service.CatwayService
}

// NewCatwayHandler creates a new CatwayHandler.
func NewCatwayHandler(svc *service.CatwayService) *CatwayHandler {
	return &CatwayHandler{service: svc}
}

// HandleCreate handles POST /catways.
func (h *CatwayHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCatwayRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /catways.
func (h *CatwayHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	catways, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, catways)
}

// HandleGet handles GET /catways/{catwayNumber}.
func (h *CatwayHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	number, ok := pathID(w, r, "catwayNumber")
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), number)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdate handles PUT /catways/{catwayNumber}. Only the state may
// change; number and type are fixed at creation.
func (h *CatwayHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	number, ok := pathID(w, r, "catwayNumber")
	if !ok {
		return
	}

	var req model.UpdateCatwayRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.UpdateState(r.Context(), number, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /catways/{catwayNumber}.
func (h *CatwayHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	number, ok := pathID(w, r, "catwayNumber")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), number); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "catway deleted"})
}
