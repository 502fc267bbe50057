package handler

import (
	"net/http"

	"github.com/portrussell/marina-go/internal/model"
	"github.com/portrussell/marina-go/internal/service"
)

// ReservationHandler handles HTTP requests for catway-scoped reservations.
// The catway number always comes from the path, never the body.
type ReservationHandler struct {
	service *service.ReservationService
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(svc *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: svc}
}

// HandleCreate handles POST /catways/{catwayNumber}/reservations.
func (h *ReservationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	number, ok := pathID(w, r, "catwayNumber")
	if !ok {
		return
	}

	var req model.CreateReservationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), number, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /catways/{catwayNumber}/reservations.
func (h *ReservationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	number, ok := pathID(w, r, "catwayNumber")
	if !ok {
		return
	}

	reservations, err := h.service.List(r.Context(), number)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reservations)
}

// HandleGet handles GET /catways/{catwayNumber}/reservations/{reservationID}.
func (h *ReservationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	number, id, ok := reservationPath(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), number, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdate handles PUT /catways/{catwayNumber}/reservations/{reservationID}.
func (h *ReservationHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	number, id, ok := reservationPath(w, r)
	if !ok {
		return
	}

	var req model.UpdateReservationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Update(r.Context(), number, id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /catways/{catwayNumber}/reservations/{reservationID}.
func (h *ReservationHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	number, id, ok := reservationPath(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), number, id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "reservation deleted"})
}

func reservationPath(w http.ResponseWriter, r *http.Request) (catwayNumber, reservationID int64, ok bool) {
	catwayNumber, ok = pathID(w, r, "catwayNumber")
	if !ok {
		return 0, 0, false
	}
	reservationID, ok = pathID(w, r, "reservationID")
	if !ok {
		return 0, 0, false
	}
	return catwayNumber, reservationID, true
}
