package handler

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/portrussell/marina-go/internal/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// PageHandler serves the server-rendered HTML views.
type PageHandler struct {
	users        *service.UserService
	reservations *service.ReservationService
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(users *service.UserService, reservations *service.ReservationService) *PageHandler {
	return &PageHandler{users: users, reservations: reservations}
}

// HandleHome handles GET /.
func (h *PageHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	h.render(w, "home.html", nil)
}

// HandleUsersPage handles GET /pages/users.
func (h *PageHandler) HandleUsersPage(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	h.render(w, "users.html", users)
}

// HandleReservationsPage handles GET /pages/reservations.
func (h *PageHandler) HandleReservationsPage(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.reservations.ListAll(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	h.render(w, "reservations.html", reservations)
}

func (h *PageHandler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("template render failed", "template", name, "error", err)
	}
}
