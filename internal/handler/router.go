package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/portrussell/marina-go/internal/metrics"
	"github.com/portrussell/marina-go/internal/middleware"
)

// RouterConfig carries everything the router needs to assemble the HTTP
// surface.
type RouterConfig struct {
	JWTSecret    string
	Collector    *metrics.Collector
	Auth         *AuthHandler
	Users        *UserHandler
	Catways      *CatwayHandler
	Reservations *ReservationHandler
	Pages        *PageHandler
}

// NewRouter assembles the full route table. Login and logout are public;
// every resource route sits behind the token gate.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	if cfg.Collector != nil {
		r.Use(cfg.Collector.Middleware)
		r.Method(http.MethodGet, "/metrics", cfg.Collector.Handler())
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/", cfg.Pages.HandleHome)
	r.Get("/logout", cfg.Auth.HandleLogout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/login", cfg.Auth.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))

		r.Get("/me", cfg.Auth.HandleMe)

		r.Get("/pages/users", cfg.Pages.HandleUsersPage)
		r.Get("/pages/reservations", cfg.Pages.HandleReservationsPage)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", cfg.Users.HandleList)
			r.Post("/", cfg.Users.HandleCreate)
			r.Get("/{id}", cfg.Users.HandleGet)
			r.Put("/{id}", cfg.Users.HandleUpdate)
			r.Delete("/{id}", cfg.Users.HandleDelete)
		})

		r.Route("/catways", func(r chi.Router) {
			r.Get("/", cfg.Catways.HandleList)
			r.Post("/", cfg.Catways.HandleCreate)
			r.Get("/{catwayNumber}", cfg.Catways.HandleGet)
			r.Put("/{catwayNumber}", cfg.Catways.HandleUpdate)
			r.Delete("/{catwayNumber}", cfg.Catways.HandleDelete)

			r.Route("/{catwayNumber}/reservations", func(r chi.Router) {
				r.Get("/", cfg.Reservations.HandleList)
				r.Post("/", cfg.Reservations.HandleCreate)
				r.Get("/{reservationID}", cfg.Reservations.HandleGet)
				r.Put("/{reservationID}", cfg.Reservations.HandleUpdate)
				r.Delete("/{reservationID}", cfg.Reservations.HandleDelete)
			})
		})
	})

	return r
}
