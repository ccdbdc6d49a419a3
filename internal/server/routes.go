package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"petgame/internal/domain"
	"petgame/pkg/errcodes"
	"petgame/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.MethodNotAllowed(handler(func(w http.ResponseWriter, r *http.Request) error {
		return domain.NewError(errcodes.MethodNotAllowed, "method not allowed")
	}))

	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			// unauthorized zone
			r.Post("/auth", handler(s.postV1Auth))
			r.Get("/pet", handler(s.getV1Pet))
			r.Get("/trade", handler(s.getV1Trade))
			r.Get("/leaderboard", handler(s.getV1Leaderboard))

			// authorized zone
			r.Group(func(r chi.Router) {
				r.Use(s.requireSession)
				r.Post("/pet", handler(s.postV1Pet))
				r.Post("/trade", handler(s.postV1Trade))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
