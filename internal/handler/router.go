package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// NewRouter assembles the full HTTP surface: middleware stack, health check,
// and the /api route tree.
func NewRouter(
	log *zap.Logger,
	events *EventHandler,
	favorites *FavoriteHandler,
	recoms *RecommendationHandler,
	users *UserHandler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(AccessLog(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Route("/events", func(r chi.Router) {
			r.Get("/", events.List)
			r.Post("/", events.Create)
			r.Get("/{eventId}", events.Get)
			r.Put("/{eventId}", events.Update)
			r.Delete("/{eventId}", events.Delete)
			r.Patch("/{eventId}/ticketTypes/{index}", events.PatchTicketType)
			r.Patch("/{eventId}/schedule/{index}", events.PatchSchedule)
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", favorites.List)
			r.Post("/", favorites.Add)
			r.Delete("/", favorites.Remove)
		})

		r.Post("/recoms", recoms.Recommend)

		r.Route("/users", func(r chi.Router) {
			r.Post("/login", users.Login)
			r.Post("/", users.Register)
			r.Get("/", users.List)
			r.Get("/{id}", users.Get)
			r.Put("/{id}", users.Update)
			r.Delete("/{id}", users.Delete)
		})
	})

	return r
}
