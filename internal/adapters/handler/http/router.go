package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/ken122189/backend-P7/internal/core/ports"
)

func NewHandler(
	authHandler *AuthHandler,
	userHandler *UserHandler,
	positionHandler *PositionHandler,
	codec ports.TokenCodec,
	allowedOrigins []string,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("welcome"))
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.With(RequireAuth(codec)).Post("/logout", authHandler.Logout)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(RequireAuth(codec))
			r.Get("/", userHandler.GetAll)
			r.Get("/{id}", userHandler.GetOne)
			r.Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
		})

		r.Route("/positions", func(r chi.Router) {
			r.Use(RequireAuth(codec))
			r.Get("/", positionHandler.GetAll)
			r.Post("/", positionHandler.Create)
			r.Get("/{position_id}", positionHandler.GetOne)
			r.Put("/{position_id}", positionHandler.Update)
			r.Delete("/{position_id}", positionHandler.Delete)
		})
	})

	return r
}
