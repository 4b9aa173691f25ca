package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/handler"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/middleware"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/ws"
	pkgmiddleware "github.com/sarrasouelmia/ArenaNuitDeL-info/pkg/middleware"
)

func SetupRouter(
	authHandler *handler.AuthHandler,
	teamHandler *handler.TeamHandler,
	scoreHandler *handler.ScoreHandler,
	leaderboardHandler *handler.LeaderboardHandler,
	eventHandler *handler.EventHandler,
	healthHandler *handler.HealthHandler,
	hub *ws.Hub,
	authService middleware.AuthService,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(pkgmiddleware.LoggingMiddleware)

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// The websocket endpoint stays outside the timeout group: connections
	// are long-lived by design.
	r.Get("/ws", ws.Serve(hub))

	r.Group(func(r chi.Router) {
		r.Use(chimiddleware.Timeout(5 * time.Second))

		// Public read surface
		r.Get("/health", healthHandler.Health)
		r.Post("/auth/login", authHandler.Login)
		r.Get("/leaderboard", leaderboardHandler.GetLeaderboard)
		r.Get("/teams", teamHandler.ListTeams)
		r.Get("/teams/{id}", teamHandler.GetTeam)
		r.Get("/scores/recent", scoreHandler.RecentAwards)
		r.Get("/events", eventHandler.ListEvents)

		// Admin write surface (requires a session token; the token's actor
		// identity is recorded on every state change)
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(authService))

			r.Post("/teams", teamHandler.CreateTeam)
			r.Put("/teams/{id}", teamHandler.UpdateTeam)
			r.Delete("/teams/{id}", teamHandler.DeleteTeam)
			r.Post("/scores", scoreHandler.AwardPoints)
		})
	})

	return r
}
