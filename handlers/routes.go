package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"ngo_discovery/config"
	_ "ngo_discovery/docs" // swagger docs
	"ngo_discovery/services"
)

// RegisterRoutes mounts the API surface. The recommendation endpoint shares
// one Recommender, which is stateless across requests.
func RegisterRoutes(r *chi.Mux, cfg *config.Config) {
	recommender := services.NewRecommender(cfg)

	// Swagger docs
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Get("/api/recommendations/{uid}", func(w http.ResponseWriter, r *http.Request) {
		GetRecommendationsHandler(w, r, recommender)
	})

	r.Get("/api/categories", ListCategoriesHandler)

	r.Get("/api/ngos", ListNGOsHandler)
	r.Get("/api/ngos/{id}", GetNGOHandler)
	r.Get("/api/ngos/{id}/reviews", ListReviewsHandler)
	r.Post("/api/ngos/{id}/reviews/{uid}", CreateReviewHandler)
	r.Post("/api/ngos/{id}/contact", ContactNGOHandler)

	r.Get("/api/events", ListEventsHandler)
	r.Post("/api/events/{id}/register/{uid}", RegisterForEventHandler)
	r.Delete("/api/events/{id}/register/{uid}", CancelRegistrationHandler)

	r.Get("/api/news", ListNewsHandler)

	r.Get("/api/tags", ListTagsHandler)
	r.Get("/api/materials", ListMaterialsHandler)
	r.Get("/api/materials/{id}", GetMaterialHandler)

	r.Get("/api/search", SearchHandler)
	r.Get("/api/statistics", StatisticsHandler)
	r.Get("/api/map/ngos", MapNGOsHandler)

	r.Get("/api/users/{uid}/favorites", ListFavoritesHandler)
	r.Post("/api/users/{uid}/favorites/{ngoID}", AddFavoriteHandler)
	r.Delete("/api/users/{uid}/favorites/{ngoID}", RemoveFavoriteHandler)
	r.Get("/api/users/{uid}/library", ListLibraryHandler)
	r.Post("/api/users/{uid}/library/{materialID}", SaveToLibraryHandler)
	r.Delete("/api/users/{uid}/library/{materialID}", RemoveFromLibraryHandler)
	r.Get("/api/users/{uid}/activity", ListUserActivityHandler)

	r.Get("/api/moderation", ListModerationRequestsHandler)
	r.Post("/api/moderation/{id}/approve", ApproveModerationHandler)
	r.Post("/api/moderation/{id}/reject", RejectModerationHandler)
}
