package routes

import (
	"net/http"

	"lagoon/auth"
	"lagoon/catalog"
	"lagoon/export"
	"lagoon/live"
	"lagoon/media"
	"lagoon/middleware"
	"lagoon/ratelim"
	"lagoon/suggestions"
	"lagoon/trips"
	"lagoon/utils"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/coverpic/*filepath", http.Dir("static/coverpic"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(middleware.Authenticate(auth.RefreshToken)))
}

func AddCatalogRoutes(router *httprouter.Router) {
	router.GET("/api/islands", ratelim.RateLimit(catalog.GetIslands))
	router.GET("/api/islands/:islandid", catalog.GetIsland)
	router.GET("/api/hotels", ratelim.RateLimit(catalog.GetHotels))
	router.GET("/api/hotels/:hotelid", catalog.GetHotel)
	router.GET("/api/events", ratelim.RateLimit(catalog.GetEvents))
	router.GET("/api/events/:eventid", catalog.GetEvent)
}

func AddTripRoutes(router *httprouter.Router) {
	router.GET("/api/trips/trips", ratelim.RateLimit(trips.GetPublicTrips))
	router.GET("/api/trips/mine", middleware.Authenticate(trips.GetMyTrips))
	router.POST("/api/trips/trip", middleware.Authenticate(trips.CreateTrip))
	router.GET("/api/trips/trip/:shortid", middleware.OptionalAuth(trips.GetTripByShortID))
	router.PUT("/api/trips/trip/:shortid", middleware.Authenticate(trips.UpdateTrip))
	router.DELETE("/api/trips/trip/:shortid", middleware.Authenticate(trips.DeleteTrip))

	router.POST("/api/trips/trip/:shortid/comments", middleware.Authenticate(trips.CreateComment))
	router.GET("/api/trips/trip/:shortid/comments", trips.GetComments)
	router.DELETE("/api/trips/trip/:shortid/comments/:commentid", middleware.Authenticate(trips.DeleteComment))

	router.POST("/api/trips/trip/:shortid/collaborators", middleware.Authenticate(trips.AddCollaborator))
	router.GET("/api/trips/trip/:shortid/collaborators", middleware.OptionalAuth(trips.GetCollaborators))

	router.POST("/api/trips/trip/:shortid/like", ratelim.RateLimit(trips.LikeTrip))
	router.DELETE("/api/trips/trip/:shortid/like", ratelim.RateLimit(trips.UnlikeTrip))

	router.POST("/api/trips/trip/:shortid/cover", middleware.Authenticate(media.UploadTripCover))
}

func AddSuggestionsRoutes(router *httprouter.Router) {
	router.POST("/api/suggestions/recommend", ratelim.RateLimit(suggestions.RecommendHandler))
}

func AddExportRoutes(router *httprouter.Router) {
	router.GET("/api/trips/trip/:shortid/pdf", ratelim.RateLimit(middleware.OptionalAuth(export.PrintTrip)))
}

func AddLiveRoutes(router *httprouter.Router, hub *live.Hub) {
	router.GET("/ws/trips/:shortid", live.WebSocketHandler(hub))
}

func AddUtilityRoutes(router *httprouter.Router) {
	router.GET("/api/csrf", utils.CSRF)
}
