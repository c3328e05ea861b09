package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voyage/internal/api/controllers"
	"voyage/internal/repositories"
	mem "voyage/pkg/memcache"
	"voyage/pkg/middleware"
	"voyage/pkg/utils"
)

type routerParams struct {
	accounts *controllers.AccountController
	trips    *controllers.TripController
	carpools *controllers.CarpoolController
	requests *controllers.TripRequestController
	ai       *controllers.AIController
	weather  *controllers.WeatherController
}

func ProvideRouter(
	log *zap.Logger,
	tokens *utils.TokenIssuer,
	blacklist repositories.TokenBlacklist,
	limiters mem.LimiterStore,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	carpoolController *controllers.CarpoolController,
	requestController *controllers.TripRequestController,
	aiController *controllers.AIController,
	weatherController *controllers.WeatherController) *gin.Engine {

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		middleware.JWTAuthMiddleware(tokens, blacklist),
		middleware.AIRateLimit(limiters),
		routerParams{
			accounts: accountController,
			trips:    tripController,
			carpools: carpoolController,
			requests: requestController,
			ai:       aiController,
			weather:  weatherController,
		})

	return r
}

func RegisterRoutes(r *gin.Engine, auth, aiLimit gin.HandlerFunc, p routerParams) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", p.accounts.SignUp)
	authGroup.POST("/login", p.accounts.Login)
	authGroup.POST("/refresh", p.accounts.Refresh)
	authGroup.POST("/logout", auth, p.accounts.Logout)
	authGroup.GET("/me", auth, p.accounts.Me)

	api.GET("/profile/me", auth, p.accounts.Profile)
	api.GET("/integrations/weather", p.weather.Current)

	trips := api.Group("/trips", auth)
	trips.POST("", p.trips.CreateTrip)
	trips.GET("/discover", p.trips.Discover)
	trips.GET("/suggestions", aiLimit, p.ai.Suggestions)
	trips.POST("/chat", aiLimit, p.ai.Chat)
	trips.GET("/:id", p.trips.GetTrip)
	trips.POST("/:id/generate", aiLimit, p.ai.GenerateItinerary)
	trips.GET("/:id/recommendations", aiLimit, p.ai.Recommendations)
	trips.GET("/:id/packing-list", aiLimit, p.ai.PackingList)
	trips.GET("/:id/budget-analysis", aiLimit, p.ai.BudgetAnalysis)

	trips.GET("/:id/carpools", p.carpools.ListCarpools)
	trips.POST("/:id/carpools", p.carpools.CreateCarpool)

	trips.POST("/:id/requests", p.requests.RequestToJoin)
	trips.GET("/:id/requests", p.requests.ListRequests)
	trips.POST("/:id/requests/:requestId/accept", p.requests.Accept)
	trips.POST("/:id/requests/:requestId/reject", p.requests.Reject)
}
