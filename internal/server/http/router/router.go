package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/comrade-org/membership/internal/server/http/handlers"
	"github.com/comrade-org/membership/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MembershipFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	registrationHandler := handlers.NewRegistrationHandler(facade)
	memberHandler := handlers.NewMemberHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	api := engine.Group("/api")
	api.POST("/register", registrationHandler.Register)
	api.GET("/member/:memberId", memberHandler.Profile)
	api.GET("/health", healthHandler.Status)

	return engine
}
