package routes

import (
	"rimashaar/client"
	"rimashaar/config"
	"rimashaar/controller"
	"rimashaar/middleware"
	"rimashaar/service"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires the backend client, the registration service and the
// controllers that expose them to the UI.
func SetupRouter(cfg *config.ConfigManager) *gin.Engine {
	gateway := client.NewRimashaarClient(cfg.GetConfig().Api)
	return NewRouter(cfg, gateway)
}

// NewRouter builds the engine around any gateway, which lets tests swap the backend.
func NewRouter(cfg *config.ConfigManager, gateway service.RegistrationGateway) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.ZerologMiddleware())
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.RateLimiter(cfg))

	// --- Services ---
	registrationSvc := service.NewRegistrationService(gateway, cfg)
	configSvc := service.NewConfigService(cfg)

	// --- Routes & Controllers ---
	api := r.Group("/api")
	{
		controller.NewHealthController().RegisterRoutes(api)
		controller.NewRegistrationController(registrationSvc).RegisterRoutes(api)
		controller.NewOtpController().RegisterRoutes(api)
		// Config editing has no auth in front of it, so production never mounts it.
		if cfg.GetConfig().Environment != "production" {
			controller.NewConfigController(configSvc).RegisterRoutes(api)
		}
	}

	return r
}
