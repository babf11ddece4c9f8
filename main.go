package main

import (
	"runtime"

	"rimashaar/cache"
	"rimashaar/config"
	"rimashaar/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	sysConfigs, err := config.LoadConfigs()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}

	if sysConfigs.Config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if sysConfigs.Config.DebugMode {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cache.ConfigureSessionTTL(sysConfigs.Config.Otp.SessionTTL)
	router := routes.SetupRouter(config.NewConfigManager(sysConfigs.Config))

	port := sysConfigs.Config.Port
	if port == "" {
		port = "8080"
	}

	log.Info().
		Str("port", port).
		Str("backend", sysConfigs.Config.Api.BaseURL).
		Msg("Server starting")
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.With().Str("service", "rimashaar-registration").Logger()
}
