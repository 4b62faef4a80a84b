package main

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/silentraja/Medskls/pkg/apihelpers"
	"github.com/silentraja/Medskls/services/intake-api/apihandlers"
)

func main() {
	// Start webserver
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     conf.GinConfig.AllowOrigins,
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Content-Length", "Session-Id"},
		ExposeHeaders:    []string{"Authorization", "Content-Type", "Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Add handlers
	router.GET("/", apihandlers.HealthCheckHandle)
	v1Root := router.Group("/v1")

	v1APIHandlers := apihandlers.NewHTTPHandler(
		conf.PatientUserJWTConfig.SignKey,
		conf.PatientUserJWTConfig.ExpiresIn,
		intakeDBService,
		conf.MessagingConfigs,
	)
	v1APIHandlers.AddIntakeAPI(v1Root)

	if conf.GinConfig.DebugMode {
		if err := apihelpers.WriteRoutesToFile(router, "intake-api-routes.txt"); err != nil {
			slog.Warn("failed to write routes file", slog.String("error", err.Error()))
		}
	}

	// Start the server
	slog.Info("Starting Intake API on port " + conf.GinConfig.Port)
	if err := router.Run(":" + conf.GinConfig.Port); err != nil {
		slog.Error("Exited Intake API", slog.String("error", err.Error()))
		return
	}
}
