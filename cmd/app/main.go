package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripscout/cmd/fx/clientfx"
	"tripscout/cmd/fx/configfx"
	"tripscout/cmd/fx/controllersfx"
	"tripscout/cmd/fx/servicesfx"
	"tripscout/cmd/fx/storefx"
	"tripscout/internal/api/controllers"
	"tripscout/pkg/config"
	"tripscout/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	app := fx.New(
		configfx.Module,
		storefx.Module,
		clientfx.Module,
		servicesfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.AppConfig) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				addr := fmt.Sprintf(":%d", cfg.AppPort)
				log.Printf("Starting HTTP server at %s", addr)
				if err := engine.Run(addr); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.AppConfig,
	sessionController *controllers.SessionController,
	plannerController *controllers.PlannerController,
	itineraryController *controllers.ItineraryController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigin))
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, sessionController, plannerController, itineraryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	sessionController *controllers.SessionController,
	plannerController *controllers.PlannerController,
	itineraryController *controllers.ItineraryController) {

	sessions := r.Group("/sessions")
	sessions.POST("", sessionController.StartSession)
	sessions.GET("/:sessionId/view", sessionController.GetSessionView)
	sessions.POST("/:sessionId/recommendations", plannerController.SubmitCriteria)

	sessions.GET("/:sessionId/itinerary", itineraryController.ListItinerary)
	sessions.POST("/:sessionId/itinerary", itineraryController.AddToItinerary)
	sessions.DELETE("/:sessionId/itinerary", itineraryController.ClearItinerary)
	sessions.DELETE("/:sessionId/itinerary/:name", itineraryController.RemoveFromItinerary)
}
