package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"pos-client/config"
	_ "pos-client/docs"
	"pos-client/middleware"
	"pos-client/repositories"
	"pos-client/routes"
	"pos-client/services"
	"pos-client/views"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// @title POS Client
// @version 1.0
// @description Point-of-sale front end for the POS API: login, catalog, cart, checkout and sales history.
// @BasePath /
func main() {

	config.LoadConfig()

	if config.AppConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.InitTracing()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		config.ShutdownTracing(ctx)
	}()

	templates, err := views.Load()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	sessions := repositories.NewSessionRepository(config.AppConfig.SessionTTL, config.AppConfig.MaxSessions)
	if config.AppConfig.SessionTTL > 0 {
		go sessions.RunSweeper(context.Background(), time.Minute)
	}

	router := gin.Default()
	router.SetHTMLTemplate(templates)
	router.Use(middleware.CORSMiddleware(config.AppConfig.OriginURL))
	routes.SetupRoutes(router, routes.Options{
		API:          services.NewAPIClient(config.AppConfig.APIBaseURL, config.AppConfig.APITimeout),
		Sessions:     sessions,
		CookieName:   config.AppConfig.SessionCookieName,
		SecureCookie: config.AppConfig.IsProduction(),
	})

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := http.ListenAndServe(port, otelhttp.NewHandler(router, config.ServiceName)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
