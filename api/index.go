package api

import (
	"log"
	"net/http"
	"sync"

	"pos-client/config"
	"pos-client/middleware"
	"pos-client/repositories"
	"pos-client/routes"
	"pos-client/services"
	"pos-client/views"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

// initApp builds the router once per serverless instance. Workspaces are
// per instance too, so sessions only survive while the instance is warm.
func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()

		templates, err := views.Load()
		if err != nil {
			log.Fatalf("Failed to parse templates: %v", err)
		}

		router = gin.New()
		router.Use(gin.Recovery())
		router.SetHTMLTemplate(templates)
		router.Use(middleware.CORSMiddleware(config.AppConfig.OriginURL))

		routes.SetupRoutes(router, routes.Options{
			API:          services.NewAPIClient(config.AppConfig.APIBaseURL, config.AppConfig.APITimeout),
			Sessions:     repositories.NewSessionRepository(config.AppConfig.SessionTTL, config.AppConfig.MaxSessions),
			CookieName:   config.AppConfig.SessionCookieName,
			SecureCookie: true,
		})
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
