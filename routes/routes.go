package routes

import (
	"net/http"

	"pos-client/controllers"
	"pos-client/middleware"
	"pos-client/repositories"
	"pos-client/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Options struct {
	API          services.PosAPI
	Sessions     *repositories.SessionRepository
	CookieName   string
	SecureCookie bool
}

func SetupRoutes(router *gin.Engine, opts Options) {
	cookie := middleware.SessionCookie{Name: opts.CookieName, Secure: opts.SecureCookie}
	posService := services.NewPosService(opts.API)
	authCtrl := &controllers.AuthController{
		Auth:     services.NewAuthService(opts.API),
		Pos:      posService,
		Sessions: opts.Sessions,
		Cookie:   cookie,
	}
	posCtrl := &controllers.PosController{Pos: posService}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": opts.Sessions.Count()})
	})

	session := router.Group("/")
	session.Use(middleware.SessionMiddleware(opts.Sessions, cookie))
	{
		session.GET("/login", authCtrl.ShowLogin)
		session.POST("/login", authCtrl.Submit)
		session.POST("/login/toggle", authCtrl.Toggle)
		session.POST("/logout", authCtrl.Logout)
	}

	pos := session.Group("/")
	pos.Use(middleware.AuthMiddleware(posService))
	{
		pos.GET("/", posCtrl.Index)
		pos.GET("/pos/state", posCtrl.State)
		pos.GET("/pos/sales/export", posCtrl.ExportSales)
		pos.POST("/pos/refresh", posCtrl.Refresh)

		pos.POST("/pos/products", posCtrl.AddProduct)
		pos.POST("/pos/products/:id/delete", posCtrl.DeleteProduct)

		pos.POST("/pos/cart/:id/add", posCtrl.AddToCart)
		pos.POST("/pos/cart/:id/decrease", posCtrl.DecreaseCartLine)
		pos.POST("/pos/cart/:id/remove", posCtrl.RemoveCartLine)

		pos.POST("/pos/checkout", posCtrl.Checkout)
		pos.POST("/pos/prompt/confirm", posCtrl.ConfirmPrompt)
		pos.POST("/pos/prompt/cancel", posCtrl.CancelPrompt)
		pos.POST("/pos/alert/close", posCtrl.CloseAlert)
	}
}
