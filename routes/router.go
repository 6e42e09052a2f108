package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/levelupirl/levelup/config"
	"github.com/levelupirl/levelup/controllers"
	"github.com/levelupirl/levelup/middleware"
	"github.com/levelupirl/levelup/utils"
)

// SetupRouter builds the Gin engine with middleware and all route groups.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	gin.SetMode(cfg.GinMode)

	r := gin.New()

	accessLogger, err := utils.NewRollingFileLogger(cfg.GinPath, "info", 100, 7, 30, true)
	if err != nil {
		accessLogger = utils.Logger
	}
	r.Use(utils.Ginzap(accessLogger, time.RFC3339, true))
	r.Use(utils.RecoveryWithZap(accessLogger, true))

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController(db)
	challengeController := controllers.NewChallengeController(db)
	pathController := controllers.NewPathController(db)
	profileController := controllers.NewProfileController(db)
	adminController := controllers.NewAdminController(db)

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Use(middleware.RateLimitMiddleware())
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/oauth/:provider/login", authController.OAuthRedirect)
		auth.GET("/oauth/:provider/callback", authController.OAuthCallback)
	}

	// Catalog endpoints need no session.
	api.GET("/paths", pathController.List)
	api.GET("/challenges/categories", challengeController.Categories)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired())
	{
		protected.POST("/auth/logout", authController.Logout)
		protected.GET("/auth/me", authController.Me)

		protected.GET("/challenges/daily", challengeController.Daily)
		protected.POST("/challenges/:id/complete", challengeController.Complete)

		protected.POST("/paths/select", pathController.Select)

		protected.PUT("/profile/categories", profileController.UpdateCategories)
		protected.GET("/profile/stats", profileController.Stats)
		protected.GET("/profile/history", profileController.History)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/users", adminController.ListUsers)
		admin.GET("/users/:id", adminController.GetUser)
		admin.DELETE("/users/:id", adminController.DeleteUser)
		admin.POST("/users/:id/reset", adminController.ResetUserProgress)
		admin.GET("/users/:id/export", adminController.ExportUser)
		admin.GET("/stats", adminController.Stats)
	}

	return r
}
