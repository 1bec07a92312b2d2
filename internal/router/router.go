package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Akashnaii/Breadbox/config"
	"github.com/Akashnaii/Breadbox/internal/app/controller"
	"github.com/Akashnaii/Breadbox/internal/app/model"
	"github.com/Akashnaii/Breadbox/internal/middleware"
)

type Router struct {
	authController       *controller.AuthController
	vendorController     *controller.VendorController
	restaurantController *controller.RestaurantController
	itemController       *controller.ItemController
	packageController    *controller.PackageController
	uploadController     *controller.UploadController
	authMiddleware       *middleware.AuthMiddleware
	config               *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	vendorController *controller.VendorController,
	restaurantController *controller.RestaurantController,
	itemController *controller.ItemController,
	packageController *controller.PackageController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:       authController,
		vendorController:     vendorController,
		restaurantController: restaurantController,
		itemController:       itemController,
		packageController:    packageController,
		uploadController:     uploadController,
		authMiddleware:       authMiddleware,
		config:               cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "BreadBox API is running",
		})
	})

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/verify-otp", r.authController.VerifyOTP)
			auth.POST("/resend-otp", r.authController.ResendOTP)
			auth.POST("/login", r.authController.Login)

			// Account routes resolve the token id against the users
			// table, so vendor sessions must not reach them
			authed := auth.Group("")
			authed.Use(
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole(model.RoleUser, model.RoleDeliveryPartner, model.RoleAdmin),
			)
			{
				authed.POST("/logout", r.authController.Logout)
				authed.PUT("/update-user", r.authController.UpdateProfile)
				authed.PUT("/update-password", r.authController.UpdatePassword)
				authed.DELETE("/delete-account", r.authController.DeleteAccount)
				authed.GET("/dashboard", r.authController.Dashboard)
				authed.GET("/admin-stats",
					r.authMiddleware.RequireRole(model.RoleAdmin),
					r.authController.AdminStats)
			}
		}

		vendor := api.Group("/vendor")
		{
			vendor.POST("/register", r.vendorController.Register)
			vendor.POST("/verify-otp", r.vendorController.VerifyOTP)
			vendor.POST("/resend-otp", r.vendorController.ResendOTP)
			vendor.POST("/login", r.vendorController.Login)

			// Everything below requires a verified vendor session
			authed := vendor.Group("")
			authed.Use(
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole(model.RoleVendor),
			)
			{
				authed.POST("/logout", r.vendorController.Logout)
				authed.PUT("/update", r.vendorController.UpdateProfile)
				authed.PUT("/update-password", r.vendorController.UpdatePassword)
				authed.DELETE("/delete", r.vendorController.DeleteAccount)
				authed.GET("/dashboard", r.vendorController.Dashboard)

				authed.POST("/restaurant", r.restaurantController.Create)
				authed.GET("/restaurant", r.restaurantController.Get)
				authed.PUT("/restaurant/:id", r.restaurantController.Update)
				authed.DELETE("/restaurant/:id", r.restaurantController.Delete)

				authed.POST("/item", r.itemController.Create)
				authed.GET("/items", r.itemController.List)
				authed.GET("/items/search", r.itemController.Search)
				authed.GET("/item/:id", r.itemController.Get)
				authed.PUT("/item/:id", r.itemController.Update)
				authed.DELETE("/item/:id", r.itemController.Delete)

				authed.POST("/breakfast-package", r.packageController.Create)
				authed.GET("/breakfast-packages", r.packageController.List)
				authed.GET("/breakfast-package/:id", r.packageController.Get)
				authed.PUT("/breakfast-package/:id", r.packageController.Update)
				authed.DELETE("/breakfast-package/:id", r.packageController.Delete)

				authed.POST("/upload/presigned-url", r.uploadController.GeneratePresignedURL)
			}
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
