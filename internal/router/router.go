package router

import (
	"github.com/gin-gonic/gin"
	"github.com/masterdu/masterdu-backend/config"
	"github.com/masterdu/masterdu-backend/internal/controller"
	"github.com/masterdu/masterdu-backend/internal/middleware"
)

type Router struct {
	authController       *controller.AuthController
	blogController       *controller.BlogController
	catalogController    *controller.CatalogController
	productController    *controller.ProductController
	membershipController *controller.MembershipController
	paymentController    *controller.PaymentController
	cartController       *controller.CartController
	chatController       *controller.ChatController
	uploadController     *controller.UploadController
	authMiddleware       *middleware.AuthMiddleware
	config               *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	blogController *controller.BlogController,
	catalogController *controller.CatalogController,
	productController *controller.ProductController,
	membershipController *controller.MembershipController,
	paymentController *controller.PaymentController,
	cartController *controller.CartController,
	chatController *controller.ChatController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:       authController,
		blogController:       blogController,
		catalogController:    catalogController,
		productController:    productController,
		membershipController: membershipController,
		paymentController:    paymentController,
		cartController:       cartController,
		chatController:       chatController,
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
			"message": "MASTER DU API is running",
		})
	})

	// Uploaded catalog images are served straight from the data
	// directory; the JSON collections reference them by /images path.
	router.Static("/images", r.config.Store.UploadDir)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", r.authController.Login)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
		}

		blog := api.Group("/blog")
		{
			blog.GET("", r.blogController.GetPosts)
			blog.GET("/slug/:slug", r.blogController.GetPostBySlug)
			blog.GET("/categories", r.blogController.GetCategories)
			blog.GET("/tags", r.blogController.GetTags)

			blog.POST("", r.authMiddleware.Authenticate(), r.blogController.ReplacePosts)
			blog.POST("/categories", r.authMiddleware.Authenticate(), r.blogController.ReplaceCategories)
			blog.POST("/tags", r.authMiddleware.Authenticate(), r.blogController.ReplaceTags)
			blog.PUT("/:id", r.authMiddleware.Authenticate(), r.blogController.SavePost)
			blog.DELETE("/:id", r.authMiddleware.Authenticate(), r.blogController.DeletePost)
		}

		services := api.Group("/services")
		{
			services.GET("", r.catalogController.GetServices)
			services.POST("", r.authMiddleware.Authenticate(), r.catalogController.ReplaceServices)
			services.PUT("/:id", r.authMiddleware.Authenticate(), r.catalogController.SaveService)
			services.DELETE("/:id", r.authMiddleware.Authenticate(), r.catalogController.DeleteService)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", r.catalogController.GetCourses)
			courses.POST("", r.authMiddleware.Authenticate(), r.catalogController.ReplaceCourses)
			courses.PUT("/:id", r.authMiddleware.Authenticate(), r.catalogController.SaveCourse)
			courses.DELETE("/:id", r.authMiddleware.Authenticate(), r.catalogController.DeleteCourse)
		}

		api.GET("/products", r.productController.GetProducts)
		api.GET("/tiers", r.membershipController.GetTiers)

		memberships := api.Group("/memberships")
		{
			memberships.POST("/apply", r.membershipController.Apply)
			memberships.GET("/:id", r.membershipController.GetApplication)

			memberships.GET("", r.authMiddleware.Authenticate(), r.membershipController.GetApplications)
			memberships.POST("", r.authMiddleware.Authenticate(), r.membershipController.ReplaceApplications)
			memberships.PUT("/:id", r.authMiddleware.Authenticate(), r.membershipController.SaveApplication)
			memberships.DELETE("/:id", r.authMiddleware.Authenticate(), r.membershipController.DeleteApplication)
		}

		payments := api.Group("/payments")
		{
			payments.GET("/:id", r.paymentController.GetPayment)
			payments.GET("/:id/qr/:method", r.paymentController.GetPaymentQR)
		}

		cart := api.Group("/cart")
		{
			cart.GET("", r.cartController.GetCart)
			cart.POST("/items", r.cartController.AddItem)
			cart.DELETE("/items/:id", r.cartController.RemoveItem)
			cart.DELETE("", r.cartController.ClearCart)
			cart.POST("/drawer", r.cartController.ToggleDrawer)
			cart.POST("/checkout", r.cartController.Checkout)
		}

		api.POST("/chat", r.chatController.Chat)

		api.POST("/upload-image", r.authMiddleware.Authenticate(), r.uploadController.UploadImage)
		api.DELETE("/delete-image/:filename", r.authMiddleware.Authenticate(), r.uploadController.DeleteImage)
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
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Cart-Session")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Cart-Session")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
