package httpserver

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"luxestore-be/internal/middleware"
)

func buildRouter(deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(),
		corsMiddleware(deps.AllowedOrigins),
		middleware.Auth(deps.Tokens),
		middleware.RateLimit(),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/readyz", func(c *gin.Context) {
		if deps.Ping != nil {
			if err := deps.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	h := &handlers{deps: deps}

	api := router.Group("/api")
	{
		api.POST("/auth/register", h.register)
		api.POST("/auth/login", h.login)

		api.GET("/products", h.listProducts)
		api.GET("/products/:productID", h.getProduct)
		api.GET("/products/:productID/reviews", h.listReviews)
		api.GET("/categories", h.listCategories)

		// Comparison and recently-viewed work for anonymous devices too.
		api.GET("/recently-viewed", h.listRecentlyViewed)
		api.GET("/comparison", h.getComparison)
		api.POST("/comparison/items/:productID", h.addToComparison)
		api.DELETE("/comparison/items/:productID", h.removeFromComparison)
		api.DELETE("/comparison", h.clearComparison)

		// The storefront only lets signed-in shoppers touch cart, wishlist,
		// orders and reviews; the guard lives here, not in the state store.
		authed := api.Group("", middleware.RequireUser())
		{
			authed.GET("/cart", h.getCart)
			authed.POST("/cart/items", h.addToCart)
			authed.PATCH("/cart/items/:productID", h.updateCartQuantity)
			authed.DELETE("/cart/items/:productID", h.removeFromCart)
			authed.DELETE("/cart", h.clearCart)

			authed.GET("/wishlist", h.getWishlist)
			authed.POST("/wishlist/toggle", h.toggleWishlist)

			authed.POST("/orders", h.createOrder)
			authed.GET("/orders", h.listOrders)

			authed.POST("/products/:productID/reviews", h.createReview)
		}
	}

	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-Device-ID", "X-Request-ID")
	return cors.New(cfg)
}

type handlers struct {
	deps Deps
}
