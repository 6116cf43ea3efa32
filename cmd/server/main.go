package main

import (
	"net/http"
	"os"
	"time"

	"novacore/backend/internal/auth"
	"novacore/backend/internal/cart"
	"novacore/backend/internal/catalog"
	"novacore/backend/internal/config"
	"novacore/backend/internal/handler"
	"novacore/backend/internal/hub"
	"novacore/backend/internal/localstore"
	"novacore/backend/internal/reviews"
	"novacore/backend/internal/wishlist"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	// Swagger imports
	_ "novacore/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           NovaCore Storefront API
// @version         1.0
// @description     This is the API for the NovaCore game storefront.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// The catalog is fixed at startup; everything queries this one instance.
	cat, err := catalog.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to load catalog")
	}
	zlog.Info().Int("games", cat.Len()).Msg("catalog loaded")

	store, err := localstore.Open(config.AppConfig)
	if err != nil {
		zlog.Fatal().Err(err).Str("driver", config.AppConfig.StorageDriver).Msg("failed to open local store")
	}

	notifications := hub.NewHub()
	wishlists := wishlist.NewManager(store)

	catalogHandler := handler.NewCatalogHandler(cat, wishlists)
	cartHandler := handler.NewCartHandler(cart.NewStore(), cat, notifications)
	wishlistHandler := handler.NewWishlistHandler(wishlists, cat, notifications)
	reviewHandler := handler.NewReviewHandler(reviews.NewStore(), cat)
	notificationHandler := handler.NewNotificationHandler(notifications)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.AllowedOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/session", handler.CreateSession)

		// Catalog routes (public; wishlist status filled in when a session is present)
		gameRoutes := apiV1.Group("/games")
		gameRoutes.Use(auth.OptionalSessionMiddleware())
		{
			gameRoutes.GET("", catalogHandler.GetGames)
			gameRoutes.GET("/featured", catalogHandler.GetFeatured)
			gameRoutes.GET("/discounted", catalogHandler.GetDiscounted)
			gameRoutes.GET("/bestsellers", catalogHandler.GetBestSellers)
			gameRoutes.GET("/new-releases", catalogHandler.GetNewReleases)
			gameRoutes.GET("/recommendations", catalogHandler.GetRecommendations)
			gameRoutes.GET("/:id", catalogHandler.GetGameByID)

			// Reviews
			gameRoutes.GET("/:id/reviews", reviewHandler.ListReviews)
			gameRoutes.GET("/:id/reviews/stats", reviewHandler.GetReviewStats)
			gameRoutes.POST("/:id/reviews", reviewHandler.SubmitReview)
		}

		// Cart routes (session required)
		cartRoutes := apiV1.Group("/cart")
		cartRoutes.Use(auth.SessionMiddleware())
		{
			cartRoutes.GET("", cartHandler.GetCart)
			cartRoutes.DELETE("", cartHandler.ClearCart)
			cartRoutes.POST("/items", cartHandler.AddItem)
			cartRoutes.PUT("/items/:id", cartHandler.SetQuantity)
			cartRoutes.DELETE("/items/:id", cartHandler.RemoveItem)
		}

		// Wishlist routes (session required)
		wishlistRoutes := apiV1.Group("/wishlist")
		wishlistRoutes.Use(auth.SessionMiddleware())
		{
			wishlistRoutes.GET("", wishlistHandler.GetWishlist)
			wishlistRoutes.POST("", wishlistHandler.AddToWishlist)
			wishlistRoutes.DELETE("", wishlistHandler.ClearWishlist)
			wishlistRoutes.GET("/:gameID", wishlistHandler.ContainsGame)
			wishlistRoutes.DELETE("/:gameID", wishlistHandler.RemoveFromWishlist)
		}

		// Notification stream (session required)
		notificationRoutes := apiV1.Group("/notifications")
		notificationRoutes.Use(auth.SessionMiddleware())
		{
			notificationRoutes.GET("/stream", notificationHandler.Stream)
		}
	}

	addr := ":" + config.AppConfig.Port
	zlog.Info().Str("addr", addr).Msg("server is running")
	zlog.Info().Msgf("Swagger UI is available at http://localhost%s/swagger/index.html", addr)
	if err := router.Run(addr); err != nil {
		zlog.Fatal().Err(err).Msg("server stopped")
	}
}
