package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookrating-backend/internal/shared/middleware"
	"bookrating-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupAuthorRoutes(api, c)
		setupCategoryRoutes(api, c)
		setupPublisherRoutes(api, c)
		setupTagRoutes(api, c)
		setupBookRoutes(api, c)
		setupEventRoutes(api, c)
		setupWishlistRoutes(api, c)
		setupReviewRoutes(api, c)
	}

	return router
}

func setupAuthorRoutes(api *gin.RouterGroup, c *container.Container) {
	author := api.Group("/author")
	{
		author.GET("", c.AuthorHandler.GetAll)
		author.GET("/:id", c.AuthorHandler.GetByID)
		author.POST("", c.AuthorHandler.Create)
		author.PUT("/:id", c.AuthorHandler.Update)
		author.DELETE("/:id", c.AuthorHandler.Delete)
	}
}

func setupCategoryRoutes(api *gin.RouterGroup, c *container.Container) {
	category := api.Group("/category")
	{
		category.GET("", c.CategoryHandler.GetAll)
		category.GET("/:id", c.CategoryHandler.GetByID)
		category.POST("", c.CategoryHandler.Create)
		category.PUT("/:id", c.CategoryHandler.Update)
		category.DELETE("/:id", c.CategoryHandler.Delete)
	}
}

func setupPublisherRoutes(api *gin.RouterGroup, c *container.Container) {
	publisher := api.Group("/publisher")
	{
		publisher.GET("", c.PublisherHandler.GetAll)
		publisher.GET("/:id", c.PublisherHandler.GetByID)
		publisher.POST("", c.PublisherHandler.Create)
		publisher.PUT("/:id", c.PublisherHandler.Update)
		publisher.DELETE("/:id", c.PublisherHandler.Delete)
	}
}

func setupTagRoutes(api *gin.RouterGroup, c *container.Container) {
	tag := api.Group("/tag")
	{
		tag.GET("", c.TagHandler.GetAll)
		tag.GET("/:id", c.TagHandler.GetByID)
		tag.POST("", c.TagHandler.Create)
		tag.PUT("/:id", c.TagHandler.Update)
		tag.DELETE("/:id", c.TagHandler.Delete)
	}
}

func setupBookRoutes(api *gin.RouterGroup, c *container.Container) {
	book := api.Group("/book")
	{
		book.GET("", c.BookHandler.GetAll)
		book.GET("/:id", c.BookHandler.GetByID)
		book.POST("", c.BookHandler.Create)
		book.PUT("/:id", c.BookHandler.Update)
		book.DELETE("/:id", c.BookHandler.Delete)
		book.POST("/:id/tags/:tagId", c.BookHandler.AddTag)
		book.DELETE("/:id/tags/:tagId", c.BookHandler.RemoveTag)
	}
}

func setupEventRoutes(api *gin.RouterGroup, c *container.Container) {
	event := api.Group("/event")
	{
		event.GET("", c.EventHandler.GetAll)
		event.GET("/:id", c.EventHandler.GetByID)
		event.POST("", c.EventHandler.Create)
		event.POST("/:id/books/:bookId", c.EventHandler.AddBook)
		event.DELETE("/:id/books/:bookId", c.EventHandler.RemoveBook)
	}
}

func setupWishlistRoutes(api *gin.RouterGroup, c *container.Container) {
	// Wishlists are owner-scoped; every route requires a valid token.
	wishlist := api.Group("/wishlist")
	wishlist.Use(middleware.Auth(c.JWTManager))
	{
		wishlist.GET("", c.WishlistHandler.GetMine)
		wishlist.GET("/:id", c.WishlistHandler.GetByID)
		wishlist.POST("", c.WishlistHandler.Create)
		wishlist.DELETE("/:id", c.WishlistHandler.Delete)
		wishlist.POST("/:id/books/:bookId", c.WishlistHandler.AddBook)
		wishlist.DELETE("/:id/books/:bookId", c.WishlistHandler.RemoveBook)
	}
}

func setupReviewRoutes(api *gin.RouterGroup, c *container.Container) {
	review := api.Group("/review")
	{
		review.GET("/book/:bookId", c.ReviewHandler.GetByBook)
		review.GET("/book/:bookId/average", c.ReviewHandler.GetAverageRating)
		review.POST("", middleware.Auth(c.JWTManager), c.ReviewHandler.Create)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
			}
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else if err := appCtx.Cache.Ping(c.Request.Context()); err != nil {
			redisStatus = fmt.Sprintf("error: %v", err)
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		// Redis being down degrades performance, not correctness, so
		// only the database gates readiness.
		statusCode := http.StatusOK
		if dbStatus != "ok" {
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
