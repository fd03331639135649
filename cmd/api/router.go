package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bszip-backend/internal/shared/middleware"
	"bszip-backend/internal/shared/response"
	"bszip-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.AllowedOrigins),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupBookRoutes(api, c)
		setupBookstoreRoutes(api, c)
	}

	// Unknown paths and methods still answer with the error envelope
	router.NoRoute(func(c *gin.Context) {
		response.Write(c, response.NewError(http.StatusNotFound, "요청한 리소스를 찾을 수 없습니다.",
			c.Request.Method+" "+c.Request.URL.Path))
	})
	router.NoMethod(func(c *gin.Context) {
		response.Write(c, response.NewError(http.StatusMethodNotAllowed, "허용되지 않은 메서드입니다.",
			c.Request.Method+" "+c.Request.URL.Path))
	})

	return router
}

// ========================================
// BOOK ROUTES (public)
// ========================================
func setupBookRoutes(api *gin.RouterGroup, c *container.Container) {
	books := api.Group("/booksnap")
	{
		books.GET("/book-search", c.BookHandler.SearchByTitle)
		books.GET("/book-search-by-author", c.BookHandler.SearchByAuthor)
	}
}

// ========================================
// BOOKSTORE ROUTES
// ========================================
// Anonymous callers are allowed; toggle-like and liked reject them with 401.
func setupBookstoreRoutes(api *gin.RouterGroup, c *container.Container) {
	stores := api.Group("/bookstores", middleware.OptionalAuth(c.JWTManager))
	{
		stores.GET("/search", c.BookstoreHandler.Search)
		stores.GET("", c.BookstoreHandler.ListByCategory)
		stores.GET("/liked", c.BookstoreHandler.ListLiked)
		stores.POST("/:id/toggle-like", c.BookstoreHandler.ToggleLike)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "ok"
		if appCtx.DB == nil {
			dbStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = "error: " + err.Error()
			}
		}

		// Redis không critical
		cacheStatus := "ok"
		if appCtx.Cache == nil {
			cacheStatus = "disabled"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				cacheStatus = "error: " + err.Error()
			}
		}

		health := gin.H{
			"status":    "ok",
			"version":   appCtx.Config.App.Version,
			"timestamp": time.Now().Format(time.RFC3339),
			"services": gin.H{
				"database": dbStatus,
				"cache":    cacheStatus,
			},
		}

		if dbStatus != "ok" {
			response.Write(c, response.NewError(http.StatusServiceUnavailable, "서비스 점검 중입니다.", "database: "+dbStatus))
			return
		}
		response.OK(c, "정상", health)
	}
}
