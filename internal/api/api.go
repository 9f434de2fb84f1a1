// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopsight/inventory-ai/internal/api/handlers"
	"github.com/shopsight/inventory-ai/internal/api/middleware"
)

const (
	ServiceName = "inventory-ai-prediction"
	Version     = "1.0.0"
)

type Services struct {
	Predict   *handlers.PredictHandler
	Analytics *handlers.AnalyticsHandler
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Logger(),
		middleware.Recovery(),
	)

	corsConfig := cors.Config{
		AllowOrigins:  []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    ServiceName,
			"version": Version,
			"features": []string{
				"stock-status classification",
				"reorder recommendations",
				"risk scoring",
				"inventory optimization",
				"synthetic analytics feeds",
			},
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   ServiceName,
			"timestamp": time.Now().UTC(),
		})
	})

	if services != nil {
		if services.Predict != nil {
			router.POST("/predict", services.Predict.Predict)
			router.POST("/optimize", services.Predict.Optimize)
		}

		if services.Analytics != nil {
			analyticsGroup := router.Group("/analytics")
			{
				analyticsGroup.GET("/revenue-forecast", services.Analytics.RevenueForecast)
				analyticsGroup.GET("/stock-alerts", services.Analytics.StockAlerts)
				analyticsGroup.POST("/dashboard-stats", services.Analytics.DashboardStats)
				analyticsGroup.POST("/category-performance", services.Analytics.CategoryPerformance)
			}
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
