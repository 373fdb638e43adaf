package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"villa-api-backend/config"
	"villa-api-backend/internal/metrics"
	"villa-api-backend/internal/mw"
	"villa-api-backend/internal/response"
)

// NewRouter creates and configures the gin router.
func NewRouter(cfg *config.Config, handler *Handler, db *gorm.DB, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		mw.RequestLogger(logger),
		mw.Metrics(),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			mw.GetLogger(c).Error("panic while handling request", zap.Any("panic", recovered))
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Fail(http.StatusInternalServerError, "internal server error"))
		}),
	)

	r.GET("/healthz", Health(db))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api/v1")
	api.Use(mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst))
	if cfg.Cache.Enabled {
		api.Use(mw.Cache(cache.New(cfg.Cache.TTL, 2*cfg.Cache.TTL), cfg.Cache.TTL))
	}
	{
		api.GET("/villas", handler.ListVillas)
		api.POST("/villas", handler.CreateVilla)
		api.GET("/villas/:id", handler.GetVilla)
		api.PUT("/villas/:id", handler.UpdateVilla)
		api.PATCH("/villas/:id", handler.PatchVilla)
		api.DELETE("/villas/:id", handler.DeleteVilla)

		api.GET("/villaNumbers", handler.ListVillaNumbers)
		api.POST("/villaNumbers", handler.CreateVillaNumber)
		api.GET("/villaNumbers/:villaNo", handler.GetVillaNumber)
		api.PUT("/villaNumbers/:villaNo", handler.UpdateVillaNumber)
		api.PATCH("/villaNumbers/:villaNo", handler.PatchVillaNumber)
		api.DELETE("/villaNumbers/:villaNo", handler.DeleteVillaNumber)
	}

	return r
}
