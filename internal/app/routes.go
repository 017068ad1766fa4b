package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwanjeronie/mailinglist/internal/middleware"
	adminsubscribers "github.com/mwanjeronie/mailinglist/internal/modules/admin/subscribers"
	"github.com/mwanjeronie/mailinglist/internal/modules/newsletter/subscriber"
	"github.com/mwanjeronie/mailinglist/internal/modules/newsletter/suggestion"
	"github.com/mwanjeronie/mailinglist/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	db := a.db
	authMW := middleware.AdminAuth(a.cfg.AdminPassword)

	r.NoRoute(func(c *gin.Context) {
		response.NotFoundMsg(c, "Not Found")
	})
	r.NoMethod(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{"error": "Method Not Allowed"})
	})

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok"})
	})

	subscriber.NewHandler(subscriber.NewService(db)).RegisterRoutes(api)
	suggestion.NewHandler(suggestion.NewService(db)).RegisterRoutes(api)
	adminsubscribers.NewHandler(adminsubscribers.NewService(db)).RegisterRoutes(api, authMW)
}
