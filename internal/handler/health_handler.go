package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports whether the database answers a ping.
func (a *API) Health(c *gin.Context) {
	sqlDB, err := a.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		a.logger.ErrorContext(c.Request.Context(), "health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
