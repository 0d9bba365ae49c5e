package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	DB Pinger
}

func (hc *HealthController) GetHealth(c *gin.Context) {
	if err := hc.DB.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  "Failed to connect to the database",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
