package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func getMetrics(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		report := as.Metrics.Compute(c.Request.Context())
		c.JSON(http.StatusOK, report)
	}
}

func listAgents(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, as.Agents.List())
	}
}

func getHealth(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": Version,
			"uptime":  int(time.Since(as.StartedAt).Seconds()),
			"services": gin.H{
				"conversations": gin.H{"status": "up", "records": as.Conversations.Count()},
				"sessions":      gin.H{"status": "up", "tokens": as.Sessions.Count()},
			},
		})
	}
}
