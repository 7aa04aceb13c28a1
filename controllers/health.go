package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health - GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}
