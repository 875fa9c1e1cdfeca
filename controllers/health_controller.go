package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse is the body returned by the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health provides an unauthenticated liveness endpoint for monitors and
// container orchestrators. It ignores the request entirely.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "OK"})
}
