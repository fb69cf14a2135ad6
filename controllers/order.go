package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateOrder is a placeholder until ordering is built; it always answers 501.
func CreateOrder(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"error": "Order creation is not available"})
}
