package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

type HealthStatus struct {
	Status      string `json:"status"`
	DBConnected bool   `json:"db_connected"`
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to the Careflow home-care API")
}

// Health pings the store with a short timeout. Always 200: the payload,
// not the status code, reports degradation.
func (h *HealthHandler) Health(c *gin.Context) {
	connected := false

	if sqlDB, err := h.db.DB(); err == nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		connected = sqlDB.PingContext(ctx) == nil
	}

	status := "Up"
	if !connected {
		status = "Down"
	}

	c.JSON(http.StatusOK, HealthStatus{
		Status:      status,
		DBConnected: connected,
	})
}
