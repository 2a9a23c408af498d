package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tullab/tullab/internal/app/models/dto"
)

const healthPingTimeout = 2 * time.Second

// DatabasePinger is the slice of the connection pool the health check needs.
type DatabasePinger interface {
	Ping(ctx context.Context) error
}

// HealthController reports whether the service can take traffic
type HealthController struct {
	db DatabasePinger
}

// NewHealthController creates a new HealthController
func NewHealthController(db DatabasePinger) *HealthController {
	return &HealthController{db: db}
}

// Check verifies the API is up and the database answers a ping
// @Summary Health check
// @Description Reports ok when the API is running and the database is reachable
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse "Service healthy"
// @Failure 503 {object} dto.ErrorResponse "Database unreachable"
// @Router /health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database is unreachable")
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "ok"}))
}
