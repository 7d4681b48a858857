package controllers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shiningstar/learninglens/internal/app/models/dto"
)

// HealthController serves liveness and runtime metrics endpoints
type HealthController struct {
	startedAt time.Time
}

// NewHealthController creates a new HealthController
func NewHealthController() *HealthController {
	return &HealthController{
		startedAt: time.Now(),
	}
}

// HealthStatus is the liveness response body
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// RuntimeMetrics summarizes process runtime state
type RuntimeMetrics struct {
	Uptime      string `json:"uptime"`
	Goroutines  int    `json:"goroutines"`
	AllocBytes  uint64 `json:"allocBytes"`
	SysBytes    uint64 `json:"sysBytes"`
	HeapObjects uint64 `json:"heapObjects"`
	NumGC       uint32 `json:"numGC"`
	LastGCPause uint64 `json:"lastGCPauseNs"`
}

// Health reports service liveness
// @Summary Health check
// @Description Reports whether the service is up
// @Tags health
// @Produce json
// @Success 200 {object} HealthStatus "Service is healthy"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Metrics reports process runtime metrics
// @Summary Runtime metrics
// @Description Reports uptime, goroutine count and memory statistics
// @Tags health
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=RuntimeMetrics} "Metrics retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /metrics [get]
func (c *HealthController) Metrics(ctx *gin.Context) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	metrics := RuntimeMetrics{
		Uptime:      time.Since(c.startedAt).Round(time.Second).String(),
		Goroutines:  runtime.NumGoroutine(),
		AllocBytes:  mem.Alloc,
		SysBytes:    mem.Sys,
		HeapObjects: mem.HeapObjects,
		NumGC:       mem.NumGC,
		LastGCPause: mem.PauseNs[(mem.NumGC+255)%256],
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      metrics,
		Timestamp: time.Now(),
	})
}
