package server

import (
	"math"
	"net"
	"time"

	"github.com/gin-gonic/gin"
)

// handleVersion serves GET /api/version with static build metadata.
func (s *Server) handleVersion(c *gin.Context) {
	c.JSON(200, gin.H{
		"app":     s.cfg.AppName,
		"version": s.cfg.Version,
		"image":   s.cfg.Image(),
	})
}

// handleHealth serves GET /api/health.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":         "ok",
		"uptime_seconds": int(time.Since(s.startTime).Seconds()),
		"timestamp":      time.Now().UTC(),
	})
}

// handleMetrics serves GET /api/metrics. Only the item count is a live
// measurement; the remaining fields are static placeholders.
func (s *Server) handleMetrics(c *gin.Context) {
	c.JSON(200, gin.H{
		"items_count":  s.store.Count(),
		"memory_dummy": 0,
		"requests":     0,
	})
}

// simulateTaskRequest selects the simulated workload.
type simulateTaskRequest struct {
	Type string `json:"type"`
}

// handleSimulateTask serves POST /api/simulate-task. It blocks the handling
// goroutine for a fixed duration to emulate work; the store lock is never
// held while sleeping.
func (s *Server) handleSimulateTask(c *gin.Context) {
	req := simulateTaskRequest{Type: "light"}
	// Body is optional; ignore decode errors and keep the default.
	_ = c.ShouldBindJSON(&req)
	if req.Type != "heavy" {
		req.Type = "light"
	}

	start := time.Now()
	if req.Type == "heavy" {
		time.Sleep(s.heavyTaskDelay)
	} else {
		time.Sleep(s.lightTaskDelay)
	}
	elapsed := time.Since(start).Seconds()

	c.JSON(200, gin.H{
		"type":            req.Type,
		"elapsed_seconds": math.Round(elapsed*1000) / 1000,
	})
}

// handleShutdown serves POST /api/shutdown. Only loopback peers may trigger
// it; the actual stop is delegated to the hook wired in by main.
func (s *Server) handleShutdown(c *gin.Context) {
	if !isLoopback(c.Request.RemoteAddr) {
		c.JSON(403, gin.H{"error": "shutdown allowed only from localhost"})
		return
	}

	if s.shutdown == nil {
		c.JSON(500, gin.H{"error": "shutdown hook not configured"})
		return
	}

	c.JSON(200, gin.H{"status": "shutting down"})
	s.shutdown()
}

// isLoopback reports whether the remote address is a loopback peer.
func isLoopback(remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
