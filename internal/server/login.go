package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/user/demo-dashboard-api/internal/auth"
)

// loginRequest is the payload for the demo login flow.
type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// handleLogin serves POST /api/auth/login.
//
// Demo credential rule, reproduced deliberately: accept when the password
// contains "demo" or the username is exactly "demo_user". There is no
// credential store behind this.
func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(401, gin.H{"error": "invalid credentials"})
		return
	}

	if !strings.Contains(req.Password, "demo") && req.Username != "demo_user" {
		c.JSON(401, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := s.tokens.Issue(req.Username)
	if err != nil {
		c.JSON(500, gin.H{"error": "could not issue token"})
		return
	}

	c.JSON(200, gin.H{
		"token":              token,
		"expires_in_minutes": int(s.tokens.TTL().Minutes()),
	})
}

// handleSecure serves GET /api/secure; it sits behind the auth middleware,
// so a subject is always present by the time it runs.
func (s *Server) handleSecure(c *gin.Context) {
	subject, ok := auth.GetSubject(c.Request.Context())
	if !ok {
		c.JSON(500, gin.H{"error": "subject not found"})
		return
	}

	c.JSON(200, gin.H{
		"message":   fmt.Sprintf("Hello %s, this is a protected endpoint.", subject),
		"issued_at": time.Now().UTC(),
	})
}
