package server

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/user/demo-dashboard-api/internal/store"
)

// createItemRequest is the payload for creating a new item.
type createItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// updateItemRequest is the payload for a partial item update.
// Pointer fields distinguish "absent" from "present but empty".
type updateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// handleListItems serves GET /api/items.
func (s *Server) handleListItems(c *gin.Context) {
	c.JSON(200, s.store.List())
}

// handleCreateItem serves POST /api/items.
func (s *Server) handleCreateItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "name required"})
		return
	}

	item := s.store.Create(req.Name, req.Description)
	c.JSON(201, item)
}

// handleGetItem serves GET /api/items/:id.
func (s *Server) handleGetItem(c *gin.Context) {
	item, err := s.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}
	c.JSON(200, item)
}

// handleUpdateItem serves PUT /api/items/:id.
func (s *Server) handleUpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request payload"})
		return
	}

	item, err := s.store.Update(c.Param("id"), req.Name, req.Description)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(404, gin.H{"error": "not found"})
			return
		}
		c.JSON(500, gin.H{"error": "internal error"})
		return
	}
	c.JSON(200, item)
}

// handleDeleteItem serves DELETE /api/items/:id.
func (s *Server) handleDeleteItem(c *gin.Context) {
	id := c.Param("id")
	if err := s.store.Delete(id); err != nil {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}
	c.JSON(200, gin.H{"deleted": id})
}
