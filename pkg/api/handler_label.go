package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sourcehut/todosrht-core/pkg/models"
)

// listLabelsHandler handles GET /api/v1/trackers/:owner/:name/labels.
func (s *Server) listLabelsHandler(c *gin.Context) {
	tr, caps, ok := s.trackerContext(c)
	if !ok {
		return
	}
	if !caps.Has(models.CapabilityBrowse) {
		notFound(c)
		return
	}
	labels, err := s.labels.List(c.Request.Context(), tr.ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"labels": labels})
}

// createLabelHandler handles POST /api/v1/trackers/:owner/:name/labels.
func (s *Server) createLabelHandler(c *gin.Context) {
	if _, ok := requireViewer(c); !ok {
		return
	}
	tr, caps, ok := s.trackerContext(c)
	if !ok {
		return
	}
	if !requireCapability(c, caps, models.CapabilityTriage) {
		return
	}
	var req models.LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	l, err := s.labels.Create(c.Request.Context(), tr.ID, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.LabelResponse{Label: l})
}

// updateLabelHandler handles PUT /api/v1/trackers/:owner/:name/labels/:label.
func (s *Server) updateLabelHandler(c *gin.Context) {
	if _, ok := requireViewer(c); !ok {
		return
	}
	tr, caps, ok := s.trackerContext(c)
	if !ok {
		return
	}
	if !requireCapability(c, caps, models.CapabilityTriage) {
		return
	}
	l, err := s.labels.ByName(c.Request.Context(), tr.ID, c.Param("label"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	var req models.LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := s.labels.Update(c.Request.Context(), l.ID, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.LabelResponse{Label: updated})
}

// deleteLabelHandler handles DELETE /api/v1/trackers/:owner/:name/labels/:label.
func (s *Server) deleteLabelHandler(c *gin.Context) {
	if _, ok := requireViewer(c); !ok {
		return
	}
	tr, caps, ok := s.trackerContext(c)
	if !ok {
		return
	}
	if !requireCapability(c, caps, models.CapabilityTriage) {
		return
	}
	l, err := s.labels.ByName(c.Request.Context(), tr.ID, c.Param("label"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if err := s.labels.Delete(c.Request.Context(), l.ID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
