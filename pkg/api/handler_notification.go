package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listNotificationsHandler handles GET /api/v1/notifications.
func (s *Server) listNotificationsHandler(c *gin.Context) {
	u, ok := requireViewer(c)
	if !ok {
		return
	}
	limit, offset := pagination(c)
	resp, err := s.notifications.List(c.Request.Context(), u.ID, limit, offset)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// markNotificationReadHandler handles PUT /api/v1/notifications/:id/read.
func (s *Server) markNotificationReadHandler(c *gin.Context) {
	u, ok := requireViewer(c)
	if !ok {
		return
	}
	if err := s.notifications.MarkRead(c.Request.Context(), u.ID, c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// markAllNotificationsReadHandler handles PUT /api/v1/notifications/read.
func (s *Server) markAllNotificationsReadHandler(c *gin.Context) {
	u, ok := requireViewer(c)
	if !ok {
		return
	}
	count, err := s.notifications.MarkAllRead(c.Request.Context(), u.ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": count})
}
