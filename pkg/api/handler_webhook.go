package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sourcehut/todosrht-core/pkg/models"
	"github.com/sourcehut/todosrht-core/pkg/webhook"
)

// listUserWebhooksHandler handles GET /api/v1/user/webhooks.
func (s *Server) listUserWebhooksHandler(c *gin.Context) {
	u, ok := requireViewer(c)
	if !ok {
		return
	}
	subs, err := s.webhookSubs.List(c.Request.Context(), u.ID, "", "")
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"webhooks": subs})
}

// createUserWebhookHandler handles POST /api/v1/user/webhooks.
func (s *Server) createUserWebhookHandler(c *gin.Context) {
	u, ok := requireViewer(c)
	if !ok {
		return
	}
	var req models.WebhookSubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := s.webhookSubs.Subscribe(c.Request.Context(), u.ID, webhook.ScopeUser, "", "", req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// listTrackerWebhooksHandler handles GET /api/v1/trackers/:owner/:name/webhooks.
func (s *Server) listTrackerWebhooksHandler(c *gin.Context) {
	u, ok := requireViewer(c)
	if !ok {
		return
	}
	tr, caps, ok := s.trackerContext(c)
	if !ok {
		return
	}
	if !caps.Has(models.CapabilityBrowse) {
		notFound(c)
		return
	}
	subs, err := s.webhookSubs.List(c.Request.Context(), u.ID, tr.ID, "")
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"webhooks": subs})
}

// createTrackerWebhookHandler handles POST /api/v1/trackers/:owner/:name/webhooks.
func (s *Server) createTrackerWebhookHandler(c *gin.Context) {
	u, ok := requireViewer(c)
	if !ok {
		return
	}
	tr, caps, ok := s.trackerContext(c)
	if !ok {
		return
	}
	if !caps.Has(models.CapabilityBrowse) {
		notFound(c)
		return
	}
	var req models.WebhookSubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := s.webhookSubs.Subscribe(c.Request.Context(), u.ID, webhook.ScopeTracker, tr.ID, "", req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// listTicketWebhooksHandler handles GET /api/v1/trackers/:owner/:name/tickets/:id/webhooks.
func (s *Server) listTicketWebhooksHandler(c *gin.Context) {
	u, ok := requireViewer(c)
	if !ok {
		return
	}
	_, t, _, ok := s.ticketContext(c)
	if !ok {
		return
	}
	subs, err := s.webhookSubs.List(c.Request.Context(), u.ID, "", t.ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"webhooks": subs})
}

// createTicketWebhookHandler handles POST /api/v1/trackers/:owner/:name/tickets/:id/webhooks.
func (s *Server) createTicketWebhookHandler(c *gin.Context) {
	u, ok := requireViewer(c)
	if !ok {
		return
	}
	_, t, _, ok := s.ticketContext(c)
	if !ok {
		return
	}
	var req models.WebhookSubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := s.webhookSubs.Subscribe(c.Request.Context(), u.ID, webhook.ScopeTicket, "", t.ID, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// deleteWebhookHandler handles DELETE /api/v1/webhooks/:id.
func (s *Server) deleteWebhookHandler(c *gin.Context) {
	u, ok := requireViewer(c)
	if !ok {
		return
	}
	if err := s.webhookSubs.Unsubscribe(c.Request.Context(), u.ID, c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
