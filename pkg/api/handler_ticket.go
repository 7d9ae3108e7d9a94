package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sourcehut/todosrht-core/ent"
	"github.com/sourcehut/todosrht-core/pkg/models"
	"github.com/sourcehut/todosrht-core/pkg/services"
)

// ticketContext is trackerContext plus the scoped ticket from the route,
// with the submitter override applied: a ticket's submitter can always
// browse their own ticket.
func (s *Server) ticketContext(c *gin.Context) (*ent.Tracker, *ent.Ticket, models.Capability, bool) {
	tr, caps, ok := s.trackerContext(c)
	if !ok {
		return nil, nil, 0, false
	}
	if tr.ImportInProgress {
		// Partial state is masked while a bulk import runs.
		notFound(c)
		return nil, nil, 0, false
	}
	scopedID, err := strconv.Atoi(c.Param("id"))
	if err != nil || scopedID <= 0 {
		notFound(c)
		return nil, nil, 0, false
	}
	t, err := s.lifecycle.GetTicket(c.Request.Context(), tr.ID, scopedID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			notFound(c)
		} else {
			mapServiceError(c, err)
		}
		return nil, nil, 0, false
	}

	if u := viewer(c); u != nil {
		p, err := s.participants.ByUserID(c.Request.Context(), u.ID)
		if err != nil {
			mapServiceError(c, err)
			return nil, nil, 0, false
		}
		if p != nil && t.SubmitterID == p.ID {
			caps = caps.Union(models.CapabilityBrowse)
		}
	}
	if !caps.Has(models.CapabilityBrowse) {
		notFound(c)
		return nil, nil, 0, false
	}
	return tr, t, caps, true
}

// listTicketsHandler handles GET /api/v1/trackers/:owner/:name/tickets.
// The q parameter is the search DSL; its defaults (status:open,
// sort:updated) apply when absent.
func (s *Server) listTicketsHandler(c *gin.Context) {
	tr, caps, ok := s.trackerContext(c)
	if !ok {
		return
	}
	if !caps.Has(models.CapabilityBrowse) {
		notFound(c)
		return
	}
	if tr.ImportInProgress {
		c.JSON(http.StatusOK, models.TicketListResponse{Tickets: []*ent.Ticket{}})
		return
	}
	limit, offset := pagination(c)
	resp, err := s.lifecycle.Search(c.Request.Context(), viewer(c), tr.ID, c.Query("q"), limit, offset)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// submitTicketHandler handles POST /api/v1/trackers/:owner/:name/tickets.
func (s *Server) submitTicketHandler(c *gin.Context) {
	u, ok := requireViewer(c)
	if !ok {
		return
	}
	tr, caps, ok := s.trackerContext(c)
	if !ok {
		return
	}
	if !requireCapability(c, caps, models.CapabilitySubmit) {
		return
	}
	var req models.SubmitTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, ok := s.actingParticipant(c, u)
	if !ok {
		return
	}
	t, err := s.lifecycle.Submit(c.Request.Context(), p, tr.ID, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if len(req.Labels) > 0 && caps.Has(models.CapabilityTriage) {
		if err := s.lifecycle.SetLabels(c.Request.Context(), p, t.ID, req.Labels); err != nil {
			mapServiceError(c, err)
			return
		}
	}
	c.JSON(http.StatusCreated, models.TicketResponse{Ticket: t})
}

// getTicketHandler handles GET /api/v1/trackers/:owner/:name/tickets/:id.
func (s *Server) getTicketHandler(c *gin.Context) {
	_, t, _, ok := s.ticketContext(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.TicketResponse{Ticket: t})
}

// updateTicketHandler handles PUT /api/v1/trackers/:owner/:name/tickets/:id:
// any combination of a comment, a status transition, and a diff-based
// label replacement, each gated on its own capability. Owner-only
// import-style fields (created) are honored only for the tracker owner.
func (s *Server) updateTicketHandler(c *gin.Context) {
	u, ok := requireViewer(c)
	if !ok {
		return
	}
	tr, t, caps, ok := s.ticketContext(c)
	if !ok {
		return
	}
	var payload models.TicketUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, ok := s.actingParticipant(c, u)
	if !ok {
		return
	}

	if payload.Labels != nil {
		if !requireCapability(c, caps, models.CapabilityTriage) {
			return
		}
		if err := s.lifecycle.SetLabels(c.Request.Context(), p, t.ID, *payload.Labels); err != nil {
			mapServiceError(c, err)
			return
		}
	}

	if payload.Comment != nil || payload.Status != nil {
		req := models.ApplyRequest{}
		if payload.Comment != nil {
			if !requireCapability(c, caps, models.CapabilityComment) {
				return
			}
			req.Text = *payload.Comment
		}
		if payload.Status != nil {
			if !caps.Has(models.CapabilityTriage) && !caps.Has(models.CapabilityEdit) {
				requireCapability(c, caps, models.CapabilityTriage)
				return
			}
			switch *payload.Status {
			case models.TicketStatusResolved:
				req.Resolve = true
				if payload.Resolution != nil {
					req.Resolution = *payload.Resolution
				}
				if payload.DupeOf != nil {
					req.DupeOf = *payload.DupeOf
				}
			case models.TicketStatusReported:
				req.Reopen = true
			default:
				req.Status = *payload.Status
				if payload.Resolution != nil {
					req.Resolution = *payload.Resolution
				}
			}
		}
		if _, err := s.lifecycle.Apply(c.Request.Context(), p, t.ID, req); err != nil {
			mapServiceError(c, err)
			return
		}
	}

	if payload.Created != nil && tr.OwnerID == u.ID {
		if _, err := s.lifecycle.UpdateTicket(c.Request.Context(), p, t.ID, models.UpdateTicketRequest{}, payload.Created); err != nil {
			mapServiceError(c, err)
			return
		}
	}

	updated, err := s.lifecycle.GetTicket(c.Request.Context(), tr.ID, t.ScopedID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TicketResponse{Ticket: updated})
}

// ticketEventsHandler handles GET /api/v1/trackers/:owner/:name/tickets/:id/events.
func (s *Server) ticketEventsHandler(c *gin.Context) {
	_, t, _, ok := s.ticketContext(c)
	if !ok {
		return
	}
	limit, _ := pagination(c)
	resp, err := s.lifecycle.ListEvents(c.Request.Context(), t.ID, c.Query("cursor"), limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// assignHandler handles PUT /api/v1/trackers/:owner/:name/tickets/:id/assignees/:username.
func (s *Server) assignHandler(c *gin.Context) {
	u, ok := requireViewer(c)
	if !ok {
		return
	}
	_, t, caps, ok := s.ticketContext(c)
	if !ok {
		return
	}
	if !requireCapability(c, caps, models.CapabilityTriage) {
		return
	}
	assigneeUser, err := s.users.ByUsername(c.Request.Context(), strings.TrimPrefix(c.Param("username"), "~"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	assignee, err := s.participants.Resolve(c.Request.Context(), models.ParticipantRef{
		Variant: models.ParticipantVariantUser,
		UserID:  assigneeUser.ID,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	p, ok := s.actingParticipant(c, u)
	if !ok {
		return
	}
	if err := s.lifecycle.Assign(c.Request.Context(), p, t.ID, assignee.ID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// unassignHandler handles DELETE /api/v1/trackers/:owner/:name/tickets/:id/assignees/:username.
func (s *Server) unassignHandler(c *gin.Context) {
	u, ok := requireViewer(c)
	if !ok {
		return
	}
	_, t, caps, ok := s.ticketContext(c)
	if !ok {
		return
	}
	if !requireCapability(c, caps, models.CapabilityTriage) {
		return
	}
	assigneeUser, err := s.users.ByUsername(c.Request.Context(), strings.TrimPrefix(c.Param("username"), "~"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	assignee, err := s.participants.ByUserID(c.Request.Context(), assigneeUser.ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if assignee == nil {
		c.Status(http.StatusNoContent)
		return
	}
	p, ok := s.actingParticipant(c, u)
	if !ok {
		return
	}
	if err := s.lifecycle.Unassign(c.Request.Context(), p, t.ID, assignee.ID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// subscribeTicketHandler handles POST /api/v1/trackers/:owner/:name/tickets/:id/subscribe.
func (s *Server) subscribeTicketHandler(c *gin.Context) {
	u, ok := requireViewer(c)
	if !ok {
		return
	}
	_, t, _, ok := s.ticketContext(c)
	if !ok {
		return
	}
	p, ok := s.actingParticipant(c, u)
	if !ok {
		return
	}
	if err := s.subscriptions.SubscribeToTicket(c.Request.Context(), p.ID, t.ID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// unsubscribeHandler handles DELETE /api/v1/subscriptions/:id.
func (s *Server) unsubscribeHandler(c *gin.Context) {
	if _, ok := requireViewer(c); !ok {
		return
	}
	if err := s.subscriptions.Unsubscribe(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// updateCommentHandler handles PUT /api/v1/comments/:id — the
// non-destructive comment edit.
func (s *Server) updateCommentHandler(c *gin.Context) {
	u, ok := requireViewer(c)
	if !ok {
		return
	}
	var req models.EditCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, ok := s.actingParticipant(c, u)
	if !ok {
		return
	}

	original, err := s.lifecycle.GetComment(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	t, err := s.lifecycle.GetTicketByID(c.Request.Context(), original.TicketID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	tr, err := s.trackers.ByID(c.Request.Context(), t.TrackerID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	grant, err := s.trackers.AccessGrant(c.Request.Context(), tr.ID, u.ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	caps := s.access.Resolve(tr, u.ID, grant)
	if original.SubmitterID != p.ID && !caps.Has(models.CapabilityTriage) {
		if !caps.Has(models.CapabilityBrowse) {
			notFound(c)
			return
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	comment, err := s.lifecycle.EditComment(c.Request.Context(), p, original.ID, req.Text)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.CommentResponse{TicketComment: comment})
}
