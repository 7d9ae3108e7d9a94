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

// trackerContext loads the route's tracker and resolves the viewer's
// capability set against it. Absent browse, the tracker is reported as
// not found — a viewer who cannot browse must not learn it exists.
func (s *Server) trackerContext(c *gin.Context) (*ent.Tracker, models.Capability, bool) {
	ownerName := strings.TrimPrefix(c.Param("owner"), "~")
	tr, err := s.trackers.ByRef(c.Request.Context(), ownerName, c.Param("name"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			notFound(c)
		} else {
			mapServiceError(c, err)
		}
		return nil, 0, false
	}

	viewerID := ""
	if u := viewer(c); u != nil {
		viewerID = u.ID
	}
	grant, err := s.trackers.AccessGrant(c.Request.Context(), tr.ID, viewerID)
	if err != nil {
		mapServiceError(c, err)
		return nil, 0, false
	}
	caps := s.access.Resolve(tr, viewerID, grant)
	return tr, caps, true
}

// requireCapability distinguishes "cannot see this at all" (404) from
// "can see it but not do this" (403).
func requireCapability(c *gin.Context, caps models.Capability, needed models.Capability) bool {
	if !caps.Has(models.CapabilityBrowse) {
		notFound(c)
		return false
	}
	if !caps.Has(needed) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return false
	}
	return true
}

func pagination(c *gin.Context) (limit, offset int) {
	limit = 25
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// listTrackersHandler handles GET /api/v1/trackers.
func (s *Server) listTrackersHandler(c *gin.Context) {
	limit, offset := pagination(c)
	resp, err := s.trackers.List(c.Request.Context(), viewer(c), limit, offset)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// createTrackerHandler handles POST /api/v1/trackers.
func (s *Server) createTrackerHandler(c *gin.Context) {
	u, ok := requireViewer(c)
	if !ok {
		return
	}
	var req models.CreateTrackerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tr, err := s.trackers.Create(c.Request.Context(), u, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.TrackerResponse{Tracker: tr})
}

// getTrackerHandler handles GET /api/v1/trackers/:owner/:name.
func (s *Server) getTrackerHandler(c *gin.Context) {
	tr, caps, ok := s.trackerContext(c)
	if !ok {
		return
	}
	if !caps.Has(models.CapabilityBrowse) {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, models.TrackerResponse{Tracker: tr})
}

// updateTrackerHandler handles PUT /api/v1/trackers/:owner/:name.
// Owner-only.
func (s *Server) updateTrackerHandler(c *gin.Context) {
	u, ok := requireViewer(c)
	if !ok {
		return
	}
	tr, _, ok := s.trackerContext(c)
	if !ok {
		return
	}
	if tr.OwnerID != u.ID {
		notFound(c)
		return
	}
	var req models.UpdateTrackerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := s.trackers.Update(c.Request.Context(), tr.ID, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TrackerResponse{Tracker: updated})
}

// deleteTrackerHandler handles DELETE /api/v1/trackers/:owner/:name.
func (s *Server) deleteTrackerHandler(c *gin.Context) {
	u, ok := requireViewer(c)
	if !ok {
		return
	}
	tr, _, ok := s.trackerContext(c)
	if !ok {
		return
	}
	if tr.OwnerID != u.ID {
		notFound(c)
		return
	}
	if err := s.trackers.Delete(c.Request.Context(), tr.ID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// grantAccessHandler handles PUT /api/v1/trackers/:owner/:name/access/:username.
func (s *Server) grantAccessHandler(c *gin.Context) {
	u, ok := requireViewer(c)
	if !ok {
		return
	}
	tr, _, ok := s.trackerContext(c)
	if !ok {
		return
	}
	if tr.OwnerID != u.ID {
		notFound(c)
		return
	}
	subject, err := s.users.ByUsername(c.Request.Context(), strings.TrimPrefix(c.Param("username"), "~"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	var req models.GrantAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.UserID = subject.ID
	grant, err := s.trackers.GrantAccess(c.Request.Context(), tr.ID, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, grant)
}

// revokeAccessHandler handles DELETE /api/v1/trackers/:owner/:name/access/:username.
func (s *Server) revokeAccessHandler(c *gin.Context) {
	u, ok := requireViewer(c)
	if !ok {
		return
	}
	tr, _, ok := s.trackerContext(c)
	if !ok {
		return
	}
	if tr.OwnerID != u.ID {
		notFound(c)
		return
	}
	subject, err := s.users.ByUsername(c.Request.Context(), strings.TrimPrefix(c.Param("username"), "~"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if err := s.trackers.RevokeAccess(c.Request.Context(), tr.ID, subject.ID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// exportTrackerHandler handles GET /api/v1/trackers/:owner/:name/export.
// Owner-only; streams the gzipped JSON dump.
func (s *Server) exportTrackerHandler(c *gin.Context) {
	u, ok := requireViewer(c)
	if !ok {
		return
	}
	tr, _, ok := s.trackerContext(c)
	if !ok {
		return
	}
	if tr.OwnerID != u.ID {
		notFound(c)
		return
	}
	c.Header("Content-Type", "application/gzip")
	c.Header("Content-Disposition", `attachment; filename="`+tr.Name+`.json.gz"`)
	if err := s.importExport.Export(c.Request.Context(), tr.ID, c.Writer); err != nil {
		mapServiceError(c, err)
		return
	}
}

// importTrackerHandler handles POST /api/v1/trackers/:owner/:name/import.
// Owner-only; the request body is a dump produced by export.
func (s *Server) importTrackerHandler(c *gin.Context) {
	u, ok := requireViewer(c)
	if !ok {
		return
	}
	tr, _, ok := s.trackerContext(c)
	if !ok {
		return
	}
	if tr.OwnerID != u.ID {
		notFound(c)
		return
	}
	if err := s.importExport.Import(c.Request.Context(), tr.ID, c.Request.Body); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// subscribeTrackerHandler handles POST /api/v1/trackers/:owner/:name/subscribe.
func (s *Server) subscribeTrackerHandler(c *gin.Context) {
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
	p, ok := s.actingParticipant(c, u)
	if !ok {
		return
	}
	if err := s.subscriptions.SubscribeToTracker(c.Request.Context(), p.ID, tr.ID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
