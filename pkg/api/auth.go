package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sourcehut/todosrht-core/ent"
	"github.com/sourcehut/todosrht-core/pkg/models"
)

// The OAuth/session layer is out of scope for the core: requests arrive
// with the authenticated identity already established by the fronting
// proxy (oauth2-proxy style forwarded headers), or anonymously with no
// identity headers at all.
const (
	headerUserID   = "X-Forwarded-User"
	headerUsername = "X-Forwarded-Preferred-Username"
	headerEmail    = "X-Forwarded-Email"
)

const viewerKey = "viewer"

// identity resolves the forwarded identity headers into a *ent.User,
// creating the local row on first sight (users exist from their first
// authenticated request onward). Anonymous requests proceed with no
// viewer set; handlers that need one call requireViewer.
func (s *Server) identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerUserID)
		if id == "" {
			c.Next()
			return
		}
		username := c.GetHeader(headerUsername)
		if username == "" {
			username = id
		}
		u, err := s.users.GetOrCreate(c.Request.Context(), id, username, c.GetHeader(headerEmail))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "resolving identity"})
			return
		}
		c.Set(viewerKey, u)
		c.Next()
	}
}

// viewer returns the authenticated user, or nil for anonymous requests.
func viewer(c *gin.Context) *ent.User {
	if v, ok := c.Get(viewerKey); ok {
		return v.(*ent.User)
	}
	return nil
}

// requireViewer returns the authenticated user, aborting with 401 when
// the request is anonymous.
func requireViewer(c *gin.Context) (*ent.User, bool) {
	u := viewer(c)
	if u == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return nil, false
	}
	return u, true
}

// actingParticipant resolves the viewer's participant row, the identity
// every core mutation is attributed to.
func (s *Server) actingParticipant(c *gin.Context, u *ent.User) (*ent.Participant, bool) {
	p, err := s.participants.Resolve(c.Request.Context(), models.ParticipantRef{
		Variant: models.ParticipantVariantUser,
		UserID:  u.ID,
	})
	if err != nil {
		mapServiceError(c, err)
		return nil, false
	}
	return p, true
}
