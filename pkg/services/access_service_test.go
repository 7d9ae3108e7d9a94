package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sourcehut/todosrht-core/ent"
	"github.com/sourcehut/todosrht-core/ent/tracker"
	"github.com/sourcehut/todosrht-core/pkg/models"
)

func accessTracker(visibility string, defaultAccess models.Capability) *ent.Tracker {
	return &ent.Tracker{
		ID:            "tracker-1",
		OwnerID:       "owner-1",
		Visibility:    tracker.Visibility(visibility),
		DefaultAccess: int(defaultAccess),
	}
}

func TestAccessResolve(t *testing.T) {
	svc := NewAccessService()

	t.Run("anonymous on private tracker gets nothing", func(t *testing.T) {
		tr := accessTracker("private", models.DefaultCapabilities)
		assert.Equal(t, models.CapabilityNone, svc.Resolve(tr, "", nil))
	})

	t.Run("anonymous on public tracker gets default access", func(t *testing.T) {
		tr := accessTracker("public", models.CapabilityBrowse)
		assert.Equal(t, models.CapabilityBrowse, svc.Resolve(tr, "", nil))
	})

	t.Run("owner gets everything regardless of visibility", func(t *testing.T) {
		tr := accessTracker("private", models.CapabilityNone)
		assert.Equal(t, models.AllCapabilities, svc.Resolve(tr, "owner-1", nil))
	})

	t.Run("an ACL row overrides the default", func(t *testing.T) {
		tr := accessTracker("public", models.DefaultCapabilities)
		grant := &ent.UserAccess{Permissions: int(models.CapabilityBrowse | models.CapabilityTriage)}
		assert.Equal(t, models.CapabilityBrowse|models.CapabilityTriage, svc.Resolve(tr, "user-2", grant))
	})

	t.Run("an ACL row opens a private tracker", func(t *testing.T) {
		tr := accessTracker("private", models.CapabilityNone)
		grant := &ent.UserAccess{Permissions: int(models.CapabilityBrowse)}
		assert.Equal(t, models.CapabilityBrowse, svc.Resolve(tr, "user-2", grant))
	})

	t.Run("private tracker without a grant denies a signed-in stranger", func(t *testing.T) {
		tr := accessTracker("private", models.DefaultCapabilities)
		assert.Equal(t, models.CapabilityNone, svc.Resolve(tr, "user-2", nil))
	})

	t.Run("unlisted behaves like public for direct access", func(t *testing.T) {
		tr := accessTracker("unlisted", models.DefaultCapabilities)
		assert.Equal(t, models.DefaultCapabilities, svc.Resolve(tr, "user-2", nil))
	})
}

func TestAccessResolveTicket(t *testing.T) {
	svc := NewAccessService()

	t.Run("submitter can always browse their own ticket", func(t *testing.T) {
		tr := accessTracker("private", models.CapabilityNone)
		ticket := &ent.Ticket{SubmitterID: "participant-9"}
		caps := svc.ResolveTicket(tr, "user-2", nil, ticket, "participant-9")
		assert.True(t, caps.Has(models.CapabilityBrowse))
		assert.False(t, caps.Has(models.CapabilitySubmit))
	})

	t.Run("non-submitter gains nothing at ticket level", func(t *testing.T) {
		tr := accessTracker("private", models.CapabilityNone)
		ticket := &ent.Ticket{SubmitterID: "participant-9"}
		caps := svc.ResolveTicket(tr, "user-2", nil, ticket, "participant-8")
		assert.Equal(t, models.CapabilityNone, caps)
	})
}
