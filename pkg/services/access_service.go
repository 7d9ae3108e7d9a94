package services

import (
	"github.com/sourcehut/todosrht-core/ent"
	"github.com/sourcehut/todosrht-core/pkg/models"
)

// AccessService computes a viewer's effective Capability set against a
// tracker. It performs no I/O of its own: callers fetch the tracker and
// any matching UserAccess row first, so the decision is a pure function
// and independently testable without a database.
type AccessService struct{}

// NewAccessService creates a new AccessService.
func NewAccessService() *AccessService {
	return &AccessService{}
}

// Resolve returns the effective capabilities for viewerUserID against
// tracker. grant is the UserAccess override row for this (tracker, user)
// pair, or nil if none exists. The owner is read from tracker.OwnerID.
func (s *AccessService) Resolve(tracker *ent.Tracker, viewerUserID string, grant *ent.UserAccess) models.Capability {
	if tracker == nil {
		return models.CapabilityNone
	}
	if viewerUserID != "" && viewerUserID == tracker.OwnerID {
		return models.AllCapabilities
	}

	if models.TrackerVisibility(tracker.Visibility) == models.TrackerVisibilityPrivate && grant == nil {
		return models.CapabilityNone
	}

	if grant != nil {
		return models.Capability(grant.Permissions)
	}

	if models.TrackerVisibility(tracker.Visibility) == models.TrackerVisibilityPrivate {
		return models.CapabilityNone
	}

	return models.Capability(tracker.DefaultAccess)
}

// ResolveTicket is Resolve plus the ticket-level override: a ticket's
// submitter can always browse their own ticket, even on a tracker they
// otherwise have no access to. viewerParticipantID is the viewer's
// participant id, or "" for an anonymous viewer.
func (s *AccessService) ResolveTicket(tracker *ent.Tracker, viewerUserID string, grant *ent.UserAccess, t *ent.Ticket, viewerParticipantID string) models.Capability {
	caps := s.Resolve(tracker, viewerUserID, grant)
	if t != nil && viewerParticipantID != "" && t.SubmitterID == viewerParticipantID {
		caps = caps.Union(models.CapabilityBrowse)
	}
	return caps
}

