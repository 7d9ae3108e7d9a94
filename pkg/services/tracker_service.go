package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/sourcehut/todosrht-core/ent"
	"github.com/sourcehut/todosrht-core/ent/tracker"
	"github.com/sourcehut/todosrht-core/ent/user"
	"github.com/sourcehut/todosrht-core/ent/useraccess"
	"github.com/sourcehut/todosrht-core/pkg/config"
	"github.com/sourcehut/todosrht-core/pkg/models"
	"github.com/sourcehut/todosrht-core/pkg/webhook"
)

var trackerNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// reservedTrackerNames are path segments a tracker can never be named
// after, since tracker names appear in URLs and repository-style paths.
var reservedTrackerNames = map[string]bool{
	".": true, "..": true, ".git": true, ".hg": true,
}

// ValidateTrackerName checks a proposed tracker name against the naming
// invariant: [A-Za-z0-9._-]+, 1-255 chars, no reserved path segments.
func ValidateTrackerName(name string) error {
	if len(name) < 1 || len(name) > 255 {
		return NewValidationError("name", "must be between 1 and 255 characters")
	}
	if !trackerNamePattern.MatchString(name) {
		return NewValidationError("name", "may only contain letters, digits, '.', '_', and '-'")
	}
	if reservedTrackerNames[name] {
		return NewValidationError("name", fmt.Sprintf("%q is a reserved name", name))
	}
	return nil
}

// TrackerService manages tracker admin operations: create/update/delete,
// visibility, and per-user ACL overrides.
type TrackerService struct {
	client   *ent.Client
	cfg      *config.Config
	webhooks webhook.Enqueuer
}

// NewTrackerService creates a new TrackerService.
func NewTrackerService(client *ent.Client, cfg *config.Config, webhooks webhook.Enqueuer) *TrackerService {
	return &TrackerService{client: client, cfg: cfg, webhooks: webhooks}
}

// Create makes a new tracker owned by owner. The name must be unique per
// owner; a duplicate surfaces as a validation error since the name was
// user-supplied.
func (s *TrackerService) Create(ctx context.Context, owner *ent.User, req models.CreateTrackerRequest) (*ent.Tracker, error) {
	if err := ValidateTrackerName(req.Name); err != nil {
		return nil, err
	}
	visibility := req.Visibility
	if visibility == "" {
		visibility = models.TrackerVisibilityPublic
	}
	if !visibility.IsValid() {
		return nil, NewValidationError("visibility", fmt.Sprintf("unknown visibility %q", visibility))
	}
	defaultAccess := req.DefaultAccess
	if defaultAccess == models.CapabilityNone {
		defaultAccess = models.DefaultCapabilities
	}

	tr, err := s.client.Tracker.Create().
		SetID(uuid.NewString()).
		SetOwnerID(owner.ID).
		SetName(req.Name).
		SetDescription(req.Description).
		SetVisibility(tracker.Visibility(visibility)).
		SetDefaultAccess(int(defaultAccess)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewValidationError("name", fmt.Sprintf("you already have a tracker named %q", req.Name))
		}
		return nil, fmt.Errorf("creating tracker: %w", err)
	}

	s.enqueueUserHook(ctx, owner.ID, "tracker:create", tr)
	return tr, nil
}

// ByRef fetches a tracker by its canonical (owner username, name) pair.
func (s *TrackerService) ByRef(ctx context.Context, ownerUsername, name string) (*ent.Tracker, error) {
	owner, err := s.client.User.Query().Where(user.UsernameEQ(ownerUsername)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("resolving owner: %w", err)
	}
	tr, err := s.client.Tracker.Query().
		Where(tracker.OwnerIDEQ(owner.ID), tracker.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting tracker: %w", err)
	}
	return tr, nil
}

// ByID fetches a tracker by id.
func (s *TrackerService) ByID(ctx context.Context, id string) (*ent.Tracker, error) {
	tr, err := s.client.Tracker.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting tracker: %w", err)
	}
	return tr, nil
}

// List returns the trackers visible to viewer (nil for anonymous):
// their own, plus everyone's public ones. Unlisted trackers never appear
// in listings — they are reachable by direct reference only.
func (s *TrackerService) List(ctx context.Context, viewer *ent.User, limit, offset int) (*models.TrackerListResponse, error) {
	if limit <= 0 {
		limit = 25
	}
	pred := tracker.VisibilityEQ(tracker.VisibilityPublic)
	if viewer != nil {
		pred = tracker.Or(pred, tracker.OwnerIDEQ(viewer.ID))
	}
	trackers, err := s.client.Tracker.Query().
		Where(pred).
		Order(ent.Desc(tracker.FieldUpdatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing trackers: %w", err)
	}
	return &models.TrackerListResponse{Trackers: trackers}, nil
}

// Update applies the mutable subset of a tracker's fields. Whether a
// metadata edit counts as tracker activity (i.e. bumps updated_at the way
// ticket activity does) is policy, controlled by the
// TOUCH_TRACKER_ON_ADMIN_EDIT config flag.
func (s *TrackerService) Update(ctx context.Context, trackerID string, req models.UpdateTrackerRequest) (*ent.Tracker, error) {
	tr, err := s.ByID(ctx, trackerID)
	if err != nil {
		return nil, err
	}

	update := s.client.Tracker.UpdateOneID(trackerID)
	if req.Description != nil {
		update = update.SetDescription(*req.Description)
	}
	if req.Visibility != nil {
		if !req.Visibility.IsValid() {
			return nil, NewValidationError("visibility", fmt.Sprintf("unknown visibility %q", *req.Visibility))
		}
		update = update.SetVisibility(tracker.Visibility(*req.Visibility))
	}
	if req.DefaultAccess != nil {
		update = update.SetDefaultAccess(int(*req.DefaultAccess))
	}
	if s.cfg.TouchTrackerOnAdminEdit {
		update = update.SetUpdatedAt(time.Now())
	} else {
		update = update.SetUpdatedAt(tr.UpdatedAt)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating tracker: %w", err)
	}

	s.enqueueUserHook(ctx, tr.OwnerID, "tracker:update", updated)
	return updated, nil
}

// Delete removes a tracker; tickets, labels, subscriptions, and webhooks
// cascade away with it.
func (s *TrackerService) Delete(ctx context.Context, trackerID string) error {
	tr, err := s.ByID(ctx, trackerID)
	if err != nil {
		return err
	}
	if err := s.client.Tracker.DeleteOneID(trackerID).Exec(ctx); err != nil {
		return fmt.Errorf("deleting tracker: %w", err)
	}
	s.enqueueUserHook(ctx, tr.OwnerID, "tracker:delete", tr)
	return nil
}

// enqueueUserHook fires a user-scope webhook for a tracker change.
// Enqueue failures never fail the request; they are logged and the
// delivery is lost.
func (s *TrackerService) enqueueUserHook(ctx context.Context, ownerID, eventName string, tr *ent.Tracker) {
	err := s.webhooks.EnqueueWebhook(ctx, "", webhook.ScopeUser, ownerID, webhook.Payload{
		Event:     eventName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Body:      models.TrackerResponse{Tracker: tr},
	})
	if err != nil {
		slog.Error("enqueuing webhook", "event", eventName, "tracker_id", tr.ID, "error", err)
	}
}

// GrantAccess creates or replaces the per-user capability override for
// (trackerID, userID).
func (s *TrackerService) GrantAccess(ctx context.Context, trackerID string, req models.GrantAccessRequest) (*ent.UserAccess, error) {
	existing, err := s.client.UserAccess.Query().
		Where(useraccess.TrackerIDEQ(trackerID), useraccess.UserIDEQ(req.UserID)).
		Only(ctx)
	if err == nil {
		updated, err := existing.Update().SetPermissions(int(req.Permissions)).Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("updating access grant: %w", err)
		}
		return updated, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("querying access grant: %w", err)
	}

	grant, err := s.client.UserAccess.Create().
		SetID(uuid.NewString()).
		SetTrackerID(trackerID).
		SetUserID(req.UserID).
		SetPermissions(int(req.Permissions)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("creating access grant: %w", err)
	}
	return grant, nil
}

// RevokeAccess removes the per-user override, returning the user to the
// tracker's default access.
func (s *TrackerService) RevokeAccess(ctx context.Context, trackerID, userID string) error {
	n, err := s.client.UserAccess.Delete().
		Where(useraccess.TrackerIDEQ(trackerID), useraccess.UserIDEQ(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("revoking access grant: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// AccessGrant returns the UserAccess override for (trackerID, userID), or
// nil if none exists — the shape the access resolver consumes.
func (s *TrackerService) AccessGrant(ctx context.Context, trackerID, userID string) (*ent.UserAccess, error) {
	if userID == "" {
		return nil, nil
	}
	grant, err := s.client.UserAccess.Query().
		Where(useraccess.TrackerIDEQ(trackerID), useraccess.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying access grant: %w", err)
	}
	return grant, nil
}
