package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/sourcehut/todosrht-core/ent"
	"github.com/sourcehut/todosrht-core/ent/event"
	"github.com/sourcehut/todosrht-core/ent/label"
	"github.com/sourcehut/todosrht-core/pkg/models"
	"github.com/sourcehut/todosrht-core/pkg/webhook"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ContrastTextColor picks black or white for text over the given #rrggbb
// background, whichever reads better by perceived luminance.
func ContrastTextColor(background string) string {
	r, _ := strconv.ParseInt(background[1:3], 16, 32)
	g, _ := strconv.ParseInt(background[3:5], 16, 32)
	b, _ := strconv.ParseInt(background[5:7], 16, 32)
	luminance := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if luminance > 127 {
		return "#000000"
	}
	return "#ffffff"
}

// LabelService manages a tracker's labels.
type LabelService struct {
	client   *ent.Client
	webhooks webhook.Enqueuer
}

// NewLabelService creates a new LabelService.
func NewLabelService(client *ent.Client, webhooks webhook.Enqueuer) *LabelService {
	return &LabelService{client: client, webhooks: webhooks}
}

// Create adds a label to a tracker. The foreground color is computed from
// the background unless the caller supplies one.
func (s *LabelService) Create(ctx context.Context, trackerID string, req models.LabelRequest) (*ent.Label, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if !hexColorPattern.MatchString(req.Color) {
		return nil, NewValidationError("color", "must be a #rrggbb hex color")
	}
	textColor := req.TextColor
	if textColor == "" {
		textColor = ContrastTextColor(req.Color)
	} else if !hexColorPattern.MatchString(textColor) {
		return nil, NewValidationError("text_color", "must be a #rrggbb hex color")
	}

	l, err := s.client.Label.Create().
		SetID(uuid.NewString()).
		SetTrackerID(trackerID).
		SetName(req.Name).
		SetColor(req.Color).
		SetTextColor(textColor).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewValidationError("name", fmt.Sprintf("this tracker already has a label named %q", req.Name))
		}
		return nil, fmt.Errorf("creating label: %w", err)
	}

	s.enqueueTrackerHook(ctx, trackerID, "label:create", l)
	return l, nil
}

// Update renames or recolors a label.
func (s *LabelService) Update(ctx context.Context, labelID string, req models.LabelRequest) (*ent.Label, error) {
	update := s.client.Label.UpdateOneID(labelID)
	if req.Name != "" {
		update = update.SetName(req.Name)
	}
	if req.Color != "" {
		if !hexColorPattern.MatchString(req.Color) {
			return nil, NewValidationError("color", "must be a #rrggbb hex color")
		}
		update = update.SetColor(req.Color)
		if req.TextColor == "" {
			update = update.SetTextColor(ContrastTextColor(req.Color))
		}
	}
	if req.TextColor != "" {
		if !hexColorPattern.MatchString(req.TextColor) {
			return nil, NewValidationError("text_color", "must be a #rrggbb hex color")
		}
		update = update.SetTextColor(req.TextColor)
	}

	l, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, NewValidationError("name", fmt.Sprintf("this tracker already has a label named %q", req.Name))
		}
		return nil, fmt.Errorf("updating label: %w", err)
	}
	return l, nil
}

// Delete removes a label. Applications to tickets cascade via the
// foreign key; label-scoped events are removed here since events
// reference labels by plain id.
func (s *LabelService) Delete(ctx context.Context, labelID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()
	txc := tx.Client()

	l, err := txc.Label.Get(ctx, labelID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("getting label: %w", err)
	}

	if _, err := txc.Event.Delete().
		Where(event.LabelIDEQ(labelID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("deleting label events: %w", err)
	}
	if err := txc.Label.DeleteOneID(labelID).Exec(ctx); err != nil {
		return fmt.Errorf("deleting label: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing label deletion: %w", err)
	}

	s.enqueueTrackerHook(ctx, l.TrackerID, "label:delete", l)
	return nil
}

// List returns a tracker's labels, alphabetically.
func (s *LabelService) List(ctx context.Context, trackerID string) ([]*ent.Label, error) {
	labels, err := s.client.Label.Query().
		Where(label.TrackerIDEQ(trackerID)).
		Order(ent.Asc(label.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing labels: %w", err)
	}
	return labels, nil
}

// ByName fetches a label by its per-tracker unique name.
func (s *LabelService) ByName(ctx context.Context, trackerID, name string) (*ent.Label, error) {
	l, err := s.client.Label.Query().
		Where(label.TrackerIDEQ(trackerID), label.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewValidationError("label", fmt.Sprintf("no label named %q", name))
		}
		return nil, fmt.Errorf("getting label: %w", err)
	}
	return l, nil
}

// enqueueTrackerHook fires a tracker-scope webhook for a label change.
// Enqueue failures never fail the request; they are logged and the
// delivery is lost.
func (s *LabelService) enqueueTrackerHook(ctx context.Context, trackerID, eventName string, l *ent.Label) {
	if s.webhooks == nil {
		return
	}
	err := s.webhooks.EnqueueWebhook(ctx, "", webhook.ScopeTracker, trackerID, webhook.Payload{
		Event:     eventName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Body:      models.LabelResponse{Label: l},
	})
	if err != nil {
		slog.Error("enqueuing webhook", "event", eventName, "tracker_id", trackerID, "error", err)
	}
}
