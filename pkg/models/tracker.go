package models

import (
	"time"

	"github.com/sourcehut/todosrht-core/ent"
)

// CreateTrackerRequest contains fields for creating a new tracker.
type CreateTrackerRequest struct {
	Name          string            `json:"name" binding:"required,min=3,max=100"`
	Description   string            `json:"description,omitempty" binding:"max=2048"`
	Visibility    TrackerVisibility `json:"visibility,omitempty"`
	DefaultAccess Capability        `json:"default_access,omitempty"`
}

// UpdateTrackerRequest contains the mutable subset of a tracker's fields.
// Pointer fields are left nil when the caller does not intend to change them.
type UpdateTrackerRequest struct {
	Description   *string            `json:"description,omitempty" binding:"omitempty,max=2048"`
	Visibility    *TrackerVisibility `json:"visibility,omitempty"`
	DefaultAccess *Capability        `json:"default_access,omitempty"`
}

// TrackerResponse wraps a Tracker for API responses.
type TrackerResponse struct {
	*ent.Tracker
}

// TrackerListResponse contains a paginated tracker list.
type TrackerListResponse struct {
	Trackers []*ent.Tracker `json:"trackers"`
	Cursor   string         `json:"cursor,omitempty"`
}

// GrantAccessRequest contains fields for creating or updating a UserAccess override.
type GrantAccessRequest struct {
	UserID      string     `json:"user_id" binding:"required"`
	Permissions Capability `json:"permissions"`
}

// LabelRequest contains fields for creating or updating a Label. The
// foreground is computed from the background when omitted.
type LabelRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=50"`
	Color     string `json:"color" binding:"required,hexcolor"`
	TextColor string `json:"text_color,omitempty" binding:"omitempty,hexcolor"`
}

// LabelResponse wraps a Label.
type LabelResponse struct {
	*ent.Label
}

// WebhookSubscribeRequest contains fields for registering a webhook.
type WebhookSubscribeRequest struct {
	URL    string   `json:"url" binding:"required,url"`
	Events []string `json:"events" binding:"required,min=1"`
}

// WebhookSubscribeResponse returns the created subscription, including the
// secret, which is shown exactly once and never again retrievable.
type WebhookSubscribeResponse struct {
	*ent.WebhookSubscription
	Secret string `json:"secret"`
}

// ExportManifest is the top-level structure of a tracker export dump (a
// gzipped JSON document). Individual tickets and comment events carry
// detached signatures; the manifest itself is unsigned.
type ExportManifest struct {
	Owner         ExportedParticipant `json:"owner"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Visibility    TrackerVisibility   `json:"visibility"`
	DefaultAccess Capability          `json:"default_access"`
	Labels        []ExportedLabel     `json:"labels"`
	Tickets       []ExportedTicket    `json:"tickets"`
}

// ExportedLabel is one label entry in an ExportManifest.
type ExportedLabel struct {
	Name      string `json:"name"`
	Color     string `json:"color"`
	TextColor string `json:"text_color"`
}

// ExportedTicket is one ticket, with its event history, in an
// ExportManifest. Upstream identifies the service the ticket was
// exported from; Signature, present when the submitter is a local user,
// is a detached HMAC over TicketSigPayload.
type ExportedTicket struct {
	ID          int                 `json:"id"`
	Ref         string              `json:"ref"`
	Submitter   ExportedParticipant `json:"submitter"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      TicketStatus        `json:"status"`
	Resolution  TicketResolution    `json:"resolution"`
	Labels      []string            `json:"labels"`
	Created     time.Time           `json:"created"`
	Updated     time.Time           `json:"updated"`
	Upstream    string              `json:"upstream"`
	Signature   string              `json:"signature,omitempty"`
	Events      []ExportedEvent     `json:"events"`
}

// ExportedEvent is one history entry of an ExportedTicket. EventTypes
// carries the bitset as names so the dump is self-describing.
type ExportedEvent struct {
	EventTypes    []string             `json:"event_type"`
	Participant   ExportedParticipant  `json:"participant"`
	Comment       *ExportedComment     `json:"comment,omitempty"`
	Label         string               `json:"label,omitempty"`
	OldStatus     string               `json:"old_status,omitempty"`
	NewStatus     string               `json:"new_status,omitempty"`
	OldResolution string               `json:"old_resolution,omitempty"`
	NewResolution string               `json:"new_resolution,omitempty"`
	ByParticipant *ExportedParticipant `json:"by_participant,omitempty"`
	FromTicket    int                  `json:"from_ticket,omitempty"`
	Created       time.Time            `json:"created"`
	Upstream      string               `json:"upstream"`
	Signature     string               `json:"signature,omitempty"`
}

// ExportedComment is the comment attached to a comment event.
type ExportedComment struct {
	Submitter ExportedParticipant `json:"submitter"`
	Text      string              `json:"text"`
	Created   time.Time           `json:"created"`
}

// ExportedParticipant identifies an actor within a dump without depending
// on a live Participant row in the importing instance.
type ExportedParticipant struct {
	Variant       ParticipantVariant `json:"type"`
	Name          string             `json:"name,omitempty"`
	CanonicalName string             `json:"canonical_name,omitempty"`
	Address       string             `json:"address,omitempty"`
	ExternalID    string             `json:"external_id,omitempty"`
	ExternalURL   string             `json:"external_url,omitempty"`
}

// TicketSigPayload is the canonical JSON subset a ticket's detached
// signature covers. Field order is load-bearing for verifiability: the
// HMAC is computed over the exact byte sequence this struct marshals to,
// never a re-marshaled map.
type TicketSigPayload struct {
	TrackerID   string `json:"tracker_id"`
	TicketID    int    `json:"ticket_id"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	SubmitterID string `json:"submitter_id"`
	Upstream    string `json:"upstream"`
}

// CommentSigPayload is the canonical JSON subset a comment event's
// detached signature covers. Field order is load-bearing, as above.
type CommentSigPayload struct {
	TrackerID string `json:"tracker_id"`
	TicketID  int    `json:"ticket_id"`
	Comment   string `json:"comment"`
	AuthorID  string `json:"author_id"`
	Upstream  string `json:"upstream"`
}
