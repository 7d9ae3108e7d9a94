package models

import (
	"time"

	"github.com/sourcehut/todosrht-core/ent"
)

// SubmitTicketRequest contains fields for filing a new ticket.
type SubmitTicketRequest struct {
	Title       string   `json:"title" binding:"required,min=3,max=2048"`
	Description string   `json:"description,omitempty" binding:"max=16384"`
	Labels      []string `json:"labels,omitempty"`
}

// UpdateTicketRequest contains the mutable subset of a ticket's own fields
// (title/description/labels), available to the submitter or a triager.
type UpdateTicketRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,min=3,max=2048"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=16384"`
}

// TicketResponse wraps a Ticket for API responses.
type TicketResponse struct {
	*ent.Ticket
}

// TicketListResponse contains a paginated, optionally filtered ticket list.
type TicketListResponse struct {
	Tickets []*ent.Ticket `json:"tickets"`
	Cursor  string        `json:"cursor,omitempty"`
}

// ApplyRequest carries the inputs of the lifecycle engine's single
// mutation on an existing ticket: a comment and/or a status transition,
// applied in one transaction. At least one of Text/Resolve/Reopen must be
// set; Resolve and Reopen are mutually exclusive; Resolve requires
// Resolution.
type ApplyRequest struct {
	Text       string           `json:"text,omitempty"`
	Resolve    bool             `json:"resolve,omitempty"`
	Resolution TicketResolution `json:"resolution,omitempty"`
	Reopen     bool             `json:"reopen,omitempty"`

	// Status names an explicit transition target for triage moves that
	// are neither a resolve nor a reopen (confirmed, in_progress,
	// pending). Resolve/Reopen take precedence when set.
	Status TicketStatus `json:"status,omitempty"`

	// DupeOf names the canonical ticket (by scoped id, same tracker) this
	// one duplicates. Only valid when resolving with resolution
	// "duplicate"; a reopen clears the stored reference.
	DupeOf int `json:"dupe_of,omitempty"`

	// FromEmail marks the operation as originating from the inbound mail
	// gateway; self-notification suppression is disabled so the sender
	// sees their own message land in the thread.
	FromEmail bool `json:"-"`
}

// TicketUpdatePayload is the PUT body of a ticket update: any combination
// of a comment, a status transition, and a diff-based label replacement.
// The import-style fields (Created) are honored only when the caller is
// the tracker owner.
type TicketUpdatePayload struct {
	Comment    *string           `json:"comment,omitempty"`
	Status     *TicketStatus     `json:"status,omitempty"`
	Resolution *TicketResolution `json:"resolution,omitempty"`
	DupeOf     *int              `json:"dupe_of,omitempty"`
	Labels     *[]string         `json:"labels,omitempty"`
	Created    *time.Time        `json:"created,omitempty"`
}

// EditCommentRequest contains fields for a non-destructive comment edit.
type EditCommentRequest struct {
	Text string `json:"text" binding:"required,min=1,max=16384"`
}

// CommentResponse wraps a TicketComment for API responses.
type CommentResponse struct {
	*ent.TicketComment
}

// EventResponse wraps an Event for API responses.
type EventResponse struct {
	*ent.Event
}

// EventListResponse contains a ticket's or tracker's event timeline.
type EventListResponse struct {
	Events []*ent.Event `json:"events"`
	Cursor string       `json:"cursor,omitempty"`
}

// NotificationListResponse contains a user's inbox page.
type NotificationListResponse struct {
	Notifications []*ent.EventNotification `json:"notifications"`
	UnreadCount   int                      `json:"unread_count"`
}
