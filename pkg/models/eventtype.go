package models

import "strings"

// EventType is a bitset of the kinds of change an Event record describes.
// A single Event can carry more than one bit — e.g. a comment that also
// resolves the ticket is one event with both bits set.
type EventType int

const (
	EventTypeNone EventType = 0

	// EventTypeCreated marks ticket creation.
	EventTypeCreated EventType = 1 << 0
	// EventTypeComment marks a new comment.
	EventTypeComment EventType = 1 << 1
	// EventTypeCommentUpdated marks a comment edit/supersession.
	EventTypeCommentUpdated EventType = 1 << 2
	// EventTypeStatusChange marks a status or resolution change.
	EventTypeStatusChange EventType = 1 << 3
	// EventTypeLabelAdded marks a label application.
	EventTypeLabelAdded EventType = 1 << 4
	// EventTypeLabelRemoved marks a label removal.
	EventTypeLabelRemoved EventType = 1 << 5
	// EventTypeAssignedUser marks an assignee added.
	EventTypeAssignedUser EventType = 1 << 6
	// EventTypeUnassignedUser marks an assignee removed.
	EventTypeUnassignedUser EventType = 1 << 7
	// EventTypeUserMentioned marks a @user mention found in a ticket or comment body.
	EventTypeUserMentioned EventType = 1 << 8
	// EventTypeTicketMentioned marks a #tracker/id mention found in a ticket or comment body.
	EventTypeTicketMentioned EventType = 1 << 9
)

// Has reports whether e contains every bit set in other.
func (e EventType) Has(other EventType) bool {
	return e&other == other
}

// Union returns the bitset containing the bits of both e and other.
func (e EventType) Union(other EventType) EventType {
	return e | other
}

var eventTypeNames = []struct {
	bit  EventType
	name string
}{
	{EventTypeCreated, "created"},
	{EventTypeComment, "comment"},
	{EventTypeCommentUpdated, "comment_updated"},
	{EventTypeStatusChange, "status_change"},
	{EventTypeLabelAdded, "label_added"},
	{EventTypeLabelRemoved, "label_removed"},
	{EventTypeAssignedUser, "assigned_user"},
	{EventTypeUnassignedUser, "unassigned_user"},
	{EventTypeUserMentioned, "user_mentioned"},
	{EventTypeTicketMentioned, "ticket_mentioned"},
}

// String renders the set bits as a comma-separated list, for logging and
// for matching against a WebhookSubscription's subscribed event names.
func (e EventType) String() string {
	if e == EventTypeNone {
		return "none"
	}
	var names []string
	for _, n := range eventTypeNames {
		if e.Has(n.bit) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, ",")
}

// Names returns the individual event names set in e, for webhook filtering.
func (e EventType) Names() []string {
	var names []string
	for _, n := range eventTypeNames {
		if e.Has(n.bit) {
			names = append(names, n.name)
		}
	}
	return names
}
