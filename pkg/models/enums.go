package models

// TicketStatus mirrors the ticket.status ent enum: a closed set of the
// five names ent validates. No combination of statuses is ever persisted
// jointly, so this is a plain enum, not a flag set.
type TicketStatus string

const (
	TicketStatusReported   TicketStatus = "reported"
	TicketStatusConfirmed  TicketStatus = "confirmed"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusPending    TicketStatus = "pending"
	TicketStatusResolved   TicketStatus = "resolved"
)

// IsValid reports whether s is one of the known statuses.
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusReported, TicketStatusConfirmed, TicketStatusInProgress, TicketStatusPending, TicketStatusResolved:
		return true
	default:
		return false
	}
}

// IsOpen reports whether s represents an unresolved ticket.
func (s TicketStatus) IsOpen() bool {
	return s != TicketStatusResolved
}

// TicketResolution mirrors the ticket.resolution ent enum, meaningful
// only once status=resolved.
type TicketResolution string

const (
	TicketResolutionUnresolved  TicketResolution = "unresolved"
	TicketResolutionFixed       TicketResolution = "fixed"
	TicketResolutionImplemented TicketResolution = "implemented"
	TicketResolutionWontFix     TicketResolution = "wont_fix"
	TicketResolutionByDesign    TicketResolution = "by_design"
	TicketResolutionInvalid     TicketResolution = "invalid"
	TicketResolutionDuplicate   TicketResolution = "duplicate"
	TicketResolutionNotOurBug   TicketResolution = "not_our_bug"
	TicketResolutionClosed      TicketResolution = "closed"
)

// IsValid reports whether r is one of the known resolutions.
func (r TicketResolution) IsValid() bool {
	switch r {
	case TicketResolutionUnresolved, TicketResolutionFixed, TicketResolutionImplemented,
		TicketResolutionWontFix, TicketResolutionByDesign, TicketResolutionInvalid,
		TicketResolutionDuplicate, TicketResolutionNotOurBug, TicketResolutionClosed:
		return true
	default:
		return false
	}
}

// TicketAuthenticity mirrors the ticket/comment authenticity ent enum.
type TicketAuthenticity string

const (
	// AuthenticityAuthentic means the content was submitted through the API as its stated submitter.
	AuthenticityAuthentic TicketAuthenticity = "authentic"
	// AuthenticityUnauthenticated means the content was imported from a dump with no verifiable signature.
	AuthenticityUnauthenticated TicketAuthenticity = "unauthenticated"
	// AuthenticityTampered means an import carried a signature that failed HMAC verification.
	AuthenticityTampered TicketAuthenticity = "tampered"
	// AuthenticityEditedByOther means a participant other than the original submitter edited this
	// content in place after creation (a moderator edit), distinct from an import-time signature failure.
	AuthenticityEditedByOther TicketAuthenticity = "edited_by_other"
)

// IsValid reports whether a is one of the known authenticity values.
func (a TicketAuthenticity) IsValid() bool {
	switch a {
	case AuthenticityAuthentic, AuthenticityUnauthenticated, AuthenticityTampered, AuthenticityEditedByOther:
		return true
	default:
		return false
	}
}

// TrackerVisibility mirrors the tracker.visibility ent enum.
type TrackerVisibility string

const (
	TrackerVisibilityPublic   TrackerVisibility = "public"
	TrackerVisibilityUnlisted TrackerVisibility = "unlisted"
	TrackerVisibilityPrivate  TrackerVisibility = "private"
)

// IsValid reports whether v is one of the known visibility values.
func (v TrackerVisibility) IsValid() bool {
	switch v {
	case TrackerVisibilityPublic, TrackerVisibilityUnlisted, TrackerVisibilityPrivate:
		return true
	default:
		return false
	}
}

// ParticipantVariant mirrors the participant.variant ent enum: the
// discriminant of the Participant union type.
type ParticipantVariant string

const (
	// ParticipantVariantUser is a registered, authenticated user.
	ParticipantVariantUser ParticipantVariant = "user"
	// ParticipantVariantEmail is an unauthenticated mail-in submitter, identified only by address.
	ParticipantVariantEmail ParticipantVariant = "email"
	// ParticipantVariantExternal is a federation/import submitter identified by an external profile URL.
	ParticipantVariantExternal ParticipantVariant = "external"
)

// IsValid reports whether v is one of the known participant variants.
func (v ParticipantVariant) IsValid() bool {
	switch v {
	case ParticipantVariantUser, ParticipantVariantEmail, ParticipantVariantExternal:
		return true
	default:
		return false
	}
}
