package models

import "github.com/sourcehut/todosrht-core/ent"

// ParticipantRef identifies a Participant for lookup, constructed by a
// caller that already knows which variant it holds — e.g. the
// authenticated user's id, or an email address parsed off an inbound
// mail-in submission.
type ParticipantRef struct {
	Variant     ParticipantVariant `json:"variant"`
	UserID      string             `json:"user_id,omitempty"`
	Email       string             `json:"email,omitempty"`
	EmailName   string             `json:"email_name,omitempty"`
	ExternalID  string             `json:"external_id,omitempty"`
	ExternalURL string             `json:"external_url,omitempty"`
}

// ParticipantResponse wraps a Participant for API responses.
type ParticipantResponse struct {
	*ent.Participant
}
