package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sourcehut/todosrht-core/ent"
	"github.com/sourcehut/todosrht-core/ent/participant"
	"github.com/sourcehut/todosrht-core/ent/predicate"
	"github.com/sourcehut/todosrht-core/ent/user"
	"github.com/sourcehut/todosrht-core/pkg/models"
)

// ParticipantService resolves the natural-key union (user, email, external)
// into durable Participant rows.
type ParticipantService struct {
	client *ent.Client
}

// NewParticipantService creates a new ParticipantService.
func NewParticipantService(client *ent.Client) *ParticipantService {
	return &ParticipantService{client: client}
}

// Resolve finds or creates the Participant identified by ref. Two concurrent
// callers resolving the same natural key converge on one row: a failed
// create due to the natural key's unique index is treated as "someone else
// just created it," and the winning row is re-fetched.
func (s *ParticipantService) Resolve(ctx context.Context, ref models.ParticipantRef) (*ent.Participant, error) {
	switch ref.Variant {
	case models.ParticipantVariantUser:
		if ref.UserID == "" {
			return nil, NewValidationError("user_id", "required for variant user")
		}
		return s.resolveBy(ctx, participant.UserIDEQ(ref.UserID), func(create *ent.ParticipantCreate) *ent.ParticipantCreate {
			return create.SetVariant(participant.VariantUser).SetUserID(ref.UserID)
		})
	case models.ParticipantVariantEmail:
		if ref.Email == "" {
			return nil, NewValidationError("email", "required for variant email")
		}
		// An address belonging to a known user promotes to that user's
		// participant: mail-ins from a registered address are attributed
		// to the account, not to a shadow email identity.
		u, err := s.client.User.Query().Where(user.EmailEQ(ref.Email)).Only(ctx)
		if err == nil {
			return s.Resolve(ctx, models.ParticipantRef{Variant: models.ParticipantVariantUser, UserID: u.ID})
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("checking for user with address: %w", err)
		}
		return s.resolveBy(ctx, participant.EmailAddressEQ(ref.Email), func(create *ent.ParticipantCreate) *ent.ParticipantCreate {
			create = create.SetVariant(participant.VariantEmail).SetEmailAddress(ref.Email)
			if ref.EmailName != "" {
				create = create.SetEmailName(ref.EmailName)
			}
			return create
		})
	case models.ParticipantVariantExternal:
		if ref.ExternalID == "" {
			return nil, NewValidationError("external_id", "required for variant external")
		}
		return s.resolveBy(ctx, participant.ExternalIDEQ(ref.ExternalID), func(create *ent.ParticipantCreate) *ent.ParticipantCreate {
			create = create.SetVariant(participant.VariantExternal).SetExternalID(ref.ExternalID)
			if ref.ExternalURL != "" {
				create = create.SetExternalURL(ref.ExternalURL)
			}
			return create
		})
	default:
		return nil, NewValidationError("variant", "unknown participant variant")
	}
}

func (s *ParticipantService) resolveBy(ctx context.Context, pred predicate.Participant, build func(*ent.ParticipantCreate) *ent.ParticipantCreate) (*ent.Participant, error) {
	existing, err := s.client.Participant.Query().Where(pred).Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("querying participant: %w", err)
	}

	created, err := build(s.client.Participant.Create().SetID(uuid.NewString())).Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the race; the winner's row now satisfies pred.
			existing, err := s.client.Participant.Query().Where(pred).Only(ctx)
			if err != nil {
				return nil, fmt.Errorf("refetching participant after lost race: %w", err)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("creating participant: %w", err)
	}
	return created, nil
}

// ByUserID fetches the participant row for a user without creating one:
// read paths must not materialize participants for identities that have
// never acted. Returns nil when the user has no participant yet.
func (s *ParticipantService) ByUserID(ctx context.Context, userID string) (*ent.Participant, error) {
	p, err := s.client.Participant.Query().
		Where(participant.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying participant: %w", err)
	}
	return p, nil
}

// ByID fetches a Participant by id.
func (s *ParticipantService) ByID(ctx context.Context, id string) (*ent.Participant, error) {
	p, err := s.client.Participant.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting participant: %w", err)
	}
	return p, nil
}
