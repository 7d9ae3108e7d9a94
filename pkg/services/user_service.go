package services

import (
	"context"
	"fmt"

	"github.com/sourcehut/todosrht-core/ent"
	"github.com/sourcehut/todosrht-core/ent/user"
)

// UserService manages local User rows. Users are created on first OAuth
// exchange — the auth middleware calls GetOrCreate with the identity the
// upstream provider vouched for.
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService.
func NewUserService(client *ent.Client) *UserService {
	return &UserService{client: client}
}

// GetOrCreate finds the user with the given stable foreign id, creating
// the row on first sight. Concurrent first sightings converge on one row
// via the primary key.
func (s *UserService) GetOrCreate(ctx context.Context, id, username, email string) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, id)
	if err == nil {
		return u, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	create := s.client.User.Create().SetID(id).SetUsername(username)
	if email != "" {
		create = create.SetEmail(email)
	}
	u, err = create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			u, err = s.client.User.Get(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("refetching user after lost race: %w", err)
			}
			return u, nil
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return u, nil
}

// ByUsername fetches a user by their unique username.
func (s *UserService) ByUsername(ctx context.Context, username string) (*ent.User, error) {
	u, err := s.client.User.Query().Where(user.UsernameEQ(username)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

// ByID fetches a user by id.
func (s *UserService) ByID(ctx context.Context, id string) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

// Delete removes a user; their trackers — and through them tickets,
// labels, subscriptions, and webhooks — cascade away.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.client.User.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}

// SetNotifySelf toggles whether the user's own actions generate email to
// themself.
func (s *UserService) SetNotifySelf(ctx context.Context, id string, notifySelf bool) error {
	if err := s.client.User.UpdateOneID(id).SetNotifySelf(notifySelf).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("updating user: %w", err)
	}
	return nil
}
