package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourcehut/todosrht-core/pkg/models"
)

func TestParticipantResolveIdempotence(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.user(t, "u-1", "jane")

	first, err := f.participants.Resolve(ctx, models.ParticipantRef{Variant: models.ParticipantVariantUser, UserID: u.ID})
	require.NoError(t, err)
	second, err := f.participants.Resolve(ctx, models.ParticipantRef{Variant: models.ParticipantVariantUser, UserID: u.ID})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	count, err := f.client.Participant.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestParticipantEmailVariant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("unknown address creates an email participant", func(t *testing.T) {
		p, err := f.participants.Resolve(ctx, models.ParticipantRef{
			Variant:   models.ParticipantVariantEmail,
			Email:     "visitor@example.com",
			EmailName: "A Visitor",
		})
		require.NoError(t, err)
		assert.Equal(t, "email", string(p.Variant))
		require.NotNil(t, p.EmailAddress)
		assert.Equal(t, "visitor@example.com", *p.EmailAddress)

		again, err := f.participants.Resolve(ctx, models.ParticipantRef{
			Variant: models.ParticipantVariantEmail,
			Email:   "visitor@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, p.ID, again.ID)
	})

	t.Run("a known user's address promotes to their user participant", func(t *testing.T) {
		u := f.user(t, "u-2", "joe") // email joe@example.org
		p, err := f.participants.Resolve(ctx, models.ParticipantRef{
			Variant: models.ParticipantVariantEmail,
			Email:   "joe@example.org",
		})
		require.NoError(t, err)
		assert.Equal(t, "user", string(p.Variant))
		require.NotNil(t, p.UserID)
		assert.Equal(t, u.ID, *p.UserID)
	})
}

func TestParticipantExternalVariant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.participants.Resolve(ctx, models.ParticipantRef{
		Variant:     models.ParticipantVariantExternal,
		ExternalID:  "~jane",
		ExternalURL: "https://elsewhere.org/~jane",
	})
	require.NoError(t, err)
	assert.Equal(t, "external", string(p.Variant))

	again, err := f.participants.Resolve(ctx, models.ParticipantRef{
		Variant:    models.ParticipantVariantExternal,
		ExternalID: "~jane",
	})
	require.NoError(t, err)
	assert.Equal(t, p.ID, again.ID)
}

func TestParticipantValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.participants.Resolve(ctx, models.ParticipantRef{Variant: models.ParticipantVariantUser})
	assert.True(t, IsValidationError(err))
	_, err = f.participants.Resolve(ctx, models.ParticipantRef{Variant: models.ParticipantVariantEmail})
	assert.True(t, IsValidationError(err))
	_, err = f.participants.Resolve(ctx, models.ParticipantRef{Variant: models.ParticipantVariantExternal})
	assert.True(t, IsValidationError(err))
	_, err = f.participants.Resolve(ctx, models.ParticipantRef{Variant: "martian"})
	assert.True(t, IsValidationError(err))
}
