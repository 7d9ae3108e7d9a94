package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourcehut/todosrht-core/pkg/models"
)

func TestValidateTrackerName(t *testing.T) {
	for _, name := range []string{"bar", "my-tracker", "todo.v2", "a_b", "X"} {
		assert.NoError(t, ValidateTrackerName(name), name)
	}
	for _, name := range []string{"", ".", "..", ".git", ".hg", "has space", "emoji✨", "a/b"} {
		assert.Error(t, ValidateTrackerName(name), name)
	}
	assert.Error(t, ValidateTrackerName(string(make([]byte, 256))))
}

func TestTrackerCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	foo := f.user(t, "u-foo", "foo")

	tr, err := f.trackers.Create(ctx, foo, models.CreateTrackerRequest{Name: "bar"})
	require.NoError(t, err)
	assert.Equal(t, "public", string(tr.Visibility))
	assert.Equal(t, int(models.DefaultCapabilities), tr.DefaultAccess)
	assert.Equal(t, 1, tr.NextTicketID)

	t.Run("duplicate name per owner is a validation error", func(t *testing.T) {
		_, err := f.trackers.Create(ctx, foo, models.CreateTrackerRequest{Name: "bar"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("same name under another owner is fine", func(t *testing.T) {
		other := f.user(t, "u-other", "other")
		_, err := f.trackers.Create(ctx, other, models.CreateTrackerRequest{Name: "bar"})
		assert.NoError(t, err)
	})

	t.Run("reserved names are rejected", func(t *testing.T) {
		_, err := f.trackers.Create(ctx, foo, models.CreateTrackerRequest{Name: ".git"})
		assert.True(t, IsValidationError(err))
	})
}

func TestTrackerByRef(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	foo := f.user(t, "u-foo", "foo")
	created := f.tracker(t, foo, "bar")

	tr, err := f.trackers.ByRef(ctx, "foo", "bar")
	require.NoError(t, err)
	assert.Equal(t, created.ID, tr.ID)

	_, err = f.trackers.ByRef(ctx, "foo", "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.trackers.ByRef(ctx, "nobody", "bar")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTrackerACL(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	access := NewAccessService()

	foo := f.user(t, "u-foo", "foo")
	stranger := f.user(t, "u-s", "stranger")
	tr, err := f.trackers.Create(ctx, foo, models.CreateTrackerRequest{
		Name:       "secret",
		Visibility: models.TrackerVisibilityPrivate,
	})
	require.NoError(t, err)

	t.Run("no grant means no access on a private tracker", func(t *testing.T) {
		grant, err := f.trackers.AccessGrant(ctx, tr.ID, stranger.ID)
		require.NoError(t, err)
		assert.Nil(t, grant)
		assert.Equal(t, models.CapabilityNone, access.Resolve(tr, stranger.ID, grant))
	})

	t.Run("grant opens the tracker to exactly the given capabilities", func(t *testing.T) {
		_, err := f.trackers.GrantAccess(ctx, tr.ID, models.GrantAccessRequest{
			UserID:      stranger.ID,
			Permissions: models.CapabilityBrowse | models.CapabilityComment,
		})
		require.NoError(t, err)

		grant, err := f.trackers.AccessGrant(ctx, tr.ID, stranger.ID)
		require.NoError(t, err)
		require.NotNil(t, grant)
		caps := access.Resolve(tr, stranger.ID, grant)
		assert.True(t, caps.Has(models.CapabilityBrowse))
		assert.False(t, caps.Has(models.CapabilitySubmit))
	})

	t.Run("granting again replaces the permissions", func(t *testing.T) {
		_, err := f.trackers.GrantAccess(ctx, tr.ID, models.GrantAccessRequest{
			UserID:      stranger.ID,
			Permissions: models.CapabilityBrowse,
		})
		require.NoError(t, err)
		grant, err := f.trackers.AccessGrant(ctx, tr.ID, stranger.ID)
		require.NoError(t, err)
		assert.Equal(t, int(models.CapabilityBrowse), grant.Permissions)
	})

	t.Run("revoke returns the user to the default", func(t *testing.T) {
		require.NoError(t, f.trackers.RevokeAccess(ctx, tr.ID, stranger.ID))
		grant, err := f.trackers.AccessGrant(ctx, tr.ID, stranger.ID)
		require.NoError(t, err)
		assert.Nil(t, grant)
		assert.ErrorIs(t, f.trackers.RevokeAccess(ctx, tr.ID, stranger.ID), ErrNotFound)
	})
}

func TestTrackerUpdateTimestampPolicy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	foo := f.user(t, "u-foo", "foo")
	tr := f.tracker(t, foo, "bar")

	desc := "new description"

	t.Run("admin edits do not touch updated_at by default", func(t *testing.T) {
		updated, err := f.trackers.Update(ctx, tr.ID, models.UpdateTrackerRequest{Description: &desc})
		require.NoError(t, err)
		assert.WithinDuration(t, tr.UpdatedAt, updated.UpdatedAt, time.Millisecond)
	})

	t.Run("the policy flag opts admin edits into activity", func(t *testing.T) {
		f.cfg.TouchTrackerOnAdminEdit = true
		updated, err := f.trackers.Update(ctx, tr.ID, models.UpdateTrackerRequest{Description: &desc})
		require.NoError(t, err)
		assert.True(t, updated.UpdatedAt.After(tr.UpdatedAt))
	})
}

func TestContrastTextColor(t *testing.T) {
	assert.Equal(t, "#ffffff", ContrastTextColor("#000000"))
	assert.Equal(t, "#000000", ContrastTextColor("#ffffff"))
	assert.Equal(t, "#ffffff", ContrastTextColor("#336699"))
	assert.Equal(t, "#000000", ContrastTextColor("#ffe4b5"))
}
