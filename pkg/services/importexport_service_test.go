package services

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourcehut/todosrht-core/ent"
	"github.com/sourcehut/todosrht-core/ent/event"
	"github.com/sourcehut/todosrht-core/ent/ticket"
	"github.com/sourcehut/todosrht-core/pkg/models"
)

// buildExportFixture files two tickets with comments, labels, and a
// resolution on the given tracker, so the dump has every row shape in it.
func buildExportFixture(t *testing.T, f *fixture, trackerID string) {
	ctx := context.Background()
	foo := f.user(t, "u-foo", "foo")
	p := f.participant(t, foo)

	_, err := f.labels.Create(ctx, trackerID, models.LabelRequest{Name: "bug", Color: "#cc0000"})
	require.NoError(t, err)

	t1, err := f.lifecycle.Submit(ctx, p, trackerID, models.SubmitTicketRequest{
		Title:       "I have a problem",
		Description: "It does not work.",
	})
	require.NoError(t, err)
	t2, err := f.lifecycle.Submit(ctx, p, trackerID, models.SubmitTicketRequest{
		Title:       "Another problem",
		Description: "Related to #1.",
	})
	require.NoError(t, err)

	require.NoError(t, f.lifecycle.SetLabels(ctx, p, t1.ID, []string{"bug"}))
	_, err = f.lifecycle.Apply(ctx, p, t1.ID, models.ApplyRequest{Text: "cannot reproduce yet"})
	require.NoError(t, err)
	_, err = f.lifecycle.Apply(ctx, p, t2.ID, models.ApplyRequest{
		Text:       "fixed in the next release",
		Resolve:    true,
		Resolution: models.TicketResolutionFixed,
	})
	require.NoError(t, err)
}

func TestExportShape(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	foo := f.user(t, "u-foo", "foo")
	tr := f.tracker(t, foo, "bar")
	buildExportFixture(t, f, tr.ID)

	var buf bytes.Buffer
	require.NoError(t, f.impexp.Export(ctx, tr.ID, &buf))

	gz, err := gzip.NewReader(&buf)
	require.NoError(t, err)
	var manifest models.ExportManifest
	require.NoError(t, json.NewDecoder(gz).Decode(&manifest))

	assert.Equal(t, "bar", manifest.Name)
	assert.Equal(t, "~foo", manifest.Owner.CanonicalName)
	require.Len(t, manifest.Labels, 1)
	require.Len(t, manifest.Tickets, 2)

	first := manifest.Tickets[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "~foo/bar#1", first.Ref)
	assert.Equal(t, f.cfg.Origin, first.Upstream)
	assert.NotEmpty(t, first.Signature, "local-user tickets carry a signature")
	assert.Equal(t, []string{"bug"}, first.Labels)

	var commentEvents int
	for _, ev := range first.Events {
		for _, name := range ev.EventTypes {
			if name == "comment" {
				commentEvents++
				require.NotNil(t, ev.Comment)
				assert.NotEmpty(t, ev.Signature, "local-user comment events carry a signature")
			}
		}
	}
	assert.Equal(t, 1, commentEvents)
}

func TestImportRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	foo := f.user(t, "u-foo", "foo")
	source := f.tracker(t, foo, "bar")
	buildExportFixture(t, f, source.ID)

	var buf bytes.Buffer
	require.NoError(t, f.impexp.Export(ctx, source.ID, &buf))

	target := f.tracker(t, foo, "bar-restored")
	require.NoError(t, f.impexp.Import(ctx, target.ID, &buf))

	t.Run("flag is cleared afterwards", func(t *testing.T) {
		reloaded, err := f.trackers.ByID(ctx, target.ID)
		require.NoError(t, err)
		assert.False(t, reloaded.ImportInProgress)
		assert.Equal(t, 3, reloaded.NextTicketID)
	})

	sourceTickets, err := f.client.Ticket.Query().
		Where(ticket.TrackerIDEQ(source.ID)).
		Order(ent.Asc(ticket.FieldScopedID)).
		All(ctx)
	require.NoError(t, err)

	imported, err := f.client.Ticket.Query().
		Where(ticket.TrackerIDEQ(target.ID)).
		Order(ent.Asc(ticket.FieldScopedID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, imported, len(sourceTickets))

	for i, got := range imported {
		want := sourceTickets[i]
		assert.Equal(t, want.ScopedID, got.ScopedID)
		assert.Equal(t, want.Title, got.Title)
		assert.Equal(t, want.Description, got.Description)
		assert.Equal(t, want.Status, got.Status)
		assert.Equal(t, want.Resolution, got.Resolution)
		assert.Equal(t, want.CommentCount, got.CommentCount)
		assert.WithinDuration(t, want.CreatedAt, got.CreatedAt, time.Microsecond)

		// Signatures verified against our own origin: provenance intact.
		assert.Equal(t, "authentic", string(got.Authenticity))

		wantEvents, err := f.client.Event.Query().
			Where(event.TicketIDEQ(want.ID)).
			Order(ent.Asc(event.FieldCreatedAt), ent.Asc(event.FieldID)).
			All(ctx)
		require.NoError(t, err)
		gotEvents, err := f.client.Event.Query().
			Where(event.TicketIDEQ(got.ID)).
			Order(ent.Asc(event.FieldCreatedAt), ent.Asc(event.FieldID)).
			All(ctx)
		require.NoError(t, err)

		var wantBits, gotBits []int
		for _, ev := range wantEvents {
			bits := models.EventType(ev.EventTypes)
			if bits.Has(models.EventTypeUserMentioned) || bits.Has(models.EventTypeTicketMentioned) {
				continue
			}
			wantBits = append(wantBits, ev.EventTypes)
		}
		for _, ev := range gotEvents {
			bits := models.EventType(ev.EventTypes)
			if bits.Has(models.EventTypeTicketMentioned) {
				continue
			}
			gotBits = append(gotBits, ev.EventTypes)
		}
		assert.Equal(t, wantBits, gotBits)
	}
}

func TestImportTamperDetection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	foo := f.user(t, "u-foo", "foo")
	source := f.tracker(t, foo, "bar")
	buildExportFixture(t, f, source.ID)

	var buf bytes.Buffer
	require.NoError(t, f.impexp.Export(ctx, source.ID, &buf))

	gz, err := gzip.NewReader(&buf)
	require.NoError(t, err)
	var manifest models.ExportManifest
	require.NoError(t, json.NewDecoder(gz).Decode(&manifest))

	// Doctor the first ticket's body after signing.
	manifest.Tickets[0].Description = "I never wrote this."
	// Strip the second ticket's signature entirely.
	manifest.Tickets[1].Signature = ""

	var doctored bytes.Buffer
	gzw := gzip.NewWriter(&doctored)
	require.NoError(t, json.NewEncoder(gzw).Encode(manifest))
	require.NoError(t, gzw.Close())

	target := f.tracker(t, foo, "bar-restored")
	require.NoError(t, f.impexp.Import(ctx, target.ID, &doctored))

	tampered, err := f.lifecycle.GetTicket(ctx, target.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "tampered", string(tampered.Authenticity))

	unauthenticated, err := f.lifecycle.GetTicket(ctx, target.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, "unauthenticated", string(unauthenticated.Authenticity))
}

func TestImportMalformedDump(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	foo := f.user(t, "u-foo", "foo")
	target := f.tracker(t, foo, "bar")

	err := f.impexp.Import(ctx, target.ID, bytes.NewReader([]byte("not gzip at all")))
	assert.ErrorIs(t, err, ErrImport)

	reloaded, err := f.trackers.ByID(ctx, target.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.ImportInProgress, "the flag clears even on failure")
}
