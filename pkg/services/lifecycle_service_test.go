package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourcehut/todosrht-core/ent"
	"github.com/sourcehut/todosrht-core/ent/event"
	"github.com/sourcehut/todosrht-core/ent/eventnotification"
	"github.com/sourcehut/todosrht-core/ent/ticketassignee"
	"github.com/sourcehut/todosrht-core/ent/ticketcomment"
	"github.com/sourcehut/todosrht-core/ent/ticketsubscription"
	"github.com/sourcehut/todosrht-core/pkg/models"
)

func countEventsWith(t *testing.T, client *ent.Client, ticketID string, bit models.EventType) int {
	t.Helper()
	events, err := client.Event.Query().Where(event.TicketIDEQ(ticketID)).All(context.Background())
	require.NoError(t, err)
	n := 0
	for _, ev := range events {
		if models.EventType(ev.EventTypes).Has(bit) {
			n++
		}
	}
	return n
}

func TestSubmitAndNotify(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	foo := f.user(t, "u-foo", "foo")
	tr := f.tracker(t, foo, "bar")

	sub := f.user(t, "u-sub", "sub")
	subP := f.participant(t, sub)
	require.NoError(t, f.subs.SubscribeToTracker(ctx, subP.ID, tr.ID))

	submitter := f.user(t, "u-user", "user")
	submitterP := f.participant(t, submitter)

	ticket, err := f.lifecycle.Submit(ctx, submitterP, tr.ID, models.SubmitTicketRequest{
		Title:       "I have a problem",
		Description: "It does not work.",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, ticket.ScopedID)

	tr, err = f.trackers.ByID(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, tr.NextTicketID)

	assert.Equal(t, 1, countEventsWith(t, f.client, ticket.ID, models.EventTypeCreated))

	notifications, err := f.client.EventNotification.Query().
		Where(eventnotification.UserIDEQ(sub.ID)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, notifications, 1)

	mails := f.enq.mailsTo("sub@example.org")
	require.Len(t, mails, 1)
	assert.Equal(t, "~foo/bar#1: I have a problem", mails[0].Subject)
	assert.Equal(t, "<~foo/bar/1@todo.example.org>", mails[0].MessageID)
	assert.Contains(t, mails[0].ListUnsubscribe, "mailto:")

	// The submitter is auto-subscribed at tracker or ticket scope.
	subscribed, err := f.subs.IsSubscribed(ctx, submitterP.ID, tr.ID, ticket.ID)
	require.NoError(t, err)
	assert.True(t, subscribed)

	// The submitter did not mail themself.
	assert.Empty(t, f.enq.mailsTo("user@example.org"))
}

func TestSubmitAssignsSequentialScopedIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	foo := f.user(t, "u-foo", "foo")
	tr := f.tracker(t, foo, "bar")
	p := f.participant(t, foo)

	for want := 1; want <= 3; want++ {
		ticket, err := f.lifecycle.Submit(ctx, p, tr.ID, models.SubmitTicketRequest{Title: "ticket number " + strings.Repeat("x", want)})
		require.NoError(t, err)
		assert.Equal(t, want, ticket.ScopedID)
	}

	tr, err := f.trackers.ByID(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, tr.NextTicketID)
}

func TestApplyCommentAndResolve(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	foo := f.user(t, "u-foo", "foo")
	tr := f.tracker(t, foo, "bar")

	sub := f.user(t, "u-sub", "sub")
	require.NoError(t, f.subs.SubscribeToTracker(ctx, f.participant(t, sub).ID, tr.ID))

	submitter := f.user(t, "u-user", "user")
	submitterP := f.participant(t, submitter)
	ticket, err := f.lifecycle.Submit(ctx, submitterP, tr.ID, models.SubmitTicketRequest{Title: "I have a problem"})
	require.NoError(t, err)
	f.enq.reset()

	ev, err := f.lifecycle.Apply(ctx, submitterP, ticket.ID, models.ApplyRequest{
		Text:       "see you've met my",
		Resolve:    true,
		Resolution: models.TicketResolutionFixed,
	})
	require.NoError(t, err)
	require.NotNil(t, ev)

	bits := models.EventType(ev.EventTypes)
	assert.True(t, bits.Has(models.EventTypeComment))
	assert.True(t, bits.Has(models.EventTypeStatusChange))
	assert.Equal(t, "reported", *ev.OldStatus)
	assert.Equal(t, "resolved", *ev.NewStatus)

	updated, err := f.lifecycle.GetTicket(ctx, tr.ID, ticket.ScopedID)
	require.NoError(t, err)
	assert.Equal(t, "resolved", string(updated.Status))
	assert.Equal(t, "fixed", string(updated.Resolution))
	assert.Equal(t, 1, updated.CommentCount)

	mails := f.enq.mailsTo("sub@example.org")
	require.Len(t, mails, 1)
	assert.True(t, strings.HasPrefix(mails[0].Body, "Ticket resolved: fixed"))
	assert.Equal(t, "Re: ~foo/bar#1: I have a problem", mails[0].Subject)
	assert.Equal(t, "<~foo/bar/1@todo.example.org>", mails[0].InReplyTo)
}

func TestApplyNoOp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	foo := f.user(t, "u-foo", "foo")
	tr := f.tracker(t, foo, "bar")
	p := f.participant(t, foo)
	ticket, err := f.lifecycle.Submit(ctx, p, tr.ID, models.SubmitTicketRequest{Title: "I have a problem"})
	require.NoError(t, err)

	_, err = f.lifecycle.Apply(ctx, p, ticket.ID, models.ApplyRequest{Resolve: true, Resolution: models.TicketResolutionFixed})
	require.NoError(t, err)

	before, err := f.client.Event.Query().Where(event.TicketIDEQ(ticket.ID)).Count(ctx)
	require.NoError(t, err)

	// Resolving to the same state again records nothing.
	ev, err := f.lifecycle.Apply(ctx, p, ticket.ID, models.ApplyRequest{Resolve: true, Resolution: models.TicketResolutionFixed})
	require.NoError(t, err)
	assert.Nil(t, ev)

	after, err := f.client.Event.Query().Where(event.TicketIDEQ(ticket.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestApplyValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	foo := f.user(t, "u-foo", "foo")
	tr := f.tracker(t, foo, "bar")
	p := f.participant(t, foo)
	ticket, err := f.lifecycle.Submit(ctx, p, tr.ID, models.SubmitTicketRequest{Title: "I have a problem"})
	require.NoError(t, err)

	_, err = f.lifecycle.Apply(ctx, p, ticket.ID, models.ApplyRequest{})
	assert.True(t, IsValidationError(err))

	_, err = f.lifecycle.Apply(ctx, p, ticket.ID, models.ApplyRequest{Resolve: true, Reopen: true})
	assert.True(t, IsValidationError(err))

	_, err = f.lifecycle.Apply(ctx, p, ticket.ID, models.ApplyRequest{Resolve: true})
	assert.True(t, IsValidationError(err))

	_, err = f.lifecycle.Apply(ctx, p, ticket.ID, models.ApplyRequest{Text: "no"})
	assert.True(t, IsValidationError(err))
}

func TestResolveAsDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	foo := f.user(t, "u-foo", "foo")
	tr := f.tracker(t, foo, "bar")
	p := f.participant(t, foo)

	canonical, err := f.lifecycle.Submit(ctx, p, tr.ID, models.SubmitTicketRequest{Title: "the real problem"})
	require.NoError(t, err)
	dupe, err := f.lifecycle.Submit(ctx, p, tr.ID, models.SubmitTicketRequest{Title: "the same problem again"})
	require.NoError(t, err)

	t.Run("dupe_of requires resolving as duplicate", func(t *testing.T) {
		_, err := f.lifecycle.Apply(ctx, p, dupe.ID, models.ApplyRequest{
			Resolve:    true,
			Resolution: models.TicketResolutionFixed,
			DupeOf:     canonical.ScopedID,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("resolving as duplicate records the canonical ticket", func(t *testing.T) {
		_, err := f.lifecycle.Apply(ctx, p, dupe.ID, models.ApplyRequest{
			Resolve:    true,
			Resolution: models.TicketResolutionDuplicate,
			DupeOf:     canonical.ScopedID,
		})
		require.NoError(t, err)

		reloaded, err := f.lifecycle.GetTicket(ctx, tr.ID, dupe.ScopedID)
		require.NoError(t, err)
		assert.Equal(t, "duplicate", string(reloaded.Resolution))
		require.NotNil(t, reloaded.DupeOfID)
		assert.Equal(t, canonical.ID, *reloaded.DupeOfID)
	})

	t.Run("a ticket cannot duplicate itself or a missing ticket", func(t *testing.T) {
		_, err := f.lifecycle.Apply(ctx, p, canonical.ID, models.ApplyRequest{
			Resolve:    true,
			Resolution: models.TicketResolutionDuplicate,
			DupeOf:     canonical.ScopedID,
		})
		assert.True(t, IsValidationError(err))

		_, err = f.lifecycle.Apply(ctx, p, canonical.ID, models.ApplyRequest{
			Resolve:    true,
			Resolution: models.TicketResolutionDuplicate,
			DupeOf:     99,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("reopening clears the reference", func(t *testing.T) {
		_, err := f.lifecycle.Apply(ctx, p, dupe.ID, models.ApplyRequest{Reopen: true})
		require.NoError(t, err)

		reloaded, err := f.lifecycle.GetTicket(ctx, tr.ID, dupe.ScopedID)
		require.NoError(t, err)
		assert.Nil(t, reloaded.DupeOfID)
	})
}

func TestIdempotentAssignment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	foo := f.user(t, "u-foo", "foo")
	tr := f.tracker(t, foo, "bar")
	b := f.user(t, "u-b", "b")
	bP := f.participant(t, b)
	a := f.user(t, "u-a", "a")
	aP := f.participant(t, a)

	ticket, err := f.lifecycle.Submit(ctx, bP, tr.ID, models.SubmitTicketRequest{Title: "I have a problem"})
	require.NoError(t, err)
	f.enq.reset()

	require.NoError(t, f.lifecycle.Assign(ctx, bP, ticket.ID, aP.ID))
	require.NoError(t, f.lifecycle.Assign(ctx, bP, ticket.ID, aP.ID))

	rows, err := f.client.TicketAssignee.Query().Where(ticketassignee.TicketIDEQ(ticket.ID)).All(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	assert.Equal(t, 1, countEventsWith(t, f.client, ticket.ID, models.EventTypeAssignedUser))
	assert.Len(t, f.enq.mailsTo("a@example.org"), 1)
}

func TestMentionFanOut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	foo := f.user(t, "u-foo", "foo")
	tr := f.tracker(t, foo, "bar")
	actorP := f.participant(t, foo)

	u1 := f.user(t, "u-1", "u1")
	u2 := f.user(t, "u-2", "u2")
	f.user(t, "u-3", "u3")
	require.NoError(t, f.subs.SubscribeToTracker(ctx, f.participant(t, u1).ID, tr.ID))

	ticket1, err := f.lifecycle.Submit(ctx, actorP, tr.ID, models.SubmitTicketRequest{Title: "first ticket"})
	require.NoError(t, err)
	ticket2, err := f.lifecycle.Submit(ctx, actorP, tr.ID, models.SubmitTicketRequest{Title: "second ticket"})
	require.NoError(t, err)
	f.enq.reset()

	_, err = f.lifecycle.Apply(ctx, actorP, ticket1.ID, models.ApplyRequest{Text: "~u1 and ~u2 see #2"})
	require.NoError(t, err)

	assert.Equal(t, 1, countEventsWith(t, f.client, ticket1.ID, models.EventTypeComment))
	assert.Equal(t, 2, countEventsWith(t, f.client, ticket1.ID, models.EventTypeUserMentioned))
	assert.Equal(t, 1, countEventsWith(t, f.client, ticket2.ID, models.EventTypeTicketMentioned))

	// u1 was already subscribed: one comment email, no extra mention email.
	assert.Len(t, f.enq.mailsTo("u1@example.org"), 1)
	// u2 gets the mention email.
	assert.Len(t, f.enq.mailsTo("u2@example.org"), 1)
	// u3 was neither subscribed nor mentioned.
	assert.Empty(t, f.enq.mailsTo("u3@example.org"))

	// Mentioned-but-unsubscribed users get subscribed for the follow-ups.
	u2P := f.participant(t, u2)
	subscribed, err := f.subs.IsSubscribed(ctx, u2P.ID, tr.ID, ticket1.ID)
	require.NoError(t, err)
	assert.True(t, subscribed)
}

func TestEditCommentSupersession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	foo := f.user(t, "u-foo", "foo")
	tr := f.tracker(t, foo, "bar")
	authorP := f.participant(t, foo)

	moderator := f.user(t, "u-mod", "mod")
	modP := f.participant(t, moderator)

	ticket, err := f.lifecycle.Submit(ctx, authorP, tr.ID, models.SubmitTicketRequest{Title: "I have a problem"})
	require.NoError(t, err)
	_, err = f.lifecycle.Apply(ctx, authorP, ticket.ID, models.ApplyRequest{Text: "original text"})
	require.NoError(t, err)

	original, err := f.client.TicketComment.Query().
		Where(ticketcomment.TicketIDEQ(ticket.ID)).
		Only(ctx)
	require.NoError(t, err)

	t.Run("self edit keeps authenticity", func(t *testing.T) {
		replacement, err := f.lifecycle.EditComment(ctx, authorP, original.ID, "revised text")
		require.NoError(t, err)
		assert.Equal(t, "authentic", string(replacement.Authenticity))

		reloaded, err := f.client.TicketComment.Get(ctx, original.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded.SupercededByID)
		assert.Equal(t, replacement.ID, *reloaded.SupercededByID)

		// The comment's event follows the replacement.
		ev, err := f.client.Event.Query().
			Where(event.CommentIDEQ(replacement.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.True(t, models.EventType(ev.EventTypes).Has(models.EventTypeComment))

		// comment_count still counts only the live comment.
		updated, err := f.lifecycle.GetTicket(ctx, tr.ID, ticket.ScopedID)
		require.NoError(t, err)
		live, err := f.client.TicketComment.Query().
			Where(ticketcomment.TicketIDEQ(ticket.ID), ticketcomment.SupercededByIDIsNil()).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, updated.CommentCount, live)
	})

	t.Run("edit by another marks edited_by_other", func(t *testing.T) {
		replacement, err := f.lifecycle.EditComment(ctx, modP, original.ID, "moderated text")
		require.NoError(t, err)
		assert.Equal(t, "edited_by_other", string(replacement.Authenticity))
	})
}

func TestSetLabelsDiff(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	foo := f.user(t, "u-foo", "foo")
	tr := f.tracker(t, foo, "bar")
	p := f.participant(t, foo)

	for _, name := range []string{"bug", "feature", "docs"} {
		_, err := f.labels.Create(ctx, tr.ID, models.LabelRequest{Name: name, Color: "#ff0000"})
		require.NoError(t, err)
	}

	ticket, err := f.lifecycle.Submit(ctx, p, tr.ID, models.SubmitTicketRequest{Title: "I have a problem"})
	require.NoError(t, err)

	require.NoError(t, f.lifecycle.SetLabels(ctx, p, ticket.ID, []string{"bug", "feature"}))
	assert.Equal(t, 2, countEventsWith(t, f.client, ticket.ID, models.EventTypeLabelAdded))

	// Replace the set: feature stays, bug goes, docs arrives.
	require.NoError(t, f.lifecycle.SetLabels(ctx, p, ticket.ID, []string{"feature", "docs"}))
	assert.Equal(t, 3, countEventsWith(t, f.client, ticket.ID, models.EventTypeLabelAdded))
	assert.Equal(t, 1, countEventsWith(t, f.client, ticket.ID, models.EventTypeLabelRemoved))

	_, err = f.labels.ByName(ctx, tr.ID, "nope")
	assert.True(t, IsValidationError(err))
}

func TestSearchDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	foo := f.user(t, "u-foo", "foo")
	tr := f.tracker(t, foo, "bar")
	p := f.participant(t, foo)

	_, err := f.labels.Create(ctx, tr.ID, models.LabelRequest{Name: "bug", Color: "#336699"})
	require.NoError(t, err)

	var tickets []*ent.Ticket
	for i := 0; i < 5; i++ {
		ticket, err := f.lifecycle.Submit(ctx, p, tr.ID, models.SubmitTicketRequest{Title: "open ticket number " + strings.Repeat("i", i+1)})
		require.NoError(t, err)
		tickets = append(tickets, ticket)
	}
	_, err = f.lifecycle.Apply(ctx, p, tickets[4].ID, models.ApplyRequest{Resolve: true, Resolution: models.TicketResolutionFixed})
	require.NoError(t, err)
	require.NoError(t, f.lifecycle.SetLabels(ctx, p, tickets[0].ID, []string{"bug"}))

	t.Run("empty query shows open tickets only", func(t *testing.T) {
		resp, err := f.lifecycle.Search(ctx, foo, tr.ID, "", 0, 0)
		require.NoError(t, err)
		assert.Len(t, resp.Tickets, 4)
	})

	t.Run("status any shows everything", func(t *testing.T) {
		resp, err := f.lifecycle.Search(ctx, foo, tr.ID, "status:any", 0, 0)
		require.NoError(t, err)
		assert.Len(t, resp.Tickets, 5)
	})

	t.Run("no:label finds unlabeled tickets", func(t *testing.T) {
		resp, err := f.lifecycle.Search(ctx, foo, tr.ID, "status:any no:label", 0, 0)
		require.NoError(t, err)
		assert.Len(t, resp.Tickets, 4)
	})

	t.Run("label filter", func(t *testing.T) {
		resp, err := f.lifecycle.Search(ctx, foo, tr.ID, "status:any label:bug", 0, 0)
		require.NoError(t, err)
		require.Len(t, resp.Tickets, 1)
		assert.Equal(t, tickets[0].ID, resp.Tickets[0].ID)
	})

	t.Run("submitter me with anonymous viewer matches nothing", func(t *testing.T) {
		resp, err := f.lifecycle.Search(ctx, nil, tr.ID, "status:any submitter:me", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, resp.Tickets)
	})

	t.Run("submitter me with the viewer set matches", func(t *testing.T) {
		resp, err := f.lifecycle.Search(ctx, foo, tr.ID, "status:any submitter:me", 0, 0)
		require.NoError(t, err)
		assert.Len(t, resp.Tickets, 5)
	})

	t.Run("invalid term surfaces as a validation error", func(t *testing.T) {
		_, err := f.lifecycle.Search(ctx, foo, tr.ID, "bogus:value", 0, 0)
		assert.True(t, IsValidationError(err))
	})

	t.Run("free text matches comments too", func(t *testing.T) {
		_, err := f.lifecycle.Apply(ctx, p, tickets[1].ID, models.ApplyRequest{Text: "crashes under xenon lamps"})
		require.NoError(t, err)
		resp, err := f.lifecycle.Search(ctx, foo, tr.ID, "status:any xenon", 0, 0)
		require.NoError(t, err)
		require.Len(t, resp.Tickets, 1)
		assert.Equal(t, tickets[1].ID, resp.Tickets[0].ID)
	})
}

func TestSubscriberDedup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	foo := f.user(t, "u-foo", "foo")
	tr := f.tracker(t, foo, "bar")
	p := f.participant(t, foo)

	both := f.user(t, "u-both", "both")
	bothP := f.participant(t, both)

	ticket, err := f.lifecycle.Submit(ctx, p, tr.ID, models.SubmitTicketRequest{Title: "I have a problem"})
	require.NoError(t, err)

	require.NoError(t, f.subs.SubscribeToTracker(ctx, bothP.ID, tr.ID))
	require.NoError(t, f.subs.SubscribeToTicket(ctx, bothP.ID, ticket.ID))
	f.enq.reset()

	_, err = f.lifecycle.Apply(ctx, p, ticket.ID, models.ApplyRequest{Text: "an update for you"})
	require.NoError(t, err)

	// Subscribed at both scopes still means exactly one email.
	assert.Len(t, f.enq.mailsTo("both@example.org"), 1)

	subs, err := f.client.TicketSubscription.Query().
		Where(ticketsubscription.ParticipantIDEQ(bothP.ID)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, 2)
}
