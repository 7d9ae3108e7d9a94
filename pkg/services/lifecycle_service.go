package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sourcehut/todosrht-core/ent"
	"github.com/sourcehut/todosrht-core/ent/event"
	"github.com/sourcehut/todosrht-core/ent/ticket"
	"github.com/sourcehut/todosrht-core/ent/ticketassignee"
	"github.com/sourcehut/todosrht-core/ent/ticketlabel"
	"github.com/sourcehut/todosrht-core/ent/tracker"
	"github.com/sourcehut/todosrht-core/ent/user"
	"github.com/sourcehut/todosrht-core/pkg/config"
	"github.com/sourcehut/todosrht-core/pkg/mail"
	"github.com/sourcehut/todosrht-core/pkg/models"
	"github.com/sourcehut/todosrht-core/pkg/search"
	"github.com/sourcehut/todosrht-core/pkg/webhook"
)

// submitRetries bounds how many times a ticket submission is retried when
// a concurrent submission wins the (tracker_id, scoped_id) unique
// constraint despite the row lock.
const submitRetries = 3

// LifecycleService is the ticket lifecycle engine: submission, the
// comment/status mutation, non-destructive comment edits, assignment, and
// label application. Every mutation runs in one transaction that also
// writes the event row, notifications, and subscription updates; email
// and webhook deliveries are enqueued after commit and never fail the
// request.
type LifecycleService struct {
	client   *ent.Client
	cfg      *config.Config
	mentions *MentionService
	mailer   mail.Enqueuer
	webhooks webhook.Enqueuer
}

// NewLifecycleService creates a new LifecycleService.
func NewLifecycleService(client *ent.Client, cfg *config.Config, mentions *MentionService, mailer mail.Enqueuer, webhooks webhook.Enqueuer) *LifecycleService {
	return &LifecycleService{
		client:   client,
		cfg:      cfg,
		mentions: mentions,
		mailer:   mailer,
		webhooks: webhooks,
	}
}

// pendingMail and pendingHook accumulate side effects during the
// transaction; they are enqueued only after commit, so a rollback leaves
// nothing observable and a crash between commit and enqueue loses only
// deliveries, never events.
type pendingMail struct {
	eventID string
	env     mail.Envelope
}

type pendingHook struct {
	eventID string
	scope   webhook.Scope
	scopeID string
	payload webhook.Payload
}

func (s *LifecycleService) flush(ctx context.Context, mails []pendingMail, hooks []pendingHook) {
	for _, m := range mails {
		if err := s.mailer.EnqueueMail(ctx, m.eventID, m.env); err != nil {
			slog.Error("enqueuing notification mail", "event_id", m.eventID, "to", m.env.To, "error", err)
		}
	}
	for _, h := range hooks {
		if err := s.webhooks.EnqueueWebhook(ctx, h.eventID, h.scope, h.scopeID, h.payload); err != nil {
			slog.Error("enqueuing webhook", "event_id", h.eventID, "scope", h.scope, "error", err)
		}
	}
}

// ticketScope bundles the rows every lifecycle mutation needs alongside
// the ticket itself.
type ticketScope struct {
	tracker *ent.Tracker
	owner   *ent.User
	ticket  *ent.Ticket
	ref     string // "~owner/name"
}

func loadTicketScope(ctx context.Context, client *ent.Client, ticketID string) (*ticketScope, error) {
	t, err := client.Ticket.Get(ctx, ticketID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting ticket: %w", err)
	}
	tr, err := client.Tracker.Get(ctx, t.TrackerID)
	if err != nil {
		return nil, fmt.Errorf("getting tracker: %w", err)
	}
	owner, err := client.User.Get(ctx, tr.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("getting tracker owner: %w", err)
	}
	return &ticketScope{
		tracker: tr,
		owner:   owner,
		ticket:  t,
		ref:     mail.TrackerRef(owner.Username, tr.Name),
	}, nil
}

func (sc *ticketScope) url(origin string) string {
	return fmt.Sprintf("%s/~%s/%s/%d", origin, sc.owner.Username, sc.tracker.Name, sc.ticket.ScopedID)
}

// participantDisplayName derives the fixed name of a participant: user →
// canonical ~name, email → display name or address, external → external
// id.
func participantDisplayName(ctx context.Context, client *ent.Client, p *ent.Participant) string {
	switch {
	case p.UserID != nil:
		u, err := client.User.Get(ctx, *p.UserID)
		if err == nil {
			return "~" + u.Username
		}
	case p.EmailAddress != nil:
		if p.EmailName != nil && *p.EmailName != "" {
			return *p.EmailName
		}
		return *p.EmailAddress
	case p.ExternalID != nil:
		return *p.ExternalID
	}
	return "anonymous"
}

// participantAddress resolves where a participant's notification email
// goes. External participants have no reachable address; ok is false.
func participantAddress(ctx context.Context, client *ent.Client, p *ent.Participant) (string, bool) {
	switch {
	case p.UserID != nil:
		u, err := client.User.Get(ctx, *p.UserID)
		if err != nil || u.Email == nil || *u.Email == "" {
			return "", false
		}
		return *u.Email, true
	case p.EmailAddress != nil:
		return *p.EmailAddress, true
	}
	return "", false
}

// Submit files a new ticket. The scoped id is assigned from the parent
// tracker's counter under a row lock; on the (rare) unique violation from
// a racing submission the whole transaction is retried with a fresh lock.
func (s *LifecycleService) Submit(ctx context.Context, actor *ent.Participant, trackerID string, req models.SubmitTicketRequest) (*ent.Ticket, error) {
	if n := utf8.RuneCountInString(req.Title); n < 3 || n > 2048 {
		return nil, NewValidationError("title", "must be between 3 and 2048 characters")
	}
	if utf8.RuneCountInString(req.Description) > 16384 {
		return nil, NewValidationError("description", "must not exceed 16384 characters")
	}

	var lastErr error
	for attempt := 0; attempt < submitRetries; attempt++ {
		t, mails, hooks, err := s.submitOnce(ctx, actor, trackerID, req)
		if err == nil {
			s.flush(ctx, mails, hooks)
			return t, nil
		}
		if !ent.IsConstraintError(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w: scoped id contention on tracker %s: %v", ErrConflict, trackerID, lastErr)
}

func (s *LifecycleService) submitOnce(ctx context.Context, actor *ent.Participant, trackerID string, req models.SubmitTicketRequest) (*ent.Ticket, []pendingMail, []pendingHook, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()
	txc := tx.Client()

	tr, err := txc.Tracker.Query().
		Where(tracker.IDEQ(trackerID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, nil, ErrNotFound
		}
		return nil, nil, nil, fmt.Errorf("locking tracker: %w", err)
	}
	owner, err := txc.User.Get(ctx, tr.OwnerID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("getting tracker owner: %w", err)
	}

	now := time.Now()
	t, err := txc.Ticket.Create().
		SetID(uuid.NewString()).
		SetTrackerID(tr.ID).
		SetScopedID(tr.NextTicketID).
		SetSubmitterID(actor.ID).
		SetTitle(req.Title).
		SetDescription(req.Description).
		Save(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	trackerUpdate := txc.Tracker.UpdateOneID(tr.ID).SetNextTicketID(tr.NextTicketID + 1)
	if tr.ImportInProgress {
		trackerUpdate = trackerUpdate.SetUpdatedAt(tr.UpdatedAt)
	} else {
		trackerUpdate = trackerUpdate.SetUpdatedAt(now)
	}
	if err := trackerUpdate.Exec(ctx); err != nil {
		return nil, nil, nil, fmt.Errorf("advancing ticket counter: %w", err)
	}

	ev, err := txc.Event.Create().
		SetID(uuid.NewString()).
		SetTicketID(t.ID).
		SetEventTypes(int(models.EventTypeCreated)).
		SetActorID(actor.ID).
		Save(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("creating event: %w", err)
	}

	sc := &ticketScope{tracker: tr, owner: owner, ticket: t, ref: mail.TrackerRef(owner.Username, tr.Name)}

	subs := &SubscriptionService{client: txc}
	subscribed, err := subs.IsSubscribed(ctx, actor.ID, tr.ID, t.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	if !subscribed {
		if err := subs.SubscribeToTicket(ctx, actor.ID, t.ID); err != nil {
			return nil, nil, nil, err
		}
	}

	var mails []pendingMail
	subject := mail.TicketSubject(sc.ref, t.ScopedID, t.Title)
	body := req.Description + "\n\n" + sc.url(s.cfg.Origin)
	notified, err := s.notifySubscribers(ctx, txc, sc, actor, ev.ID, subject, body, "", false, &mails)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := s.handleMentions(ctx, txc, sc, actor, nil, req.Description, notified, &mails); err != nil {
		return nil, nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, nil, fmt.Errorf("committing submission: %w", err)
	}

	hooks := []pendingHook{
		{eventID: ev.ID, scope: webhook.ScopeUser, scopeID: owner.ID, payload: webhook.Payload{Event: "ticket:create", Body: models.TicketResponse{Ticket: t}}},
		{eventID: ev.ID, scope: webhook.ScopeTracker, scopeID: tr.ID, payload: webhook.Payload{Event: "ticket:create", Body: models.TicketResponse{Ticket: t}}},
	}
	stampHooks(hooks)
	return t, mails, hooks, nil
}

func stampHooks(hooks []pendingHook) {
	now := time.Now().UTC().Format(time.RFC3339)
	for i := range hooks {
		hooks[i].payload.Timestamp = now
	}
}

// Apply performs the lifecycle engine's single mutation on an existing
// ticket: a comment and/or a status transition, in one transaction. A
// call that would change nothing — no text, and a transition to the
// current state — commits nothing and returns (nil, nil).
func (s *LifecycleService) Apply(ctx context.Context, actor *ent.Participant, ticketID string, req models.ApplyRequest) (*ent.Event, error) {
	if req.Text == "" && !req.Resolve && !req.Reopen && req.Status == "" {
		return nil, NewValidationError("text", "a comment, resolve, or reopen is required")
	}
	if req.Status != "" && !req.Status.IsValid() {
		return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", req.Status))
	}
	if req.Resolve && req.Reopen {
		return nil, NewValidationError("resolve", "resolve and reopen are mutually exclusive")
	}
	if req.Resolve {
		if req.Resolution == "" {
			return nil, NewValidationError("resolution", "required when resolving")
		}
		if !req.Resolution.IsValid() {
			return nil, NewValidationError("resolution", fmt.Sprintf("unknown resolution %q", req.Resolution))
		}
	}
	if req.Text != "" {
		if n := utf8.RuneCountInString(req.Text); n < 3 || n > 16384 {
			return nil, NewValidationError("text", "must be between 3 and 16384 characters")
		}
	}
	if req.DupeOf != 0 && !(req.Resolve && req.Resolution == models.TicketResolutionDuplicate) {
		return nil, NewValidationError("dupe_of", "only valid when resolving as duplicate")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()
	txc := tx.Client()

	sc, err := loadTicketScope(ctx, txc, ticketID)
	if err != nil {
		return nil, err
	}
	t := sc.ticket

	var bits models.EventType
	var comment *ent.TicketComment
	if req.Text != "" {
		comment, err = txc.TicketComment.Create().
			SetID(uuid.NewString()).
			SetTicketID(t.ID).
			SetSubmitterID(actor.ID).
			SetText(req.Text).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("creating comment: %w", err)
		}
		bits = bits.Union(models.EventTypeComment)
	}

	oldStatus, oldResolution := t.Status, t.Resolution
	newStatus, newResolution := oldStatus, oldResolution
	if req.Status != "" {
		newStatus = ticket.Status(req.Status)
		if req.Resolution != "" && req.Resolution.IsValid() {
			newResolution = ticket.Resolution(req.Resolution)
		}
	}
	if req.Resolve {
		newStatus = ticket.StatusResolved
		newResolution = ticket.Resolution(req.Resolution)
	}
	if req.Reopen {
		newStatus = ticket.StatusReported
	}
	statusChanged := newStatus != oldStatus || newResolution != oldResolution
	if statusChanged {
		bits = bits.Union(models.EventTypeStatusChange)
	}

	if bits == models.EventTypeNone {
		// Idempotent no-op: nothing to record, nothing to notify.
		return nil, nil
	}

	eventCreate := txc.Event.Create().
		SetID(uuid.NewString()).
		SetTicketID(t.ID).
		SetEventTypes(int(bits)).
		SetActorID(actor.ID)
	if comment != nil {
		eventCreate = eventCreate.SetCommentID(comment.ID)
	}
	if statusChanged {
		eventCreate = eventCreate.
			SetOldStatus(string(oldStatus)).
			SetNewStatus(string(newStatus)).
			SetOldResolution(string(oldResolution)).
			SetNewResolution(string(newResolution))
	}
	ev, err := eventCreate.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating event: %w", err)
	}

	now := time.Now()
	ticketUpdate := txc.Ticket.UpdateOneID(t.ID)
	if comment != nil {
		ticketUpdate = ticketUpdate.AddCommentCount(1)
	}
	if statusChanged {
		ticketUpdate = ticketUpdate.SetStatus(newStatus).SetResolution(newResolution)
	}
	if req.DupeOf != 0 {
		if req.DupeOf == t.ScopedID {
			return nil, NewValidationError("dupe_of", "a ticket cannot duplicate itself")
		}
		canonical, err := txc.Ticket.Query().
			Where(ticket.TrackerIDEQ(t.TrackerID), ticket.ScopedIDEQ(req.DupeOf)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, NewValidationError("dupe_of", fmt.Sprintf("no ticket #%d on this tracker", req.DupeOf))
			}
			return nil, fmt.Errorf("resolving duplicate target: %w", err)
		}
		ticketUpdate = ticketUpdate.SetDupeOfID(canonical.ID)
	}
	if req.Reopen {
		ticketUpdate = ticketUpdate.ClearDupeOfID()
	}
	if sc.tracker.ImportInProgress {
		ticketUpdate = ticketUpdate.SetUpdatedAt(t.UpdatedAt)
	} else {
		ticketUpdate = ticketUpdate.SetUpdatedAt(now)
	}
	if err := ticketUpdate.Exec(ctx); err != nil {
		return nil, fmt.Errorf("updating ticket: %w", err)
	}
	if !sc.tracker.ImportInProgress {
		if err := txc.Tracker.UpdateOneID(sc.tracker.ID).SetUpdatedAt(now).Exec(ctx); err != nil {
			return nil, fmt.Errorf("updating tracker: %w", err)
		}
	}

	subs := &SubscriptionService{client: txc}
	subscribed, err := subs.IsSubscribed(ctx, actor.ID, sc.tracker.ID, t.ID)
	if err != nil {
		return nil, err
	}
	if !subscribed {
		if err := subs.SubscribeToTicket(ctx, actor.ID, t.ID); err != nil {
			return nil, err
		}
	}

	var mails []pendingMail
	subject := mail.ReplySubject(sc.ref, t.ScopedID, t.Title)
	body := req.Text
	if statusChanged && newStatus == ticket.StatusResolved {
		body = fmt.Sprintf("Ticket resolved: %s", newResolution)
		if req.Text != "" {
			body += "\n\n" + req.Text
		}
	} else if statusChanged && req.Reopen && req.Text == "" {
		body = "Ticket reopened"
	}
	body += "\n\n" + sc.url(s.cfg.Origin)

	notified, err := s.notifySubscribers(ctx, txc, sc, actor, ev.ID, subject, body, mail.TicketMessageID(s.cfg.PostingDomain, sc.ref, t.ScopedID), req.FromEmail, &mails)
	if err != nil {
		return nil, err
	}

	if comment != nil {
		if err := s.handleMentions(ctx, txc, sc, actor, &comment.ID, req.Text, notified, &mails); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing: %w", err)
	}

	hooks := []pendingHook{
		{eventID: ev.ID, scope: webhook.ScopeTracker, scopeID: sc.tracker.ID, payload: webhook.Payload{Event: "event:create", Body: models.EventResponse{Event: ev}}},
		{eventID: ev.ID, scope: webhook.ScopeTicket, scopeID: t.ID, payload: webhook.Payload{Event: "event:create", Body: models.EventResponse{Event: ev}}},
	}
	if statusChanged {
		after := *t
		after.Status = newStatus
		after.Resolution = newResolution
		hooks = append(hooks, pendingHook{eventID: ev.ID, scope: webhook.ScopeTicket, scopeID: t.ID, payload: webhook.Payload{Event: "ticket:update", Body: models.TicketResponse{Ticket: &after}}})
	}
	stampHooks(hooks)
	s.flush(ctx, mails, hooks)
	return ev, nil
}

// notifySubscribers writes EventNotification rows for every user-variant
// subscriber and builds one email per reachable subscriber, skipping the
// actor unless their notify_self flag is set or the operation came in by
// email (in which case the sender should see their message land in the
// thread). Returns the set of participant ids that received an email, for
// the mention fan-out to dedup against. inReplyTo is empty for a ticket's
// initial notification, which instead carries the root Message-ID itself.
func (s *LifecycleService) notifySubscribers(ctx context.Context, txc *ent.Client, sc *ticketScope, actor *ent.Participant, eventID, subject, body, inReplyTo string, fromEmail bool, mails *[]pendingMail) (map[string]bool, error) {
	subs := &SubscriptionService{client: txc}
	subscribers, err := subs.Subscribers(ctx, sc.tracker.ID, sc.ticket.ID)
	if err != nil {
		return nil, err
	}

	var userIDs []string
	for _, sub := range subscribers {
		if sub.Participant.UserID != nil {
			userIDs = append(userIDs, *sub.Participant.UserID)
		}
	}
	if err := subs.NotifyEvent(ctx, eventID, userIDs); err != nil {
		return nil, err
	}

	actorName := participantDisplayName(ctx, txc, actor)
	from := fmt.Sprintf("%s <%s>", actorName, s.cfg.NotifyFrom)
	rootID := mail.TicketMessageID(s.cfg.PostingDomain, sc.ref, sc.ticket.ScopedID)
	replyTo := mail.PostingAddress(s.cfg.PostingDomain, sc.ref, sc.ticket.ScopedID)

	notified := make(map[string]bool, len(subscribers))
	for _, sub := range subscribers {
		if sub.Participant.ID == actor.ID {
			notifySelf := false
			if actor.UserID != nil {
				if u, err := txc.User.Get(ctx, *actor.UserID); err == nil {
					notifySelf = u.NotifySelf
				}
			}
			if !notifySelf && !fromEmail {
				continue
			}
		}
		addr, ok := participantAddress(ctx, txc, sub.Participant)
		if !ok {
			continue
		}

		unsubscribe := mail.TrackerUnsubscribe(s.cfg.PostingDomain, sc.ref)
		if sub.Subscription.TicketID != nil {
			unsubscribe = mail.TicketUnsubscribe(s.cfg.PostingDomain, sc.ref, sc.ticket.ScopedID)
		}
		env := mail.Envelope{
			From:            from,
			To:              addr,
			Subject:         subject,
			ReplyTo:         replyTo,
			ListUnsubscribe: unsubscribe,
			Body:            body,
		}
		if inReplyTo == "" {
			env.MessageID = rootID
		} else {
			env.MessageID = fmt.Sprintf("<%s@%s>", uuid.NewString(), s.cfg.PostingDomain)
			env.InReplyTo = inReplyTo
		}
		*mails = append(*mails, pendingMail{eventID: eventID, env: env})
		notified[sub.Participant.ID] = true
	}
	return notified, nil
}

// handleMentions parses text for user and ticket references and turns
// them into first-class events. Every mentioned user gets a
// user_mentioned event; only those not already notified by the subscriber
// fan-out (and not the actor) additionally get a subscription and a
// mention email. Every mentioned ticket other than the subject gets a
// ticket_mentioned event on itself, pointing back at the subject.
func (s *LifecycleService) handleMentions(ctx context.Context, txc *ent.Client, sc *ticketScope, actor *ent.Participant, commentID *string, text string, notified map[string]bool, mails *[]pendingMail) error {
	if text == "" {
		return nil
	}
	mentions, err := s.mentions.Parse(ctx, sc.tracker, text)
	if err != nil {
		return fmt.Errorf("resolving mentions: %w", err)
	}

	participants := &ParticipantService{client: txc}
	subs := &SubscriptionService{client: txc}
	actorName := participantDisplayName(ctx, txc, actor)

	for _, u := range mentions.Users {
		p, err := participants.Resolve(ctx, models.ParticipantRef{Variant: models.ParticipantVariantUser, UserID: u.ID})
		if err != nil {
			return err
		}

		ev, err := txc.Event.Create().
			SetID(uuid.NewString()).
			SetTicketID(sc.ticket.ID).
			SetEventTypes(int(models.EventTypeUserMentioned)).
			SetActorID(p.ID).
			SetByParticipantID(actor.ID).
			SetFromTicketID(sc.ticket.ID).
			SetNillableCommentID(commentID).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("creating mention event: %w", err)
		}
		if err := subs.NotifyEvent(ctx, ev.ID, []string{u.ID}); err != nil {
			return err
		}

		if notified[p.ID] || p.ID == actor.ID {
			continue
		}
		subscribed, err := subs.IsSubscribed(ctx, p.ID, sc.tracker.ID, sc.ticket.ID)
		if err != nil {
			return err
		}
		if !subscribed {
			if err := subs.SubscribeToTicket(ctx, p.ID, sc.ticket.ID); err != nil {
				return err
			}
		}
		if u.Email != nil && *u.Email != "" {
			*mails = append(*mails, pendingMail{eventID: ev.ID, env: mail.Envelope{
				From:            fmt.Sprintf("%s <%s>", actorName, s.cfg.NotifyFrom),
				To:              *u.Email,
				Subject:         mail.TicketSubject(sc.ref, sc.ticket.ScopedID, sc.ticket.Title),
				MessageID:       fmt.Sprintf("<%s@%s>", uuid.NewString(), s.cfg.PostingDomain),
				InReplyTo:       mail.TicketMessageID(s.cfg.PostingDomain, sc.ref, sc.ticket.ScopedID),
				ReplyTo:         mail.PostingAddress(s.cfg.PostingDomain, sc.ref, sc.ticket.ScopedID),
				ListUnsubscribe: mail.TicketUnsubscribe(s.cfg.PostingDomain, sc.ref, sc.ticket.ScopedID),
				Body:            fmt.Sprintf("You were mentioned by %s on %s#%d:\n\n%s\n\n%s", actorName, sc.ref, sc.ticket.ScopedID, text, sc.url(s.cfg.Origin)),
			}})
			notified[p.ID] = true
		}
	}

	for _, mt := range mentions.Tickets {
		if mt.ID == sc.ticket.ID {
			continue
		}
		if _, err := txc.Event.Create().
			SetID(uuid.NewString()).
			SetTicketID(mt.ID).
			SetEventTypes(int(models.EventTypeTicketMentioned)).
			SetActorID(actor.ID).
			SetByParticipantID(actor.ID).
			SetFromTicketID(sc.ticket.ID).
			SetNillableCommentID(commentID).
			Save(ctx); err != nil {
			return fmt.Errorf("creating ticket mention event: %w", err)
		}
	}
	return nil
}

// EditComment replaces a comment's text non-destructively: a new comment
// row is created, the original's superceded_by_id points at it, and the
// comment's latest event is re-pointed to the replacement. When the
// editor is not the original submitter the replacement is marked
// edited_by_other — visibly a moderator edit, distinct from the tampered
// state reserved for import-time signature failures.
func (s *LifecycleService) EditComment(ctx context.Context, actor *ent.Participant, commentID, text string) (*ent.TicketComment, error) {
	if n := utf8.RuneCountInString(text); n < 3 || n > 16384 {
		return nil, NewValidationError("text", "must be between 3 and 16384 characters")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()
	txc := tx.Client()

	original, err := txc.TicketComment.Get(ctx, commentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting comment: %w", err)
	}

	// Walk to the head of the supersession chain so an edit of an
	// already-edited comment extends the chain instead of forking it. The
	// visited set guards against a corrupted cycle.
	visited := map[string]bool{original.ID: true}
	for original.SupercededByID != nil {
		next, err := txc.TicketComment.Get(ctx, *original.SupercededByID)
		if err != nil {
			if ent.IsNotFound(err) {
				break
			}
			return nil, fmt.Errorf("walking supersession chain: %w", err)
		}
		if visited[next.ID] {
			return nil, fmt.Errorf("supersession cycle at comment %s", next.ID)
		}
		visited[next.ID] = true
		original = next
	}

	sc, err := loadTicketScope(ctx, txc, original.TicketID)
	if err != nil {
		return nil, err
	}

	authenticity := original.Authenticity
	if actor.ID != original.SubmitterID {
		authenticity = "edited_by_other"
	}
	replacement, err := txc.TicketComment.Create().
		SetID(uuid.NewString()).
		SetTicketID(original.TicketID).
		SetSubmitterID(original.SubmitterID).
		SetText(text).
		SetAuthenticity(authenticity).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating replacement comment: %w", err)
	}
	if err := txc.TicketComment.UpdateOneID(original.ID).
		SetSupercededByID(replacement.ID).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("superseding comment: %w", err)
	}

	latest, err := txc.Event.Query().
		Where(event.CommentIDEQ(original.ID)).
		Order(ent.Desc(event.FieldCreatedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("finding comment event: %w", err)
	}
	if latest != nil {
		if err := txc.Event.UpdateOneID(latest.ID).
			SetCommentID(replacement.ID).
			SetEventTypes(latest.EventTypes | int(models.EventTypeCommentUpdated)).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("re-pointing comment event: %w", err)
		}
	}

	if !sc.tracker.ImportInProgress {
		if err := txc.Ticket.UpdateOneID(sc.ticket.ID).SetUpdatedAt(time.Now()).Exec(ctx); err != nil {
			return nil, fmt.Errorf("touching ticket: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing edit: %w", err)
	}
	return replacement, nil
}

// GetTicketByID fetches a ticket by primary id.
func (s *LifecycleService) GetTicketByID(ctx context.Context, ticketID string) (*ent.Ticket, error) {
	t, err := s.client.Ticket.Get(ctx, ticketID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting ticket: %w", err)
	}
	return t, nil
}

// GetComment fetches a comment by id, for callers gating an edit.
func (s *LifecycleService) GetComment(ctx context.Context, commentID string) (*ent.TicketComment, error) {
	c, err := s.client.TicketComment.Get(ctx, commentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting comment: %w", err)
	}
	return c, nil
}

// Assign adds a participant to the ticket's assignees. Idempotent: a
// second call with the same pair changes nothing and emits no second
// event or email.
func (s *LifecycleService) Assign(ctx context.Context, actor *ent.Participant, ticketID, assigneeParticipantID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()
	txc := tx.Client()

	sc, err := loadTicketScope(ctx, txc, ticketID)
	if err != nil {
		return err
	}
	assignee, err := txc.Participant.Get(ctx, assigneeParticipantID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("getting assignee: %w", err)
	}

	exists, err := txc.TicketAssignee.Query().
		Where(ticketassignee.TicketIDEQ(ticketID), ticketassignee.AssigneeIDEQ(assigneeParticipantID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("checking assignment: %w", err)
	}
	if exists {
		return nil
	}

	if err := txc.TicketAssignee.Create().
		SetID(uuid.NewString()).
		SetTicketID(ticketID).
		SetAssigneeID(assigneeParticipantID).
		SetAssignedByID(actor.ID).
		Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return nil // raced another identical assignment
		}
		return fmt.Errorf("creating assignment: %w", err)
	}

	ev, err := txc.Event.Create().
		SetID(uuid.NewString()).
		SetTicketID(ticketID).
		SetEventTypes(int(models.EventTypeAssignedUser)).
		SetActorID(assigneeParticipantID).
		SetByParticipantID(actor.ID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("creating assignment event: %w", err)
	}

	subs := &SubscriptionService{client: txc}
	if assignee.UserID != nil {
		if err := subs.NotifyEvent(ctx, ev.ID, []string{*assignee.UserID}); err != nil {
			return err
		}
	}

	var mails []pendingMail
	if assignee.ID != actor.ID {
		if addr, ok := participantAddress(ctx, txc, assignee); ok {
			actorName := participantDisplayName(ctx, txc, actor)
			mails = append(mails, pendingMail{eventID: ev.ID, env: mail.Envelope{
				From:            fmt.Sprintf("%s <%s>", actorName, s.cfg.NotifyFrom),
				To:              addr,
				Subject:         mail.ReplySubject(sc.ref, sc.ticket.ScopedID, sc.ticket.Title),
				MessageID:       fmt.Sprintf("<%s@%s>", uuid.NewString(), s.cfg.PostingDomain),
				InReplyTo:       mail.TicketMessageID(s.cfg.PostingDomain, sc.ref, sc.ticket.ScopedID),
				ReplyTo:         mail.PostingAddress(s.cfg.PostingDomain, sc.ref, sc.ticket.ScopedID),
				ListUnsubscribe: mail.TicketUnsubscribe(s.cfg.PostingDomain, sc.ref, sc.ticket.ScopedID),
				Body:            fmt.Sprintf("You were assigned to %s#%d by %s.\n\n%s", sc.ref, sc.ticket.ScopedID, actorName, sc.url(s.cfg.Origin)),
			}})
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing assignment: %w", err)
	}

	hooks := []pendingHook{
		{eventID: ev.ID, scope: webhook.ScopeTracker, scopeID: sc.tracker.ID, payload: webhook.Payload{Event: "event:create", Body: models.EventResponse{Event: ev}}},
		{eventID: ev.ID, scope: webhook.ScopeTicket, scopeID: ticketID, payload: webhook.Payload{Event: "event:create", Body: models.EventResponse{Event: ev}}},
	}
	stampHooks(hooks)
	s.flush(ctx, mails, hooks)
	return nil
}

// Unassign removes a participant from the ticket's assignees. A no-op if
// the assignment doesn't exist.
func (s *LifecycleService) Unassign(ctx context.Context, actor *ent.Participant, ticketID, assigneeParticipantID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()
	txc := tx.Client()

	sc, err := loadTicketScope(ctx, txc, ticketID)
	if err != nil {
		return err
	}

	n, err := txc.TicketAssignee.Delete().
		Where(ticketassignee.TicketIDEQ(ticketID), ticketassignee.AssigneeIDEQ(assigneeParticipantID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("removing assignment: %w", err)
	}
	if n == 0 {
		return nil
	}

	ev, err := txc.Event.Create().
		SetID(uuid.NewString()).
		SetTicketID(ticketID).
		SetEventTypes(int(models.EventTypeUnassignedUser)).
		SetActorID(assigneeParticipantID).
		SetByParticipantID(actor.ID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("creating unassignment event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing unassignment: %w", err)
	}

	hooks := []pendingHook{
		{eventID: ev.ID, scope: webhook.ScopeTracker, scopeID: sc.tracker.ID, payload: webhook.Payload{Event: "event:create", Body: models.EventResponse{Event: ev}}},
		{eventID: ev.ID, scope: webhook.ScopeTicket, scopeID: ticketID, payload: webhook.Payload{Event: "event:create", Body: models.EventResponse{Event: ev}}},
	}
	stampHooks(hooks)
	s.flush(ctx, nil, hooks)
	return nil
}

// SetLabels replaces the ticket's label set with names, diff-based: each
// newly-applied label yields a label_added event, each removed one a
// label_removed event. Unknown label names are a validation error.
func (s *LifecycleService) SetLabels(ctx context.Context, actor *ent.Participant, ticketID string, names []string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()
	txc := tx.Client()

	sc, err := loadTicketScope(ctx, txc, ticketID)
	if err != nil {
		return err
	}

	labels := &LabelService{client: txc}
	wanted := make(map[string]string, len(names)) // label id → name
	for _, name := range names {
		l, err := labels.ByName(ctx, sc.tracker.ID, name)
		if err != nil {
			return err
		}
		wanted[l.ID] = name
	}

	current, err := txc.TicketLabel.Query().
		Where(ticketlabel.TicketIDEQ(ticketID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("querying ticket labels: %w", err)
	}
	currentIDs := make(map[string]bool, len(current))
	for _, tl := range current {
		currentIDs[tl.LabelID] = true
	}

	var events []*ent.Event
	for labelID := range wanted {
		if currentIDs[labelID] {
			continue
		}
		if err := txc.TicketLabel.Create().
			SetID(uuid.NewString()).
			SetTicketID(ticketID).
			SetLabelID(labelID).
			SetAppliedByID(actor.ID).
			Exec(ctx); err != nil {
			return fmt.Errorf("applying label: %w", err)
		}
		ev, err := txc.Event.Create().
			SetID(uuid.NewString()).
			SetTicketID(ticketID).
			SetEventTypes(int(models.EventTypeLabelAdded)).
			SetActorID(actor.ID).
			SetLabelID(labelID).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("creating label event: %w", err)
		}
		events = append(events, ev)
	}
	for _, tl := range current {
		if _, keep := wanted[tl.LabelID]; keep {
			continue
		}
		if err := txc.TicketLabel.DeleteOneID(tl.ID).Exec(ctx); err != nil {
			return fmt.Errorf("removing label: %w", err)
		}
		ev, err := txc.Event.Create().
			SetID(uuid.NewString()).
			SetTicketID(ticketID).
			SetEventTypes(int(models.EventTypeLabelRemoved)).
			SetActorID(actor.ID).
			SetLabelID(tl.LabelID).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("creating label event: %w", err)
		}
		events = append(events, ev)
	}

	if len(events) == 0 {
		return nil
	}

	if !sc.tracker.ImportInProgress {
		if err := txc.Ticket.UpdateOneID(ticketID).SetUpdatedAt(time.Now()).Exec(ctx); err != nil {
			return fmt.Errorf("touching ticket: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing label changes: %w", err)
	}

	var hooks []pendingHook
	for _, ev := range events {
		hooks = append(hooks,
			pendingHook{eventID: ev.ID, scope: webhook.ScopeTracker, scopeID: sc.tracker.ID, payload: webhook.Payload{Event: "event:create", Body: models.EventResponse{Event: ev}}},
			pendingHook{eventID: ev.ID, scope: webhook.ScopeTicket, scopeID: ticketID, payload: webhook.Payload{Event: "event:create", Body: models.EventResponse{Event: ev}}},
		)
	}
	stampHooks(hooks)
	s.flush(ctx, nil, hooks)
	return nil
}

// UpdateTicket edits a ticket's own fields (title/description). created
// is honored only for import-style writes by the tracker owner; the
// handler passes nil otherwise.
func (s *LifecycleService) UpdateTicket(ctx context.Context, actor *ent.Participant, ticketID string, req models.UpdateTicketRequest, created *time.Time) (*ent.Ticket, error) {
	if req.Title != nil {
		if n := utf8.RuneCountInString(*req.Title); n < 3 || n > 2048 {
			return nil, NewValidationError("title", "must be between 3 and 2048 characters")
		}
	}
	if req.Description != nil && utf8.RuneCountInString(*req.Description) > 16384 {
		return nil, NewValidationError("description", "must not exceed 16384 characters")
	}

	sc, err := loadTicketScope(ctx, s.client, ticketID)
	if err != nil {
		return nil, err
	}

	update := s.client.Ticket.UpdateOneID(ticketID)
	if req.Title != nil {
		update = update.SetTitle(*req.Title)
	}
	if req.Description != nil {
		update = update.SetDescription(*req.Description)
	}
	if created != nil {
		update = update.SetCreatedAt(*created)
	}
	if sc.tracker.ImportInProgress {
		update = update.SetUpdatedAt(sc.ticket.UpdatedAt)
	}
	t, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating ticket: %w", err)
	}
	return t, nil
}

// GetTicket fetches a ticket by its tracker-scoped id.
func (s *LifecycleService) GetTicket(ctx context.Context, trackerID string, scopedID int) (*ent.Ticket, error) {
	t, err := s.client.Ticket.Query().
		Where(ticket.TrackerIDEQ(trackerID), ticket.ScopedIDEQ(scopedID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting ticket: %w", err)
	}
	return t, nil
}

// ListEvents returns a page of a ticket's history, oldest first, with a
// key-based cursor: pass the Cursor of the previous page (an event id) to
// continue after it. An unknown or foreign cursor starts from the top.
func (s *LifecycleService) ListEvents(ctx context.Context, ticketID, cursor string, limit int) (*models.EventListResponse, error) {
	if limit <= 0 {
		limit = 50
	}

	q := s.client.Event.Query().Where(event.TicketIDEQ(ticketID))
	if cursor != "" {
		after, err := s.client.Event.Get(ctx, cursor)
		if err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("resolving cursor: %w", err)
		}
		if after != nil && after.TicketID == ticketID {
			q = q.Where(event.Or(
				event.CreatedAtGT(after.CreatedAt),
				event.And(event.CreatedAtEQ(after.CreatedAt), event.IDGT(after.ID)),
			))
		}
	}

	events, err := q.
		Order(ent.Asc(event.FieldCreatedAt), ent.Asc(event.FieldID)).
		Limit(limit + 1).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	resp := &models.EventListResponse{Events: events}
	if len(events) > limit {
		resp.Events = events[:limit]
		resp.Cursor = events[limit-1].ID
	}
	return resp, nil
}

// TicketForPostingAddress resolves an inbound mail's recipient address
// ("~owner/name/N@posting-domain") to the ticket a reply posts to, for
// the mail gateway to pair with Apply(..., FromEmail: true).
func (s *LifecycleService) TicketForPostingAddress(ctx context.Context, addr string) (*ent.Ticket, error) {
	ownerUsername, trackerName, scopedID, ok := mail.ParsePostingAddress(s.cfg.PostingDomain, addr)
	if !ok {
		return nil, NewValidationError("address", "not a recognized posting address")
	}
	owner, err := s.client.User.Query().Where(user.UsernameEQ(ownerUsername)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("resolving posting address owner: %w", err)
	}
	tr, err := s.client.Tracker.Query().
		Where(tracker.OwnerIDEQ(owner.ID), tracker.NameEQ(trackerName)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("resolving posting address tracker: %w", err)
	}
	return s.GetTicket(ctx, tr.ID, scopedID)
}

// Search parses the query DSL, resolves its identity terms, and runs the
// resulting filter against the tracker's tickets. viewer is nil for an
// anonymous caller, which makes submitter:me / assigned:me match nothing.
func (s *LifecycleService) Search(ctx context.Context, viewer *ent.User, trackerID, query string, limit, offset int) (*models.TicketListResponse, error) {
	q, err := search.Parse(query)
	if err != nil {
		return nil, NewValidationError("search", err.Error())
	}
	if limit <= 0 {
		limit = 25
	}

	bind := search.Bindings{ParticipantsByUsername: map[string]string{}}
	if viewer != nil {
		participants := &ParticipantService{client: s.client}
		p, err := participants.Resolve(ctx, models.ParticipantRef{Variant: models.ParticipantVariantUser, UserID: viewer.ID})
		if err != nil {
			return nil, err
		}
		bind.ViewerParticipantID = p.ID
	}
	for _, username := range q.Usernames() {
		u, err := s.client.User.Query().Where(user.UsernameEQ(username)).Only(ctx)
		if ent.IsNotFound(err) {
			continue // unknown username matches nothing
		}
		if err != nil {
			return nil, fmt.Errorf("resolving username: %w", err)
		}
		participants := &ParticipantService{client: s.client}
		p, err := participants.Resolve(ctx, models.ParticipantRef{Variant: models.ParticipantVariantUser, UserID: u.ID})
		if err != nil {
			return nil, err
		}
		bind.ParticipantsByUsername[username] = p.ID
	}

	tickets, err := search.BuildTicketQuery(s.client, trackerID, q, bind).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("searching tickets: %w", err)
	}
	return &models.TicketListResponse{Tickets: tickets}, nil
}
