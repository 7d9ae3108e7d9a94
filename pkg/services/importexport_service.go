package services

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/sourcehut/todosrht-core/ent"
	"github.com/sourcehut/todosrht-core/ent/event"
	"github.com/sourcehut/todosrht-core/ent/label"
	"github.com/sourcehut/todosrht-core/ent/ticket"
	"github.com/sourcehut/todosrht-core/ent/ticketcomment"
	"github.com/sourcehut/todosrht-core/ent/ticketlabel"
	"github.com/sourcehut/todosrht-core/pkg/config"
	"github.com/sourcehut/todosrht-core/pkg/mail"
	"github.com/sourcehut/todosrht-core/pkg/models"
	"github.com/sourcehut/todosrht-core/pkg/webhook"
)

// ErrImport marks a dump-level failure: unreadable gzip, malformed JSON,
// or a missing top-level section. Per-ticket problems are logged and
// skipped instead.
var ErrImport = errors.New("import failed")

// ImportExportService produces and replays signed tracker dumps. Export
// writes a gzipped JSON document; Import replays one into an existing
// tracker, preserving provenance: signatures are re-verified and each
// row's authenticity recorded as authentic, unauthenticated, or tampered.
type ImportExportService struct {
	client *ent.Client
	cfg    *config.Config
}

// NewImportExportService creates a new ImportExportService.
func NewImportExportService(client *ent.Client, cfg *config.Config) *ImportExportService {
	return &ImportExportService{client: client, cfg: cfg}
}

func (s *ImportExportService) sign(payload any) string {
	if s.cfg.SigningKey == "" {
		return ""
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	return webhook.Sign([]byte(s.cfg.SigningKey), raw)
}

func (s *ImportExportService) verify(payload any, signature string) bool {
	if s.cfg.SigningKey == "" {
		return false
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return false
	}
	return webhook.Verify([]byte(s.cfg.SigningKey), raw, signature)
}

func (s *ImportExportService) exportParticipant(ctx context.Context, p *ent.Participant) models.ExportedParticipant {
	switch {
	case p.UserID != nil:
		username := ""
		if u, err := s.client.User.Get(ctx, *p.UserID); err == nil {
			username = u.Username
		}
		return models.ExportedParticipant{
			Variant:       models.ParticipantVariantUser,
			Name:          username,
			CanonicalName: "~" + username,
		}
	case p.EmailAddress != nil:
		name := ""
		if p.EmailName != nil {
			name = *p.EmailName
		}
		return models.ExportedParticipant{
			Variant: models.ParticipantVariantEmail,
			Name:    name,
			Address: *p.EmailAddress,
		}
	default:
		ep := models.ExportedParticipant{Variant: models.ParticipantVariantExternal}
		if p.ExternalID != nil {
			ep.ExternalID = *p.ExternalID
		}
		if p.ExternalURL != nil {
			ep.ExternalURL = *p.ExternalURL
		}
		return ep
	}
}

// Export writes trackerID's full dump — metadata, labels, tickets with
// their event histories — as gzipped JSON to w. Tickets appear in
// scoped-id order. Tickets submitted by local users and comment events
// authored by local users carry detached signatures over the canonical
// payload subsets, so an importer can verify they were not altered in
// transit.
func (s *ImportExportService) Export(ctx context.Context, trackerID string, w io.Writer) error {
	tr, err := s.client.Tracker.Get(ctx, trackerID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("getting tracker: %w", err)
	}
	owner, err := s.client.User.Get(ctx, tr.OwnerID)
	if err != nil {
		return fmt.Errorf("getting owner: %w", err)
	}
	ref := mail.TrackerRef(owner.Username, tr.Name)

	labels, err := s.client.Label.Query().
		Where(label.TrackerIDEQ(trackerID)).
		Order(ent.Asc(label.FieldName)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("listing labels: %w", err)
	}
	labelNames := make(map[string]string, len(labels)) // id → name
	manifest := models.ExportManifest{
		Owner: models.ExportedParticipant{
			Variant:       models.ParticipantVariantUser,
			Name:          owner.Username,
			CanonicalName: "~" + owner.Username,
		},
		Name:          tr.Name,
		Description:   tr.Description,
		Visibility:    models.TrackerVisibility(tr.Visibility),
		DefaultAccess: models.Capability(tr.DefaultAccess),
		Labels:        make([]models.ExportedLabel, 0, len(labels)),
		Tickets:       []models.ExportedTicket{},
	}
	for _, l := range labels {
		labelNames[l.ID] = l.Name
		manifest.Labels = append(manifest.Labels, models.ExportedLabel{
			Name: l.Name, Color: l.Color, TextColor: l.TextColor,
		})
	}

	tickets, err := s.client.Ticket.Query().
		Where(ticket.TrackerIDEQ(trackerID)).
		Order(ent.Asc(ticket.FieldScopedID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("listing tickets: %w", err)
	}
	scopedIDs := make(map[string]int, len(tickets)) // ticket id → scoped id
	for _, t := range tickets {
		scopedIDs[t.ID] = t.ScopedID
	}

	for _, t := range tickets {
		td, err := s.exportTicket(ctx, ref, t, labelNames, scopedIDs)
		if err != nil {
			return err
		}
		manifest.Tickets = append(manifest.Tickets, *td)
	}

	gz := gzip.NewWriter(w)
	if err := json.NewEncoder(gz).Encode(manifest); err != nil {
		return fmt.Errorf("encoding dump: %w", err)
	}
	return gz.Close()
}

func (s *ImportExportService) exportTicket(ctx context.Context, trackerRef string, t *ent.Ticket, labelNames map[string]string, scopedIDs map[string]int) (*models.ExportedTicket, error) {
	submitter, err := s.client.Participant.Get(ctx, t.SubmitterID)
	if err != nil {
		return nil, fmt.Errorf("getting submitter: %w", err)
	}

	td := &models.ExportedTicket{
		ID:          t.ScopedID,
		Ref:         fmt.Sprintf("%s#%d", trackerRef, t.ScopedID),
		Submitter:   s.exportParticipant(ctx, submitter),
		Title:       t.Title,
		Description: t.Description,
		Status:      models.TicketStatus(t.Status),
		Resolution:  models.TicketResolution(t.Resolution),
		Labels:      []string{},
		Created:     t.CreatedAt,
		Updated:     t.UpdatedAt,
		Upstream:    s.cfg.Origin,
		Events:      []models.ExportedEvent{},
	}

	applied, err := s.client.TicketLabel.Query().
		Where(ticketlabel.TicketIDEQ(t.ID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing ticket labels: %w", err)
	}
	for _, tl := range applied {
		if name, ok := labelNames[tl.LabelID]; ok {
			td.Labels = append(td.Labels, name)
		}
	}

	if submitter.UserID != nil {
		td.Signature = s.sign(models.TicketSigPayload{
			TrackerID:   trackerRef,
			TicketID:    t.ScopedID,
			Subject:     t.Title,
			Body:        t.Description,
			SubmitterID: td.Submitter.CanonicalName,
			Upstream:    s.cfg.Origin,
		})
	}

	events, err := s.client.Event.Query().
		Where(event.TicketIDEQ(t.ID)).
		Order(ent.Asc(event.FieldCreatedAt), ent.Asc(event.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	for _, ev := range events {
		ed, err := s.exportEvent(ctx, trackerRef, t, ev, labelNames, scopedIDs)
		if err != nil {
			return nil, err
		}
		td.Events = append(td.Events, *ed)
	}
	return td, nil
}

func (s *ImportExportService) exportEvent(ctx context.Context, trackerRef string, t *ent.Ticket, ev *ent.Event, labelNames map[string]string, scopedIDs map[string]int) (*models.ExportedEvent, error) {
	actor, err := s.client.Participant.Get(ctx, ev.ActorID)
	if err != nil {
		return nil, fmt.Errorf("getting event actor: %w", err)
	}

	ed := &models.ExportedEvent{
		EventTypes:  models.EventType(ev.EventTypes).Names(),
		Participant: s.exportParticipant(ctx, actor),
		Created:     ev.CreatedAt,
		Upstream:    s.cfg.Origin,
	}
	if ev.OldStatus != nil {
		ed.OldStatus = *ev.OldStatus
	}
	if ev.NewStatus != nil {
		ed.NewStatus = *ev.NewStatus
	}
	if ev.OldResolution != nil {
		ed.OldResolution = *ev.OldResolution
	}
	if ev.NewResolution != nil {
		ed.NewResolution = *ev.NewResolution
	}
	if ev.LabelID != nil {
		ed.Label = labelNames[*ev.LabelID]
	}
	if ev.ByParticipantID != nil {
		by, err := s.client.Participant.Get(ctx, *ev.ByParticipantID)
		if err == nil {
			ep := s.exportParticipant(ctx, by)
			ed.ByParticipant = &ep
		}
	}
	if ev.FromTicketID != nil {
		ed.FromTicket = scopedIDs[*ev.FromTicketID]
	}

	if ev.CommentID != nil {
		c, err := s.client.TicketComment.Get(ctx, *ev.CommentID)
		if err != nil {
			return nil, fmt.Errorf("getting event comment: %w", err)
		}
		author, err := s.client.Participant.Get(ctx, c.SubmitterID)
		if err != nil {
			return nil, fmt.Errorf("getting comment author: %w", err)
		}
		exportedAuthor := s.exportParticipant(ctx, author)
		ed.Comment = &models.ExportedComment{
			Submitter: exportedAuthor,
			Text:      c.Text,
			Created:   c.CreatedAt,
		}
		if author.UserID != nil {
			ed.Signature = s.sign(models.CommentSigPayload{
				TrackerID: trackerRef,
				TicketID:  t.ScopedID,
				Comment:   c.Text,
				AuthorID:  exportedAuthor.CanonicalName,
				Upstream:  s.cfg.Origin,
			})
		}
	}
	return ed, nil
}

// importParticipant maps a dump participant to a live Participant row.
// "user" entries whose upstream is our own origin resolve to the local
// account of that name; everything else — foreign users included —
// becomes an external participant so its provenance stays visible.
func (s *ImportExportService) importParticipant(ctx context.Context, txc *ent.Client, ep models.ExportedParticipant, upstream string) (*ent.Participant, error) {
	participants := &ParticipantService{client: txc}
	switch ep.Variant {
	case models.ParticipantVariantUser:
		if upstream == s.cfg.Origin {
			users := &UserService{client: txc}
			u, err := users.ByUsername(ctx, ep.Name)
			if err == nil {
				return participants.Resolve(ctx, models.ParticipantRef{Variant: models.ParticipantVariantUser, UserID: u.ID})
			}
			if !errors.Is(err, ErrNotFound) {
				return nil, err
			}
		}
		return participants.Resolve(ctx, models.ParticipantRef{
			Variant:     models.ParticipantVariantExternal,
			ExternalID:  ep.CanonicalName,
			ExternalURL: upstream + "/" + ep.CanonicalName,
		})
	case models.ParticipantVariantEmail:
		return participants.Resolve(ctx, models.ParticipantRef{
			Variant:   models.ParticipantVariantEmail,
			Email:     ep.Address,
			EmailName: ep.Name,
		})
	case models.ParticipantVariantExternal:
		return participants.Resolve(ctx, models.ParticipantRef{
			Variant:     models.ParticipantVariantExternal,
			ExternalID:  ep.ExternalID,
			ExternalURL: ep.ExternalURL,
		})
	default:
		return nil, fmt.Errorf("%w: unknown participant type %q", ErrImport, ep.Variant)
	}
}

// Import replays a dump from r into trackerID. The tracker's
// import_in_progress flag masks partial state for the duration and is
// cleared on the way out even when the replay fails. Per-ticket problems
// (missing fields, unknown event type names) abort that ticket and move
// on; only a dump-level failure aborts the transaction.
func (s *ImportExportService) Import(ctx context.Context, trackerID string, r io.Reader) error {
	if err := s.client.Tracker.UpdateOneID(trackerID).
		SetImportInProgress(true).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("flagging import: %w", err)
	}
	defer func() {
		// The flag clears even on failure or cancellation, so the import
		// is always observable as finished.
		clearCtx := context.WithoutCancel(ctx)
		if err := s.client.Tracker.UpdateOneID(trackerID).
			SetImportInProgress(false).
			Exec(clearCtx); err != nil {
			slog.Error("clearing import flag", "tracker_id", trackerID, "error", err)
		}
	}()

	gz, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("%w: reading gzip stream: %v", ErrImport, err)
	}
	var manifest models.ExportManifest
	if err := json.NewDecoder(gz).Decode(&manifest); err != nil {
		return fmt.Errorf("%w: decoding dump: %v", ErrImport, err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()
	txc := tx.Client()

	tr, err := txc.Tracker.Get(ctx, trackerID)
	if err != nil {
		return fmt.Errorf("getting tracker: %w", err)
	}

	labelIDs := make(map[string]string, len(manifest.Labels)) // name → id
	existing, err := txc.Label.Query().Where(label.TrackerIDEQ(trackerID)).All(ctx)
	if err != nil {
		return fmt.Errorf("listing labels: %w", err)
	}
	for _, l := range existing {
		labelIDs[l.Name] = l.ID
	}
	for _, ld := range manifest.Labels {
		if _, ok := labelIDs[ld.Name]; ok {
			continue
		}
		l, err := txc.Label.Create().
			SetID(uuid.NewString()).
			SetTrackerID(trackerID).
			SetName(ld.Name).
			SetColor(ld.Color).
			SetTextColor(ld.TextColor).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("importing label %q: %w", ld.Name, err)
		}
		labelIDs[ld.Name] = l.ID
	}

	ownerParticipant, err := (&ParticipantService{client: txc}).Resolve(ctx, models.ParticipantRef{
		Variant: models.ParticipantVariantUser,
		UserID:  tr.OwnerID,
	})
	if err != nil {
		return err
	}

	sort.Slice(manifest.Tickets, func(i, j int) bool {
		return manifest.Tickets[i].ID < manifest.Tickets[j].ID
	})

	importedScoped := make(map[int]string) // scoped id → ticket id
	preexisting, err := txc.Ticket.Query().Where(ticket.TrackerIDEQ(trackerID)).All(ctx)
	if err != nil {
		return fmt.Errorf("listing tickets: %w", err)
	}
	for _, t := range preexisting {
		importedScoped[t.ScopedID] = t.ID
	}

	maxScoped := tr.NextTicketID - 1
	for i := range manifest.Tickets {
		td := &manifest.Tickets[i]
		if err := s.importTicket(ctx, txc, tr, ownerParticipant.ID, td, labelIDs, importedScoped); err != nil {
			if errors.Is(err, ErrImport) {
				slog.Warn("skipping ticket in dump", "scoped_id", td.ID, "error", err)
				continue
			}
			return err
		}
		if td.ID > maxScoped {
			maxScoped = td.ID
		}
	}

	if maxScoped >= tr.NextTicketID {
		if err := txc.Tracker.UpdateOneID(trackerID).
			SetNextTicketID(maxScoped + 1).
			SetUpdatedAt(tr.UpdatedAt).
			Exec(ctx); err != nil {
			return fmt.Errorf("advancing ticket counter: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	return nil
}

func trackerRefOfTicketRef(ref string) string {
	if i := strings.LastIndex(ref, "#"); i >= 0 {
		return ref[:i]
	}
	return ref
}

func (s *ImportExportService) importTicket(ctx context.Context, txc *ent.Client, tr *ent.Tracker, ownerParticipantID string, td *models.ExportedTicket, labelIDs map[string]string, importedScoped map[int]string) error {
	if td.ID <= 0 || td.Title == "" {
		return fmt.Errorf("%w: ticket missing id or title", ErrImport)
	}
	if !td.Status.IsValid() || !td.Resolution.IsValid() {
		return fmt.Errorf("%w: ticket %d has unknown status/resolution", ErrImport, td.ID)
	}
	if _, ok := importedScoped[td.ID]; ok {
		return fmt.Errorf("%w: ticket %d already exists", ErrImport, td.ID)
	}

	// Validate every event up front so a bad one aborts the whole ticket
	// before anything is written.
	for _, ed := range td.Events {
		if len(ed.EventTypes) == 0 {
			return fmt.Errorf("%w: ticket %d has an event with no type", ErrImport, td.ID)
		}
		for _, name := range ed.EventTypes {
			if eventTypeByName(name) == models.EventTypeNone {
				return fmt.Errorf("%w: ticket %d has unknown event type %q", ErrImport, td.ID, name)
			}
		}
	}

	submitter, err := s.importParticipant(ctx, txc, td.Submitter, td.Upstream)
	if err != nil {
		return err
	}

	authenticity := ticket.AuthenticityUnauthenticated
	if td.Signature != "" {
		authenticity = ticket.AuthenticityTampered
		if td.Upstream == s.cfg.Origin && submitter.UserID != nil &&
			s.verify(models.TicketSigPayload{
				TrackerID:   trackerRefOfTicketRef(td.Ref),
				TicketID:    td.ID,
				Subject:     td.Title,
				Body:        td.Description,
				SubmitterID: td.Submitter.CanonicalName,
				Upstream:    td.Upstream,
			}, td.Signature) {
			authenticity = ticket.AuthenticityAuthentic
		}
	}

	t, err := txc.Ticket.Create().
		SetID(uuid.NewString()).
		SetTrackerID(tr.ID).
		SetScopedID(td.ID).
		SetSubmitterID(submitter.ID).
		SetTitle(td.Title).
		SetDescription(td.Description).
		SetStatus(ticket.Status(td.Status)).
		SetResolution(ticket.Resolution(td.Resolution)).
		SetAuthenticity(authenticity).
		SetCreatedAt(td.Created).
		SetUpdatedAt(td.Updated).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("creating imported ticket %d: %w", td.ID, err)
	}

	for _, name := range td.Labels {
		labelID, ok := labelIDs[name]
		if !ok {
			continue
		}
		if err := txc.TicketLabel.Create().
			SetID(uuid.NewString()).
			SetTicketID(t.ID).
			SetLabelID(labelID).
			SetAppliedByID(ownerParticipantID).
			Exec(ctx); err != nil {
			return fmt.Errorf("applying imported label: %w", err)
		}
	}

	commentCount := 0
	for _, ed := range td.Events {
		var bits models.EventType
		for _, name := range ed.EventTypes {
			bits = bits.Union(eventTypeByName(name))
		}

		// user_mentioned is a derived notion; it regenerates if the text
		// is ever re-parsed, so dumps never replay it.
		if bits.Has(models.EventTypeUserMentioned) {
			continue
		}
		if bits.Has(models.EventTypeTicketMentioned) {
			// Only replayable once the referenced ticket is present.
			if _, ok := importedScoped[ed.FromTicket]; !ok {
				continue
			}
		}

		actor, err := s.importParticipant(ctx, txc, ed.Participant, ed.Upstream)
		if err != nil {
			return err
		}

		create := txc.Event.Create().
			SetID(uuid.NewString()).
			SetTicketID(t.ID).
			SetEventTypes(int(bits)).
			SetActorID(actor.ID).
			SetCreatedAt(ed.Created)
		if ed.OldStatus != "" {
			create = create.SetOldStatus(ed.OldStatus).SetNewStatus(ed.NewStatus).
				SetOldResolution(ed.OldResolution).SetNewResolution(ed.NewResolution)
		}
		if ed.Label != "" {
			labelID, ok := labelIDs[ed.Label]
			if !ok {
				continue
			}
			create = create.SetLabelID(labelID)
		}
		if ed.ByParticipant != nil {
			by, err := s.importParticipant(ctx, txc, *ed.ByParticipant, ed.Upstream)
			if err != nil {
				return err
			}
			create = create.SetByParticipantID(by.ID)
		}
		if bits.Has(models.EventTypeTicketMentioned) {
			create = create.SetFromTicketID(importedScoped[ed.FromTicket])
		}

		if bits.Has(models.EventTypeComment) && ed.Comment != nil {
			c, err := s.importComment(ctx, txc, t, td, ed)
			if err != nil {
				return err
			}
			create = create.SetCommentID(c.ID)
			commentCount++
		}

		if err := create.Exec(ctx); err != nil {
			return fmt.Errorf("creating imported event: %w", err)
		}
	}

	if commentCount > 0 {
		if err := txc.Ticket.UpdateOneID(t.ID).
			SetCommentCount(commentCount).
			SetUpdatedAt(td.Updated).
			Exec(ctx); err != nil {
			return fmt.Errorf("setting comment count: %w", err)
		}
	}

	importedScoped[td.ID] = t.ID
	return nil
}

func (s *ImportExportService) importComment(ctx context.Context, txc *ent.Client, t *ent.Ticket, td *models.ExportedTicket, ed models.ExportedEvent) (*ent.TicketComment, error) {
	author, err := s.importParticipant(ctx, txc, ed.Comment.Submitter, ed.Upstream)
	if err != nil {
		return nil, err
	}

	authenticity := ticketcomment.AuthenticityUnauthenticated
	if ed.Signature != "" {
		authenticity = ticketcomment.AuthenticityTampered
		if ed.Upstream == s.cfg.Origin && author.UserID != nil &&
			s.verify(models.CommentSigPayload{
				TrackerID: trackerRefOfTicketRef(td.Ref),
				TicketID:  td.ID,
				Comment:   ed.Comment.Text,
				AuthorID:  ed.Comment.Submitter.CanonicalName,
				Upstream:  ed.Upstream,
			}, ed.Signature) {
			authenticity = ticketcomment.AuthenticityAuthentic
		}
	}

	c, err := txc.TicketComment.Create().
		SetID(uuid.NewString()).
		SetTicketID(t.ID).
		SetSubmitterID(author.ID).
		SetText(ed.Comment.Text).
		SetAuthenticity(authenticity).
		SetCreatedAt(ed.Comment.Created).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating imported comment: %w", err)
	}
	return c, nil
}

// eventTypeByName maps a dump's event type name back to its bit.
func eventTypeByName(name string) models.EventType {
	switch name {
	case "created":
		return models.EventTypeCreated
	case "comment":
		return models.EventTypeComment
	case "comment_updated":
		return models.EventTypeCommentUpdated
	case "status_change":
		return models.EventTypeStatusChange
	case "label_added":
		return models.EventTypeLabelAdded
	case "label_removed":
		return models.EventTypeLabelRemoved
	case "assigned_user":
		return models.EventTypeAssignedUser
	case "unassigned_user":
		return models.EventTypeUnassignedUser
	case "user_mentioned":
		return models.EventTypeUserMentioned
	case "ticket_mentioned":
		return models.EventTypeTicketMentioned
	default:
		return models.EventTypeNone
	}
}
