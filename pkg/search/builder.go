package search

import (
	"entgo.io/ent/dialect/sql"

	"github.com/sourcehut/todosrht-core/ent"
	"github.com/sourcehut/todosrht-core/ent/label"
	"github.com/sourcehut/todosrht-core/ent/predicate"
	"github.com/sourcehut/todosrht-core/ent/ticket"
	"github.com/sourcehut/todosrht-core/ent/ticketassignee"
	"github.com/sourcehut/todosrht-core/ent/ticketcomment"
	"github.com/sourcehut/todosrht-core/ent/ticketlabel"
)

// Bindings resolves the identity-valued terms of a Query to participant
// ids. The caller (pkg/services) performs the lookups before building,
// keeping this package free of its own I/O.
type Bindings struct {
	// ViewerParticipantID backs "submitter:me"/"assigned:me". Empty means
	// the viewer is anonymous, and "me" terms match nothing.
	ViewerParticipantID string

	// ParticipantsByUsername maps the usernames appearing in
	// submitter:/assigned: terms to participant ids. A username with no
	// entry matches nothing.
	ParticipantsByUsername map[string]string
}

func (b Bindings) participantID(value string) (string, bool) {
	if value == "me" {
		return b.ViewerParticipantID, b.ViewerParticipantID != ""
	}
	id, ok := b.ParticipantsByUsername[value]
	return id, ok
}

// matchNothing is the predicate for terms that cannot match any ticket
// (an unknown username, "me" with an anonymous viewer).
func matchNothing() predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		s.Where(sql.False())
	})
}

// BuildTicketQuery turns a parsed Query into an ent query scoped to one
// tracker. Free-text terms match title, description, or any comment via
// case-insensitive substring (ILIKE, accelerated by the pg_trgm indexes
// pkg/database.CreateTrigramIndexes creates) — this is deliberately not a
// ranked full-text search.
func BuildTicketQuery(client *ent.Client, trackerID string, q *Query, bind Bindings) *ent.TicketQuery {
	query := client.Ticket.Query().Where(ticket.TrackerID(trackerID))

	var statusIn, statusNotIn []ticket.Status
	for _, f := range q.Filters {
		switch f.Key {
		case "status":
			if f.Negate {
				statusNotIn = append(statusNotIn, ticket.Status(f.Value))
			} else {
				statusIn = append(statusIn, ticket.Status(f.Value))
			}
		case "submitter":
			id, ok := bind.participantID(f.Value)
			if !ok {
				query = query.Where(matchNothing())
				continue
			}
			if f.Negate {
				query = query.Where(ticket.SubmitterIDNEQ(id))
			} else {
				query = query.Where(ticket.SubmitterID(id))
			}
		case "assigned":
			id, ok := bind.participantID(f.Value)
			if !ok {
				query = query.Where(matchNothing())
				continue
			}
			pred := ticket.HasAssigneesWith(ticketassignee.AssigneeID(id))
			if f.Negate {
				pred = ticket.Not(pred)
			}
			query = query.Where(pred)
		case "label":
			pred := ticket.HasLabelsWith(ticketlabel.HasLabelWith(label.NameEQ(f.Value)))
			if f.Negate {
				pred = ticket.Not(pred)
			}
			query = query.Where(pred)
		case "no":
			var pred predicate.Ticket
			if f.Value == "assignee" {
				pred = ticket.Not(ticket.HasAssignees())
			} else {
				pred = ticket.Not(ticket.HasLabels())
			}
			if f.Negate {
				pred = ticket.Not(pred)
			}
			query = query.Where(pred)
		case "text":
			query = query.Where(ticket.Or(
				ticket.TitleContainsFold(f.Value),
				ticket.DescriptionContainsFold(f.Value),
				ticket.HasCommentsWith(ticketcomment.TextContainsFold(f.Value)),
			))
		}
	}

	if len(statusIn) > 0 {
		query = query.Where(ticket.StatusIn(statusIn...))
	}
	if len(statusNotIn) > 0 {
		query = query.Where(ticket.StatusNotIn(statusNotIn...))
	}

	orderField := ticket.FieldUpdatedAt
	switch q.Sort {
	case "created":
		orderField = ticket.FieldCreatedAt
	case "comments":
		orderField = ticket.FieldCommentCount
	}
	if q.SortAsc {
		query = query.Order(ent.Asc(orderField))
	} else {
		query = query.Order(ent.Desc(orderField))
	}

	return query
}

// Usernames returns the distinct non-"me" usernames referenced by
// submitter:/assigned: terms, for the caller to resolve into Bindings.
func (q *Query) Usernames() []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range q.Filters {
		if f.Key != "submitter" && f.Key != "assigned" {
			continue
		}
		if f.Value == "me" || seen[f.Value] {
			continue
		}
		seen[f.Value] = true
		out = append(out, f.Value)
	}
	return out
}
