package services

import (
	"context"
	"regexp"
	"strconv"

	"github.com/sourcehut/todosrht-core/ent"
	"github.com/sourcehut/todosrht-core/ent/ticket"
	"github.com/sourcehut/todosrht-core/ent/tracker"
	"github.com/sourcehut/todosrht-core/ent/user"
)

// Mention patterns, precompiled once at package init.
//
// Go's RE2 has no lookbehind, so the "preceded by start-of-string,
// whitespace, or '(' and not by '~'" rule is expressed as a leading
// context group, and "not followed by '/'" (which would make the tilde
// the start of a qualified ~user/tracker#N reference) is checked against
// the byte after the match instead of a lookahead.
var (
	userMentionPattern = regexp.MustCompile(`(?:^|[\s(])~(\w+)`)

	// Ticket references, most-qualified first. Applied with the same
	// consume-and-continue strategy pkg/search.Terms uses, so the #N tail
	// of a qualified reference is never re-matched as a bare #N.
	qualifiedTicketPattern = regexp.MustCompile(`(?:^|[\s(])~(\w+)/([A-Za-z0-9_.-]+)#(\d+)\b`)
	trackerTicketPattern   = regexp.MustCompile(`(?:^|[\s(])([A-Za-z0-9_.-]+)#(\d+)\b`)
	bareTicketPattern      = regexp.MustCompile(`(?:^|[\s(])#(\d+)\b`)
)

// TicketMention is one ticket reference extracted from free text. Empty
// OwnerUsername/TrackerName mean "resolve against the mentioning text's
// own tracker" (bare #N) or "same owner, named tracker" (name#N).
type TicketMention struct {
	OwnerUsername string
	TrackerName   string
	ScopedID      int
}

// Mentions is the resolved result of parsing one body of text: the known
// users and existing tickets it references. Unresolvable references are
// dropped, never errors.
type Mentions struct {
	Users   []*ent.User
	Tickets []*ent.Ticket
}

// MentionService extracts ~user and ticket references out of ticket and
// comment bodies and resolves them against the database. Extraction
// itself is pure regex work (see the package-level Extract functions);
// this type only adds the resolving queries.
type MentionService struct {
	client *ent.Client

	// urlPattern matches this instance's canonical ticket URL form,
	// {origin}/~{user}/{tracker}/{scoped_id}, as a fourth ticket
	// reference shape.
	urlPattern *regexp.Regexp
}

// NewMentionService creates a new MentionService. origin is this
// instance's externally-visible base URL (config.Origin).
func NewMentionService(client *ent.Client, origin string) *MentionService {
	return &MentionService{
		client:     client,
		urlPattern: regexp.MustCompile(regexp.QuoteMeta(origin) + `/~(\w+)/([A-Za-z0-9_.-]+)/(\d+)\b`),
	}
}

// ExtractUserMentions returns the distinct usernames referenced as
// ~username in text, in first-occurrence order. A tilde inside a URL path
// segment has a '/' before it and therefore never matches; a tilde whose
// name is followed by '/' is the head of a qualified ticket reference and
// is likewise skipped.
func ExtractUserMentions(text string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, loc := range userMentionPattern.FindAllStringSubmatchIndex(text, -1) {
		if loc[1] < len(text) && text[loc[1]] == '/' {
			continue
		}
		username := text[loc[2]:loc[3]]
		if seen[username] {
			continue
		}
		seen[username] = true
		out = append(out, username)
	}
	return out
}

// ExtractTicketMentions returns the distinct ticket references in text:
// bare #N, name#N, and ~user/name#N. The fully-qualified canonical URL
// form is instance-specific and handled by MentionService.Parse.
func ExtractTicketMentions(text string) []TicketMention {
	return extractTicketMentions(text, nil)
}

func extractTicketMentions(text string, urlPattern *regexp.Regexp) []TicketMention {
	var out []TicketMention
	seen := make(map[TicketMention]bool)
	add := func(m TicketMention) {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}

	// Each pattern consumes its matches before the next, less qualified
	// one runs, so "~u/t#4" never also yields "t#4" or "#4".
	remaining := text
	consume := func(pattern *regexp.Regexp, fromMatch func([]string) TicketMention) {
		loc := pattern.FindStringSubmatchIndex(remaining)
		for loc != nil {
			groups := make([]string, 0, len(loc)/2)
			for i := 0; i < len(loc); i += 2 {
				groups = append(groups, remaining[loc[i]:loc[i+1]])
			}
			add(fromMatch(groups))
			remaining = remaining[:loc[0]] + remaining[loc[1]:]
			loc = pattern.FindStringSubmatchIndex(remaining)
		}
	}

	if urlPattern != nil {
		consume(urlPattern, func(g []string) TicketMention {
			return TicketMention{OwnerUsername: g[1], TrackerName: g[2], ScopedID: atoi(g[3])}
		})
	}
	consume(qualifiedTicketPattern, func(g []string) TicketMention {
		return TicketMention{OwnerUsername: g[1], TrackerName: g[2], ScopedID: atoi(g[3])}
	})
	consume(trackerTicketPattern, func(g []string) TicketMention {
		return TicketMention{TrackerName: g[1], ScopedID: atoi(g[2])}
	})
	consume(bareTicketPattern, func(g []string) TicketMention {
		return TicketMention{ScopedID: atoi(g[1])}
	})
	return out
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// Parse extracts every user and ticket reference from text and resolves
// them against the database, in the context of contextTracker (the
// tracker the text was posted to): bare #N resolves within
// contextTracker, name#N within a same-owner tracker of that name, and
// ~user/name#N / the canonical URL form fully qualified. References to
// unknown users or missing tickets are silently dropped.
func (s *MentionService) Parse(ctx context.Context, contextTracker *ent.Tracker, text string) (*Mentions, error) {
	result := &Mentions{}

	usernames := ExtractUserMentions(text)
	if len(usernames) > 0 {
		users, err := s.client.User.Query().
			Where(user.UsernameIn(usernames...)).
			All(ctx)
		if err != nil {
			return nil, err
		}
		result.Users = users
	}

	for _, m := range extractTicketMentions(text, s.urlPattern) {
		t, err := s.resolveTicketMention(ctx, contextTracker, m)
		if err != nil {
			return nil, err
		}
		if t != nil {
			result.Tickets = append(result.Tickets, t)
		}
	}
	return result, nil
}

func (s *MentionService) resolveTicketMention(ctx context.Context, contextTracker *ent.Tracker, m TicketMention) (*ent.Ticket, error) {
	trackerID := contextTracker.ID
	if m.TrackerName != "" {
		ownerID := contextTracker.OwnerID
		if m.OwnerUsername != "" {
			owner, err := s.client.User.Query().
				Where(user.UsernameEQ(m.OwnerUsername)).
				Only(ctx)
			if ent.IsNotFound(err) {
				return nil, nil
			}
			if err != nil {
				return nil, err
			}
			ownerID = owner.ID
		}
		tr, err := s.client.Tracker.Query().
			Where(tracker.OwnerIDEQ(ownerID), tracker.NameEQ(m.TrackerName)).
			Only(ctx)
		if ent.IsNotFound(err) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		trackerID = tr.ID
	}

	t, err := s.client.Ticket.Query().
		Where(ticket.TrackerIDEQ(trackerID), ticket.ScopedIDEQ(m.ScopedID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}
