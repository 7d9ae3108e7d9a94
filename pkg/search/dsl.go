package search

import (
	"fmt"
	"strings"
)

// statusAliases: "open" covers every status except resolved, "closed" is
// exactly resolved.
var statusAliases = map[string][]string{
	"open":   {"reported", "confirmed", "in_progress", "pending"},
	"closed": {"resolved"},
}

// knownStatuses lets a bare status:<name> term validate directly against
// one of the five TicketStatus values.
var knownStatuses = map[string]bool{
	"reported": true, "confirmed": true, "in_progress": true, "pending": true, "resolved": true,
}

var sortFields = map[string]bool{
	"created": true, "updated": true, "comments": true,
}

// InvalidTermError is the user-visible error for a query term that names
// an unknown key, or a known key with a value outside its domain.
type InvalidTermError struct {
	Message string
}

func (e *InvalidTermError) Error() string { return e.Message }

func invalidTermf(format string, args ...any) error {
	return &InvalidTermError{Message: fmt.Sprintf(format, args...)}
}

// Filter is one predicate of a parsed query. Key is one of "status",
// "submitter", "assigned", "label", "no", or "text" for free-text terms.
// Status filters carry already-expanded concrete status names (open/closed
// aliases resolved at parse time). "status:any" produces no filter at all.
type Filter struct {
	Key    string
	Value  string
	Negate bool
}

// Query is the parsed form of a search string: a flat conjunction of
// filters plus a sort order. Defaults are already applied: a query with
// no status term gets the open statuses, a query with no sort term is
// sorted by updated, descending.
type Query struct {
	Filters []Filter
	Sort    string
	SortAsc bool
}

// Parse tokenizes query and validates its terms. Unknown keys and
// out-of-domain values for known keys are user errors ("Invalid search
// term: ...", "Invalid status: ..."); free text never errors.
func Parse(query string) (*Query, error) {
	q := &Query{Sort: "updated"}
	statusSeen := false

	for _, term := range Terms(query) {
		switch term.Property {
		case "status":
			statusSeen = true
			v := strings.ToLower(term.Value)
			switch {
			case v == "any":
				// No filter; shows open and closed alike.
			case statusAliases[v] != nil:
				for _, s := range statusAliases[v] {
					q.Filters = append(q.Filters, Filter{Key: "status", Value: s, Negate: term.Negate})
				}
			case knownStatuses[v]:
				q.Filters = append(q.Filters, Filter{Key: "status", Value: v, Negate: term.Negate})
			default:
				return nil, invalidTermf("Invalid status: %s", term.Value)
			}
		case "submitter", "assigned":
			q.Filters = append(q.Filters, Filter{
				Key:    term.Property,
				Value:  strings.TrimPrefix(term.Value, "~"),
				Negate: term.Negate,
			})
		case "label":
			q.Filters = append(q.Filters, Filter{Key: "label", Value: term.Value, Negate: term.Negate})
		case "no":
			switch term.Value {
			case "assignee", "label":
				q.Filters = append(q.Filters, Filter{Key: "no", Value: term.Value, Negate: term.Negate})
			default:
				return nil, invalidTermf("Invalid search term: no:%s", term.Value)
			}
		case "sort", "rsort":
			v := strings.ToLower(term.Value)
			if !sortFields[v] {
				return nil, invalidTermf("Invalid sort field: %s", term.Value)
			}
			q.Sort = v
			q.SortAsc = term.Property == "rsort"
		case "":
			if term.Value != "" {
				q.Filters = append(q.Filters, Filter{Key: "text", Value: term.Value})
			}
		default:
			return nil, invalidTermf("Invalid search term: %s", term.Property)
		}
	}

	if !statusSeen {
		for _, s := range statusAliases["open"] {
			q.Filters = append(q.Filters, Filter{Key: "status", Value: s})
		}
	}

	return q, nil
}
