// Package webhook builds outbound webhook payloads and defines the
// enqueue contract the lifecycle engine calls post-commit.
package webhook

// Scope identifies which of the three subscription scopes a webhook was
// registered at, determining which event names it may fire for.
type Scope string

const (
	ScopeUser    Scope = "user"
	ScopeTracker Scope = "tracker"
	ScopeTicket  Scope = "ticket"
)

// AllowedEvents lists the event names each scope may subscribe to,
// grounded on the three CeleryWebhook subclasses' `events` lists.
var AllowedEvents = map[Scope][]string{
	ScopeUser:    {"tracker:create", "tracker:update", "tracker:delete", "ticket:create"},
	ScopeTracker: {"label:create", "label:delete", "ticket:create", "event:create"},
	ScopeTicket:  {"ticket:update", "event:create"},
}

// IsAllowed reports whether eventName may be subscribed to at scope.
func IsAllowed(scope Scope, eventName string) bool {
	for _, e := range AllowedEvents[scope] {
		if e == eventName {
			return true
		}
	}
	return false
}

// Payload is the JSON body delivered to a subscribed URL.
type Payload struct {
	Event     string `json:"event"`
	Timestamp string `json:"timestamp"`
	Body      any    `json:"body"`
}
