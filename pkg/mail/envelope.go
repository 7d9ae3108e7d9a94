// Package mail builds outbound notification email envelopes and defines
// the enqueue contract the lifecycle engine calls post-commit.
package mail

import (
	"fmt"
	"strconv"
	"strings"
)

// Envelope is a fully-addressed outbound email, ready for the outbox.
// Threading headers let mail clients group a ticket's notifications into
// a single conversation: the first email about a ticket carries the
// ticket's root Message-ID, and every later one points In-Reply-To at it.
type Envelope struct {
	From            string
	To              string
	Subject         string
	MessageID       string
	InReplyTo       string
	ReplyTo         string
	ListUnsubscribe string
	Body            string
}

// TrackerRef is the canonical "~owner/name" form of a tracker, the prefix
// of ticket subjects, message ids, and posting addresses.
func TrackerRef(ownerUsername, trackerName string) string {
	return fmt.Sprintf("~%s/%s", ownerUsername, trackerName)
}

// TicketSubject is the subject of a ticket's initial notification email.
// Replies prepend "Re: " via ReplySubject.
func TicketSubject(trackerRef string, scopedID int, title string) string {
	return fmt.Sprintf("%s#%d: %s", trackerRef, scopedID, title)
}

// ReplySubject is the subject of every notification about a ticket after
// the first.
func ReplySubject(trackerRef string, scopedID int, title string) string {
	return "Re: " + TicketSubject(trackerRef, scopedID, title)
}

// TicketMessageID derives the root Message-ID of a ticket's notification
// thread. It is a pure function of the ticket's coordinates, so every
// notification about the same ticket threads together regardless of which
// event produced it.
func TicketMessageID(postingDomain, trackerRef string, scopedID int) string {
	return fmt.Sprintf("<%s/%d@%s>", trackerRef, scopedID, postingDomain)
}

// PostingAddress is the Reply-To address for a ticket's notifications: a
// posting-domain address encoding (tracker_ref, scoped_id) so the inbound
// mail gateway can route a reply back to the same ticket.
func PostingAddress(postingDomain, trackerRef string, scopedID int) string {
	return fmt.Sprintf("%s/%d@%s", trackerRef, scopedID, postingDomain)
}

// ParsePostingAddress inverts PostingAddress: given an inbound mail's
// recipient address, it recovers the tracker owner, tracker name, and
// scoped ticket id the reply routes to. ok is false for addresses not in
// the "~owner/name/N@postingDomain" shape.
func ParsePostingAddress(postingDomain, addr string) (ownerUsername, trackerName string, scopedID int, ok bool) {
	local, domain, found := strings.Cut(addr, "@")
	if !found || domain != postingDomain {
		return "", "", 0, false
	}
	parts := strings.Split(local, "/")
	if len(parts) != 3 || !strings.HasPrefix(parts[0], "~") {
		return "", "", 0, false
	}
	id, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", "", 0, false
	}
	return strings.TrimPrefix(parts[0], "~"), parts[1], id, true
}

// TicketUnsubscribe is the List-Unsubscribe value for a notification sent
// to a ticket-scope subscriber.
func TicketUnsubscribe(postingDomain, trackerRef string, scopedID int) string {
	return fmt.Sprintf("<mailto:%s/%d/unsubscribe@%s>", trackerRef, scopedID, postingDomain)
}

// TrackerUnsubscribe is the List-Unsubscribe value for a notification
// sent to a tracker-scope subscriber.
func TrackerUnsubscribe(postingDomain, trackerRef string) string {
	return fmt.Sprintf("<mailto:%s/unsubscribe@%s>", trackerRef, postingDomain)
}
