package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractUserMentions(t *testing.T) {
	t.Run("plain mentions", func(t *testing.T) {
		assert.Equal(t, []string{"u1", "u2"}, ExtractUserMentions("~u1 and ~u2 see #2"))
	})

	t.Run("tilde in a URL path does not mention", func(t *testing.T) {
		got := ExtractUserMentions("~user1 and https://todo.example.org/~user2/tracker")
		assert.Equal(t, []string{"user1"}, got)
	})

	t.Run("qualified ticket reference head is not a user mention", func(t *testing.T) {
		assert.Nil(t, ExtractUserMentions("~user/tracker#4"))
	})

	t.Run("parenthesized mention", func(t *testing.T) {
		assert.Equal(t, []string{"jane"}, ExtractUserMentions("(~jane has context)"))
	})

	t.Run("start of string", func(t *testing.T) {
		assert.Equal(t, []string{"jane"}, ExtractUserMentions("~jane: ping"))
	})

	t.Run("mid-word tilde does not mention", func(t *testing.T) {
		assert.Nil(t, ExtractUserMentions("foo~bar"))
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		assert.Equal(t, []string{"jane"}, ExtractUserMentions("~jane ~jane"))
	})
}

func TestExtractTicketMentions(t *testing.T) {
	t.Run("bare reference resolves against the current tracker", func(t *testing.T) {
		got := ExtractTicketMentions("see #2 for details")
		assert.Equal(t, []TicketMention{{ScopedID: 2}}, got)
	})

	t.Run("tracker-qualified reference", func(t *testing.T) {
		got := ExtractTicketMentions("see otherproject#17")
		assert.Equal(t, []TicketMention{{TrackerName: "otherproject", ScopedID: 17}}, got)
	})

	t.Run("fully qualified reference", func(t *testing.T) {
		got := ExtractTicketMentions("see ~jane/gizmo#3")
		assert.Equal(t, []TicketMention{{OwnerUsername: "jane", TrackerName: "gizmo", ScopedID: 3}}, got)
	})

	t.Run("qualified reference does not also match its tail", func(t *testing.T) {
		got := ExtractTicketMentions("~jane/gizmo#3")
		assert.Equal(t, []TicketMention{{OwnerUsername: "jane", TrackerName: "gizmo", ScopedID: 3}}, got)
	})

	t.Run("mid-word hash does not mention", func(t *testing.T) {
		assert.Nil(t, ExtractTicketMentions("see https://example.org/page#2anchor"))
	})

	t.Run("mixed references", func(t *testing.T) {
		got := ExtractTicketMentions("dupe of #1, related to gizmo#2 and ~jane/widget#3")
		assert.ElementsMatch(t, []TicketMention{
			{ScopedID: 1},
			{TrackerName: "gizmo", ScopedID: 2},
			{OwnerUsername: "jane", TrackerName: "widget", ScopedID: 3},
		}, got)
	})
}
