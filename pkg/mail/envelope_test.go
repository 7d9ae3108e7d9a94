package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjects(t *testing.T) {
	ref := TrackerRef("foo", "bar")
	assert.Equal(t, "~foo/bar", ref)
	assert.Equal(t, "~foo/bar#1: I have a problem", TicketSubject(ref, 1, "I have a problem"))
	assert.Equal(t, "Re: ~foo/bar#1: I have a problem", ReplySubject(ref, 1, "I have a problem"))
}

func TestThreadingHeaders(t *testing.T) {
	ref := TrackerRef("foo", "bar")
	assert.Equal(t, "<~foo/bar/1@todo.example.org>", TicketMessageID("todo.example.org", ref, 1))
	assert.Equal(t, "~foo/bar/1@todo.example.org", PostingAddress("todo.example.org", ref, 1))
	assert.Equal(t, "<mailto:~foo/bar/1/unsubscribe@todo.example.org>", TicketUnsubscribe("todo.example.org", ref, 1))
	assert.Equal(t, "<mailto:~foo/bar/unsubscribe@todo.example.org>", TrackerUnsubscribe("todo.example.org", ref))
}

func TestParsePostingAddress(t *testing.T) {
	t.Run("round trips PostingAddress", func(t *testing.T) {
		addr := PostingAddress("todo.example.org", TrackerRef("foo", "bar"), 42)
		owner, name, id, ok := ParsePostingAddress("todo.example.org", addr)
		require.True(t, ok)
		assert.Equal(t, "foo", owner)
		assert.Equal(t, "bar", name)
		assert.Equal(t, 42, id)
	})

	t.Run("rejects foreign domains", func(t *testing.T) {
		_, _, _, ok := ParsePostingAddress("todo.example.org", "~foo/bar/1@elsewhere.org")
		assert.False(t, ok)
	})

	t.Run("rejects malformed locals", func(t *testing.T) {
		for _, addr := range []string{
			"foo/bar/1@todo.example.org",
			"~foo/bar@todo.example.org",
			"~foo/bar/x@todo.example.org",
			"nonsense",
		} {
			_, _, _, ok := ParsePostingAddress("todo.example.org", addr)
			assert.False(t, ok, addr)
		}
	})
}
