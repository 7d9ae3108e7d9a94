package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerms(t *testing.T) {
	t.Run("splits property and free text terms", func(t *testing.T) {
		terms := Terms("label:bug foo")
		require.Len(t, terms, 2)
		assert.Equal(t, Term{Property: "label", Value: "bug"}, terms[0])
		assert.Equal(t, Term{Value: "foo"}, terms[1])
	})

	t.Run("quoted property values stay atomic", func(t *testing.T) {
		terms := Terms(`label:"needs design" crash`)
		require.Len(t, terms, 2)
		assert.Equal(t, Term{Property: "label", Value: "needs design"}, terms[0])
		assert.Equal(t, Term{Value: "crash"}, terms[1])
	})

	t.Run("quoted phrases stay atomic", func(t *testing.T) {
		terms := Terms(`"does not work"`)
		require.Len(t, terms, 1)
		assert.Equal(t, Term{Value: "does not work"}, terms[0])
	})

	t.Run("negation prefix", func(t *testing.T) {
		terms := Terms("!label:wontfix")
		require.Len(t, terms, 1)
		assert.Equal(t, Term{Property: "label", Value: "wontfix", Negate: true}, terms[0])
	})

	t.Run("tilde values survive", func(t *testing.T) {
		terms := Terms("submitter:~jane")
		require.Len(t, terms, 1)
		assert.Equal(t, Term{Property: "submitter", Value: "~jane"}, terms[0])
	})
}

func TestParse(t *testing.T) {
	t.Run("empty query defaults to open statuses sorted by updated", func(t *testing.T) {
		q, err := Parse("")
		require.NoError(t, err)
		assert.Equal(t, "updated", q.Sort)
		assert.False(t, q.SortAsc)

		var statuses []string
		for _, f := range q.Filters {
			require.Equal(t, "status", f.Key)
			statuses = append(statuses, f.Value)
		}
		assert.ElementsMatch(t, []string{"reported", "confirmed", "in_progress", "pending"}, statuses)
	})

	t.Run("status any removes the default filter", func(t *testing.T) {
		q, err := Parse("status:any")
		require.NoError(t, err)
		assert.Empty(t, q.Filters)
	})

	t.Run("status closed expands to resolved", func(t *testing.T) {
		q, err := Parse("status:closed")
		require.NoError(t, err)
		require.Len(t, q.Filters, 1)
		assert.Equal(t, Filter{Key: "status", Value: "resolved"}, q.Filters[0])
	})

	t.Run("unknown status is a user error", func(t *testing.T) {
		_, err := Parse("status:bogus")
		require.Error(t, err)
		assert.Equal(t, "Invalid status: bogus", err.Error())
	})

	t.Run("unknown key is a user error", func(t *testing.T) {
		_, err := Parse("flavor:cherry")
		require.Error(t, err)
		assert.Equal(t, "Invalid search term: flavor", err.Error())
	})

	t.Run("no accepts assignee and label only", func(t *testing.T) {
		q, err := Parse("no:label status:any")
		require.NoError(t, err)
		require.Len(t, q.Filters, 1)
		assert.Equal(t, Filter{Key: "no", Value: "label"}, q.Filters[0])

		_, err = Parse("no:milestone")
		require.Error(t, err)
	})

	t.Run("submitter strips the optional tilde", func(t *testing.T) {
		q, err := Parse("submitter:~jane status:any")
		require.NoError(t, err)
		require.Len(t, q.Filters, 1)
		assert.Equal(t, Filter{Key: "submitter", Value: "jane"}, q.Filters[0])
	})

	t.Run("submitter me stays raw for the caller to resolve", func(t *testing.T) {
		q, err := Parse("submitter:me status:any")
		require.NoError(t, err)
		require.Len(t, q.Filters, 1)
		assert.Equal(t, "me", q.Filters[0].Value)
	})

	t.Run("sort and rsort set direction", func(t *testing.T) {
		q, err := Parse("sort:comments")
		require.NoError(t, err)
		assert.Equal(t, "comments", q.Sort)
		assert.False(t, q.SortAsc)

		q, err = Parse("rsort:created")
		require.NoError(t, err)
		assert.Equal(t, "created", q.Sort)
		assert.True(t, q.SortAsc)

		_, err = Parse("sort:karma")
		require.Error(t, err)
	})

	t.Run("negated status", func(t *testing.T) {
		q, err := Parse("!status:pending")
		require.NoError(t, err)
		require.Len(t, q.Filters, 1)
		assert.Equal(t, Filter{Key: "status", Value: "pending", Negate: true}, q.Filters[0])
	})

	t.Run("free text terms pass through", func(t *testing.T) {
		q, err := Parse(`status:any segfault "on startup"`)
		require.NoError(t, err)
		var texts []string
		for _, f := range q.Filters {
			require.Equal(t, "text", f.Key)
			texts = append(texts, f.Value)
		}
		assert.ElementsMatch(t, []string{"segfault", "on startup"}, texts)
	})
}

func TestQueryUsernames(t *testing.T) {
	q, err := Parse("submitter:jane assigned:joe assigned:me status:any")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"jane", "joe"}, q.Usernames())
}
