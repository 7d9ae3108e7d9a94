package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignVerify(t *testing.T) {
	secret := []byte("super secret")
	body := []byte(`{"event":"ticket:create"}`)

	sig := Sign(secret, body)
	assert.True(t, Verify(secret, body, sig))

	t.Run("rejects altered body", func(t *testing.T) {
		assert.False(t, Verify(secret, []byte(`{"event":"ticket:delete"}`), sig))
	})

	t.Run("rejects wrong key", func(t *testing.T) {
		assert.False(t, Verify([]byte("other"), body, sig))
	})

	t.Run("rejects non-hex signature", func(t *testing.T) {
		assert.False(t, Verify(secret, body, "zz not hex"))
	})
}

func TestIsAllowed(t *testing.T) {
	assert.True(t, IsAllowed(ScopeUser, "tracker:create"))
	assert.True(t, IsAllowed(ScopeTracker, "event:create"))
	assert.True(t, IsAllowed(ScopeTicket, "ticket:update"))
	assert.False(t, IsAllowed(ScopeTicket, "tracker:create"))
	assert.False(t, IsAllowed(ScopeUser, "event:create"))
}
