package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilityBitset(t *testing.T) {
	caps := CapabilityBrowse | CapabilityComment

	assert.True(t, caps.Has(CapabilityBrowse))
	assert.True(t, caps.Has(CapabilityBrowse|CapabilityComment))
	assert.False(t, caps.Has(CapabilityTriage))
	assert.False(t, caps.Has(CapabilityBrowse|CapabilityTriage))

	assert.Equal(t, caps|CapabilityTriage, caps.Union(CapabilityTriage))
	assert.Equal(t, CapabilityComment, caps.Without(CapabilityBrowse))

	assert.Equal(t, "none", CapabilityNone.String())
	assert.Equal(t, "browse,comment", caps.String())
	assert.True(t, AllCapabilities.Has(DefaultCapabilities))
}

func TestEventTypeBitset(t *testing.T) {
	bits := EventTypeComment.Union(EventTypeStatusChange)

	assert.True(t, bits.Has(EventTypeComment))
	assert.True(t, bits.Has(EventTypeStatusChange))
	assert.False(t, bits.Has(EventTypeCreated))

	assert.Equal(t, []string{"comment", "status_change"}, bits.Names())
	assert.Equal(t, "comment,status_change", bits.String())
	assert.Equal(t, "none", EventTypeNone.String())
}
