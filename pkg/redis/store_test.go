package redis

import (
	"testing"

	"github.com/dante-securestack/pom-mono-yauaa/pkg/field"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	m := field.NewMap()
	m.Set(field.AgentName, "Firefox")
	m.Set(field.AgentVersion, "91.0")
	result := m.Freeze("some-ua", []field.Field{field.AgentName, field.AgentVersion})

	payload, err := encode(result)
	require.NoError(t, err)

	decoded, ok := decode(payload)
	require.True(t, ok)
	assert.Equal(t, "some-ua", decoded.Raw())
	assert.Equal(t, "Firefox", decoded.Get(field.AgentName))
	assert.Equal(t, "91.0", decoded.Get(field.AgentVersion))
}

func TestDecodeMalformedPayload(t *testing.T) {
	_, ok := decode([]byte("not json"))
	assert.False(t, ok)
}
