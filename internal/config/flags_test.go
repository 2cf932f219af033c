package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NetAddress.Set ───────────────────────────────────────────────────────────

func TestNetAddress_Set_Valid(t *testing.T) {
	var addr NetAddress

	err := addr.Set("localhost:8080")

	require.NoError(t, err)
	assert.Equal(t, "localhost", addr.Host)
	assert.Equal(t, 8080, addr.Port)
}

func TestNetAddress_Set_ValidIP(t *testing.T) {
	var addr NetAddress

	err := addr.Set("127.0.0.1:9090")

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", addr.Host)
	assert.Equal(t, 9090, addr.Port)
}

func TestNetAddress_Set_EmptyHost(t *testing.T) {
	var addr NetAddress

	err := addr.Set(":8080")

	require.NoError(t, err)
	assert.Equal(t, "", addr.Host)
	assert.Equal(t, 8080, addr.Port)
}

func TestNetAddress_Set_MissingPort(t *testing.T) {
	var addr NetAddress

	err := addr.Set("localhost")

	require.Error(t, err)
}

func TestNetAddress_Set_NonNumericPort(t *testing.T) {
	var addr NetAddress

	err := addr.Set("localhost:http")

	require.Error(t, err)
}

func TestNetAddress_Set_NegativePort(t *testing.T) {
	var addr NetAddress

	err := addr.Set("localhost:-1")

	require.Error(t, err)
}

func TestNetAddress_Set_BadIP(t *testing.T) {
	var addr NetAddress

	err := addr.Set("not-an-ip:8080")

	require.Error(t, err)
}

// ── NetAddress.String ────────────────────────────────────────────────────────

func TestNetAddress_String_Zero(t *testing.T) {
	var addr NetAddress

	assert.Equal(t, "", addr.String())
}

func TestNetAddress_String_RoundTrip(t *testing.T) {
	var addr NetAddress
	require.NoError(t, addr.Set("localhost:8080"))

	assert.Equal(t, "localhost:8080", addr.String())
}
