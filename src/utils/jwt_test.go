package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitorTokenRoundTrip(t *testing.T) {
	secret := []byte("s3cret")
	tok, err := GenerateVisitorToken(secret, "v-123", time.Hour)
	require.NoError(t, err)

	claims, err := ParseVisitorToken(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "v-123", claims.VisitorID)
}

func TestVisitorTokenRejected(t *testing.T) {
	secret := []byte("s3cret")
	tok, err := GenerateVisitorToken(secret, "v-123", time.Hour)
	require.NoError(t, err)

	_, err = ParseVisitorToken([]byte("other"), tok)
	assert.Error(t, err)

	expired, err := GenerateVisitorToken(secret, "v-123", -time.Minute)
	require.NoError(t, err)
	_, err = ParseVisitorToken(secret, expired)
	assert.Error(t, err)

	_, err = ParseVisitorToken(secret, "")
	assert.Error(t, err)
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("a@b.co"))
	assert.False(t, IsEmail("a@b"))
	assert.False(t, IsEmail("ab.co"))
	assert.False(t, IsEmail(" "))
	assert.False(t, IsEmail(""))
}
