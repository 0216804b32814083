package jwt

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestSignAndParse(t *testing.T) {
	token, err := Sign("u1", "s1", time.Hour)
	assert.Equal(t, nil, err)

	claims, err := Parse(token)
	assert.Equal(t, nil, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "s1", claims.SessionID)
}

func TestParseExpiredToken(t *testing.T) {
	token, err := Sign("u1", "s1", -time.Minute)
	assert.Equal(t, nil, err)

	_, err = Parse(token)
	assert.NotEqual(t, nil, err)
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse("not-a-token")
	assert.NotEqual(t, nil, err)
}
