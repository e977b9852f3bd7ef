package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssueAndParseRoundtrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 10*24*time.Hour)

	issued, err := tm.Issue(map[string]any{"email": "alice@example.com", "name": "Alice"})
	require.NoError(t, err)
	require.NotEmpty(t, issued.Value)
	require.NotEmpty(t, issued.ID)

	identity, err := tm.Parse(issued.Value)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", identity.Email)
	assert.Equal(t, issued.ID, identity.TokenID)
	assert.Equal(t, "Alice", identity.Claims["name"])
	assert.WithinDuration(t, issued.ExpiresAt, identity.ExpiresAt, time.Second)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 10*24*time.Hour)
	verifier := NewTokenManager("secret-b", 10*24*time.Hour)

	issued, err := issuer.Issue(map[string]any{"email": "alice@example.com"})
	require.NoError(t, err)

	_, err = verifier.Parse(issued.Value)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 10*24*time.Hour)

	_, err := tm.Parse("not-a-token")
	assert.Error(t, err)
}

func TestExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tm := NewTokenManager("test-secret", 10*24*time.Hour)
	tm.now = fixedClock(issuedAt)

	issued, err := tm.Issue(map[string]any{"email": "alice@example.com"})
	require.NoError(t, err)

	tm.now = fixedClock(issuedAt.Add(9 * 24 * time.Hour))
	_, err = tm.Parse(issued.Value)
	assert.NoError(t, err, "token must still verify one day before expiry")

	tm.now = fixedClock(issuedAt.Add(11 * 24 * time.Hour))
	_, err = tm.Parse(issued.Value)
	assert.Error(t, err, "token must be rejected one day after expiry")
}

func TestPayloadCannotOverrideReservedClaims(t *testing.T) {
	issuedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tm := NewTokenManager("test-secret", 10*24*time.Hour)
	tm.now = fixedClock(issuedAt)

	farFuture := issuedAt.Add(365 * 24 * time.Hour).Unix()
	issued, err := tm.Issue(map[string]any{"email": "alice@example.com", "exp": farFuture, "jti": "attacker-chosen"})
	require.NoError(t, err)
	require.NotEqual(t, "attacker-chosen", issued.ID)

	identity, err := tm.Parse(issued.Value)
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(10*24*time.Hour).Unix(), identity.ExpiresAt.Unix())
}
