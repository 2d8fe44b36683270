package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(ttl, leeway time.Duration) *TokenManager {
	return NewTokenManager("test-secret", "gamehub-test", ttl, leeway)
}

func TestMintAndVerify_ClaimsRoundTrip(t *testing.T) {
	t.Parallel()

	tm := newTestManager(time.Hour, 0)
	token, err := tm.Mint("a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.Equal(t, "gamehub-test", claims.Issuer)

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, time.Hour, ttl)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	tm := newTestManager(-time.Minute, 0)
	token, err := tm.Mint("a@x.com")
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	// A zero TTL puts exp at the mint instant; by the time Verify runs the
	// current time is at or past exp, which must reject.
	tm := newTestManager(0, 0)
	token, err := tm.Mint("a@x.com")
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_LeewayAcceptsRecentlyExpired(t *testing.T) {
	t.Parallel()

	mint := newTestManager(-time.Second, 0)
	token, err := mint.Mint("a@x.com")
	require.NoError(t, err)

	lenient := newTestManager(time.Hour, time.Minute)
	claims, err := lenient.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()

	tm := newTestManager(time.Hour, 0)
	token, err := tm.Mint("a@x.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := strings.Join([]string{parts[0], parts[1], string(sig)}, ".")

	_, err = tm.Verify(tampered)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := newTestManager(time.Hour, 0).Mint("a@x.com")
	require.NoError(t, err)

	other := NewTokenManager("another-secret", "gamehub-test", time.Hour, 0)
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	tm := newTestManager(time.Hour, 0)
	for _, input := range []string{"", "garbage", "not.a.jwt", "a.b"} {
		_, err := tm.Verify(input)
		assert.ErrorIs(t, err, ErrTokenMalformed, "input %q", input)
	}
}

func TestIdentityContext(t *testing.T) {
	t.Parallel()

	_, ok := IdentityFrom(context.Background())
	assert.False(t, ok)

	ctx := WithIdentity(context.Background(), Claims{Email: "a@x.com"})
	claims, ok := IdentityFrom(ctx)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", claims.Email)
}
