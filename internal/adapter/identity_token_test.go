package adapter

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/layer-quickstart/models"
)

func TestIdentityProvider_Issue(t *testing.T) {
	p, err := newIdentityProvider(testProviderID, testKeyID, testKey)
	require.NoError(t, err)

	issuedAt := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return issuedAt }

	token, err := p.issue("Simulator2", testNonce)
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	claims := models.IdentityClaims{}
	parsed, err := jwt.ParseWithClaims(token.String(), &claims, func(*jwt.Token) (any, error) {
		return []byte(testKey), nil
	}, jwt.WithTimeFunc(func() time.Time { return issuedAt.Add(time.Minute) }))
	require.NoError(t, err)

	assert.Equal(t, "HS256", parsed.Header["alg"])
	assert.Equal(t, testKeyID, parsed.Header["kid"])
	assert.Equal(t, identityTokenContentType, parsed.Header["cty"])
	assert.Equal(t, testProviderID, claims.Issuer)
	assert.Equal(t, "Simulator2", claims.Principal)
	assert.Equal(t, testNonce, claims.Nonce)
	assert.Equal(t, issuedAt.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, issuedAt.Add(identityTokenTTL).Unix(), claims.ExpiresAt.Unix())
}

func TestIdentityProvider_Errors(t *testing.T) {
	_, err := newIdentityProvider(testProviderID, testKeyID, "")
	assert.ErrorIs(t, err, ErrMissingIdentityKey)

	p, err := newIdentityProvider(testProviderID, "", testKey)
	require.NoError(t, err)

	_, err = p.issue("Device", "")
	assert.ErrorIs(t, err, ErrEmptyNonce)

	token, err := p.issue("Device", testNonce)
	require.NoError(t, err)
	_, hasKid := token.Header["kid"]
	assert.False(t, hasKid, "kid header is omitted without a key ID")
}

func TestIdentityProvider_WrongKeyRejected(t *testing.T) {
	p, err := newIdentityProvider(testProviderID, testKeyID, testKey)
	require.NoError(t, err)

	token, err := p.issue("Device", testNonce)
	require.NoError(t, err)

	_, err = jwt.Parse(token.String(), func(*jwt.Token) (any, error) {
		return []byte("another-key"), nil
	})
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}
