package adapter

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/layer-quickstart/models"
)

const (
	identityTokenTTL         = 10 * time.Minute
	identityTokenContentType = "layer-eit;v=1"
)

// identityProvider signs identity tokens answering the service's nonce
// challenge. The quick-start plays its own identity provider; a production
// app would ask its backend for the token instead.
type identityProvider struct {
	providerID string
	keyID      string
	key        []byte
	now        func() time.Time
}

func newIdentityProvider(providerID, keyID, key string) (*identityProvider, error) {
	if key == "" {
		return nil, ErrMissingIdentityKey
	}

	return &identityProvider{
		providerID: providerID,
		keyID:      keyID,
		key:        []byte(key),
		now:        time.Now,
	}, nil
}

// issue signs an HMAC-SHA256 identity token for userID bound to nonce.
func (p *identityProvider) issue(userID, nonce string) (models.Token, error) {
	if nonce == "" {
		return models.Token{}, ErrEmptyNonce
	}

	now := p.now()
	claims := models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.providerID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(identityTokenTTL)),
		},
		Principal: userID,
		Nonce:     nonce,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["cty"] = identityTokenContentType
	if p.keyID != "" {
		token.Header["kid"] = p.keyID
	}

	signed, err := token.SignedString(p.key)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing identity token: %w", err)
	}

	return models.Token{Token: token, SignedString: signed}, nil
}
