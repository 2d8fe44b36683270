package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Rejection reasons surfaced by Verify. Checked in order: structure,
// signature, expiry.
var (
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenSignature = errors.New("token signature is invalid")
	ErrTokenExpired   = errors.New("token has expired")
)

// Claims is the identity encoded in a bearer token.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenManager mints and verifies signed bearer tokens. Tokens are
// stateless: there is no server-side session record and no revocation
// before natural expiry.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	leeway time.Duration
}

// NewTokenManager creates a manager. leeway is the clock-skew tolerance
// applied during verification; the default configuration is 0.
func NewTokenManager(secret, issuer string, ttl, leeway time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		leeway: leeway,
	}
}

// Mint issues an HS256-signed token identifying email, valid for the
// configured TTL from now.
func (t *TokenManager) Mint(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		Email: email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks structural validity, signature, and expiry, and returns the
// decoded claims. A token whose expiry equals the current instant is
// rejected: validity requires now to be strictly before exp (plus leeway).
func (t *TokenManager) Verify(token string) (Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(t.leeway),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrTokenSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrTokenExpired
		default:
			return Claims{}, ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return Claims{}, ErrTokenSignature
	}
	return *claims, nil
}
