package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Reserved claim names the manager always controls; caller payload
// cannot override them.
const (
	claimExpiry   = "exp"
	claimIssuedAt = "iat"
	claimTokenID  = "jti"
	claimEmail    = "email"
)

// TokenManager issues and verifies signed access tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager builds a new manager. ttl is the credential lifetime.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 10 * 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// IssuedToken is the result of signing an identity payload.
type IssuedToken struct {
	Value     string
	ID        string
	ExpiresAt time.Time
}

// Identity is the decoded credential payload attached to verified requests.
type Identity struct {
	Email     string
	TokenID   string
	ExpiresAt time.Time
	Claims    map[string]any
}

// Issue signs the caller-supplied identity payload. The payload is copied
// into the claims verbatim; it is not validated against any store.
func (tm *TokenManager) Issue(payload map[string]any) (*IssuedToken, error) {
	issuedAt := tm.now()
	expiresAt := issuedAt.Add(tm.ttl)
	tokenID := uuid.NewString()

	claims := jwt.MapClaims{}
	for key, value := range payload {
		if key == claimExpiry || key == claimIssuedAt || key == claimTokenID {
			continue
		}
		claims[key] = value
	}
	claims[claimExpiry] = jwt.NewNumericDate(expiresAt)
	claims[claimIssuedAt] = jwt.NewNumericDate(issuedAt)
	claims[claimTokenID] = tokenID

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	value, err := token.SignedString(tm.secret)
	if err != nil {
		return nil, err
	}
	return &IssuedToken{Value: value, ID: tokenID, ExpiresAt: expiresAt}, nil
}

// Parse verifies signature and expiry and returns the decoded identity.
func (tm *TokenManager) Parse(tokenStr string) (*Identity, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return tm.now() }), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}

	identity := &Identity{Claims: claims}
	if email, ok := claims[claimEmail].(string); ok {
		identity.Email = email
	}
	if tokenID, ok := claims[claimTokenID].(string); ok {
		identity.TokenID = tokenID
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		identity.ExpiresAt = exp.Time
	}
	return identity, nil
}

// TTL returns the configured credential lifetime.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}
