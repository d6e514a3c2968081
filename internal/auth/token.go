package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrEmailRequired is returned by Issue when the identity payload carries no
// email.
var ErrEmailRequired = errors.New("identity email required")

// TokenManager handles issuing and validating JWT tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttlMinutes int) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &TokenManager{secret: []byte(secret), ttl: time.Duration(ttlMinutes) * time.Minute}
}

// Claims is the decoded token payload. Identity carries whatever the caller
// put into the token at issuance; Email is always present.
type Claims struct {
	Email    string
	Identity jwt.MapClaims
}

// Issue signs the given identity payload. The payload must carry a non-empty
// email; expiry and issue time are set by the manager.
func (tm *TokenManager) Issue(identity map[string]any) (string, time.Time, error) {
	email, _ := identity["email"].(string)
	if email == "" {
		return "", time.Time{}, ErrEmailRequired
	}

	expiresAt := time.Now().Add(tm.ttl)
	claims := jwt.MapClaims{}
	for key, val := range identity {
		claims[key] = val
	}
	claims["exp"] = jwt.NewNumericDate(expiresAt)
	claims["iat"] = jwt.NewNumericDate(time.Now())

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Parse validates signature and expiry and returns the decoded claims.
func (tm *TokenManager) Parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	email, _ := mapClaims["email"].(string)
	if email == "" {
		return nil, errors.New("token missing email claim")
	}
	return &Claims{Email: email, Identity: mapClaims}, nil
}
