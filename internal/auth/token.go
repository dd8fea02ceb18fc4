package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/admitly/portal-service/internal/domain"
)

// TokenManager verifies access tokens issued by the hosted identity provider.
// It can also mint tokens with the same shared secret for development.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret, issuer string, ttlMinutes int) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &TokenManager{secret: []byte(secret), issuer: issuer, ttl: time.Duration(ttlMinutes) * time.Minute}
}

// Claims describes the JWT payload.
type Claims struct {
	Email            string           `json:"email"`
	EmailConfirmedAt *jwt.NumericDate `json:"email_confirmed_at,omitempty"`
	jwt.RegisteredClaims
}

// Identity converts verified claims into the session principal.
func (c *Claims) Identity() *domain.Identity {
	identity := &domain.Identity{ID: c.Subject, Email: c.Email}
	if c.EmailConfirmedAt != nil {
		confirmed := c.EmailConfirmedAt.Time
		identity.EmailConfirmedAt = &confirmed
	}
	return identity
}

// GenerateToken builds and signs a JWT for the subject.
func (tm *TokenManager) GenerateToken(subjectID, email string, confirmedAt *time.Time) (string, time.Time, error) {
	if _, err := uuid.Parse(subjectID); err != nil {
		return "", time.Time{}, errors.New("subject must be a uuid")
	}
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			Issuer:    tm.issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	if confirmedAt != nil {
		claims.EmailConfirmedAt = jwt.NewNumericDate(*confirmedAt)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseToken validates and returns claims.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if tm.issuer != "" {
		opts = append(opts, jwt.WithIssuer(tm.issuer))
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, errors.New("token subject is not a uuid")
	}
	return claims, nil
}
