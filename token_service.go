package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	goerrors "github.com/goliatone/go-errors"
)

// DefaultTokenExpiration is the canonical validity window for minted tokens
const DefaultTokenExpiration = 24 * time.Hour

// TokenServiceImpl implements the TokenService interface
type TokenServiceImpl struct {
	signingKey []byte
	expiration time.Duration
	issuer     string
	logger     Logger
}

// NewTokenService creates a new TokenService instance. The signing key is
// held read-only for the service's lifetime; the service is safe for
// concurrent use.
func NewTokenService(signingKey []byte, expiration time.Duration, issuer string, logger Logger) TokenService {
	if expiration <= 0 {
		expiration = DefaultTokenExpiration
	}
	if logger == nil {
		logger = defLogger{}
	}
	return &TokenServiceImpl{
		signingKey: signingKey,
		expiration: expiration,
		issuer:     issuer,
		logger:     logger,
	}
}

// Generate mints an HS512-signed token for the subject carrying the given
// authority strings, valid from now until now plus the configured window.
func (ts *TokenServiceImpl) Generate(subject string, authorities []string) (string, error) {
	if subject == "" {
		return "", goerrors.New("token subject must not be empty", goerrors.CategoryBadInput)
	}

	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    ts.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.expiration)),
		},
		Roles: authorities,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	signed, err := token.SignedString(ts.signingKey)
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to sign JWT")
	}

	return signed, nil
}

// Validate parses and verifies a token string, returning its claims.
// Tampered or structurally broken tokens surface as ErrTokenMalformed,
// expired ones as ErrTokenExpired; nothing escapes as a panic.
func (ts *TokenServiceImpl) Validate(tokenString string) (*Claims, error) {
	parserOptions := make([]jwt.ParserOption, 0, 1)
	if ts.issuer != "" {
		parserOptions = append(parserOptions, jwt.WithIssuer(ts.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			ts.logger.Error("TokenService validate encountered unexpected signing method: %v", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	}, parserOptions...)

	if err != nil {
		if goerrors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, goerrors.Wrap(err, ErrTokenMalformed.Category, ErrTokenMalformed.Message).
			WithTextCode(ErrTokenMalformed.TextCode)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	ts.logger.Error("TokenService validate could not decode claims")
	return nil, ErrTokenMalformed
}

// IsValid combines Validate with a subject equality check. Any failure,
// including parse errors, reads as invalid rather than propagating.
func (ts *TokenServiceImpl) IsValid(tokenString, expectedSubject string) bool {
	claims, err := ts.Validate(tokenString)
	if err != nil {
		return false
	}
	return claims.Subject() == expectedSubject
}
