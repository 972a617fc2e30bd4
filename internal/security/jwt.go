// Package security — проверка access-токенов, выпущенных auth-сервисом (RS256).
package security

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cwrk-planet/geo-room-service/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrInvalidSubject = errors.New("invalid token subject")
)

type VerifierConfig struct {
	Issuer    string
	Audience  string
	ClockSkew time.Duration
}

// JWTVerifier — только публичный ключ: токены выпускает auth-сервис.
type JWTVerifier struct {
	public *rsa.PublicKey
	parser *jwt.Parser
}

func NewJWTVerifier(public *rsa.PublicKey, cfg VerifierConfig, now func() time.Time) *JWTVerifier {
	if now == nil {
		now = time.Now
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(cfg.ClockSkew),
		jwt.WithTimeFunc(now),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &JWTVerifier{public: public, parser: jwt.NewParser(opts...)}
}

// Verify проверяет подпись, exp/nbf (с допуском clockSkew), iss/aud и возвращает sub.
func (v *JWTVerifier) Verify(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := v.parser.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return v.public, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}

	sub := strings.TrimSpace(claims.Subject)
	if sub == "" {
		return "", ErrInvalidSubject
	}
	return sub, nil
}

func LoadRSAPublicKeyFromPEM(path string) (*rsa.PublicKey, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	pub, err := jwt.ParseRSAPublicKeyFromPEM(b)
	if err != nil {
		return nil, err
	}

	return pub, nil
}

// Authenticator определяет пользователя запроса.
// С верификатором требует bearer-токен; без него доверяет user id от gateway.
type Authenticator struct {
	verifier *JWTVerifier
}

func NewAuthenticator(v *JWTVerifier) *Authenticator {
	return &Authenticator{verifier: v}
}

func (a *Authenticator) RequiresToken() bool { return a != nil && a.verifier != nil }

// Resolve возвращает user id. Ошибки оборачивают domain.ErrUnauthenticated.
func (a *Authenticator) Resolve(token, trustedUserID string) (string, error) {
	if a.RequiresToken() {
		token = strings.TrimSpace(token)
		if token == "" {
			return "", fmt.Errorf("%w: missing bearer token", domain.ErrUnauthenticated)
		}
		sub, err := a.verifier.Verify(token)
		if err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
		}
		return sub, nil
	}

	uid := strings.TrimSpace(trustedUserID)
	if uid == "" {
		return "", fmt.Errorf("%w: missing user id", domain.ErrUnauthenticated)
	}
	return uid, nil
}

// BearerToken вынимает токен из заголовка "Authorization: Bearer ...".
func BearerToken(header string) string {
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
