// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"studylink/config"
	"studylink/internal/domain/entity"
	domainerrors "studylink/internal/domain/errors"
	"studylink/internal/domain/service"
	"studylink/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	claimRoles           = "roles"
	claimType            = "type"
	authoritiesDelimiter = ", "
)

// signingKey is the immutable key material of one token kind.
type signingKey struct {
	secret []byte
	ttl    time.Duration
}

// jwtService is a concrete implementation of the TokenCodec interface using HS256 JWTs.
type jwtService struct {
	keys map[entity.TokenKind]signingKey
	now  func() time.Time
}

// NewJWTService decodes the configured keys once and returns the process-wide token codec.
func NewJWTService(cfg *config.Config) (service.TokenCodec, error) {
	accessSecret, refreshSecret, err := cfg.DecodeSigningKeys()
	if err != nil {
		return nil, err
	}

	return newJWTService(
		signingKey{secret: accessSecret, ttl: cfg.TokenExpiration.Access},
		signingKey{secret: refreshSecret, ttl: cfg.TokenExpiration.Refresh},
		time.Now,
	)
}

func newJWTService(access, refresh signingKey, now func() time.Time) (*jwtService, error) {
	if len(access.secret) == 0 || len(refresh.secret) == 0 {
		return nil, errors.New("jwt secrets must be provided")
	}
	if string(access.secret) == string(refresh.secret) {
		return nil, errors.New("access and refresh secrets must differ")
	}
	if access.ttl <= 0 || refresh.ttl <= 0 {
		return nil, errors.New("token expirations must be positive")
	}

	return &jwtService{
		keys: map[entity.TokenKind]signingKey{
			entity.TokenKindAccess:  access,
			entity.TokenKindRefresh: refresh,
		},
		now: now,
	}, nil
}

// Issue signs a token of kind for the principal.
func (s *jwtService) Issue(kind entity.TokenKind, principal *entity.Principal) (string, error) {
	key, ok := s.keys[kind]
	if !ok {
		return "", errors.Errorf("unknown token kind %d", kind)
	}
	if principal == nil || principal.Subject == "" {
		return "", errors.New("principal subject must be provided")
	}

	issuedAt := s.now()
	claims := jwt.MapClaims{
		"sub":      principal.Subject,
		"jti":      uuid.NewString(), // keeps tokens minted within the same second distinct
		"iat":      issuedAt.Unix(),
		"exp":      issuedAt.Add(key.ttl).Unix(),
		claimType:  kind.String(),
		claimRoles: strings.Join(principal.Authorities, authoritiesDelimiter),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key.secret)
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign %s token", kind)
	}

	return signed, nil
}

// Verify checks signature, expiry and structure against the key of kind.
func (s *jwtService) Verify(kind entity.TokenKind, token string) bool {
	_, err := s.parse(kind, token)

	return err == nil
}

// PrincipalOf extracts subject and authorities from a verified token.
func (s *jwtService) PrincipalOf(kind entity.TokenKind, token string) (*entity.Principal, error) {
	claims, err := s.parse(kind, token)
	if err != nil {
		return nil, errors.Join(domainerrors.ErrTokenMalformed, err)
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("subject claim missing")
	}

	rawRoles, _ := claims[claimRoles].(string)
	authorities := splitAuthorities(rawRoles)
	role, ok := authorities.Role()
	if !ok {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("roles claim carries no known role")
	}

	return &entity.Principal{
		Subject:     subject,
		Role:        role,
		Authorities: authorities,
	}, nil
}

// TTL returns the configured validity window of kind.
func (s *jwtService) TTL(kind entity.TokenKind) time.Duration {
	return s.keys[kind].ttl
}

func (s *jwtService) parse(kind entity.TokenKind, token string) (jwt.MapClaims, error) {
	key, ok := s.keys[kind]
	if !ok {
		return nil, errors.Errorf("unknown token kind %d", kind)
	}
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("token is blank")
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)

	claims := jwt.MapClaims{}
	if _, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return key.secret, nil
	}); err != nil {
		return nil, errors.Wrapf(err, "invalid %s token", kind)
	}

	if typ, _ := claims[claimType].(string); typ != kind.String() {
		return nil, errors.Errorf("token type %q is not %s", typ, kind)
	}

	return claims, nil
}

func splitAuthorities(raw string) entity.Authorities {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, authoritiesDelimiter)
	authorities := make(entity.Authorities, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			authorities = append(authorities, trimmed)
		}
	}

	return authorities
}
