package service

import (
	"time"

	"studylink/internal/domain/entity"
)

// TokenCodec signs and verifies the two independent token kinds.
// Keys are fixed at construction; a token of one kind never verifies as the other.
type TokenCodec interface {
	// Issue signs a token of kind embedding the principal.
	Issue(kind entity.TokenKind, principal *entity.Principal) (string, error)

	// Verify reports whether token carries a valid, unexpired signature for kind.
	// It never fails; malformed input is simply false.
	Verify(kind entity.TokenKind, token string) bool

	// PrincipalOf re-derives the principal of a verified token.
	// Calling it on a token that does not verify fails with TOKEN_MALFORMED.
	PrincipalOf(kind entity.TokenKind, token string) (*entity.Principal, error)

	// TTL returns the validity window of kind.
	TTL(kind entity.TokenKind) time.Duration
}
