package entity

// TokenKind selects the signing key and validity window of a token.
type TokenKind int

const (
	TokenKindAccess TokenKind = iota + 1
	TokenKindRefresh
)

func (k TokenKind) String() string {
	switch k {
	case TokenKindAccess:
		return "access"
	case TokenKindRefresh:
		return "refresh"
	default:
		return "unknown"
	}
}

// TokenPair is returned by every successful authentication flow.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
