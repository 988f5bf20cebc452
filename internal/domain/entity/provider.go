package entity

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrUnsupportedProvider is returned for provider ids with no attribute mapping.
var ErrUnsupportedProvider = errors.New("unsupported identity provider")

// Provider tags the origin of a member account.
type Provider string

const (
	ProviderNone   Provider = "NONE"
	ProviderGoogle Provider = "GOOGLE"
	ProviderKakao  Provider = "KAKAO"
)

// FederatedProviders lists every provider a federated login may come from.
var FederatedProviders = []Provider{ProviderGoogle, ProviderKakao}

// ParseProvider maps a registration id such as "google" onto a federated provider.
// It is the only way to build a federated Provider from untrusted input.
func ParseProvider(id string) (Provider, error) {
	switch Provider(strings.ToUpper(strings.TrimSpace(id))) {
	case ProviderGoogle:
		return ProviderGoogle, nil
	case ProviderKakao:
		return ProviderKakao, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedProvider, "provider %q", id)
	}
}

// String returns the string representation of the Provider.
func (p Provider) String() string {
	return string(p)
}

// RegistrationID is the lower-case id used in callback paths.
func (p Provider) RegistrationID() string {
	return strings.ToLower(string(p))
}
