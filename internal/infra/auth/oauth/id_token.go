package oauth

import (
	"context"

	"studylink/config"
	"studylink/internal/domain/entity"
	"studylink/internal/domain/service"
	"studylink/internal/errors"

	"google.golang.org/api/idtoken"
)

type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// googleIDTokenVerifier checks Google ID tokens sent by mobile clients that ran the
// consent flow themselves. Signature, issuer, audience and expiry are checked by idtoken.
type googleIDTokenVerifier struct {
	audience string
	validate validateFunc
}

// NewGoogleIDTokenVerifier uses the Google client id as the expected audience.
func NewGoogleIDTokenVerifier(cfg *config.Config) service.IDTokenVerifier {
	return &googleIDTokenVerifier{
		audience: clientConfig(cfg, entity.ProviderGoogle).ClientID,
		validate: idtoken.Validate,
	}
}

func (v *googleIDTokenVerifier) VerifyIDToken(ctx context.Context, idToken string) (map[string]any, error) {
	if v.audience == "" {
		return nil, errors.New("google client id is not configured")
	}
	if idToken == "" {
		return nil, errors.New("id token is empty")
	}

	payload, err := v.validate(ctx, idToken, v.audience)
	if err != nil {
		return nil, errors.Wrap(err, "google id token validation failed")
	}

	claims := make(map[string]any, len(payload.Claims)+1)
	for key, value := range payload.Claims {
		claims[key] = value
	}
	claims["sub"] = payload.Subject

	return claims, nil
}
