// Package oauth talks to the identity providers used for federated login.
package oauth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"studylink/config"
	"studylink/internal/domain/entity"
	"studylink/internal/domain/service"
	"studylink/internal/errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	kakaoAuthURL      = "https://kauth.kakao.com/oauth/authorize"
	kakaoTokenURL     = "https://kauth.kakao.com/oauth/token"
	kakaoUserInfoURL  = "https://kapi.kakao.com/v2/user/me"
	googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

	maxUserInfoBytes = 1 << 20
	maxErrorBodySize = 1 << 10
)

var (
	defaultGoogleScopes = []string{"openid", "email", "profile"}
	defaultKakaoScopes  = []string{"profile_nickname", "profile_image"}
)

// codeFlowClient runs the authorization-code grant against one provider and
// fetches the user-info document with the resulting access token.
type codeFlowClient struct {
	provider    entity.Provider
	conf        *oauth2.Config
	userInfoURL string
	httpClient  *http.Client
}

// NewGoogleProvider builds the Google authorization-code client.
func NewGoogleProvider(cfg *config.Config) service.OAuthProvider {
	client := clientConfig(cfg, entity.ProviderGoogle)

	return newCodeFlowClient(entity.ProviderGoogle, client, google.Endpoint, defaultGoogleScopes, googleUserInfoURL)
}

// NewKakaoProvider builds the Kakao authorization-code client.
func NewKakaoProvider(cfg *config.Config) service.OAuthProvider {
	client := clientConfig(cfg, entity.ProviderKakao)
	endpoint := oauth2.Endpoint{
		AuthURL:   kakaoAuthURL,
		TokenURL:  kakaoTokenURL,
		AuthStyle: oauth2.AuthStyleInParams,
	}

	return newCodeFlowClient(entity.ProviderKakao, client, endpoint, defaultKakaoScopes, kakaoUserInfoURL)
}

func clientConfig(cfg *config.Config, provider entity.Provider) config.OAuthClientConfig {
	if cfg.OAuth == nil {
		return config.OAuthClientConfig{}
	}

	switch provider {
	case entity.ProviderGoogle:
		return cfg.OAuth.Google
	case entity.ProviderKakao:
		return cfg.OAuth.Kakao
	default:
		return config.OAuthClientConfig{}
	}
}

func newCodeFlowClient(
	provider entity.Provider,
	client config.OAuthClientConfig,
	endpoint oauth2.Endpoint,
	defaultScopes []string,
	userInfoURL string,
) *codeFlowClient {
	scopes := client.Scopes
	if len(scopes) == 0 {
		scopes = defaultScopes
	}

	return &codeFlowClient{
		provider: provider,
		conf: &oauth2.Config{
			ClientID:     client.ClientID,
			ClientSecret: client.ClientSecret,
			RedirectURL:  client.RedirectURL,
			Scopes:       scopes,
			Endpoint:     endpoint,
		},
		userInfoURL: userInfoURL,
	}
}

func (c *codeFlowClient) Provider() entity.Provider {
	return c.provider
}

func (c *codeFlowClient) AuthCodeURL(state string) string {
	return c.conf.AuthCodeURL(state)
}

// FetchAttributes exchanges code for an access token and returns the decoded user-info
// document. Numbers are kept as json.Number so large provider ids survive intact.
func (c *codeFlowClient) FetchAttributes(ctx context.Context, code string) (map[string]any, error) {
	if code == "" {
		return nil, errors.New("authorization code is empty")
	}
	if c.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	}

	token, err := c.conf.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrapf(err, "%s token exchange failed", c.provider)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}

	resp, err := c.conf.Client(ctx, token).Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s user info request failed", c.provider)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

		return nil, errors.Errorf("%s user info request failed with status %d: %s", c.provider, resp.StatusCode, string(body))
	}

	decoder := json.NewDecoder(io.LimitReader(resp.Body, maxUserInfoBytes))
	decoder.UseNumber()

	var attributes map[string]any
	if err := decoder.Decode(&attributes); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s user info", c.provider)
	}

	return attributes, nil
}
