package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"studylink/config"
	"studylink/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newProviderServer(t *testing.T, userInfo string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("code") != "good-code" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at-123","token_type":"bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer at-123" {
			w.WriteHeader(http.StatusUnauthorized)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(userInfo))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func newTestClient(provider entity.Provider, srv *httptest.Server) *codeFlowClient {
	client := newCodeFlowClient(
		provider,
		config.OAuthClientConfig{ClientID: "client", ClientSecret: "secret", RedirectURL: "http://localhost/cb"},
		oauth2.Endpoint{AuthURL: srv.URL + "/authorize", TokenURL: srv.URL + "/token", AuthStyle: oauth2.AuthStyleInParams},
		nil,
		srv.URL+"/userinfo",
	)
	client.httpClient = srv.Client()

	return client
}

func TestCodeFlowClient_FetchAttributesKeepsLargeIDs(t *testing.T) {
	srv := newProviderServer(t, `{"id":4012345678901,"properties":{"nickname":"hong","profile_image":"http://img/1.png"}}`)
	client := newTestClient(entity.ProviderKakao, srv)

	attributes, err := client.FetchAttributes(context.Background(), "good-code")
	require.NoError(t, err)

	assert.Equal(t, json.Number("4012345678901"), attributes["id"])
	properties, ok := attributes["properties"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hong", properties["nickname"])
}

func TestCodeFlowClient_FetchAttributesRejectsBadCode(t *testing.T) {
	srv := newProviderServer(t, `{}`)
	client := newTestClient(entity.ProviderGoogle, srv)

	_, err := client.FetchAttributes(context.Background(), "stale-code")
	assert.Error(t, err)

	_, err = client.FetchAttributes(context.Background(), "")
	assert.Error(t, err)
}

func TestCodeFlowClient_FetchAttributesRejectsNonJSON(t *testing.T) {
	srv := newProviderServer(t, `<html>`)
	client := newTestClient(entity.ProviderGoogle, srv)

	_, err := client.FetchAttributes(context.Background(), "good-code")
	assert.Error(t, err)
}

func TestCodeFlowClient_AuthCodeURL(t *testing.T) {
	cfg := &config.Config{OAuth: &config.OAuthConfig{
		Kakao: config.OAuthClientConfig{ClientID: "kakao-client", RedirectURL: "http://localhost/login/oauth2/code/kakao"},
	}}

	provider := NewKakaoProvider(cfg)
	assert.Equal(t, entity.ProviderKakao, provider.Provider())

	parsed, err := url.Parse(provider.AuthCodeURL("state-1"))
	require.NoError(t, err)

	assert.Equal(t, "kauth.kakao.com", parsed.Host)
	query := parsed.Query()
	assert.Equal(t, "kakao-client", query.Get("client_id"))
	assert.Equal(t, "state-1", query.Get("state"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "profile_nickname profile_image", query.Get("scope"))
}

func TestNewGoogleProvider_UsesConfiguredScopes(t *testing.T) {
	cfg := &config.Config{OAuth: &config.OAuthConfig{
		Google: config.OAuthClientConfig{ClientID: "g", Scopes: []string{"email"}},
	}}

	parsed, err := url.Parse(NewGoogleProvider(cfg).AuthCodeURL("s"))
	require.NoError(t, err)
	assert.Equal(t, "email", parsed.Query().Get("scope"))
	assert.Equal(t, "accounts.google.com", parsed.Host)
}
