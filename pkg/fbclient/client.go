// Package fbclient provides the main entry point for creating FreshBooks API clients
package fbclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/freshbooks/internal/client"
	"github.com/fivetwenty-io/freshbooks/internal/constants"
	"github.com/fivetwenty-io/freshbooks/pkg/freshbooks"
)

// New creates a new FreshBooks API client. Empty base URLs fall back to the
// public FreshBooks hosts. The caller's config is not modified.
func New(config *freshbooks.Config) (freshbooks.Client, error) {
	if config == nil {
		return nil, freshbooks.ErrConfigRequired
	}

	cli, err := client.New(WithDefaults(config))
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}

// WithDefaults returns a copy of config with base URLs normalized and the
// default hosts and User-Agent filled in.
func WithDefaults(config *freshbooks.Config) *freshbooks.Config {
	normalized := *config
	normalized.APIBaseURL = normalizeBaseURL(config.APIBaseURL, constants.DefaultAPIBaseURL)
	normalized.AuthBaseURL = normalizeBaseURL(config.AuthBaseURL, constants.DefaultAuthBaseURL)

	if normalized.UserAgent == "" {
		normalized.UserAgent = freshbooks.DefaultUserAgent()
	}

	return &normalized
}

// normalizeBaseURL trims trailing slashes and assumes https when no scheme is given.
func normalizeBaseURL(baseURL, fallback string) string {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return fallback
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

// NewWithToken creates a new client with an API base URL and access token.
func NewWithToken(apiBaseURL, token string) (freshbooks.Client, error) {
	return New(&freshbooks.Config{
		APIBaseURL:  apiBaseURL,
		AccessToken: token,
	})
}

// NewWithRefreshToken creates a client that refreshes its access token on demand.
func NewWithRefreshToken(apiBaseURL, clientID, clientSecret, refreshToken string) (freshbooks.Client, error) {
	return New(&freshbooks.Config{
		APIBaseURL:   apiBaseURL,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RefreshToken: refreshToken,
	})
}

// NewWithApplication creates a client for running the authorization-code flow:
// AuthorizationURL followed by ExchangeCode.
func NewWithApplication(clientID, clientSecret, redirectURI string, scopes ...string) (freshbooks.Client, error) {
	return New(&freshbooks.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURI:  redirectURI,
		Scopes:       scopes,
	})
}
