package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fivetwenty-io/freshbooks/internal/constants"
	"github.com/fivetwenty-io/freshbooks/pkg/freshbooks"
	"golang.org/x/oauth2"
)

// Static errors for err113 compliance.
var (
	ErrNoValidCredentials = errors.New("no valid credentials available")
	ErrNoRefreshToken     = errors.New("no refresh token available")
	ErrEmptyCode          = errors.New("authorization code is empty")
)

// OAuth2Config configures the authorization-code flow.
type OAuth2Config struct {
	// AuthURL is the consent page, e.g. https://auth.freshbooks.com/oauth/authorize.
	AuthURL string
	// TokenURL is the token endpoint, e.g. https://api.freshbooks.com/auth/oauth/token.
	TokenURL     string
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Scopes       []string

	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time

	// HTTPClient is used for token requests when set.
	HTTPClient *http.Client
}

// OAuth2TokenManager obtains and refreshes tokens with golang.org/x/oauth2.
type OAuth2TokenManager struct {
	config      *OAuth2Config
	oauthConfig *oauth2.Config
	store       *TokenStore
	mutex       sync.Mutex
}

// NewOAuth2TokenManager creates a manager seeded with any token in config.
func NewOAuth2TokenManager(config *OAuth2Config) *OAuth2TokenManager {
	manager := &OAuth2TokenManager{
		config: config,
		oauthConfig: &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			RedirectURL:  config.RedirectURI,
			Scopes:       config.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   config.AuthURL,
				TokenURL:  config.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		store: NewTokenStore(),
	}

	if config.AccessToken != "" || config.RefreshToken != "" {
		manager.store.Set(&Token{
			AccessToken:  config.AccessToken,
			RefreshToken: config.RefreshToken,
			TokenType:    constants.DefaultTokenType,
			ExpiresAt:    config.ExpiresAt,
		})
	}

	return manager
}

// AuthCodeURL builds the consent URL the user is sent to. The explicit
// scopes replace the configured ones; the redirect URI is mandatory.
func (m *OAuth2TokenManager) AuthCodeURL(scopes ...string) (string, error) {
	if m.config.RedirectURI == "" {
		return "", freshbooks.NewConfigError("redirect_uri", "is required to build an authorization URL")
	}

	if m.config.ClientID == "" {
		return "", freshbooks.NewConfigError("client_id", "is required to build an authorization URL")
	}

	var opts []oauth2.AuthCodeOption
	if len(scopes) > 0 {
		opts = append(opts, oauth2.SetAuthURLParam("scope", strings.Join(scopes, " ")))
	}

	return stripEmptyState(m.oauthConfig.AuthCodeURL("", opts...)), nil
}

// Exchange trades an authorization code for a token and stores it.
func (m *OAuth2TokenManager) Exchange(ctx context.Context, code string) (*Token, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}

	if m.config.RedirectURI == "" {
		return nil, freshbooks.NewConfigError("redirect_uri", "is required to exchange an authorization code")
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	tok, err := m.oauthConfig.Exchange(m.context(ctx), code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}

	token := tokenFromOAuth2(tok, "")
	m.store.Set(token)

	return token, nil
}

// GetToken returns a valid access token, refreshing it when it has expired.
func (m *OAuth2TokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()
	if token.Valid() {
		return token.AccessToken, nil
	}

	if token == nil || token.RefreshToken == "" {
		return "", ErrNoValidCredentials
	}

	err := m.RefreshToken(ctx)
	if err != nil {
		return "", err
	}

	return m.store.Get().AccessToken, nil
}

// RefreshToken forces a refresh_token grant.
func (m *OAuth2TokenManager) RefreshToken(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	current := m.store.Get()
	if current == nil || current.RefreshToken == "" {
		return ErrNoRefreshToken
	}

	stale := current.toOAuth2()
	stale.AccessToken = ""
	stale.Expiry = time.Now().Add(-time.Minute)

	tok, err := m.oauthConfig.TokenSource(m.context(ctx), stale).Token()
	if err != nil {
		return fmt.Errorf("refreshing token: %w", err)
	}

	m.store.Set(tokenFromOAuth2(tok, current.RefreshToken))

	return nil
}

// SetToken stores a token obtained elsewhere, keeping any refresh token.
func (m *OAuth2TokenManager) SetToken(token string, expiresAt time.Time) {
	refresh := ""
	if current := m.store.Get(); current != nil {
		refresh = current.RefreshToken
	}

	m.store.Set(&Token{
		AccessToken:  token,
		RefreshToken: refresh,
		TokenType:    constants.DefaultTokenType,
		ExpiresAt:    expiresAt,
	})
}

// CurrentToken returns a copy of the stored token, or nil.
func (m *OAuth2TokenManager) CurrentToken() *Token {
	token := m.store.Get()
	if token == nil {
		return nil
	}

	clone := *token

	return &clone
}

func (m *OAuth2TokenManager) context(ctx context.Context) context.Context {
	if m.config.HTTPClient != nil {
		return context.WithValue(ctx, oauth2.HTTPClient, m.config.HTTPClient)
	}

	return ctx
}

// stripEmptyState drops the "state=" parameter x/oauth2 always emits.
func stripEmptyState(authURL string) string {
	authURL = strings.Replace(authURL, "&state=&", "&", 1)
	authURL = strings.TrimSuffix(authURL, "&state=")

	return strings.Replace(authURL, "?state=&", "?", 1)
}
