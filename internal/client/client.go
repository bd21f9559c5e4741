package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fivetwenty-io/freshbooks/internal/auth"
	"github.com/fivetwenty-io/freshbooks/internal/constants"
	"github.com/fivetwenty-io/freshbooks/internal/http"
	"github.com/fivetwenty-io/freshbooks/pkg/freshbooks"
)

// Static errors for err113 compliance.
var (
	ErrStaticTokenCannotRefresh = errors.New("static token cannot be refreshed")
	ErrAccountIDRequired        = errors.New("account id is required")
	ErrResourceIDRequired       = errors.New("resource id is required")
)

// authorizer runs the authorization-code flow.
type authorizer interface {
	AuthCodeURL(scopes ...string) (string, error)
	Exchange(ctx context.Context, code string) (*auth.Token, error)
}

// tokenReporter exposes the full token after a refresh.
type tokenReporter interface {
	CurrentToken() *auth.Token
}

// Client implements the freshbooks.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	authorizer   authorizer
	logger       freshbooks.Logger

	// Resource clients
	clients     freshbooks.ResourceClient[freshbooks.Customer]
	invoices    freshbooks.ResourceClient[freshbooks.Invoice]
	payments    freshbooks.ResourceClient[freshbooks.Payment]
	taxes       freshbooks.ResourceClient[freshbooks.Tax]
	teamMembers freshbooks.ResourceClient[freshbooks.TeamMember]
}

// OAuth2ConfigFrom maps the client config onto the token manager config.
func OAuth2ConfigFrom(config *freshbooks.Config) *auth.OAuth2Config {
	authBase := config.AuthBaseURL
	if authBase == "" {
		authBase = constants.DefaultAuthBaseURL
	}

	return &auth.OAuth2Config{
		AuthURL:      authBase + constants.AuthorizePath,
		TokenURL:     config.APIBaseURL + constants.TokenPath,
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		RedirectURI:  config.RedirectURI,
		Scopes:       config.Scopes,
		AccessToken:  config.AccessToken,
		RefreshToken: config.RefreshToken,
		ExpiresAt:    config.TokenExpiresAt,
		HTTPClient:   config.HTTPClient,
	}
}

// createTokenManager picks a token manager for the available credentials.
// An application id or a refresh token selects the OAuth2 manager, a bare
// access token a static one.
func createTokenManager(config *freshbooks.Config, oauthManager *auth.OAuth2TokenManager) auth.TokenManager {
	if config.ClientID != "" || config.RefreshToken != "" {
		return oauthManager
	}

	if config.AccessToken != "" {
		return &staticTokenManager{token: config.AccessToken}
	}

	return nil // No authentication
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *freshbooks.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.ExtendedRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a FreshBooks API client.
func New(config *freshbooks.Config) (*Client, error) {
	if config == nil {
		return nil, freshbooks.ErrConfigRequired
	}

	if config.APIBaseURL == "" {
		return nil, freshbooks.ErrAPIBaseURLRequired
	}

	oauthManager := auth.NewOAuth2TokenManager(OAuth2ConfigFrom(config))
	tokenManager := createTokenManager(config, oauthManager)

	return newClient(config, tokenManager, oauthManager), nil
}

// NewWithTokenManager creates a client with a custom token manager. When the
// token manager can also run the authorization-code flow it is used for
// AuthorizationURL and ExchangeCode.
func NewWithTokenManager(config *freshbooks.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config == nil {
		return nil, freshbooks.ErrConfigRequired
	}

	if config.APIBaseURL == "" {
		return nil, freshbooks.ErrAPIBaseURLRequired
	}

	flow, ok := tokenManager.(authorizer)
	if !ok {
		flow = auth.NewOAuth2TokenManager(OAuth2ConfigFrom(config))
	}

	return newClient(config, tokenManager, flow), nil
}

func newClient(config *freshbooks.Config, tokenManager auth.TokenManager, flow authorizer) *Client {
	httpClient := http.NewClient(config.APIBaseURL, tokenManager, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		authorizer:   flow,
		logger:       config.Logger,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// Clients implements freshbooks.Client.Clients.
func (c *Client) Clients() freshbooks.ResourceClient[freshbooks.Customer] {
	return c.clients
}

// Invoices implements freshbooks.Client.Invoices.
func (c *Client) Invoices() freshbooks.ResourceClient[freshbooks.Invoice] {
	return c.invoices
}

// Payments implements freshbooks.Client.Payments.
func (c *Client) Payments() freshbooks.ResourceClient[freshbooks.Payment] {
	return c.payments
}

// Taxes implements freshbooks.Client.Taxes.
func (c *Client) Taxes() freshbooks.ResourceClient[freshbooks.Tax] {
	return c.taxes
}

// TeamMembers implements freshbooks.Client.TeamMembers.
func (c *Client) TeamMembers() freshbooks.ResourceClient[freshbooks.TeamMember] {
	return c.teamMembers
}

// AuthorizationURL implements freshbooks.Client.AuthorizationURL.
func (c *Client) AuthorizationURL(scopes ...string) (string, error) {
	authURL, err := c.authorizer.AuthCodeURL(scopes...)
	if err != nil {
		return "", fmt.Errorf("building authorization URL: %w", err)
	}

	return authURL, nil
}

// ExchangeCode implements freshbooks.Client.ExchangeCode.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*freshbooks.Token, error) {
	token, err := c.authorizer.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}

	// Tokens obtained here must reach the transport too.
	if c.tokenManager != nil && any(c.tokenManager) != any(c.authorizer) {
		c.tokenManager.SetToken(token.AccessToken, token.ExpiresAt)
	}

	c.logDebug("authorization code exchanged", map[string]interface{}{
		"expires_at": token.ExpiresAt,
	})

	return publicToken(token), nil
}

// RefreshAccessToken implements freshbooks.Client.RefreshAccessToken.
func (c *Client) RefreshAccessToken(ctx context.Context) (*freshbooks.Token, error) {
	if c.tokenManager == nil {
		return nil, freshbooks.ErrNoTokenConfigured
	}

	err := c.tokenManager.RefreshToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	if reporter, ok := c.tokenManager.(tokenReporter); ok {
		if token := reporter.CurrentToken(); token != nil {
			return publicToken(token), nil
		}
	}

	accessToken, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	return &freshbooks.Token{AccessToken: accessToken, TokenType: constants.DefaultTokenType}, nil
}

// GetToken returns the current access token from the token manager.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	if c.tokenManager == nil {
		return "", freshbooks.ErrNoTokenConfigured
	}

	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return token, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.clients = NewResource(c.httpClient, ResourceDef[freshbooks.Customer]{
		Name:        "client",
		Plural:      "clients",
		Prefix:      constants.AccountingPrefix,
		Path:        "users/clients",
		EntityField: "client",
		Decode:      freshbooks.DecodeEntity(freshbooks.CustomerFields, "client"),
		DecodeList:  freshbooks.DecodeList(freshbooks.CustomerFields, "clients"),
	})
	c.invoices = NewResource(c.httpClient, ResourceDef[freshbooks.Invoice]{
		Name:        "invoice",
		Plural:      "invoices",
		Prefix:      constants.AccountingPrefix,
		Path:        "invoices/invoices",
		EntityField: "invoice",
		Decode:      freshbooks.DecodeEntity(freshbooks.InvoiceFields, "invoice"),
		DecodeList:  freshbooks.DecodeList(freshbooks.InvoiceFields, "invoices"),
	})
	c.payments = NewResource(c.httpClient, ResourceDef[freshbooks.Payment]{
		Name:        "payment",
		Plural:      "payments",
		Prefix:      constants.AccountingPrefix,
		Path:        "payments/payments",
		EntityField: "payment",
		Decode:      freshbooks.DecodeEntity(freshbooks.PaymentFields, "payment"),
		DecodeList:  freshbooks.DecodeList(freshbooks.PaymentFields, "payments"),
	})
	c.taxes = NewResource(c.httpClient, ResourceDef[freshbooks.Tax]{
		Name:        "tax",
		Plural:      "taxes",
		Prefix:      constants.AccountingPrefix,
		Path:        "taxes/taxes",
		EntityField: "tax",
		Decode:      freshbooks.DecodeEntity(freshbooks.TaxFields, "tax"),
		DecodeList:  freshbooks.DecodeList(freshbooks.TaxFields, "taxes"),
	})
	c.teamMembers = NewResource(c.httpClient, ResourceDef[freshbooks.TeamMember]{
		Name:        "team member",
		Plural:      "team members",
		Prefix:      constants.BusinessPrefix,
		Path:        "team_members",
		EntityField: "team_member",
		Decode:      freshbooks.DecodeEntity(freshbooks.TeamMemberFields, ""),
		DecodeList:  freshbooks.DecodeList(freshbooks.TeamMemberFields, "team_members"),
	})
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}

func publicToken(token *auth.Token) *freshbooks.Token {
	return &freshbooks.Token{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		ExpiresAt:    token.ExpiresAt,
	}
}

type staticTokenManager struct {
	token     string
	expiresAt time.Time
}

func (m *staticTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, nil
}

func (m *staticTokenManager) RefreshToken(ctx context.Context) error {
	return ErrStaticTokenCannotRefresh
}

func (m *staticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.token = token
	m.expiresAt = expiresAt
}

// loggerAdapter adapts freshbooks.Logger to http.Logger.
type loggerAdapter struct {
	logger freshbooks.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
