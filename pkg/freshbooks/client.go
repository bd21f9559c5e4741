package freshbooks

import (
	"context"
	"net/http"
	"time"
)

// ResourceClient is the CRUD surface shared by every resource kind.
type ResourceClient[T any] interface {
	// Get fetches one entity, optionally embedding related data.
	Get(ctx context.Context, accountID, resourceID string, includes *IncludesBuilder) (*T, error)
	// List fetches one page of entities.
	List(ctx context.Context, accountID string, builders ...QueryBuilder) (*ListResult[T], error)
	// Create creates an entity from its wire fields.
	Create(ctx context.Context, accountID string, data map[string]any) (*T, error)
	// Update changes the given wire fields of an entity.
	Update(ctx context.Context, accountID, resourceID string, data map[string]any) (*T, error)
	// Delete removes an entity.
	Delete(ctx context.Context, accountID, resourceID string) (*T, error)
}

// AccountingClients provides access to accounting resources, addressed by
// alphanumeric account id.
type AccountingClients interface {
	Clients() ResourceClient[Customer]
	Invoices() ResourceClient[Invoice]
	Payments() ResourceClient[Payment]
	Taxes() ResourceClient[Tax]
}

// BusinessClients provides access to business resources, addressed by
// numeric business id.
type BusinessClients interface {
	TeamMembers() ResourceClient[TeamMember]
}

// AuthClient covers identity and the OAuth2 authorization-code flow.
type AuthClient interface {
	// CurrentUser returns the identity the access token belongs to.
	CurrentUser(ctx context.Context) (*Identity, error)
	// AuthorizationURL is where a user grants this application access.
	AuthorizationURL(scopes ...string) (string, error)
	// ExchangeCode trades an authorization code for tokens.
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	// RefreshAccessToken trades the refresh token for a new access token.
	RefreshAccessToken(ctx context.Context) (*Token, error)
	// GetToken returns a usable access token.
	GetToken(ctx context.Context) (string, error)
}

// Client is the FreshBooks API client.
type Client interface {
	AccountingClients
	BusinessClients
	AuthClient
}

// Token is the credential pair obtained from the authorization server.
type Token struct {
	AccessToken  string    `json:"access_token"  yaml:"access_token"`
	RefreshToken string    `json:"refresh_token" yaml:"refresh_token"`
	TokenType    string    `json:"token_type"    yaml:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"    yaml:"expires_at"`
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
//
// # Authentication
//
// AccessToken is sent as a Bearer token. When RefreshToken, ClientID and
// ClientSecret are also set the client refreshes the access token once it
// expires (TokenExpiresAt). With only ClientID, ClientSecret and RedirectURI
// the client can build an authorization URL and exchange the returned code.
//
// # Timeouts and retries
//
// Per-request timeouts should be controlled via the context passed to client
// methods. The API layer never retries; RetryMax enables transport level
// retries of connection failures, 429 and 5xx responses.
type Config struct {
	// APIBaseURL: base URL of the REST API. Defaults to https://api.freshbooks.com.
	APIBaseURL string
	// AuthBaseURL: base URL of the authorization pages. Defaults to
	// https://auth.freshbooks.com.
	AuthBaseURL string

	// ClientID: OAuth2 application client id.
	ClientID string
	// ClientSecret: OAuth2 application secret.
	ClientSecret string
	// RedirectURI: redirect registered with the application. Required for
	// AuthorizationURL and ExchangeCode.
	RedirectURI string
	// Scopes: default scopes requested by AuthorizationURL.
	Scopes []string

	// AccessToken: bearer token sent with every request.
	AccessToken string
	// RefreshToken: used to obtain a new access token once it expires.
	RefreshToken string
	// TokenExpiresAt: expiry of AccessToken; zero means unknown.
	TokenExpiresAt time.Time

	// HTTPTimeout: overall timeout of the underlying HTTP client.
	HTTPTimeout time.Duration
	// HTTPClient: optional transport to use instead of the default.
	HTTPClient *http.Client
	// RetryMax: transport retries; 0 disables them.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration

	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger.
	Logger Logger
}
