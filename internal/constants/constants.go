package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Default endpoints.
const (
	// DefaultAPIBaseURL is the production REST API.
	DefaultAPIBaseURL = "https://api.freshbooks.com"

	// DefaultAuthBaseURL is the production authorization site.
	DefaultAuthBaseURL = "https://auth.freshbooks.com"

	// AuthorizePath is appended to the auth base URL for the consent page.
	AuthorizePath = "/oauth/authorize"

	// TokenPath is appended to the API base URL for token requests.
	TokenPath = "/auth/oauth/token"
)

// Resource path prefixes.
const (
	// AccountingPrefix addresses resources by alphanumeric account id.
	AccountingPrefix = "/accounting/account"

	// BusinessPrefix addresses resources by numeric business id.
	BusinessPrefix = "/auth/api/v1/businesses"

	// IdentityPath returns the authenticated identity.
	IdentityPath = "/auth/api/v1/users/me"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are disabled unless RetryMax is configured.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second

	// ExtendedRetryWaitMax is used for operations that need longer waits.
	ExtendedRetryWaitMax = 30 * time.Second
)

// Token handling.
const (
	// TokenExpiryBuffer is subtracted from a token's expiry when deciding
	// whether it is still usable.
	TokenExpiryBuffer = 30 * time.Second

	// DefaultTokenType is the token type assumed when the server omits it.
	DefaultTokenType = "bearer"
)

// HTTP header values.
const (
	// ContentTypeJSON is sent and accepted on every API request.
	ContentTypeJSON = "application/json"

	// UserAgentPrefix precedes the library version in the default User-Agent.
	UserAgentPrefix = "FreshBooks go sdk/"
)

// CLI table output.
const (
	// MaxColumnWidth truncates long cells in table output.
	MaxColumnWidth = 40

	// DefaultListPerPage is the page size used by list commands.
	DefaultListPerPage = 25
)
