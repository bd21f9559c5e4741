package constants

import "errors"

// Configuration errors.
var (
	ErrNoAccessToken     = errors.New("no access token configured, run 'freshbooks login' first")
	ErrNoRefreshToken    = errors.New("no refresh token available, run 'freshbooks login' again")
	ErrNoAccountID       = errors.New("no account id given, use --account or set account_id in the config")
	ErrNoBusinessID      = errors.New("no business id given, use --business or set business_id in the config")
	ErrUnknownConfigKey  = errors.New("unknown configuration key")
	ErrMissingClientApp  = errors.New("client_id and client_secret must be configured")
	ErrEmptyAuthCode     = errors.New("authorization code is empty")
	ErrInvalidFieldValue = errors.New("invalid --field value, expected key=value")
)

// Output errors.
var (
	ErrUnsupportedOutput = errors.New("unsupported output format")
	ErrUnsupportedFilter = errors.New("unsupported filter expression")
)
