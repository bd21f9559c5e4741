package commands

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/freshbooks/internal/auth"
	"github.com/fivetwenty-io/freshbooks/internal/client"
	"github.com/fivetwenty-io/freshbooks/internal/constants"
	"github.com/fivetwenty-io/freshbooks/pkg/fbclient"
	"github.com/fivetwenty-io/freshbooks/pkg/freshbooks"
	"github.com/spf13/viper"
)

// newClientConfig maps the CLI config onto a library config with defaults applied.
func newClientConfig(config *Config) *freshbooks.Config {
	clientConfig := &freshbooks.Config{
		APIBaseURL:   config.APIBaseURL,
		AuthBaseURL:  config.AuthBaseURL,
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		RedirectURI:  config.RedirectURI,
		AccessToken:  config.Token,
		RefreshToken: config.RefreshToken,
		RetryMax:     viper.GetInt("retries"),
		Debug:        viper.GetBool("verbose"),
		Logger:       newLogger(),
		UserAgent:    "freshbooks-cli " + freshbooks.DefaultUserAgent(),
	}

	if config.TokenExpiresAt != nil {
		clientConfig.TokenExpiresAt = *config.TokenExpiresAt
	}

	return fbclient.WithDefaults(clientConfig)
}

// CreateClient creates an authenticated client from the current configuration.
// With an application or refresh token configured, refreshed tokens are saved
// back to the config file.
func CreateClient() (freshbooks.Client, error) {
	config := loadConfig()

	if config.Token == "" && config.RefreshToken == "" {
		return nil, constants.ErrNoAccessToken
	}

	if config.ClientID == "" && config.RefreshToken == "" {
		cli, err := fbclient.New(newClientConfig(config))
		if err != nil {
			return nil, fmt.Errorf("failed to create client: %w", err)
		}

		return cli, nil
	}

	return createPersistingClient(config)
}

// createAuthClient creates a client for the authorization-code flow. It needs
// the application credentials but no token.
func createAuthClient(config *Config) (freshbooks.Client, error) {
	if config.ClientID == "" || config.ClientSecret == "" {
		return nil, constants.ErrMissingClientApp
	}

	return createPersistingClient(config)
}

func createPersistingClient(config *Config) (freshbooks.Client, error) {
	clientConfig := newClientConfig(config)
	tokenManager := auth.NewConfigTokenManager(client.OAuth2ConfigFrom(clientConfig), NewConfigPersister())

	cli, err := client.NewWithTokenManager(clientConfig, tokenManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return cli, nil
}

// accountID returns the accounting account id from --account or the config.
func accountID() (string, error) {
	id := strings.TrimSpace(viper.GetString("account_id"))
	if id == "" {
		return "", constants.ErrNoAccountID
	}

	return id, nil
}

// businessID returns the business id from --business or the config.
func businessID() (string, error) {
	id := strings.TrimSpace(viper.GetString("business_id"))
	if id == "" {
		return "", constants.ErrNoBusinessID
	}

	return id, nil
}
