package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/fivetwenty-io/freshbooks/internal/constants"
	"github.com/fivetwenty-io/freshbooks/pkg/freshbooks"
	"github.com/spf13/cobra"
)

// NewAuthCommand creates the auth command group for the individual steps of
// the OAuth2 flow.
func NewAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage OAuth2 tokens",
		Long:  "Build authorization URLs, exchange codes and refresh tokens",
	}

	cmd.AddCommand(newAuthURLCommand())
	cmd.AddCommand(newAuthExchangeCommand())
	cmd.AddCommand(newAuthRefreshCommand())
	cmd.AddCommand(newAuthStatusCommand())

	return cmd
}

func newAuthURLCommand() *cobra.Command {
	var scopes []string

	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the authorization URL",
		Long:  "Print the URL a user opens to authorize the configured application",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := createAuthClient(loadConfig())
			if err != nil {
				return err
			}

			authURL, err := cli.AuthorizationURL(scopes...)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), authURL)

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&scopes, "scope", nil, "scopes to request")

	return cmd
}

func newAuthExchangeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exchange CODE",
		Short: "Exchange an authorization code",
		Long:  "Exchange an authorization code for tokens and save them to the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := createAuthClient(loadConfig())
			if err != nil {
				return err
			}

			token, err := cli.ExchangeCode(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to exchange code: %w", err)
			}

			return printToken(cmd, token)
		},
	}
}

func newAuthRefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Refresh the access token",
		Long:  "Obtain a new access token with the stored refresh token and save it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if loadConfig().RefreshToken == "" {
				return constants.ErrNoRefreshToken
			}

			cli, err := CreateClient()
			if err != nil {
				return err
			}

			token, err := cli.RefreshAccessToken(context.Background())
			if err != nil {
				return fmt.Errorf("failed to refresh token: %w", err)
			}

			return printToken(cmd, token)
		},
	}
}

func newAuthStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show stored token status",
		Long:  "Show whether tokens are configured and when the access token expires",
		RunE: func(cmd *cobra.Command, args []string) error {
			status := tokenStatus(loadConfig(), time.Now())
			out := cmd.OutOrStdout()

			return printData(out, status, func() error {
				return renderKeyValues(out, [][2]string{
					{"Access Token", formatBool(status.HasAccessToken)},
					{"Refresh Token", formatBool(status.HasRefreshToken)},
					{"Expires", status.ExpiresAt},
					{"Expired", formatBool(status.Expired)},
					{"Account ID", status.AccountID},
					{"Business ID", status.BusinessID},
				})
			})
		},
	}
}

// TokenStatus summarizes the stored credentials without exposing them.
type TokenStatus struct {
	HasAccessToken  bool   `json:"has_access_token"      yaml:"has_access_token"`
	HasRefreshToken bool   `json:"has_refresh_token"     yaml:"has_refresh_token"`
	ExpiresAt       string `json:"expires_at,omitempty"  yaml:"expires_at,omitempty"`
	Expired         bool   `json:"expired"               yaml:"expired"`
	AccountID       string `json:"account_id,omitempty"  yaml:"account_id,omitempty"`
	BusinessID      string `json:"business_id,omitempty" yaml:"business_id,omitempty"`
}

func tokenStatus(config *Config, now time.Time) TokenStatus {
	status := TokenStatus{
		HasAccessToken:  config.Token != "",
		HasRefreshToken: config.RefreshToken != "",
		AccountID:       config.AccountID,
		BusinessID:      config.BusinessID,
	}

	if config.TokenExpiresAt != nil {
		status.ExpiresAt = config.TokenExpiresAt.Format(time.RFC3339)
		status.Expired = !now.Before(*config.TokenExpiresAt)
	}

	return status
}

func printToken(cmd *cobra.Command, token *freshbooks.Token) error {
	out := cmd.OutOrStdout()

	summary := map[string]string{
		"token_type":    token.TokenType,
		"access_token":  Masked,
		"refresh_token": "",
		"expires_at":    "",
	}

	if token.RefreshToken != "" {
		summary["refresh_token"] = Masked
	}

	if !token.ExpiresAt.IsZero() {
		summary["expires_at"] = token.ExpiresAt.Format(time.RFC3339)
	}

	return printData(out, summary, func() error {
		return renderKeyValues(out, [][2]string{
			{"Token Type", summary["token_type"]},
			{"Access Token", summary["access_token"]},
			{"Refresh Token", summary["refresh_token"]},
			{"Expires", summary["expires_at"]},
		})
	})
}
