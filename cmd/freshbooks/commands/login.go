package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fivetwenty-io/freshbooks/internal/constants"
	"github.com/fivetwenty-io/freshbooks/pkg/freshbooks"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		clientID     string
		clientSecret string
		redirectURI  string
		code         string
		scopes       []string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to FreshBooks",
		Long: `Authorize this CLI against a FreshBooks application.

The authorization URL is printed; open it, approve access and paste the code
FreshBooks redirects back with. Tokens and the first business found are saved
to the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			config := loadConfig()

			if clientID != "" {
				config.ClientID = clientID
			}

			if clientSecret != "" {
				config.ClientSecret = clientSecret
			}

			if redirectURI != "" {
				config.RedirectURI = redirectURI
			}

			if config.ClientSecret == "" {
				secret, err := promptSecret(out, "Client secret: ")
				if err != nil {
					return err
				}

				config.ClientSecret = secret
			}

			cli, err := createAuthClient(config)
			if err != nil {
				return err
			}

			// Save the application settings so later token refreshes can use them.
			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			if code == "" {
				authURL, err := cli.AuthorizationURL(scopes...)
				if err != nil {
					return err
				}

				_, _ = fmt.Fprintf(out, "Open this URL in a browser and authorize the application:\n\n  %s\n\n", authURL)
				_, _ = fmt.Fprint(out, "Authorization code: ")

				code, _ = bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				code = strings.TrimSpace(code)
			}

			if code == "" {
				return constants.ErrEmptyAuthCode
			}

			ctx := context.Background()

			_, err = cli.ExchangeCode(ctx, code)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			identity, err := cli.CurrentUser(ctx)
			if err != nil {
				_, _ = fmt.Fprintf(out, "Logged in. Warning: could not fetch the current user: %v\n", err)

				return nil
			}

			err = rememberBusiness(identity)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, "Logged in as %s <%s>\n", fullName(identity.FirstName, identity.LastName), identity.Email)

			return nil
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "", "application client id")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "application client secret (prompted when omitted)")
	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "redirect URI registered with the application")
	cmd.Flags().StringVar(&code, "code", "", "authorization code, skipping the prompt")
	cmd.Flags().StringSliceVar(&scopes, "scope", nil, "scopes to request")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from FreshBooks",
		Long:  "Remove stored tokens from the config file. Application settings are kept",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Token = ""
			config.RefreshToken = ""
			config.TokenExpiresAt = nil
			config.LastRefreshed = nil

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

			return nil
		},
	}
}

// rememberBusiness stores the first account and business ids of identity
// unless ids are already configured.
func rememberBusiness(identity *freshbooks.Identity) error {
	config := loadConfig()
	changed := false

	for _, membership := range identity.BusinessMemberships {
		if config.AccountID == "" && membership.Business.AccountID != "" {
			config.AccountID = membership.Business.AccountID
			changed = true
		}

		if config.BusinessID == "" && membership.Business.ID != 0 {
			config.BusinessID = formatID(membership.Business.ID)
			changed = true
		}
	}

	if !changed {
		return nil
	}

	err := saveConfigStruct(config)
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

// promptSecret reads a value without echo when stdin is a terminal.
func promptSecret(out io.Writer, prompt string) (string, error) {
	fd := int(os.Stdin.Fd()) // #nosec G115 -- file descriptors fit in int
	if !term.IsTerminal(fd) {
		return "", constants.ErrMissingClientApp
	}

	_, _ = fmt.Fprint(out, prompt)

	secret, err := term.ReadPassword(fd)
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}

	_, _ = fmt.Fprintln(out)

	return strings.TrimSpace(string(secret)), nil
}
