package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fivetwenty-io/freshbooks/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ConfigDirName is the directory under $HOME holding the CLI config.
const ConfigDirName = ".freshbooks"

// Config represents the CLI configuration.
type Config struct {
	APIBaseURL   string `json:"api_base_url,omitempty"  yaml:"api_base_url,omitempty"`
	AuthBaseURL  string `json:"auth_base_url,omitempty" yaml:"auth_base_url,omitempty"`
	ClientID     string `json:"client_id,omitempty"     yaml:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty" yaml:"client_secret,omitempty"`
	RedirectURI  string `json:"redirect_uri,omitempty"  yaml:"redirect_uri,omitempty"`

	Token          string     `json:"token,omitempty"            yaml:"token,omitempty"`
	RefreshToken   string     `json:"refresh_token,omitempty"    yaml:"refresh_token,omitempty"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty" yaml:"token_expires_at,omitempty"`
	LastRefreshed  *time.Time `json:"last_refreshed,omitempty"   yaml:"last_refreshed,omitempty"`

	AccountID  string `json:"account_id,omitempty"  yaml:"account_id,omitempty"`
	BusinessID string `json:"business_id,omitempty" yaml:"business_id,omitempty"`

	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// configKeys maps settable keys onto their Config field.
var configKeys = map[string]func(*Config) *string{
	"api_base_url":  func(c *Config) *string { return &c.APIBaseURL },
	"auth_base_url": func(c *Config) *string { return &c.AuthBaseURL },
	"client_id":     func(c *Config) *string { return &c.ClientID },
	"client_secret": func(c *Config) *string { return &c.ClientSecret },
	"redirect_uri":  func(c *Config) *string { return &c.RedirectURI },
	"token":         func(c *Config) *string { return &c.Token },
	"refresh_token": func(c *Config) *string { return &c.RefreshToken },
	"account_id":    func(c *Config) *string { return &c.AccountID },
	"business_id":   func(c *Config) *string { return &c.BusinessID },
	"output":        func(c *Config) *string { return &c.Output },
}

// secretKeys are masked by config show.
var secretKeys = map[string]bool{
	"client_secret": true,
	"token":         true,
	"refresh_token": true,
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage FreshBooks CLI configuration including credentials and defaults",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	var showSecrets bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration. Secrets are masked unless --show-secrets is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if !showSecrets {
				config = maskSecrets(config)
			}

			return printData(cmd.OutOrStdout(), config, func() error {
				return renderKeyValues(cmd.OutOrStdout(), configRows(config))
			})
		},
	}

	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "print tokens and the client secret")

	return cmd
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + strings.Join(sortedConfigKeys(), ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			value := args[1]
			if secretKeys[args[0]] {
				value = Masked
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], value)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], "")
			if err != nil {
				return err
			}

			if args[0] == "token" {
				config.TokenExpiresAt = nil
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

func setConfigValue(config *Config, key, value string) error {
	field, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	*field(config) = value

	return nil
}

func sortedConfigKeys() []string {
	keys := make([]string, 0, len(configKeys))
	for key := range configKeys {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// loadConfig reads the configuration from viper, so flags and FRESHBOOKS_*
// environment variables take precedence over the file.
func loadConfig() *Config {
	config := &Config{
		APIBaseURL:   viper.GetString("api_base_url"),
		AuthBaseURL:  viper.GetString("auth_base_url"),
		ClientID:     viper.GetString("client_id"),
		ClientSecret: viper.GetString("client_secret"),
		RedirectURI:  viper.GetString("redirect_uri"),
		Token:        viper.GetString("token"),
		RefreshToken: viper.GetString("refresh_token"),
		AccountID:    viper.GetString("account_id"),
		BusinessID:   viper.GetString("business_id"),
		Output:       viper.GetString("output"),
	}

	if viper.IsSet("token_expires_at") {
		expiresAt := viper.GetTime("token_expires_at")
		if !expiresAt.IsZero() {
			config.TokenExpiresAt = &expiresAt
		}
	}

	if viper.IsSet("last_refreshed") {
		refreshed := viper.GetTime("last_refreshed")
		if !refreshed.IsZero() {
			config.LastRefreshed = &refreshed
		}
	}

	return config
}

// configFilePath is the file in use, or ~/.freshbooks/config.yml.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ConfigDirName, "config.yml"), nil
}

// saveConfigStruct writes config as YAML and reloads it into viper.
func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	viper.SetConfigFile(configFile)

	err = viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}

	return nil
}

func maskSecrets(config *Config) *Config {
	masked := *config
	for key := range secretKeys {
		field := configKeys[key](&masked)
		if *field != "" {
			*field = Masked
		}
	}

	return &masked
}

func configRows(config *Config) [][2]string {
	rows := make([][2]string, 0, len(configKeys)+2)
	for _, key := range sortedConfigKeys() {
		rows = append(rows, [2]string{key, *configKeys[key](config)})
	}

	if config.TokenExpiresAt != nil {
		rows = append(rows, [2]string{"token_expires_at", config.TokenExpiresAt.Format(time.RFC3339)})
	}

	if config.LastRefreshed != nil {
		rows = append(rows, [2]string{"last_refreshed", config.LastRefreshed.Format(time.RFC3339)})
	}

	return rows
}
