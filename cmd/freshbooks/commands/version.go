package commands

import (
	"github.com/fivetwenty-io/freshbooks/pkg/freshbooks"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the FreshBooks CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			type VersionInfo struct {
				Version    string `json:"version"     yaml:"version"`
				Commit     string `json:"commit"      yaml:"commit"`
				Built      string `json:"built"       yaml:"built"`
				SDKVersion string `json:"sdk_version" yaml:"sdk_version"`
			}

			versionInfo := VersionInfo{
				Version:    version,
				Commit:     commit,
				Built:      date,
				SDKVersion: freshbooks.Version,
			}

			out := cmd.OutOrStdout()

			return printData(out, versionInfo, func() error {
				return renderKeyValues(out, [][2]string{
					{"Version", version},
					{"Commit", commit},
					{"Built", date},
					{"SDK Version", freshbooks.Version},
				})
			})
		},
	}
}
