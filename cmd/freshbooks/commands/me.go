package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewMeCommand creates the me command.
func NewMeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "me",
		Aliases: []string{"whoami"},
		Short:   "Show the authenticated user",
		Long:    "Display the identity behind the current token and the businesses it belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := CreateClient()
			if err != nil {
				return err
			}

			identity, err := cli.CurrentUser(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get current user: %w", err)
			}

			out := cmd.OutOrStdout()

			return printData(out, identity, func() error {
				err := renderKeyValues(out, [][2]string{
					{"Identity ID", formatID(identity.IdentityID)},
					{"Name", fullName(identity.FirstName, identity.LastName)},
					{"Email", identity.Email},
					{"Language", identity.Language},
					{"Timezone", identity.Timezone},
					{"Created", formatTimestamp(identity.CreatedAt)},
				})
				if err != nil {
					return err
				}

				if len(identity.BusinessMemberships) == 0 {
					return nil
				}

				_, _ = fmt.Fprintln(out, "\nBusinesses:")

				rows := make([][]string, 0, len(identity.BusinessMemberships))
				for _, membership := range identity.BusinessMemberships {
					rows = append(rows, []string{
						formatID(membership.Business.ID),
						membership.Business.Name,
						membership.Business.AccountID,
						titleCase(membership.Role),
					})
				}

				return renderTable(out, []string{"Business ID", "Name", "Account ID", "Role"}, rows)
			})
		},
	}
}
