package commands

import (
	"github.com/fivetwenty-io/freshbooks/pkg/freshbooks"
	"github.com/spf13/cobra"
)

// NewTeamMembersCommand creates the team-members command group. Team members
// live under a business rather than an accounting account.
func NewTeamMembersCommand() *cobra.Command {
	resource := &resourceCommand[freshbooks.TeamMember]{
		use:      "team-members",
		aliases:  []string{"team-member", "team"},
		singular: "team member",
		plural:   "team members",
		scopeID:  businessID,
		accessor: func(c freshbooks.Client) freshbooks.ResourceClient[freshbooks.TeamMember] { return c.TeamMembers() },
		headers:  []string{"UUID", "Name", "Email", "Job Title", "Role", "Active", "Business ID"},
		row: func(m freshbooks.TeamMember) []string {
			return []string{
				m.UUID.String(),
				fullName(m.FirstName, m.MiddleName, m.LastName),
				m.Email,
				m.JobTitle,
				titleCase(m.BusinessRoleName),
				formatBool(m.Active),
				formatID(m.BusinessID),
			}
		},
	}

	return resource.command()
}
