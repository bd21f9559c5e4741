//go:build integration

package integration

import (
	"strconv"
	"testing"

	"github.com/fivetwenty-io/freshbooks/pkg/freshbooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClientWorkflow_CompleteLifecycle creates, reads, updates, lists and deletes a client
func TestClientWorkflow_CompleteLifecycle(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)
	organization := GenerateTestName("integration-org")

	var created freshbooks.Customer
	require.NoError(t, runner.RunJSON(&created, "clients", "create",
		"--field", "organization="+organization,
		"--field", "email=integration@example.com",
		"--field", "fname=Integration"))
	require.NotZero(t, created.ID)

	id := strconv.FormatInt(created.ID, 10)
	defer runner.CleanupResource("clients", id)

	assert.Equal(t, organization, created.Organization)

	var fetched freshbooks.Customer
	require.NoError(t, runner.RunJSON(&fetched, "clients", "get", id))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "integration@example.com", fetched.Email)

	var updated freshbooks.Customer
	require.NoError(t, runner.RunJSON(&updated, "clients", "update", id, "--field", "lname=Workflow"))
	assert.Equal(t, "Workflow", updated.LastName)

	var listed []freshbooks.Customer
	require.NoError(t, runner.RunJSON(&listed, "clients", "list", "--search", "organization="+organization))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	stdout, _, err := runner.Run("clients", "delete", id, "--force")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Deleted client "+id)
}

// TestTaxWorkflow_ListAllPages walks every page of taxes
func TestTaxWorkflow_ListAllPages(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	var firstPage []freshbooks.Tax
	require.NoError(t, runner.RunJSON(&firstPage, "taxes", "list", "--per-page", "1"))

	var all []freshbooks.Tax
	require.NoError(t, runner.RunJSON(&all, "taxes", "list", "--all", "--per-page", "1"))
	assert.GreaterOrEqual(t, len(all), len(firstPage))
}

// TestWorkflow_NotFound checks that a missing resource surfaces as an error
func TestWorkflow_NotFound(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	_, stderr, err := runner.Run("invoices", "get", "999999999")
	require.Error(t, err)
	assert.Contains(t, stderr, "failed to get invoice")
}

// TestTeamMembersWorkflow lists team members of the configured business
func TestTeamMembersWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	if config.BusinessID == "" {
		t.Skip("FRESHBOOKS_BUSINESS_ID not set")
	}

	runner := NewCommandRunner(config, t)

	var members []freshbooks.TeamMember
	require.NoError(t, runner.RunJSON(&members, "team-members", "list"))

	for _, member := range members {
		assert.Equal(t, config.BusinessID, strconv.FormatInt(member.BusinessID, 10))
	}
}
