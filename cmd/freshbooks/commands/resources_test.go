package commands

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fivetwenty-io/freshbooks/internal/constants"
	"github.com/fivetwenty-io/freshbooks/pkg/freshbooks"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceCommands(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *cobra.Command
		use     string
		aliases []string
	}{
		{"clients", NewClientsCommand, "clients", []string{"client", "customers"}},
		{"invoices", NewInvoicesCommand, "invoices", []string{"invoice", "inv"}},
		{"payments", NewPaymentsCommand, "payments", []string{"payment"}},
		{"taxes", NewTaxesCommand, "taxes", []string{"tax"}},
		{"team members", NewTeamMembersCommand, "team-members", []string{"team-member", "team"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := tt.build()
			assert.Equal(t, tt.use, cmd.Use)
			assert.Equal(t, tt.aliases, cmd.Aliases)

			for _, name := range []string{"list", "get", "create", "update", "delete"} {
				assert.NotNil(t, findSubcommand(cmd, name), "missing subcommand %s", name)
			}

			list := findSubcommand(cmd, "list")
			for _, flag := range []string{"page", "per-page", "all", "sort", "desc", "include", "search", "like", "in", "updated-since"} {
				assert.NotNil(t, list.Flags().Lookup(flag), "missing list flag %s", flag)
			}

			deleteCmd := findSubcommand(cmd, "delete")
			forceFlag := deleteCmd.Flags().Lookup("force")
			require.NotNil(t, forceFlag)
			assert.Equal(t, "f", forceFlag.Shorthand)
			assert.Equal(t, "false", forceFlag.DefValue)

			for _, name := range []string{"create", "update"} {
				sub := findSubcommand(cmd, name)
				for _, flag := range []string{"data", "file", "field"} {
					assert.NotNil(t, sub.Flags().Lookup(flag), "missing %s flag %s", name, flag)
				}
			}
		})
	}
}

func TestListOptions_Builders(t *testing.T) {
	tests := []struct {
		name     string
		opts     listOptions
		expected string
		err      error
	}{
		{
			name:     "paging only",
			opts:     listOptions{page: 2, perPage: 10},
			expected: "?page=2&per_page=10",
		},
		{
			name: "filters sort and includes",
			opts: listOptions{
				page:       1,
				perPage:    25,
				search:     []string{"email=a@b.test"},
				like:       []string{"organization=acme"},
				in:         []string{"clientids=1, 2"},
				sort:       "create_date",
				descending: true,
				includes:   []string{"lines"},
			},
			expected: "?page=1&per_page=25" +
				"&search%5Bemail%5D=a%40b.test" +
				"&search%5Borganization_like%5D=acme" +
				"&search%5Bclientids%5D%5B%5D=1&search%5Bclientids%5D%5B%5D=2" +
				"&sort=create_date_desc&include%5B%5D=lines",
		},
		{
			name:     "updated since date",
			opts:     listOptions{page: 1, perPage: 25, updatedSince: "2024-01-02"},
			expected: "?page=1&per_page=25&search%5Bupdated_since%5D=2024-01-02T00%3A00%3A00Z",
		},
		{
			name: "filter without value separator",
			opts: listOptions{page: 1, perPage: 25, search: []string{"email"}},
			err:  constants.ErrUnsupportedFilter,
		},
		{
			name: "bad updated since",
			opts: listOptions{page: 1, perPage: 25, updatedSince: "last week"},
			err:  constants.ErrUnsupportedFilter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builders, err := tt.opts.builders()
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, freshbooks.BuildQueryString(builders...))
		})
	}
}

func TestDataOptions_Payload(t *testing.T) {
	file := filepath.Join(t.TempDir(), "client.yml")
	require.NoError(t, os.WriteFile(file, []byte("organization: From File\nemail: file@example.com\naddress:\n  city: Toronto\n"), 0o600))

	opts := &dataOptions{
		file:   file,
		data:   `{"email": "data@example.com", "allow_late_fees": true}`,
		fields: []string{"fname=Ada"},
	}

	data, err := opts.payload()
	require.NoError(t, err)
	assert.Equal(t, "From File", data["organization"])
	assert.Equal(t, "data@example.com", data["email"])
	assert.Equal(t, true, data["allow_late_fees"])
	assert.Equal(t, "Ada", data["fname"])
	assert.Equal(t, map[string]any{"city": "Toronto"}, data["address"])

	_, err = (&dataOptions{fields: []string{"=oops"}}).payload()
	require.ErrorIs(t, err, constants.ErrInvalidFieldValue)

	_, err = (&dataOptions{data: "not json"}).payload()
	require.Error(t, err)
}

func newTaxServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer cli-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/accounting/account/acct/taxes/taxes":
			assert.Equal(t, "page=1&per_page=5", r.URL.RawQuery)
			_, _ = w.Write([]byte(`{"response":{"result":{
				"taxes": [{"id": 1, "name": "GST", "amount": "5"}, {"id": 2, "name": "PST", "amount": "7"}],
				"page": 1, "pages": 1, "per_page": 5, "total": 2
			}}}`))
		case r.Method == http.MethodGet && r.URL.Path == "/accounting/account/acct/taxes/taxes/1":
			_, _ = w.Write([]byte(`{"response":{"result":{"tax":{"id": 1, "name": "GST", "amount": "5", "compound": true}}}}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	return server
}

func TestTaxesListCommand_JSON(t *testing.T) {
	useTempConfig(t)

	server := newTaxServer(t)
	viper.Set("api_base_url", server.URL)
	viper.Set("token", "cli-token")
	viper.Set("account_id", "acct")
	viper.Set("output", "json")

	out, err := execute(NewTaxesCommand(), nil, "list", "--per-page", "5")
	require.NoError(t, err)

	var taxes []freshbooks.Tax
	require.NoError(t, json.Unmarshal([]byte(out), &taxes))
	require.Len(t, taxes, 2)
	assert.Equal(t, "GST", taxes[0].Name)
	assert.Equal(t, "7", taxes[1].Amount)
}

func TestTaxesGetCommand_Table(t *testing.T) {
	useTempConfig(t)

	server := newTaxServer(t)
	viper.Set("api_base_url", server.URL)
	viper.Set("token", "cli-token")
	viper.Set("account_id", "acct")
	viper.Set("output", "table")

	out, err := execute(NewTaxesCommand(), nil, "get", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "GST")
	assert.Contains(t, out, Yes)
}

func TestResourceCommand_MissingScope(t *testing.T) {
	useTempConfig(t)
	viper.Set("token", "cli-token")

	_, err := execute(NewInvoicesCommand(), nil, "list")
	require.ErrorIs(t, err, constants.ErrNoAccountID)

	_, err = execute(NewTeamMembersCommand(), nil, "list")
	require.ErrorIs(t, err, constants.ErrNoBusinessID)
}

func TestResourceCommand_NoToken(t *testing.T) {
	useTempConfig(t)
	viper.Set("account_id", "acct")

	_, err := execute(NewClientsCommand(), nil, "list")
	require.ErrorIs(t, err, constants.ErrNoAccessToken)
}

func TestDeleteCommand_Cancelled(t *testing.T) {
	useTempConfig(t)

	out, err := execute(NewPaymentsCommand(), strings.NewReader("n\n"), "delete", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "Really delete payment 42?")
	assert.Contains(t, out, "Delete cancelled")
}

func TestArticle(t *testing.T) {
	assert.Equal(t, "an invoice", article("invoice"))
	assert.Equal(t, "a tax", article("tax"))
}
