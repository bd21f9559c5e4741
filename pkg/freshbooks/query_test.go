package freshbooks_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/fivetwenty-io/freshbooks/pkg/freshbooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for detailed testing
func TestBuildQueryString(t *testing.T) {
	t.Parallel()

	var nilPaginate *freshbooks.PaginateBuilder

	tests := []struct {
		name     string
		builders []freshbooks.QueryBuilder
		expected string
	}{
		{
			name:     "no builders",
			builders: nil,
			expected: "",
		},
		{
			name:     "nil builders are skipped",
			builders: []freshbooks.QueryBuilder{nil, nilPaginate},
			expected: "",
		},
		{
			name:     "pagination",
			builders: []freshbooks.QueryBuilder{freshbooks.NewPaginateBuilder(2, 50)},
			expected: "?page=2&per_page=50",
		},
		{
			name:     "per page is capped",
			builders: []freshbooks.QueryBuilder{freshbooks.NewPaginateBuilder(1, 500)},
			expected: "?page=1&per_page=100",
		},
		{
			name:     "includes",
			builders: []freshbooks.QueryBuilder{freshbooks.NewIncludesBuilder("lines", "allowed_gateways")},
			expected: "?include%5B%5D=lines&include%5B%5D=allowed_gateways",
		},
		{
			name:     "sort descending",
			builders: []freshbooks.QueryBuilder{freshbooks.NewSortBuilder("").Descending("invoice_date")},
			expected: "?sort=invoice_date_desc",
		},
		{
			name:     "empty sort renders nothing",
			builders: []freshbooks.QueryBuilder{freshbooks.NewSortBuilder("")},
			expected: "",
		},
		{
			name: "builders compose in order",
			builders: []freshbooks.QueryBuilder{
				freshbooks.NewFilterBuilder().Equals("userid", 1),
				freshbooks.NewPaginateBuilder(3, 10),
			},
			expected: "?search%5Buserid%5D=1&page=3&per_page=10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, freshbooks.BuildQueryString(tt.builders...))
		})
	}
}

//nolint:funlen // Test functions can be longer for detailed testing
func TestFilterBuilder_Render(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, time.February, 29, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filter   *freshbooks.FilterBuilder
		expected []freshbooks.QueryParam
	}{
		{
			name:     "equals",
			filter:   freshbooks.NewFilterBuilder().Equals("email", "a@b.test"),
			expected: []freshbooks.QueryParam{{Key: "search[email]", Value: "a@b.test"}},
		},
		{
			name:   "in list",
			filter: freshbooks.NewFilterBuilder().InList("clientids", 1, 2, 3),
			expected: []freshbooks.QueryParam{
				{Key: "search[clientids][]", Value: "1"},
				{Key: "search[clientids][]", Value: "2"},
				{Key: "search[clientids][]", Value: "3"},
			},
		},
		{
			name:     "like",
			filter:   freshbooks.NewFilterBuilder().Like("organization", "acme"),
			expected: []freshbooks.QueryParam{{Key: "search[organization_like]", Value: "acme"}},
		},
		{
			name:   "between",
			filter: freshbooks.NewFilterBuilder().Between("amount", 10, 99.5),
			expected: []freshbooks.QueryParam{
				{Key: "search[amount_min]", Value: "10"},
				{Key: "search[amount_max]", Value: "99.5"},
			},
		},
		{
			name:     "between with open upper bound",
			filter:   freshbooks.NewFilterBuilder().Between("amount", 10, nil),
			expected: []freshbooks.QueryParam{{Key: "search[amount_min]", Value: "10"}},
		},
		{
			name:     "boolean",
			filter:   freshbooks.NewFilterBuilder().Boolean("complete", false),
			expected: []freshbooks.QueryParam{{Key: "complete", Value: "false"}},
		},
		{
			name:     "date time",
			filter:   freshbooks.NewFilterBuilder().DateTime("updated_since", date),
			expected: []freshbooks.QueryParam{{Key: "search[updated_since]", Value: "2024-02-29T13:45:00Z"}},
		},
		{
			name:     "date",
			filter:   freshbooks.NewFilterBuilder().Date("date_min", date),
			expected: []freshbooks.QueryParam{{Key: "search[date_min]", Value: "2024-02-29"}},
		},
		{
			name:     "vis state",
			filter:   freshbooks.NewFilterBuilder().Equals("vis_state", freshbooks.VisStateArchived),
			expected: []freshbooks.QueryParam{{Key: "search[vis_state]", Value: "2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.filter.Render())
		})
	}
}

func TestBuildQueryString_RoundTrip(t *testing.T) {
	t.Parallel()

	filter := freshbooks.NewFilterBuilder().
		Equals("email", "ops+billing@example.com").
		InList("invoiceids", 7, 8).
		Like("organization", "A & B Ltd").
		Boolean("archived", true)
	paginate := freshbooks.NewPaginateBuilder(4, 25)
	includes := freshbooks.NewIncludesBuilder("lines")
	sort := freshbooks.NewSortBuilder("create_date")

	builders := []freshbooks.QueryBuilder{filter, paginate, includes, sort}

	query := freshbooks.BuildQueryString(builders...)
	require.NotEmpty(t, query)
	assert.Equal(t, "?", query[:1])

	parsed, err := url.ParseQuery(query[1:])
	require.NoError(t, err)

	expected := url.Values{}
	for _, builder := range builders {
		for _, param := range builder.Render() {
			expected.Add(param.Key, param.Value)
		}
	}

	assert.Equal(t, expected, parsed)
	assert.Equal(t, []string{"7", "8"}, parsed["search[invoiceids][]"])
	assert.Equal(t, "A & B Ltd", parsed.Get("search[organization_like]"))
	assert.Equal(t, "ops+billing@example.com", parsed.Get("search[email]"))
}

func TestFilterBuilder_RenderReturnsCopy(t *testing.T) {
	t.Parallel()

	filter := freshbooks.NewFilterBuilder().Equals("a", "1")

	rendered := filter.Render()
	rendered[0].Value = "changed"

	assert.Equal(t, "1", filter.Render()[0].Value)
}
