package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fivetwenty-io/freshbooks/internal/constants"
	"github.com/fivetwenty-io/freshbooks/pkg/freshbooks"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// resourceCommand describes how one API resource is exposed on the command line.
type resourceCommand[T any] struct {
	use      string
	aliases  []string
	singular string
	plural   string
	// scopeID resolves the account or business id the resource lives under.
	scopeID  func() (string, error)
	accessor func(freshbooks.Client) freshbooks.ResourceClient[T]
	headers  []string
	row      func(T) []string
}

// listOptions holds the query flags shared by list commands.
type listOptions struct {
	page         int
	perPage      int
	all          bool
	sort         string
	descending   bool
	includes     []string
	search       []string
	like         []string
	in           []string
	updatedSince string
}

// dataOptions holds the payload flags shared by create and update.
type dataOptions struct {
	data   string
	file   string
	fields []string
}

func (r *resourceCommand[T]) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     r.use,
		Aliases: r.aliases,
		Short:   "Manage " + r.plural,
		Long:    "List, inspect, create, update and delete FreshBooks " + r.plural,
	}

	cmd.AddCommand(r.listCommand())
	cmd.AddCommand(r.getCommand())
	cmd.AddCommand(r.createCommand())
	cmd.AddCommand(r.updateCommand())
	cmd.AddCommand(r.deleteCommand())

	return cmd
}

func (r *resourceCommand[T]) listCommand() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + r.plural,
		Long:  "List " + r.plural + " with optional search filters, sorting and paging",
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, resources, err := r.resolve()
			if err != nil {
				return err
			}

			builders, err := opts.builders()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var (
				items []T
				meta  *freshbooks.PaginationMeta
			)

			if opts.all {
				items, err = freshbooks.NewPaginationIterator[T](ctx, resources, scope, builders...).All()
				if err != nil {
					return fmt.Errorf("failed to list %s: %w", r.plural, err)
				}
			} else {
				result, err := resources.List(ctx, scope, builders...)
				if err != nil {
					return fmt.Errorf("failed to list %s: %w", r.plural, err)
				}

				items = result.Items
				meta = &result.Meta
			}

			out := cmd.OutOrStdout()

			return printData(out, items, func() error {
				if len(items) == 0 {
					_, _ = fmt.Fprintf(out, "No %s found\n", r.plural)

					return nil
				}

				rows := make([][]string, 0, len(items))
				for _, item := range items {
					rows = append(rows, r.row(item))
				}

				err := renderTable(out, r.headers, rows)
				if err != nil {
					return err
				}

				if meta != nil && meta.Pages > 1 {
					_, _ = fmt.Fprintf(out, "\nShowing page %d of %d (%d total). Use --all to fetch all pages.\n",
						meta.Page, meta.Pages, meta.Total)
				}

				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.page, "page", 1, "page number")
	flags.IntVar(&opts.perPage, "per-page", constants.DefaultListPerPage, "results per page")
	flags.BoolVar(&opts.all, "all", false, "fetch all pages")
	flags.StringVar(&opts.sort, "sort", "", "sort by field")
	flags.BoolVar(&opts.descending, "desc", false, "sort in descending order")
	flags.StringSliceVar(&opts.includes, "include", nil, "related data to include")
	flags.StringArrayVar(&opts.search, "search", nil, "exact match filter, key=value")
	flags.StringArrayVar(&opts.like, "like", nil, "partial match filter, key=value")
	flags.StringArrayVar(&opts.in, "in", nil, "match any of a list, key=v1,v2")
	flags.StringVar(&opts.updatedSince, "updated-since", "", "only entries updated since this date or RFC 3339 time")

	return cmd
}

func (r *resourceCommand[T]) getCommand() *cobra.Command {
	var includes []string

	cmd := &cobra.Command{
		Use:   "get ID",
		Short: "Get " + r.singular + " details",
		Long:  "Display detailed information about a specific " + r.singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, resources, err := r.resolve()
			if err != nil {
				return err
			}

			var includeBuilder *freshbooks.IncludesBuilder
			if len(includes) > 0 {
				includeBuilder = freshbooks.NewIncludesBuilder(includes...)
			}

			item, err := resources.Get(context.Background(), scope, args[0], includeBuilder)
			if err != nil {
				return fmt.Errorf("failed to get %s: %w", r.singular, err)
			}

			return r.printOne(cmd, item)
		},
	}

	cmd.Flags().StringSliceVar(&includes, "include", nil, "related data to include")

	return cmd
}

func (r *resourceCommand[T]) createCommand() *cobra.Command {
	opts := &dataOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create " + article(r.singular),
		Long:  "Create " + article(r.singular) + " from --data, --file or --field values",
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, resources, err := r.resolve()
			if err != nil {
				return err
			}

			data, err := opts.payload()
			if err != nil {
				return err
			}

			item, err := resources.Create(context.Background(), scope, data)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", r.singular, err)
			}

			return r.printOne(cmd, item)
		},
	}

	opts.register(cmd)

	return cmd
}

func (r *resourceCommand[T]) updateCommand() *cobra.Command {
	opts := &dataOptions{}

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update " + article(r.singular),
		Long:  "Update an existing " + r.singular + " from --data, --file or --field values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, resources, err := r.resolve()
			if err != nil {
				return err
			}

			data, err := opts.payload()
			if err != nil {
				return err
			}

			item, err := resources.Update(context.Background(), scope, args[0], data)
			if err != nil {
				return fmt.Errorf("failed to update %s: %w", r.singular, err)
			}

			return r.printOne(cmd, item)
		},
	}

	opts.register(cmd)

	return cmd
}

func (r *resourceCommand[T]) deleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete " + article(r.singular),
		Long:  "Delete " + article(r.singular) + ". Asks for confirmation unless --force is given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Really delete %s %s? [y/N]: ", r.singular, args[0])

				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				answer = strings.ToLower(strings.TrimSpace(answer))

				if answer != "y" && answer != Yes {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Delete cancelled")

					return nil
				}
			}

			scope, resources, err := r.resolve()
			if err != nil {
				return err
			}

			_, err = resources.Delete(context.Background(), scope, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete %s: %w", r.singular, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", r.singular, args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func (r *resourceCommand[T]) resolve() (string, freshbooks.ResourceClient[T], error) {
	scope, err := r.scopeID()
	if err != nil {
		return "", nil, err
	}

	cli, err := CreateClient()
	if err != nil {
		return "", nil, err
	}

	return scope, r.accessor(cli), nil
}

func (r *resourceCommand[T]) printOne(cmd *cobra.Command, item *T) error {
	out := cmd.OutOrStdout()

	return printData(out, item, func() error {
		row := r.row(*item)

		pairs := make([][2]string, 0, len(r.headers))
		for i, header := range r.headers {
			pairs = append(pairs, [2]string{header, row[i]})
		}

		return renderKeyValues(out, pairs)
	})
}

// builders turns the list flags into query builders.
func (o *listOptions) builders() ([]freshbooks.QueryBuilder, error) {
	builders := []freshbooks.QueryBuilder{freshbooks.NewPaginateBuilder(o.page, o.perPage)}

	filter := freshbooks.NewFilterBuilder()
	hasFilter := false

	for _, expr := range o.search {
		key, value, err := splitFilter(expr)
		if err != nil {
			return nil, err
		}

		filter.Equals(key, value)

		hasFilter = true
	}

	for _, expr := range o.like {
		key, value, err := splitFilter(expr)
		if err != nil {
			return nil, err
		}

		filter.Like(key, value)

		hasFilter = true
	}

	for _, expr := range o.in {
		key, value, err := splitFilter(expr)
		if err != nil {
			return nil, err
		}

		var values []any
		for _, v := range strings.Split(value, ",") {
			values = append(values, strings.TrimSpace(v))
		}

		filter.InList(key, values...)

		hasFilter = true
	}

	if o.updatedSince != "" {
		since, err := parseSince(o.updatedSince)
		if err != nil {
			return nil, err
		}

		filter.DateTime("updated_since", since)

		hasFilter = true
	}

	if hasFilter {
		builders = append(builders, filter)
	}

	if o.sort != "" {
		sort := freshbooks.NewSortBuilder("")
		if o.descending {
			sort.Descending(o.sort)
		} else {
			sort.Ascending(o.sort)
		}

		builders = append(builders, sort)
	}

	if len(o.includes) > 0 {
		builders = append(builders, freshbooks.NewIncludesBuilder(o.includes...))
	}

	return builders, nil
}

func splitFilter(expr string) (string, string, error) {
	key, value, ok := strings.Cut(expr, "=")
	key = strings.TrimSpace(key)

	if !ok || key == "" {
		return "", "", fmt.Errorf("%w: %q, expected key=value", constants.ErrUnsupportedFilter, expr)
	}

	return key, value, nil
}

func parseSince(value string) (time.Time, error) {
	since, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return since, nil
	}

	since, err = time.Parse(freshbooks.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: updated-since %q is not a date", constants.ErrUnsupportedFilter, value)
	}

	return since, nil
}

func (o *dataOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.data, "data", "", "JSON object with the fields to send")
	cmd.Flags().StringVar(&o.file, "file", "", "JSON or YAML file with the fields to send")
	cmd.Flags().StringArrayVar(&o.fields, "field", nil, "single field, key=value (repeatable)")
}

// payload merges --file, --data and --field, later sources winning.
func (o *dataOptions) payload() (map[string]any, error) {
	data := map[string]any{}

	if o.file != "" {
		// #nosec G304 -- the path is supplied by the user running the CLI
		content, err := os.ReadFile(o.file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", o.file, err)
		}

		var fromFile map[string]any

		err = yaml.Unmarshal(content, &fromFile)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", o.file, err)
		}

		for key, value := range fromFile {
			data[key] = value
		}
	}

	if o.data != "" {
		var fromData map[string]any

		err := json.Unmarshal([]byte(o.data), &fromData)
		if err != nil {
			return nil, fmt.Errorf("parsing --data: %w", err)
		}

		for key, value := range fromData {
			data[key] = value
		}
	}

	for _, field := range o.fields {
		key, value, ok := strings.Cut(field, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidFieldValue, field)
		}

		data[strings.TrimSpace(key)] = value
	}

	return data, nil
}

func article(noun string) string {
	if noun != "" && strings.ContainsRune("aeiou", rune(noun[0])) {
		return "an " + noun
	}

	return "a " + noun
}
