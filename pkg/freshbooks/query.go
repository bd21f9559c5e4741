package freshbooks

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// MaxPerPage is the largest page size the API honours.
const MaxPerPage = 100

// QueryParam is a single rendered query-string pair.
type QueryParam struct {
	Key   string
	Value string
}

// QueryBuilder contributes parameters to a request query string.
type QueryBuilder interface {
	Render() []QueryParam
}

// BuildQueryString renders every builder, in order, into a percent-encoded
// query string prefixed with "?". Nil builders contribute nothing. It returns
// an empty string when there is nothing to render.
func BuildQueryString(builders ...QueryBuilder) string {
	var parts []string

	for _, builder := range builders {
		if isNilBuilder(builder) {
			continue
		}

		for _, param := range builder.Render() {
			parts = append(parts, url.QueryEscape(param.Key)+"="+url.QueryEscape(param.Value))
		}
	}

	if len(parts) == 0 {
		return ""
	}

	return "?" + strings.Join(parts, "&")
}

// isNilBuilder catches typed nil pointers stored in the interface.
func isNilBuilder(builder QueryBuilder) bool {
	switch b := builder.(type) {
	case nil:
		return true
	case *PaginateBuilder:
		return b == nil
	case *IncludesBuilder:
		return b == nil
	case *SortBuilder:
		return b == nil
	case *FilterBuilder:
		return b == nil
	default:
		return false
	}
}

// PaginateBuilder renders page and per_page.
type PaginateBuilder struct {
	Page    int
	PerPage int
}

// NewPaginateBuilder creates a pagination builder. Negative values are raised
// to 1, perPage is capped at MaxPerPage and zero values are left unset.
func NewPaginateBuilder(page, perPage int) *PaginateBuilder {
	return (&PaginateBuilder{}).WithPage(page).WithPerPage(perPage)
}

// WithPage sets the page number.
func (b *PaginateBuilder) WithPage(page int) *PaginateBuilder {
	if page < 0 {
		page = 1
	}

	b.Page = page

	return b
}

// WithPerPage sets the page size.
func (b *PaginateBuilder) WithPerPage(perPage int) *PaginateBuilder {
	switch {
	case perPage < 0:
		perPage = 1
	case perPage > MaxPerPage:
		perPage = MaxPerPage
	}

	b.PerPage = perPage

	return b
}

// Render implements QueryBuilder.
func (b *PaginateBuilder) Render() []QueryParam {
	var params []QueryParam
	if b.Page > 0 {
		params = append(params, QueryParam{Key: "page", Value: strconv.Itoa(b.Page)})
	}

	if b.PerPage > 0 {
		params = append(params, QueryParam{Key: "per_page", Value: strconv.Itoa(b.PerPage)})
	}

	return params
}

// IncludesBuilder requests related data be embedded in the response.
type IncludesBuilder struct {
	Includes []string
}

// NewIncludesBuilder creates an includes builder.
func NewIncludesBuilder(includes ...string) *IncludesBuilder {
	return &IncludesBuilder{Includes: includes}
}

// Include appends more includes.
func (b *IncludesBuilder) Include(includes ...string) *IncludesBuilder {
	b.Includes = append(b.Includes, includes...)

	return b
}

// Render implements QueryBuilder.
func (b *IncludesBuilder) Render() []QueryParam {
	params := make([]QueryParam, 0, len(b.Includes))
	for _, include := range b.Includes {
		params = append(params, QueryParam{Key: "include[]", Value: include})
	}

	return params
}

// SortBuilder orders list results by one field.
type SortBuilder struct {
	Field string
	Desc  bool
}

// NewSortBuilder creates an ascending sort on field.
func NewSortBuilder(field string) *SortBuilder {
	return &SortBuilder{Field: field}
}

// Ascending sorts by field in ascending order.
func (b *SortBuilder) Ascending(field string) *SortBuilder {
	b.Field = field
	b.Desc = false

	return b
}

// Descending sorts by field in descending order.
func (b *SortBuilder) Descending(field string) *SortBuilder {
	b.Field = field
	b.Desc = true

	return b
}

// Render implements QueryBuilder.
func (b *SortBuilder) Render() []QueryParam {
	if b.Field == "" {
		return nil
	}

	direction := "_asc"
	if b.Desc {
		direction = "_desc"
	}

	return []QueryParam{{Key: "sort", Value: b.Field + direction}}
}

// FilterBuilder accumulates search filters in the order they are added.
type FilterBuilder struct {
	params []QueryParam
}

// NewFilterBuilder creates an empty filter builder.
func NewFilterBuilder() *FilterBuilder {
	return &FilterBuilder{}
}

func searchKey(field string) string {
	return "search[" + field + "]"
}

// Equals filters for field == value.
func (b *FilterBuilder) Equals(field string, value any) *FilterBuilder {
	b.params = append(b.params, QueryParam{Key: searchKey(field), Value: formatFilterValue(value)})

	return b
}

// InList filters for field matching any of values.
func (b *FilterBuilder) InList(field string, values ...any) *FilterBuilder {
	for _, value := range values {
		b.params = append(b.params, QueryParam{Key: searchKey(field) + "[]", Value: formatFilterValue(value)})
	}

	return b
}

// Like filters for a partial match on field.
func (b *FilterBuilder) Like(field, value string) *FilterBuilder {
	b.params = append(b.params, QueryParam{Key: searchKey(field + "_like"), Value: value})

	return b
}

// Between filters for min <= field <= max. A nil bound is omitted.
func (b *FilterBuilder) Between(field string, minValue, maxValue any) *FilterBuilder {
	if minValue != nil {
		b.params = append(b.params, QueryParam{Key: searchKey(field + "_min"), Value: formatFilterValue(minValue)})
	}

	if maxValue != nil {
		b.params = append(b.params, QueryParam{Key: searchKey(field + "_max"), Value: formatFilterValue(maxValue)})
	}

	return b
}

// Boolean filters on a boolean field. These are not search-scoped.
func (b *FilterBuilder) Boolean(field string, value bool) *FilterBuilder {
	b.params = append(b.params, QueryParam{Key: field, Value: strconv.FormatBool(value)})

	return b
}

// DateTime filters on a timestamp field.
func (b *FilterBuilder) DateTime(field string, value time.Time) *FilterBuilder {
	b.params = append(b.params, QueryParam{Key: searchKey(field), Value: value.Format(time.RFC3339)})

	return b
}

// Date filters on a calendar date field.
func (b *FilterBuilder) Date(field string, value time.Time) *FilterBuilder {
	b.params = append(b.params, QueryParam{Key: searchKey(field), Value: value.Format(DateLayout)})

	return b
}

// Render implements QueryBuilder.
func (b *FilterBuilder) Render() []QueryParam {
	out := make([]QueryParam, len(b.params))
	copy(out, b.params)

	return out
}

func formatFilterValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(DateLayout)
	case VisState:
		return strconv.Itoa(int(v))
	default:
		return fmt.Sprint(v)
	}
}
