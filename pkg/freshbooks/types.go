package freshbooks

import (
	"fmt"
)

// Wire layouts used by the API.
const (
	// DateLayout is the layout of calendar dates such as create_date.
	DateLayout = "2006-01-02"

	// AccountingTimeLayout is the layout of accounting timestamps such as updated.
	AccountingTimeLayout = "2006-01-02 15:04:05"
)

// PaginationMeta describes one page of a list response.
type PaginationMeta struct {
	Total   int `json:"total"    yaml:"total"`
	PerPage int `json:"per_page" yaml:"per_page"`
	Page    int `json:"page"     yaml:"page"`
	Pages   int `json:"pages"    yaml:"pages"`
}

// ListResult is a page of entities plus its pagination metadata.
type ListResult[T any] struct {
	Items []T            `json:"items" yaml:"items"`
	Meta  PaginationMeta `json:"meta"  yaml:"meta"`
}

// ComputePages derives the page count the way the API does when it omits
// "pages": floor(total / perPage) + 1. This over-counts by one when total is
// an exact multiple of perPage and is kept for compatibility. A non-positive
// perPage yields a single page.
func ComputePages(total, perPage int) int {
	if perPage <= 0 {
		return 1
	}

	return total/perPage + 1
}

// paginationFields maps the meta keys onto PaginationMeta.
var paginationFields = FieldMap[PaginationMeta]{
	IntField("total", "Total", func(m *PaginationMeta) *int { return &m.Total }),
	IntField("per_page", "PerPage", func(m *PaginationMeta) *int { return &m.PerPage }),
	IntField("page", "Page", func(m *PaginationMeta) *int { return &m.Page }),
	IntField("pages", "Pages", func(m *PaginationMeta) *int { return &m.Pages }),
}

// DecodePaginationMeta reads total, per_page, page and pages from data.
func DecodePaginationMeta(data map[string]any) (PaginationMeta, error) {
	meta, err := paginationFields.Decode(data)
	if err != nil {
		return PaginationMeta{}, fmt.Errorf("decoding pagination: %w", err)
	}

	return *meta, nil
}

// VisState is the visibility of an accounting entity.
type VisState int

// Visibility states.
const (
	VisStateActive   VisState = 0
	VisStateDeleted  VisState = 1
	VisStateArchived VisState = 2
)

// String implements fmt.Stringer.
func (v VisState) String() string {
	switch v {
	case VisStateActive:
		return "active"
	case VisStateDeleted:
		return "deleted"
	case VisStateArchived:
		return "archived"
	default:
		return fmt.Sprintf("vis_state(%d)", int(v))
	}
}

// Money is an amount in a currency. Amounts stay decimal strings to avoid
// float rounding.
type Money struct {
	Amount string `json:"amount" yaml:"amount"`
	Code   string `json:"code"   yaml:"code"`
}

// String implements fmt.Stringer.
func (m Money) String() string {
	if m.Code == "" {
		return m.Amount
	}

	return m.Amount + " " + m.Code
}
