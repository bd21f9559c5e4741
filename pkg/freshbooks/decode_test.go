package freshbooks_test

import (
	"testing"

	"github.com/fivetwenty-io/freshbooks/pkg/freshbooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEntity(t *testing.T) {
	t.Parallel()

	decode := freshbooks.DecodeEntity(freshbooks.TaxFields, "tax")

	t.Run("nested under envelope field", func(t *testing.T) {
		t.Parallel()

		tax, err := decode(decodeJSON(t, `{"tax": {"id": 5, "name": "GST", "amount": "5", "compound": false}}`))
		require.NoError(t, err)
		assert.Equal(t, int64(5), tax.ID)
		assert.Equal(t, "GST", tax.Name)
		assert.Equal(t, "5", tax.Amount)
	})

	t.Run("bare object", func(t *testing.T) {
		t.Parallel()

		tax, err := decode(decodeJSON(t, `{"id": 6, "name": "HST"}`))
		require.NoError(t, err)
		assert.Equal(t, "HST", tax.Name)
	})

	t.Run("non object payload", func(t *testing.T) {
		t.Parallel()

		_, err := decode([]any{})
		require.ErrorIs(t, err, freshbooks.ErrNotAnObject)
	})

	t.Run("envelope field is not an object", func(t *testing.T) {
		t.Parallel()

		_, err := decode(map[string]any{"tax": "GST"})
		require.ErrorIs(t, err, freshbooks.ErrNotAnObject)
	})
}

func TestDecodeList(t *testing.T) {
	t.Parallel()

	decode := freshbooks.DecodeList(freshbooks.TaxFields, "taxes")

	t.Run("accounting shape", func(t *testing.T) {
		t.Parallel()

		page, err := decode(decodeJSON(t, `{
			"taxes": [{"id": 1, "name": "GST"}, {"id": 2, "name": "PST"}],
			"page": 1, "pages": 1, "per_page": 15, "total": 2
		}`))
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "PST", page.Items[1].Name)
		assert.Equal(t, freshbooks.PaginationMeta{Total: 2, PerPage: 15, Page: 1, Pages: 1}, page.Meta)
	})

	t.Run("result and meta shape", func(t *testing.T) {
		t.Parallel()

		page, err := decode(decodeJSON(t, `{
			"result": [{"id": 3, "name": "VAT"}],
			"meta": {"page": 2, "pages": 4, "per_page": 1, "total": 4}
		}`))
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "VAT", page.Items[0].Name)
		assert.Equal(t, 4, page.Meta.Pages)
		assert.Equal(t, 2, page.Meta.Page)
	})

	t.Run("bare array", func(t *testing.T) {
		t.Parallel()

		page, err := decode([]any{map[string]any{"name": "GST"}})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, freshbooks.PaginationMeta{}, page.Meta)
	})

	t.Run("missing list key yields empty page", func(t *testing.T) {
		t.Parallel()

		page, err := decode(decodeJSON(t, `{"page": 1, "pages": 1, "per_page": 15, "total": 0}`))
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.NotNil(t, page.Items)
	})

	t.Run("meta must be an object", func(t *testing.T) {
		t.Parallel()

		_, err := decode(map[string]any{"result": []any{}, "meta": "x"})
		require.ErrorIs(t, err, freshbooks.ErrNotAnObject)
	})

	t.Run("list items must be objects", func(t *testing.T) {
		t.Parallel()

		_, err := decode(map[string]any{"taxes": []any{"GST"}})
		require.ErrorIs(t, err, freshbooks.ErrNotAnObject)
	})

	t.Run("bad field value", func(t *testing.T) {
		t.Parallel()

		_, err := decode(decodeJSON(t, `{"taxes": [{"id": "one"}]}`))
		require.ErrorIs(t, err, freshbooks.ErrFieldCoercion)
		assert.Contains(t, err.Error(), "taxes")
	})
}
