package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/fivetwenty-io/freshbooks/pkg/freshbooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResource_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns the decoded result", func(t *testing.T) {
		t.Parallel()

		server := newStubServer(t, http.StatusOK, `{"response":{"result":{"id":"1"}}}`)
		client := NewTestClient(server.URL)

		customer, err := client.Clients().Get(context.Background(), "abc123", "1", nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), customer.ID)

		req := server.lastRequest(t)
		assert.Equal(t, "GET", req.Method)
		assert.Equal(t, "/accounting/account/abc123/users/clients/1", req.Path)
		assert.Empty(t, req.RawQuery)
	})

	t.Run("unwraps the entity field", func(t *testing.T) {
		t.Parallel()

		server := newStubServer(t, http.StatusOK, `{"response":{"result":{"client":{
			"id": 30001, "organization": "Acme", "email": "ap@acme.test",
			"vis_state": 0, "updated": "2024-03-01 10:20:30", "allow_late_fees": true
		}}}}`)
		client := NewTestClient(server.URL)

		customer, err := client.Clients().Get(context.Background(), "abc123", "30001", nil)
		require.NoError(t, err)
		assert.Equal(t, int64(30001), customer.ID)
		assert.Equal(t, "Acme", customer.Organization)
		assert.Equal(t, "ap@acme.test", customer.Email)
		assert.Equal(t, freshbooks.VisStateActive, customer.VisState)
		assert.True(t, customer.AllowLateFees)
		assert.Equal(t, 2024, customer.Updated.Year())
	})

	t.Run("renders includes", func(t *testing.T) {
		t.Parallel()

		server := newStubServer(t, http.StatusOK, `{"response":{"result":{"invoice":{"id":5}}}}`)
		client := NewTestClient(server.URL)

		invoice, err := client.Invoices().Get(context.Background(), "abc123", "5", freshbooks.NewIncludesBuilder("lines"))
		require.NoError(t, err)
		assert.Equal(t, int64(5), invoice.ID)

		req := server.lastRequest(t)
		assert.Equal(t, "/accounting/account/abc123/invoices/invoices/5", req.Path)
		assert.Equal(t, "include%5B%5D=lines", req.RawQuery)
	})

	t.Run("api error with single object", func(t *testing.T) {
		t.Parallel()

		server := newStubServer(t, http.StatusBadRequest, `{"response":{"errors":{"message":"Invalid","errno":1012}}}`)
		client := NewTestClient(server.URL)

		customer, err := client.Clients().Get(context.Background(), "abc123", "1", nil)
		require.Error(t, err)
		assert.Nil(t, customer)
		require.ErrorIs(t, err, freshbooks.ErrAPI)

		var apiErr *freshbooks.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "Invalid", apiErr.Message)
		assert.Equal(t, 400, apiErr.StatusCode)
		assert.Equal(t, 1012, apiErr.ErrorCode)
		assert.True(t, apiErr.HasErrorCode)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		server := newStubServer(t, http.StatusInternalServerError, `<html>oops</html>`)
		client := NewTestClient(server.URL)

		_, err := client.Clients().Get(context.Background(), "abc123", "1", nil)
		require.ErrorIs(t, err, freshbooks.ErrMalformedResponse)

		var apiErr *freshbooks.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 500, apiErr.StatusCode)
		assert.Equal(t, `<html>oops</html>`, apiErr.RawBody)
	})

	t.Run("unexpected shape", func(t *testing.T) {
		t.Parallel()

		server := newStubServer(t, http.StatusOK, `{"unexpected":true}`)
		client := NewTestClient(server.URL)

		_, err := client.Clients().Get(context.Background(), "abc123", "1", nil)
		require.ErrorIs(t, err, freshbooks.ErrUnexpectedResponseShape)
	})

	t.Run("not found helper", func(t *testing.T) {
		t.Parallel()

		server := newStubServer(t, http.StatusNotFound, `{"response":{"errors":[{"message":"The requested resource was not found.","errno":1012}]}}`)
		client := NewTestClient(server.URL)

		_, err := client.Taxes().Get(context.Background(), "abc123", "9", nil)
		require.Error(t, err)
		assert.True(t, freshbooks.IsNotFound(err))
		assert.Contains(t, err.Error(), "getting tax")
	})

	t.Run("requires ids before any request", func(t *testing.T) {
		t.Parallel()

		server := newStubServer(t, http.StatusOK, `{}`)
		client := NewTestClient(server.URL)

		_, err := client.Clients().Get(context.Background(), "", "1", nil)
		require.ErrorIs(t, err, ErrAccountIDRequired)

		_, err = client.Clients().Get(context.Background(), "abc123", "", nil)
		require.ErrorIs(t, err, ErrResourceIDRequired)

		assert.Empty(t, server.requests)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestResource_List(t *testing.T) {
	t.Parallel()

	t.Run("accounting list", func(t *testing.T) {
		t.Parallel()

		server := newStubServer(t, http.StatusOK, `{"response":{"result":{
			"clients":[{"id":1,"organization":"A"},{"id":2,"organization":"B"}],
			"page":1,"pages":4,"per_page":2,"total":7
		}}}`)
		client := NewTestClient(server.URL)

		result, err := client.Clients().List(context.Background(), "abc123",
			freshbooks.NewPaginateBuilder(1, 2),
			freshbooks.NewFilterBuilder().Equals("email", "a@b.test"),
		)
		require.NoError(t, err)
		require.Len(t, result.Items, 2)
		assert.Equal(t, "A", result.Items[0].Organization)
		assert.Equal(t, "B", result.Items[1].Organization)
		assert.Equal(t, freshbooks.PaginationMeta{Total: 7, PerPage: 2, Page: 1, Pages: 4}, result.Meta)

		req := server.lastRequest(t)
		assert.Equal(t, "/accounting/account/abc123/users/clients", req.Path)
		assert.Equal(t, "page=1&per_page=2&search%5Bemail%5D=a%40b.test", req.RawQuery)
	})

	t.Run("business list derives pages", func(t *testing.T) {
		t.Parallel()

		server := newStubServer(t, http.StatusOK, `{
			"response":{"result":[
				{"uuid":"8c1b9a52-3c4e-4d5f-9a0b-1c2d3e4f5a6b","first_name":"Grace","business_id":77,"active":true}
			]},
			"meta":{"total":25,"per_page":10,"page":1}
		}`)
		client := NewTestClient(server.URL)

		result, err := client.TeamMembers().List(context.Background(), "77")
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "Grace", result.Items[0].FirstName)
		assert.Equal(t, int64(77), result.Items[0].BusinessID)
		assert.Equal(t, "8c1b9a52-3c4e-4d5f-9a0b-1c2d3e4f5a6b", result.Items[0].UUID.String())
		assert.Equal(t, freshbooks.PaginationMeta{Total: 25, PerPage: 10, Page: 1, Pages: 3}, result.Meta)

		assert.Equal(t, "/auth/api/v1/businesses/77/team_members", server.lastRequest(t).Path)
	})

	t.Run("exact division keeps the extra page", func(t *testing.T) {
		t.Parallel()

		server := newStubServer(t, http.StatusOK, `{"response":{"result":[]},"meta":{"total":20,"per_page":10,"page":2}}`)
		client := NewTestClient(server.URL)

		result, err := client.TeamMembers().List(context.Background(), "77")
		require.NoError(t, err)
		assert.Empty(t, result.Items)
		assert.Equal(t, 3, result.Meta.Pages)
	})

	t.Run("sequence errors report the first", func(t *testing.T) {
		t.Parallel()

		server := newStubServer(t, http.StatusUnprocessableEntity, `{"response":{"errors":[
			{"message":"first problem","errno":2001},
			{"message":"second problem","errno":2002}
		]}}`)
		client := NewTestClient(server.URL)

		_, err := client.Payments().List(context.Background(), "abc123")
		require.Error(t, err)

		var apiErr *freshbooks.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "first problem", apiErr.Message)
		assert.Equal(t, 2001, apiErr.ErrorCode)
		assert.Contains(t, err.Error(), "listing payments")
	})
}

func TestResource_NoMetaLeakBetweenCalls(t *testing.T) {
	t.Parallel()

	var (
		mutex sync.Mutex
		calls int
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mutex.Lock()
		calls++
		call := calls
		mutex.Unlock()

		if call == 1 {
			_, _ = w.Write([]byte(`{"response":{"result":[{"first_name":"A"}]},"meta":{"total":50,"per_page":5,"page":1}}`))

			return
		}

		_, _ = w.Write([]byte(`{"response":{"result":[{"first_name":"B"}]}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	first, err := client.TeamMembers().List(context.Background(), "77")
	require.NoError(t, err)
	assert.Equal(t, 11, first.Meta.Pages)

	second, err := client.TeamMembers().List(context.Background(), "77")
	require.NoError(t, err)
	require.Len(t, second.Items, 1)
	assert.Equal(t, "B", second.Items[0].FirstName)
	assert.Equal(t, freshbooks.PaginationMeta{}, second.Meta)
}

func TestResource_CreateUpdateDelete(t *testing.T) {
	t.Parallel()

	t.Run("create wraps the body", func(t *testing.T) {
		t.Parallel()

		server := newStubServer(t, http.StatusOK, `{"response":{"result":{"client":{"id":42,"organization":"New Co"}}}}`)
		client := NewTestClient(server.URL)

		customer, err := client.Clients().Create(context.Background(), "abc123", map[string]any{"organization": "New Co"})
		require.NoError(t, err)
		assert.Equal(t, int64(42), customer.ID)

		req := server.lastRequest(t)
		assert.Equal(t, "POST", req.Method)
		assert.Equal(t, "/accounting/account/abc123/users/clients", req.Path)

		var body map[string]map[string]string
		require.NoError(t, json.Unmarshal([]byte(req.Body), &body))
		assert.Equal(t, "New Co", body["client"]["organization"])
	})

	t.Run("update puts to the item", func(t *testing.T) {
		t.Parallel()

		server := newStubServer(t, http.StatusOK, `{"response":{"result":{"tax":{"id":3,"name":"GST","amount":"5"}}}}`)
		client := NewTestClient(server.URL)

		tax, err := client.Taxes().Update(context.Background(), "abc123", "3", map[string]any{"amount": "5"})
		require.NoError(t, err)
		assert.Equal(t, "GST", tax.Name)

		req := server.lastRequest(t)
		assert.Equal(t, "PUT", req.Method)
		assert.Equal(t, "/accounting/account/abc123/taxes/taxes/3", req.Path)
		assert.JSONEq(t, `{"tax":{"amount":"5"}}`, req.Body)
	})

	t.Run("delete sends DELETE", func(t *testing.T) {
		t.Parallel()

		server := newStubServer(t, http.StatusOK, `{"response":{"result":{"payment":{"id":8,"vis_state":1}}}}`)
		client := NewTestClient(server.URL)

		payment, err := client.Payments().Delete(context.Background(), "abc123", "8")
		require.NoError(t, err)
		assert.Equal(t, freshbooks.VisStateDeleted, payment.VisState)

		req := server.lastRequest(t)
		assert.Equal(t, "DELETE", req.Method)
		assert.Equal(t, "/accounting/account/abc123/payments/payments/8", req.Path)
	})
}
