package client

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	internalhttp "github.com/fivetwenty-io/freshbooks/internal/http"
)

// NewTestClient creates a new test client with the given base URL.
func NewTestClient(baseURL string) *Client {
	// Create HTTP client without token manager for testing
	httpClient := internalhttp.NewClient(baseURL, nil)

	client := &Client{httpClient: httpClient}

	// Initialize resource clients
	client.initializeResourceClients()

	return client
}

// recordedRequest is what the stub server saw.
type recordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Body     string
}

// stubServer answers every request with a fixed status and body.
type stubServer struct {
	*httptest.Server

	mutex    sync.Mutex
	requests []recordedRequest
}

func newStubServer(t *testing.T, status int, body string) *stubServer {
	t.Helper()

	stub := &stubServer{}
	stub.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, _ := io.ReadAll(r.Body)

		stub.mutex.Lock()
		stub.requests = append(stub.requests, recordedRequest{
			Method:   r.Method,
			Path:     r.URL.EscapedPath(),
			RawQuery: r.URL.RawQuery,
			Body:     string(payload),
		})
		stub.mutex.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(stub.Close)

	return stub
}

func (s *stubServer) lastRequest(t *testing.T) recordedRequest {
	t.Helper()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if len(s.requests) == 0 {
		t.Fatal("no request recorded")
	}

	return s.requests[len(s.requests)-1]
}
