package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/freshbooks/internal/http"
	"github.com/fivetwenty-io/freshbooks/pkg/freshbooks"
)

// ResourceDef describes one resource kind.
type ResourceDef[T any] struct {
	// Name and Plural are used in error messages, e.g. "client", "clients".
	Name   string
	Plural string
	// Prefix is the URL prefix before the account or business id.
	Prefix string
	// Path follows the id, e.g. "users/clients".
	Path string
	// EntityField wraps create and update bodies, e.g. {"client": {...}}.
	EntityField string
	Decode      freshbooks.EntityDecoder[T]
	DecodeList  freshbooks.ListDecoder[T]
}

// Resource implements freshbooks.ResourceClient for any entity type. It
// holds no per-call state and may be shared between goroutines.
type Resource[T any] struct {
	httpClient *http.Client
	def        ResourceDef[T]
}

// NewResource creates an accessor for def.
func NewResource[T any](httpClient *http.Client, def ResourceDef[T]) *Resource[T] {
	return &Resource[T]{
		httpClient: httpClient,
		def:        def,
	}
}

// Get implements freshbooks.ResourceClient.Get.
func (r *Resource[T]) Get(ctx context.Context, accountID, resourceID string, includes *freshbooks.IncludesBuilder) (*T, error) {
	path, err := r.itemPath(accountID, resourceID)
	if err != nil {
		return nil, err
	}

	resp, err := r.httpClient.Do(ctx, &http.Request{
		Method:   "GET",
		Path:     path,
		RawQuery: freshbooks.BuildQueryString(includes),
	})
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", r.def.Name, err)
	}

	return r.decodeOne("getting", resp)
}

// List implements freshbooks.ResourceClient.List.
func (r *Resource[T]) List(ctx context.Context, accountID string, builders ...freshbooks.QueryBuilder) (*freshbooks.ListResult[T], error) {
	path, err := r.collectionPath(accountID)
	if err != nil {
		return nil, err
	}

	resp, err := r.httpClient.Do(ctx, &http.Request{
		Method:   "GET",
		Path:     path,
		RawQuery: freshbooks.BuildQueryString(builders...),
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.def.Plural, err)
	}

	payload, meta, err := parseEnvelope(resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.def.Plural, err)
	}

	result, err := r.def.DecodeList(withPagination(payload, meta))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s list: %w", freshbooks.ErrUnexpectedResponseShape, r.def.Name, err)
	}

	return result, nil
}

// Create implements freshbooks.ResourceClient.Create.
func (r *Resource[T]) Create(ctx context.Context, accountID string, data map[string]any) (*T, error) {
	path, err := r.collectionPath(accountID)
	if err != nil {
		return nil, err
	}

	resp, err := r.httpClient.Post(ctx, path, r.wrap(data))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", r.def.Name, err)
	}

	return r.decodeOne("creating", resp)
}

// Update implements freshbooks.ResourceClient.Update.
func (r *Resource[T]) Update(ctx context.Context, accountID, resourceID string, data map[string]any) (*T, error) {
	path, err := r.itemPath(accountID, resourceID)
	if err != nil {
		return nil, err
	}

	resp, err := r.httpClient.Put(ctx, path, r.wrap(data))
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", r.def.Name, err)
	}

	return r.decodeOne("updating", resp)
}

// Delete implements freshbooks.ResourceClient.Delete.
func (r *Resource[T]) Delete(ctx context.Context, accountID, resourceID string) (*T, error) {
	path, err := r.itemPath(accountID, resourceID)
	if err != nil {
		return nil, err
	}

	resp, err := r.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting %s: %w", r.def.Name, err)
	}

	return r.decodeOne("deleting", resp)
}

func (r *Resource[T]) decodeOne(verb string, resp *http.Response) (*T, error) {
	payload, _, err := parseEnvelope(resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", verb, r.def.Name, err)
	}

	entity, err := r.def.Decode(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", freshbooks.ErrUnexpectedResponseShape, r.def.Name, err)
	}

	return entity, nil
}

func (r *Resource[T]) wrap(data map[string]any) map[string]any {
	if data == nil {
		data = map[string]any{}
	}

	if r.def.EntityField == "" {
		return data
	}

	return map[string]any{r.def.EntityField: data}
}

func (r *Resource[T]) collectionPath(accountID string) (string, error) {
	if accountID == "" {
		return "", ErrAccountIDRequired
	}

	return r.def.Prefix + "/" + url.PathEscape(accountID) + "/" + r.def.Path, nil
}

func (r *Resource[T]) itemPath(accountID, resourceID string) (string, error) {
	collection, err := r.collectionPath(accountID)
	if err != nil {
		return "", err
	}

	if resourceID == "" {
		return "", ErrResourceIDRequired
	}

	return collection + "/" + url.PathEscape(resourceID), nil
}
