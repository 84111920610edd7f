package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/smartmart/smartmart-dashboard/internal/retail"
)

// Resource issues the list/create/update/remove/import calls of one
// collection. Nothing is cached: every call hits the network.
type Resource[E any, F retail.Filter] struct {
	client *Client
	name   string
	base   string
}

// NewResource binds a resource to its collection path, e.g. "products".
func NewResource[E any, F retail.Filter](client *Client, name string) *Resource[E, F] {
	return &Resource[E, F]{
		client: client,
		name:   name,
		base:   "/" + strings.Trim(name, "/") + "/",
	}
}

// Name identifies the resource in logs and metrics.
func (r *Resource[E, F]) Name() string {
	return r.name
}

// List fetches the collection narrowed by the present filter fields.
func (r *Resource[E, F]) List(ctx context.Context, filter F) ([]E, error) {
	items := make([]E, 0)
	err := r.client.fetchJSON(ctx, call{
		resource: r.name,
		method:   http.MethodGet,
		url:      r.client.endpoint(r.base, filter.Values()),
	}, &items, false)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.name, err)
	}
	return items, nil
}

// Create posts entity (without id) and returns the stored record.
func (r *Resource[E, F]) Create(ctx context.Context, entity E) (E, error) {
	var created E
	body, err := jsonBody(entity)
	if err != nil {
		return created, err
	}
	err = r.client.fetchJSON(ctx, call{
		resource:    r.name,
		method:      http.MethodPost,
		url:         r.client.endpoint(r.base, nil),
		body:        body,
		contentType: "application/json",
	}, &created, false)
	if err != nil {
		return created, fmt.Errorf("create %s: %w", r.name, err)
	}
	return created, nil
}

// Update replaces the record identified by id. When the API answers with an
// empty body the submitted entity is returned.
func (r *Resource[E, F]) Update(ctx context.Context, id int64, entity E) (E, error) {
	updated := entity
	body, err := jsonBody(entity)
	if err != nil {
		return updated, err
	}
	err = r.client.fetchJSON(ctx, call{
		resource:    r.name,
		method:      http.MethodPut,
		url:         r.client.endpoint(r.itemPath(id), nil),
		body:        body,
		contentType: "application/json",
	}, &updated, true)
	if err != nil {
		return entity, fmt.Errorf("update %s %d: %w", r.name, id, err)
	}
	return updated, nil
}

// Remove deletes the record identified by id. A rejected delete carries the
// API's {"detail": ...} message in the returned *StatusError.
func (r *Resource[E, F]) Remove(ctx context.Context, id int64) error {
	resp, err := r.client.do(ctx, call{
		resource: r.name,
		method:   http.MethodDelete,
		url:      r.client.endpoint(r.itemPath(id), nil),
	})
	if resp != nil {
		defer func() {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}()
	}
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			statusErr.Detail = readDetail(resp.Body)
		}
		return fmt.Errorf("remove %s %d: %w", r.name, id, err)
	}
	return nil
}

// Import forwards a spreadsheet to the import endpoint. The API alone parses
// and validates its contents.
func (r *Resource[E, F]) Import(ctx context.Context, filename string, content io.Reader) (retail.ImportResult, error) {
	var result retail.ImportResult
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return result, fmt.Errorf("import %s: %w", r.name, err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return result, fmt.Errorf("import %s: copy file: %w", r.name, err)
	}
	if err := writer.Close(); err != nil {
		return result, fmt.Errorf("import %s: %w", r.name, err)
	}

	err = r.client.fetchJSON(ctx, call{
		resource:    r.name,
		method:      http.MethodPost,
		url:         r.client.endpoint(r.base+"import_csv", nil),
		body:        body,
		contentType: writer.FormDataContentType(),
	}, &result, true)
	if err != nil {
		return result, fmt.Errorf("import %s: %w", r.name, err)
	}
	return result, nil
}

func (r *Resource[E, F]) itemPath(id int64) string {
	return r.base + url.PathEscape(strconv.FormatInt(id, 10))
}

func readDetail(body io.Reader) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return unknownDetail
	}
	if payload.Detail == "" {
		return deleteDetail
	}
	return payload.Detail
}
