package httpx

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/products/7/delete", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "7")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	id, err := PathID(req, "id")
	require.NoError(t, err)
	assert.EqualValues(t, 7, id)

	for _, raw := range []string{"", "0", "-3", "abc"} {
		_, err := ParseID(raw)
		assert.ErrorIs(t, err, ErrBadID, raw)
	}
}

func TestCarriedQuery(t *testing.T) {
	form := url.Values{"q": {"brand=Acme&category_id=2"}}
	req := httptest.NewRequest(http.MethodPost, "/products/save", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	q := CarriedQuery(req)
	assert.Equal(t, "Acme", q.Get("brand"))
	assert.Equal(t, "2", q.Get("category_id"))
}

func TestFormInt64(t *testing.T) {
	form := url.Values{"id": {"12"}, "bad": {"x"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	id, err := FormInt64(req, "id")
	require.NoError(t, err)
	assert.EqualValues(t, 12, id)

	blank, err := FormInt64(req, "missing")
	require.NoError(t, err)
	assert.Zero(t, blank)

	_, err = FormInt64(req, "bad")
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestFormUpload(t *testing.T) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "vendas.csv")
	require.NoError(t, err)
	_, _ = part.Write([]byte("product_id,quantity\n1,2\n"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/sales/import", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	upload, err := FormUpload(httptest.NewRecorder(), req, "file")
	require.NoError(t, err)
	defer upload.Close()
	assert.Equal(t, "vendas.csv", upload.Filename)

	empty := &bytes.Buffer{}
	emptyWriter := multipart.NewWriter(empty)
	require.NoError(t, emptyWriter.Close())
	req = httptest.NewRequest(http.MethodPost, "/sales/import", empty)
	req.Header.Set("Content-Type", emptyWriter.FormDataContentType())
	_, err = FormUpload(httptest.NewRecorder(), req, "file")
	assert.ErrorIs(t, err, ErrNoFile)
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, ErrNoFile)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":400`)
}
