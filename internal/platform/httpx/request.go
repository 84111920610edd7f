package httpx

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// MaxUpload bounds spreadsheet uploads.
const MaxUpload = 10 << 20

// PathID parses a positive integer chi URL parameter.
func PathID(r *http.Request, key string) (int64, error) {
	return ParseID(chi.URLParam(r, key))
}

// ParseID parses a positive record id.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadID, raw)
	}
	return id, nil
}

// FormInt64 parses an optional integer form field. Blank yields 0.
func FormInt64(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(r.PostFormValue(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: field %s", ErrBadRequest, key)
	}
	return v, nil
}

// CarriedQuery decodes the list filter query a form carries in field q.
func CarriedQuery(r *http.Request) url.Values {
	values, err := url.ParseQuery(r.PostFormValue("q"))
	if err != nil {
		return url.Values{}
	}
	return values
}

// Upload is a received multipart file.
type Upload struct {
	Filename string
	File     multipart.File
}

// Close releases the file.
func (u *Upload) Close() error {
	return u.File.Close()
}

// FormUpload reads the multipart file field, bounded by MaxUpload.
func FormUpload(w http.ResponseWriter, r *http.Request, field string) (*Upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUpload)
	if err := r.ParseMultipartForm(MaxUpload); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, ErrTooLarge
		}
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, ErrNoFile
		}
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return &Upload{Filename: header.Filename, File: file}, nil
}
