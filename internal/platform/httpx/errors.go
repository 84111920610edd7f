// Package httpx provides HTTP request and response utilities.
package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors for request decoding.
var (
	ErrBadID      = errors.New("invalid record id")
	ErrNoFile     = errors.New("missing upload")
	ErrTooLarge   = errors.New("upload too large")
	ErrBadRequest = errors.New("bad request")
)

// RespondError maps request errors to RFC7807 responses.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrBadID):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrTooLarge):
		Problem(w, http.StatusRequestEntityTooLarge, "Upload Too Large", err.Error())
	case errors.Is(err, ErrNoFile), errors.Is(err, ErrBadRequest):
		Problem(w, http.StatusBadRequest, "Bad Request", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
