package apiclient

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport indicates the request never completed.
	ErrTransport = errors.New("apiclient: transport failure")
	// ErrStatus indicates the API answered with a non-2xx status.
	ErrStatus = errors.New("apiclient: unexpected status")
	// ErrDecode indicates the response body was not the expected JSON.
	ErrDecode = errors.New("apiclient: decode response")
)

const (
	unknownDetail = "Erro desconhecido"
	deleteDetail  = "Erro ao deletar"
	networkDetail = "falha de comunicação com o servidor"
)

// StatusError describes a request the API rejected.
type StatusError struct {
	Method string
	URL    string
	Code   int
	// Detail is only populated for DELETE, from the {"detail": ...} body.
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.Code, e.Detail)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.URL, e.Code)
}

// Is makes StatusError match ErrStatus.
func (e *StatusError) Is(target error) bool {
	return target == ErrStatus
}

// Detail returns the human-readable reason carried by err.
func Detail(err error) string {
	if err == nil {
		return ""
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		if statusErr.Detail != "" {
			return statusErr.Detail
		}
		return deleteDetail
	}
	if errors.Is(err, ErrTransport) {
		return networkDetail
	}
	return unknownDetail
}
