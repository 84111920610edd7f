// Package categories is the category management page.
package categories

import (
	"net/http"
	"strings"

	"github.com/smartmart/smartmart-dashboard/internal/platform/httpx"
	"github.com/smartmart/smartmart-dashboard/internal/retail"
)

// Draft is the category being edited in the dialog.
type Draft struct {
	ID   int64
	Name string `validate:"notblank"`
}

// FromEntity seeds an edit draft.
func FromEntity(c retail.Category) Draft {
	return Draft{ID: c.ID, Name: c.Name}
}

func blank() Draft {
	return Draft{}
}

func draftID(d Draft) int64 {
	return d.ID
}

// ParseDraft reads the dialog form.
func ParseDraft(r *http.Request) (Draft, error) {
	id, err := httpx.FormInt64(r, "id")
	if err != nil {
		return Draft{}, err
	}
	return Draft{ID: id, Name: r.PostFormValue("name")}, nil
}

// Payload validates d and builds the wire entity.
func Payload(d Draft) (retail.Category, error) {
	if err := d.Validate(); err != nil {
		return retail.Category{}, err
	}
	return retail.Category{ID: d.ID, Name: strings.TrimSpace(d.Name)}, nil
}
