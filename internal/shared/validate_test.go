package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name  string `validate:"notblank"`
	Ref   int64  `validate:"gt=0"`
	Date  string `validate:"required,isodate"`
	Price string `validate:"required,numeric"`
}

func TestFirstInvalidFollowsDeclarationOrder(t *testing.T) {
	cases := []struct {
		name string
		form sampleForm
		want *FieldError
	}{
		{name: "valid", form: sampleForm{Name: "A", Ref: 1, Date: "2025-01-31", Price: "9.90"}},
		{name: "blank name wins", form: sampleForm{Name: "  ", Ref: 0, Date: "", Price: "x"}, want: &FieldError{Field: "Name", Tag: "notblank"}},
		{name: "unselected ref", form: sampleForm{Name: "A", Date: "2025-01-31", Price: "1"}, want: &FieldError{Field: "Ref", Tag: "gt"}},
		{name: "bad date", form: sampleForm{Name: "A", Ref: 1, Date: "31/01/2025", Price: "1"}, want: &FieldError{Field: "Date", Tag: "isodate"}},
		{name: "non numeric price", form: sampleForm{Name: "A", Ref: 1, Date: "2025-01-31", Price: "abc"}, want: &FieldError{Field: "Price", Tag: "numeric"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FirstInvalid(tc.form)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecimalText(t *testing.T) {
	assert.Equal(t, "10.50", DecimalText(" 10,50 "))
	assert.Equal(t, "1.000,50", DecimalText("1.000,50"))
	assert.Equal(t, "7", DecimalText("7"))
}
