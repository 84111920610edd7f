package categories

import (
	"github.com/smartmart/smartmart-dashboard/internal/crud"
	"github.com/smartmart/smartmart-dashboard/internal/shared"
)

// Validate reports the first rule d breaks.
func (d Draft) Validate() error {
	failed, err := shared.FirstInvalid(d)
	if err != nil || failed == nil {
		return err
	}
	return crud.Warn(failed.Field, "Informe o nome da categoria.")
}
