package products

import (
	"github.com/smartmart/smartmart-dashboard/internal/crud"
	"github.com/smartmart/smartmart-dashboard/internal/shared"
)

// Validate reports the first rule d breaks. Name and brand are checked
// before the category, the category before the price.
func (d Draft) Validate() error {
	failed, err := shared.FirstInvalid(d)
	if err != nil || failed == nil {
		return err
	}
	switch failed.Field {
	case "Name", "Brand":
		return crud.Warn(failed.Field, "Preencha nome e marca.")
	case "CategoryID":
		return crud.Reject(failed.Field, "Selecione uma categoria válida.")
	default:
		return invalidPrice()
	}
}

func invalidPrice() error {
	return crud.Warn("Price", "Informe um preço válido.")
}
