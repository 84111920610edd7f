package sales

import (
	"github.com/smartmart/smartmart-dashboard/internal/crud"
	"github.com/smartmart/smartmart-dashboard/internal/shared"
)

// Validate reports the first rule d breaks: product, date, quantity, total.
func (d Draft) Validate() error {
	failed, err := shared.FirstInvalid(d)
	if err != nil || failed == nil {
		return err
	}
	switch failed.Field {
	case "ProductID":
		return crud.Warn(failed.Field, "Selecione um produto.")
	case "Date":
		return crud.Warn(failed.Field, "Selecione a data da venda.")
	case "Quantity":
		return invalidQuantity()
	default:
		return invalidTotal()
	}
}

func invalidQuantity() error {
	return crud.Warn("Quantity", "Informe uma quantidade válida.")
}

func invalidTotal() error {
	return crud.Warn("TotalPrice", "Informe um valor total válido.")
}
