package crudhttp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartmart/smartmart-dashboard/internal/retail"
)

func TestCanonicalURL(t *testing.T) {
	assert.Equal(t, "/products", CanonicalURL("/products", retail.NewProductFilter()))
	assert.Equal(t, "/categories", CanonicalURL("/categories", retail.NoFilter{}))

	filter := retail.ProductFilter{Brand: "Acme & Co", CategoryID: "3"}
	assert.Equal(t, "/products?apply=1&brand=Acme+%26+Co&category_id=3", CanonicalURL("/products", filter))
}

func TestExportURL(t *testing.T) {
	assert.Equal(t, "/sales/export.csv", exportURL("/sales", "csv", ""))
	assert.Equal(t, "/sales/export.xlsx?product_id=2", exportURL("/sales", "xlsx", "product_id=2"))
}
