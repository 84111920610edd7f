package view

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err, "templates should parse without error")
	assert.NotNil(t, engine)
	for _, name := range []string{"dashboard.html", "categories.html", "products.html", "sales.html", "dashboard_report.html"} {
		assert.NotNil(t, engine.templates.Lookup(name), name)
	}
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "R$ 10.50", Money(decimal.RequireFromString("10.5")))
	assert.Equal(t, "R$ 0.00", Money(decimal.Zero))
}

func TestBRL(t *testing.T) {
	got := BRL(decimal.RequireFromString("1234.5"))
	assert.Contains(t, got, "R$")
	assert.Contains(t, got, "1.234,50")
}

func TestDateBR(t *testing.T) {
	assert.Equal(t, "01/03/2025", DateBR("2025-03-01"))
	assert.Equal(t, "31/12/2024", DateBR("2024-12-31T00:00:00Z"))
	assert.Equal(t, "ontem", DateBR("ontem"))
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive("/", "/"))
	assert.True(t, IsActive("/", "/dashboard"))
	assert.False(t, IsActive("/", "/sales"))
	assert.True(t, IsActive("/products", "/products/save"))
	assert.False(t, IsActive("/products", "/productsx"))
}

func TestURLWith(t *testing.T) {
	assert.Equal(t, "/products?dialog=new", URLWith("/products", "dialog", "new"))
	assert.Equal(t, "/products?apply=1&brand=Acme&dialog=edit&id=3", URLWith("/products?apply=1&brand=Acme", "dialog", "edit", "id", "3"))
}
