package export

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTable() Table {
	return Table{
		Sheet:  "Produtos",
		Header: []string{"ID", "Nome", "Preço"},
		Rows: [][]any{
			{int64(1), "Mouse, sem fio", decimal.RequireFromString("10.5")},
			{int64(2), "Teclado", decimal.RequireFromString("99")},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTable()))
	assert.Equal(t, "ID,Nome,Preço\n1,\"Mouse, sem fio\",10.50\n2,Teclado,99.00\n", buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleTable()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Produtos")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Nome", "Preço"}, rows[0])
	assert.Equal(t, "Mouse, sem fio", rows[1][1])
	assert.Equal(t, "10.5", rows[1][2])
}

func TestServe(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, Serve(rec, "csv", "produtos", sampleTable()))
	assert.Equal(t, CSVContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="produtos.csv"`, rec.Header().Get("Content-Disposition"))

	rec = httptest.NewRecorder()
	require.NoError(t, Serve(rec, "xlsx", "produtos", sampleTable()))
	assert.Equal(t, XLSXContentType, rec.Header().Get("Content-Type"))

	assert.Error(t, Serve(httptest.NewRecorder(), "pdf", "produtos", sampleTable()))
}
