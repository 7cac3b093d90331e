package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/superventas/pos-api/internal/infrastructure/demo"
)

func TestWriteDataset_UnaHojaPorTabla(t *testing.T) {
	ds, err := demo.Generate(demo.GenerateOptions{Seed: 3, Now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteDataset(&buf, ds))

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()

	tables := ds.Tables()
	sheets := file.GetSheetList()
	require.Len(t, sheets, len(tables))

	for i, tbl := range tables {
		assert.Equal(t, tbl.Name, sheets[i])
		rows, err := file.GetRows(tbl.Name)
		require.NoError(t, err)
		assert.Len(t, rows, len(tbl.Rows)+1, tbl.Name)
	}

	users, err := file.GetRows("usuarios")
	require.NoError(t, err)
	assert.NotContains(t, users[0], "clave_hash")
	assert.Contains(t, users[0], "email")

	products, err := file.GetRows("productos")
	require.NoError(t, err)
	assert.Equal(t, "id", products[0][0])
	assert.Equal(t, "1", products[1][0])
}

func TestCellValue(t *testing.T) {
	id := 7
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	cases := []struct {
		name string
		in   any
		want any
	}{
		{"puntero nil", (*int)(nil), nil},
		{"puntero", &id, 7},
		{"fecha", now, "2026-01-02T03:04:05Z"},
		{"borrado nil", (*time.Time)(nil), nil},
		{"texto", "hola", "hola"},
		{"lista", []int{1, 2}, "[1,2]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cellValue(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
