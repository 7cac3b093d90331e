package postgres

import (
	"context"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superventas/pos-api/internal/infrastructure/demo"
	"github.com/superventas/pos-api/pkg/config"
)

var createTable = regexp.MustCompile(`CREATE TABLE IF NOT EXISTS (\w+) \(`)

func testDataset(t *testing.T) *demo.Dataset {
	t.Helper()
	ds, err := demo.Generate(demo.GenerateOptions{Seed: 11, Now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	return ds
}

// Cada tabla del dataset tiene su CREATE TABLE, en el mismo orden y con todas sus columnas.
func TestSchema_CubreTablasDelDataset(t *testing.T) {
	tables := testDataset(t).Tables()
	require.Len(t, schemaStatements, len(tables))

	for i, tbl := range tables {
		m := createTable.FindStringSubmatch(schemaStatements[i])
		require.NotNil(t, m, "sentencia %d", i)
		assert.Equal(t, tbl.Name, m[1])
		for _, col := range tbl.Columns {
			assert.Contains(t, schemaStatements[i], "\n\t\t"+col+" ", "%s.%s", tbl.Name, col)
		}
	}
}

func TestTruncateStatement(t *testing.T) {
	stmt := truncateStatement([]demo.Table{{Name: "ventas"}, {Name: "venta_detalles"}})
	assert.Equal(t, `TRUNCATE "ventas", "venta_detalles"`, stmt)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(errorString("ERROR: duplicate key (SQLSTATE 23505)")))
	assert.False(t, isUniqueViolation(errorString("ERROR: relation does not exist (SQLSTATE 42P01)")))
}

type errorString string

func (e errorString) Error() string { return string(e) }

// Requiere una base real: TEST_DATABASE_URL=postgres://... go test ./internal/infrastructure/postgres
func TestDatasetWriter_Integracion(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	defer pool.Close()

	ds := testDataset(t)
	w := NewDatasetWriter(NewTxRunner(pool), nil)

	written, err := w.Write(ctx, ds, WriteOptions{Truncate: true})
	require.NoError(t, err)
	assert.Equal(t, int64(len(ds.Sales)), written["ventas"])
	assert.Equal(t, int64(len(ds.SaleLines)), written["venta_detalles"])

	_, err = w.Write(ctx, ds, WriteOptions{})
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "ya contiene datos"))
}
