package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/superventas/pos-api/internal/domain"
	"github.com/superventas/pos-api/internal/infrastructure/demo"
	"github.com/superventas/pos-api/pkg/logger"
)

// WriteOptions opciones de la exportación.
type WriteOptions struct {
	// Truncate vacía las tablas antes de copiar; sin él, un dataset previo produce ErrInvalidOperation.
	Truncate bool
}

// DatasetWriter exporta un demo.Dataset a PostgreSQL en una sola transacción.
type DatasetWriter struct {
	tx  *TxRunner
	log *logger.Logger
}

// NewDatasetWriter construye el writer. log puede ser nil.
func NewDatasetWriter(tx *TxRunner, log *logger.Logger) *DatasetWriter {
	if log == nil {
		log = logger.Nop()
	}
	return &DatasetWriter{tx: tx, log: log.Named("postgres.export")}
}

// Write crea el esquema si falta y copia cada tabla con COPY. Devuelve las filas
// escritas por tabla. Cualquier error revierte la exportación completa.
func (w *DatasetWriter) Write(ctx context.Context, ds *demo.Dataset, opts WriteOptions) (map[string]int64, error) {
	tables := ds.Tables()
	written := make(map[string]int64, len(tables))

	err := w.tx.Run(ctx, func(q Querier) error {
		for _, stmt := range schemaStatements {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("crear esquema: %w", err)
			}
		}
		if opts.Truncate {
			if _, err := q.Exec(ctx, truncateStatement(tables)); err != nil {
				return fmt.Errorf("vaciar tablas: %w", err)
			}
		}
		for _, t := range tables {
			n, err := q.CopyFrom(ctx, pgx.Identifier{t.Name}, t.Columns, pgx.CopyFromRows(t.Rows))
			if err != nil {
				if isUniqueViolation(err) {
					return domain.InvalidOperation(fmt.Sprintf("la tabla %s ya contiene datos; exportar con truncate", t.Name))
				}
				return fmt.Errorf("copiar %s: %w", t.Name, err)
			}
			written[t.Name] = n
			w.log.Debug().Str("table", t.Name).Int64("rows", n).Msg("tabla exportada")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	w.log.Info().Int("tables", len(tables)).Msg("dataset exportado a PostgreSQL")
	return written, nil
}

// truncateStatement vacía todas las tablas en una sola sentencia para no chocar con las FKs.
func truncateStatement(tables []demo.Table) string {
	names := make([]string, 0, len(tables))
	for _, t := range tables {
		names = append(names, pgx.Identifier{t.Name}.Sanitize())
	}
	return "TRUNCATE " + strings.Join(names, ", ")
}
