package excel

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/superventas/pos-api/internal/infrastructure/demo"
)

// Columnas que no se escriben en el libro.
var hiddenColumns = map[string]bool{
	"clave_hash": true,
}

// WriteDataset escribe el dataset como libro XLSX: una hoja por tabla, con la
// fila 1 como encabezado. Los montos se escriben como números.
func WriteDataset(w io.Writer, ds *demo.Dataset) error {
	file := excelize.NewFile()
	defer file.Close()

	header, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DCE6F1"}},
	})
	if err != nil {
		return fmt.Errorf("crear estilo de encabezado: %w", err)
	}

	for i, t := range ds.Tables() {
		if i == 0 {
			if err := file.SetSheetName(file.GetSheetName(0), t.Name); err != nil {
				return fmt.Errorf("renombrar hoja %s: %w", t.Name, err)
			}
		} else if _, err := file.NewSheet(t.Name); err != nil {
			return fmt.Errorf("crear hoja %s: %w", t.Name, err)
		}
		if err := writeTable(file, t, header); err != nil {
			return err
		}
	}
	file.SetActiveSheet(0)

	if err := file.Write(w); err != nil {
		return fmt.Errorf("escribir xlsx: %w", err)
	}
	return nil
}

func writeTable(file *excelize.File, t demo.Table, headerStyle int) error {
	keep := make([]int, 0, len(t.Columns))
	headers := make([]any, 0, len(t.Columns))
	for i, col := range t.Columns {
		if hiddenColumns[col] {
			continue
		}
		keep = append(keep, i)
		headers = append(headers, col)
	}

	if err := file.SetSheetRow(t.Name, "A1", &headers); err != nil {
		return fmt.Errorf("encabezado %s: %w", t.Name, err)
	}
	if err := file.SetRowStyle(t.Name, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("estilo encabezado %s: %w", t.Name, err)
	}

	for r, row := range t.Rows {
		values := make([]any, 0, len(keep))
		for _, i := range keep {
			v, err := cellValue(row[i])
			if err != nil {
				return fmt.Errorf("%s fila %d columna %s: %w", t.Name, r+1, t.Columns[i], err)
			}
			values = append(values, v)
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := file.SetSheetRow(t.Name, cell, &values); err != nil {
			return fmt.Errorf("%s fila %d: %w", t.Name, r+1, err)
		}
	}
	return nil
}

// cellValue convierte un valor de demo.Table a algo que excelize sabe escribir.
func cellValue(v any) (any, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x.InexactFloat64(), nil
	case time.Time:
		return x.Format(time.RFC3339), nil
	case *time.Time:
		if x == nil {
			return nil, nil
		}
		return x.Format(time.RFC3339), nil
	case *int:
		if x == nil {
			return nil, nil
		}
		return *x, nil
	case string, int, bool:
		return x, nil
	default:
		raw, err := json.Marshal(x)
		if err != nil {
			return nil, err
		}
		return string(raw), nil
	}
}
