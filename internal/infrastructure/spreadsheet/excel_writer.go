// Package spreadsheet escribe libros xlsx con excelize.
package spreadsheet

import (
	"bytes"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/clientes-api/internal/application/report"
)

// DateTimeFormat formato de celda para fechas (sin zona horaria).
const DateTimeFormat = "yyyy-mm-dd hh:mm:ss"

// ExcelWriter implementa report.SpreadsheetWriter.
type ExcelWriter struct{}

// NewExcelWriter construye el writer.
func NewExcelWriter() *ExcelWriter { return &ExcelWriter{} }

// Write crea un libro con una hoja por elemento de sheets, en orden. La hoja
// por defecto del libro se renombra a la primera.
func (w *ExcelWriter) Write(sheets []report.Sheet) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet: se requiere al menos una hoja")
	}
	f := excelize.NewFile()
	defer f.Close()

	dateFmt := DateTimeFormat
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: estilo de fecha: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: estilo de encabezado: %w", err)
	}

	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sh.Name); err != nil {
				return nil, fmt.Errorf("spreadsheet: renombrar hoja %q: %w", sh.Name, err)
			}
		} else if _, err := f.NewSheet(sh.Name); err != nil {
			return nil, fmt.Errorf("spreadsheet: crear hoja %q: %w", sh.Name, err)
		}
		if err := writeSheet(f, sh, headerStyle, dateStyle); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("spreadsheet: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sh report.Sheet, headerStyle, dateStyle int) error {
	for col, h := range sh.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sh.Name, cell, h); err != nil {
			return fmt.Errorf("spreadsheet: encabezado %s!%s: %w", sh.Name, cell, err)
		}
		if err := f.SetCellStyle(sh.Name, cell, cell, headerStyle); err != nil {
			return err
		}
	}
	for r, values := range sh.Rows {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return err
			}
			if err := setCell(f, sh.Name, cell, v, dateStyle); err != nil {
				return fmt.Errorf("spreadsheet: celda %s!%s: %w", sh.Name, cell, err)
			}
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet, cell string, v any, dateStyle int) error {
	switch val := v.(type) {
	case decimal.Decimal:
		return f.SetCellFloat(sheet, cell, val.InexactFloat64(), -1, 64)
	case time.Time:
		if err := f.SetCellValue(sheet, cell, val); err != nil {
			return err
		}
		return f.SetCellStyle(sheet, cell, cell, dateStyle)
	case nil:
		return nil
	default:
		return f.SetCellValue(sheet, cell, val)
	}
}
