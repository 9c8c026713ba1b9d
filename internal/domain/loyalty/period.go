// Package loyalty calcula el período del reporte de fidelización: el mes
// calendario anterior al momento en que se genera el reporte.
package loyalty

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultThreshold monto mínimo (COP) de compras en el mes para calificar.
var DefaultThreshold = decimal.NewFromInt(5_000_000)

// Period mes calendario [Start, End). End es el primer instante del mes siguiente,
// de modo que cualquier hora del último día queda incluida.
type Period struct {
	Start time.Time
	End   time.Time
}

// PreviousMonth devuelve el mes calendario anterior a now, evaluado en loc.
// time.Date normaliza el mes 0 a diciembre del año anterior.
func PreviousMonth(now time.Time, loc *time.Location) Period {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	currentMonth := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	return Period{
		Start: time.Date(local.Year(), local.Month()-1, 1, 0, 0, 0, 0, loc),
		End:   currentMonth,
	}
}

// Label mes del período en formato YYYY-MM (nombre del archivo).
func (p Period) Label() string { return p.Start.Format("2006-01") }

// Qualifies indica si el total del mes alcanza el umbral (inclusive).
func Qualifies(monthTotal, threshold decimal.Decimal) bool {
	return monthTotal.GreaterThanOrEqual(threshold)
}
