package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// LoyaltyCandidate cliente que alcanzó el umbral en el período consultado.
type LoyaltyCandidate struct {
	Customer       entity.Customer
	MonthTotal     decimal.Decimal // suma de total_amount dentro del período
	TotalPurchases int             // compras históricas, no solo del período
}

// ReportRepository consultas de solo lectura para reportes.
type ReportRepository interface {
	// LoyaltyCandidates agrupa las compras con from <= purchase_date < to por cliente y
	// devuelve los que suman al menos threshold, ordenados por total descendente.
	LoyaltyCandidates(ctx context.Context, from, to time.Time, threshold decimal.Decimal) ([]LoyaltyCandidate, error)
}
