package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los reportes de clientes.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// LoyaltyCandidates suma total_amount de las compras en [from, to) por cliente y deja
// los que alcanzan el umbral. total_purchases cuenta todas las compras históricas.
func (r *ReportRepo) LoyaltyCandidates(ctx context.Context, from, to time.Time, threshold decimal.Decimal) ([]repository.LoyaltyCandidate, error) {
	const query = `
	WITH month_totals AS (
	    SELECT customer_id, SUM(total_amount) AS month_total
	    FROM purchases
	    WHERE purchase_date >= $1 AND purchase_date < $2
	    GROUP BY customer_id
	    HAVING SUM(total_amount) >= $3
	)
	SELECT
	    c.id, c.document_type_id, dt.name, c.document_number, c.first_name, c.last_name,
	    c.email, c.phone, c.address, c.created_at, c.updated_at, c.is_active,
	    mt.month_total,
	    (SELECT COUNT(*) FROM purchases p WHERE p.customer_id = c.id) AS total_purchases
	FROM month_totals mt
	JOIN customers      c  ON c.id  = mt.customer_id
	JOIN document_types dt ON dt.id = c.document_type_id
	ORDER BY mt.month_total DESC, c.document_number`

	rows, err := r.pool.Query(ctx, query, from, to, threshold)
	if err != nil {
		return nil, fmt.Errorf("report.LoyaltyCandidates: %w", err)
	}
	defer rows.Close()

	var results []repository.LoyaltyCandidate
	for rows.Next() {
		var lc repository.LoyaltyCandidate
		c := &lc.Customer
		if err := rows.Scan(
			&c.ID, &c.DocumentTypeID, &c.DocumentTypeName, &c.DocumentNumber, &c.FirstName, &c.LastName,
			&c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt, &c.IsActive,
			&lc.MonthTotal,
			&lc.TotalPurchases,
		); err != nil {
			return nil, fmt.Errorf("report.LoyaltyCandidates scan: %w", err)
		}
		results = append(results, lc)
	}
	return results, rows.Err()
}
