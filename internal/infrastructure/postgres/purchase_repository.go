package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste la cabecera de la compra y asigna su ID.
func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	query := `
		INSERT INTO purchases (customer_id, purchase_date, total_amount, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, p.CustomerID, p.PurchaseDate, p.TotalAmount, nullIfEmpty(p.Notes)).Scan(&p.ID); err != nil {
		return mapWriteError("insert purchase", err)
	}
	return nil
}

// CreateItem persiste una línea de la compra.
func (r *PurchaseRepo) CreateItem(ctx context.Context, it *entity.PurchaseItem) error {
	query := `
		INSERT INTO purchase_items (purchase_id, product_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, it.PurchaseID, it.ProductID, it.Quantity, it.UnitPrice, it.Subtotal).Scan(&it.ID); err != nil {
		return mapWriteError("insert purchase_item", err)
	}
	return nil
}

// DeleteItems borra todas las líneas de una compra.
func (r *PurchaseRepo) DeleteItems(ctx context.Context, purchaseID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM purchase_items WHERE purchase_id = $1`, purchaseID); err != nil {
		return fmt.Errorf("delete purchase_items: %w", err)
	}
	return nil
}

// Update actualiza la cabecera de la compra.
func (r *PurchaseRepo) Update(ctx context.Context, p *entity.Purchase) error {
	_, err := r.q.Exec(ctx, `
		UPDATE purchases SET customer_id = $2, purchase_date = $3, total_amount = $4, notes = $5
		WHERE id = $1`,
		p.ID, p.CustomerID, p.PurchaseDate, p.TotalAmount, nullIfEmpty(p.Notes))
	if err != nil {
		return mapWriteError("update purchase", err)
	}
	return nil
}

// GetByID obtiene la compra con sus líneas.
func (r *PurchaseRepo) GetByID(ctx context.Context, id int64) (*entity.Purchase, error) {
	p, err := scanPurchase(r.q.QueryRow(ctx, `
		SELECT id, customer_id, purchase_date, total_amount, notes FROM purchases WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	if err := r.attachItems(ctx, []*entity.Purchase{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// List lista compras (más recientes primero) con sus líneas.
func (r *PurchaseRepo) List(ctx context.Context, f repository.PurchaseFilter) ([]*entity.Purchase, error) {
	var where []string
	var args []any
	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+escapeLike(s)+"%")
		where = append(where, fmt.Sprintf(`(c.document_number ILIKE $%[1]d ESCAPE '\' OR c.first_name ILIKE $%[1]d ESCAPE '\')`, len(args)))
	}
	if f.CustomerID != 0 {
		args = append(args, f.CustomerID)
		where = append(where, fmt.Sprintf("p.customer_id = $%d", len(args)))
	}
	if !f.From.IsZero() {
		args = append(args, f.From)
		where = append(where, fmt.Sprintf("p.purchase_date >= $%d", len(args)))
	}
	if !f.To.IsZero() {
		args = append(args, f.To)
		where = append(where, fmt.Sprintf("p.purchase_date < $%d", len(args)))
	}
	query := `
		SELECT p.id, p.customer_id, p.purchase_date, p.total_amount, p.notes
		FROM purchases p
		JOIN customers c ON c.id = p.customer_id`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY p.purchase_date DESC, p.id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	list, err := collectPurchases(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Delete elimina la compra; domain.ErrProtected mientras tenga líneas.
func (r *PurchaseRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id); err != nil {
		return mapDeleteError("delete purchase", err)
	}
	return nil
}

// ListRecentByCustomers últimas `limit` compras de cada cliente en una sola consulta
// (ROW_NUMBER por cliente) y sus líneas en una segunda.
func (r *PurchaseRepo) ListRecentByCustomers(ctx context.Context, customerIDs []int64, limit int) (map[int64][]*entity.Purchase, error) {
	out := make(map[int64][]*entity.Purchase, len(customerIDs))
	if len(customerIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT id, customer_id, purchase_date, total_amount, notes
		FROM (
			SELECT p.*, ROW_NUMBER() OVER (PARTITION BY p.customer_id ORDER BY p.purchase_date DESC, p.id DESC) AS rn
			FROM purchases p
			WHERE p.customer_id = ANY($1)
		) ranked
		WHERE rn <= $2
		ORDER BY customer_id, purchase_date DESC, id DESC`
	rows, err := r.q.Query(ctx, query, customerIDs, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent purchases: %w", err)
	}
	list, err := collectPurchases(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, list); err != nil {
		return nil, err
	}
	for _, p := range list {
		out[p.CustomerID] = append(out[p.CustomerID], p)
	}
	return out, nil
}

// ListHistoryByCustomer todas las líneas de compra del cliente, en orden cronológico.
func (r *PurchaseRepo) ListHistoryByCustomer(ctx context.Context, customerID int64) ([]repository.PurchaseHistoryRow, error) {
	query := `
		SELECT p.id, p.purchase_date, pr.name, pi.quantity, pi.unit_price, pi.subtotal
		FROM purchases p
		JOIN purchase_items pi ON pi.purchase_id = p.id
		JOIN products pr ON pr.id = pi.product_id
		WHERE p.customer_id = $1
		ORDER BY p.purchase_date, p.id, pi.id`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list purchase history: %w", err)
	}
	defer rows.Close()
	var out []repository.PurchaseHistoryRow
	for rows.Next() {
		var h repository.PurchaseHistoryRow
		if err := rows.Scan(&h.PurchaseID, &h.PurchaseDate, &h.ProductName, &h.Quantity, &h.UnitPrice, &h.Subtotal); err != nil {
			return nil, fmt.Errorf("scan purchase history: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// attachItems carga en una consulta las líneas de todas las compras dadas.
func (r *PurchaseRepo) attachItems(ctx context.Context, purchases []*entity.Purchase) error {
	if len(purchases) == 0 {
		return nil
	}
	byID := make(map[int64]*entity.Purchase, len(purchases))
	ids := make([]int64, 0, len(purchases))
	for _, p := range purchases {
		p.Items = []*entity.PurchaseItem{}
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}
	rows, err := r.q.Query(ctx, `
		SELECT pi.id, pi.purchase_id, pi.product_id, pr.name, pi.quantity, pi.unit_price, pi.subtotal
		FROM purchase_items pi
		JOIN products pr ON pr.id = pi.product_id
		WHERE pi.purchase_id = ANY($1)
		ORDER BY pi.purchase_id, pi.id`, ids)
	if err != nil {
		return fmt.Errorf("list purchase_items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.PurchaseItem
		if err := rows.Scan(&it.ID, &it.PurchaseID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return fmt.Errorf("scan purchase_item: %w", err)
		}
		if p, ok := byID[it.PurchaseID]; ok {
			p.Items = append(p.Items, &it)
		}
	}
	return rows.Err()
}

func collectPurchases(rows pgx.Rows) ([]*entity.Purchase, error) {
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanPurchase(row pgx.Row) (*entity.Purchase, error) {
	var p entity.Purchase
	var notes *string
	if err := row.Scan(&p.ID, &p.CustomerID, &p.PurchaseDate, &p.TotalAmount, &notes); err != nil {
		return nil, err
	}
	p.Notes = derefString(notes)
	return &p, nil
}
