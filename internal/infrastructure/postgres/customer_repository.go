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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerSelect = `
	SELECT c.id, c.document_type_id, dt.name, c.document_number, c.first_name, c.last_name,
	       c.email, c.phone, c.address, c.created_at, c.updated_at, c.is_active
	FROM customers c
	JOIN document_types dt ON dt.id = c.document_type_id`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente y asigna su ID.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (document_type_id, document_number, first_name, last_name, email, phone, address, created_at, updated_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.DocumentTypeID, c.DocumentNumber, c.FirstName, c.LastName, c.Email, c.Phone, c.Address,
		c.CreatedAt, c.UpdatedAt, c.IsActive,
	).Scan(&c.ID)
	if err != nil {
		return mapWriteError("insert customer", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	return r.getOne(ctx, customerSelect+` WHERE c.id = $1`, id)
}

// GetByDocumentNumber obtiene un cliente por número de documento exacto.
func (r *CustomerRepo) GetByDocumentNumber(ctx context.Context, documentNumber string) (*entity.Customer, error) {
	return r.getOne(ctx, customerSelect+` WHERE c.document_number = $1`, documentNumber)
}

func (r *CustomerRepo) getOne(ctx context.Context, query string, arg any) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// ListByDocumentPrefix clientes cuyo documento empieza por prefix, ordenados por documento.
// Usa el índice text_pattern_ops de document_number.
func (r *CustomerRepo) ListByDocumentPrefix(ctx context.Context, prefix string) ([]*entity.Customer, error) {
	query := customerSelect + ` WHERE c.document_number LIKE $1 ESCAPE '\' ORDER BY c.document_number, c.id`
	return r.list(ctx, query, escapeLike(prefix)+"%")
}

// List lista clientes con los filtros del panel.
func (r *CustomerRepo) List(ctx context.Context, f repository.CustomerFilter) ([]*entity.Customer, error) {
	var where []string
	var args []any
	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+escapeLike(s)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(
			`(c.document_number ILIKE $%[1]d ESCAPE '\' OR c.first_name ILIKE $%[1]d ESCAPE '\' OR c.last_name ILIKE $%[1]d ESCAPE '\' OR c.email ILIKE $%[1]d ESCAPE '\')`, n))
	}
	if f.DocumentTypeID != 0 {
		args = append(args, f.DocumentTypeID)
		where = append(where, fmt.Sprintf("c.document_type_id = $%d", len(args)))
	}
	if f.IsActive != nil {
		args = append(args, *f.IsActive)
		where = append(where, fmt.Sprintf("c.is_active = $%d", len(args)))
	}
	query := customerSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY c.last_name, c.first_name, c.id LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	return r.list(ctx, query, args...)
}

func (r *CustomerRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers
		SET document_type_id = $2, document_number = $3, first_name = $4, last_name = $5,
		    email = $6, phone = $7, address = $8, updated_at = $9, is_active = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.DocumentTypeID, c.DocumentNumber, c.FirstName, c.LastName,
		c.Email, c.Phone, c.Address, c.UpdatedAt, c.IsActive,
	)
	if err != nil {
		return mapWriteError("update customer", err)
	}
	return nil
}

// Delete elimina un cliente por ID; domain.ErrProtected si tiene compras.
func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id); err != nil {
		return mapDeleteError("delete customer", err)
	}
	return nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.DocumentTypeID, &c.DocumentTypeName, &c.DocumentNumber, &c.FirstName, &c.LastName,
		&c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt, &c.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
