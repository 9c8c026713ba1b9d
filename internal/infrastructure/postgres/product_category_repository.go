package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ repository.ProductCategoryRepository = (*ProductCategoryRepo)(nil)

// ProductCategoryRepo implementación de ProductCategoryRepository.
type ProductCategoryRepo struct {
	q Querier
}

// NewProductCategoryRepository construye el adaptador.
func NewProductCategoryRepository(q Querier) *ProductCategoryRepo {
	return &ProductCategoryRepo{q: q}
}

// Create persiste una categoría.
func (r *ProductCategoryRepo) Create(ctx context.Context, c *entity.ProductCategory) error {
	query := `
		INSERT INTO product_categories (name, description, is_active)
		VALUES ($1, $2, $3)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, c.Name, nullIfEmpty(c.Description), c.IsActive).Scan(&c.ID); err != nil {
		return mapWriteError("insert product_category", err)
	}
	return nil
}

// GetByID obtiene una categoría.
func (r *ProductCategoryRepo) GetByID(ctx context.Context, id int64) (*entity.ProductCategory, error) {
	c, err := scanCategory(r.q.QueryRow(ctx, `SELECT id, name, description, is_active FROM product_categories WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product_category: %w", err)
	}
	return c, nil
}

// List lista categorías por nombre.
func (r *ProductCategoryRepo) List(ctx context.Context, page repository.Page) ([]*entity.ProductCategory, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, description, is_active FROM product_categories
		ORDER BY name LIMIT $1 OFFSET $2`, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list product_categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductCategory
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product_category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza una categoría.
func (r *ProductCategoryRepo) Update(ctx context.Context, c *entity.ProductCategory) error {
	_, err := r.q.Exec(ctx, `
		UPDATE product_categories SET name = $2, description = $3, is_active = $4 WHERE id = $1`,
		c.ID, c.Name, nullIfEmpty(c.Description), c.IsActive)
	if err != nil {
		return mapWriteError("update product_category", err)
	}
	return nil
}

// Delete elimina la categoría; domain.ErrProtected si tiene productos.
func (r *ProductCategoryRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM product_categories WHERE id = $1`, id); err != nil {
		return mapDeleteError("delete product_category", err)
	}
	return nil
}

func scanCategory(row pgx.Row) (*entity.ProductCategory, error) {
	var c entity.ProductCategory
	var description *string
	if err := row.Scan(&c.ID, &c.Name, &description, &c.IsActive); err != nil {
		return nil, err
	}
	c.Description = derefString(description)
	return &c, nil
}
