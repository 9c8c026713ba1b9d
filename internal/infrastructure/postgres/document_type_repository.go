package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ repository.DocumentTypeRepository = (*DocumentTypeRepo)(nil)

const documentTypeColumns = `id, name, description, dian_code, is_active`

// DocumentTypeRepo implementación de DocumentTypeRepository.
type DocumentTypeRepo struct {
	q Querier
}

// NewDocumentTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentTypeRepository(q Querier) *DocumentTypeRepo {
	return &DocumentTypeRepo{q: q}
}

// Create persiste un tipo de documento y asigna su ID.
func (r *DocumentTypeRepo) Create(ctx context.Context, dt *entity.DocumentType) error {
	query := `
		INSERT INTO document_types (name, description, dian_code, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, dt.Name, nullIfEmpty(dt.Description), nullIfEmpty(dt.DIANCode), dt.IsActive).Scan(&dt.ID)
	if err != nil {
		return mapWriteError("insert document_type", err)
	}
	return nil
}

// GetByID obtiene un tipo de documento por ID.
func (r *DocumentTypeRepo) GetByID(ctx context.Context, id int64) (*entity.DocumentType, error) {
	return r.getOne(ctx, `SELECT `+documentTypeColumns+` FROM document_types WHERE id = $1`, id)
}

// GetByName obtiene un tipo de documento por nombre exacto.
func (r *DocumentTypeRepo) GetByName(ctx context.Context, name string) (*entity.DocumentType, error) {
	return r.getOne(ctx, `SELECT `+documentTypeColumns+` FROM document_types WHERE name = $1`, name)
}

func (r *DocumentTypeRepo) getOne(ctx context.Context, query string, arg any) (*entity.DocumentType, error) {
	dt, err := scanDocumentType(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document_type: %w", err)
	}
	return dt, nil
}

// List lista tipos de documento por nombre.
func (r *DocumentTypeRepo) List(ctx context.Context, page repository.Page) ([]*entity.DocumentType, error) {
	rows, err := r.q.Query(ctx, `SELECT `+documentTypeColumns+` FROM document_types ORDER BY name LIMIT $1 OFFSET $2`, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list document_types: %w", err)
	}
	defer rows.Close()
	var list []*entity.DocumentType
	for rows.Next() {
		dt, err := scanDocumentType(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document_type: %w", err)
		}
		list = append(list, dt)
	}
	return list, rows.Err()
}

// Update actualiza un tipo de documento.
func (r *DocumentTypeRepo) Update(ctx context.Context, dt *entity.DocumentType) error {
	query := `
		UPDATE document_types SET name = $2, description = $3, dian_code = $4, is_active = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, dt.ID, dt.Name, nullIfEmpty(dt.Description), nullIfEmpty(dt.DIANCode), dt.IsActive)
	if err != nil {
		return mapWriteError("update document_type", err)
	}
	return nil
}

// Delete elimina un tipo de documento; domain.ErrProtected si hay clientes que lo usan.
func (r *DocumentTypeRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM document_types WHERE id = $1`, id); err != nil {
		return mapDeleteError("delete document_type", err)
	}
	return nil
}

func scanDocumentType(row pgx.Row) (*entity.DocumentType, error) {
	var dt entity.DocumentType
	var description, dianCode *string
	if err := row.Scan(&dt.ID, &dt.Name, &description, &dianCode, &dt.IsActive); err != nil {
		return nil, err
	}
	dt.Description = derefString(description)
	dt.DIANCode = derefString(dianCode)
	return &dt, nil
}
