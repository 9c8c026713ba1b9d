package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/clientes-api/internal/domain"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == pgerrcode.UniqueViolation
}

// isForeignKeyViolation 23503: un DELETE choca con ON DELETE RESTRICT o un INSERT apunta a un padre inexistente.
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == pgerrcode.ForeignKeyViolation
}

// isCheckViolation 23514: CHECK de la tabla (precio negativo, cantidad < 1...).
func isCheckViolation(err error) bool {
	return pgCode(err) == pgerrcode.CheckViolation
}

// isNumericOutOfRange 22003: el valor no cabe en la columna (NUMERIC(12,2), INTEGER).
func isNumericOutOfRange(err error) bool {
	return pgCode(err) == pgerrcode.NumericValueOutOfRange
}

// mapWriteError traduce errores de escritura a errores de dominio; el resto se envuelve con op.
func mapWriteError(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isCheckViolation(err):
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, op)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, op)
	case isNumericOutOfRange(err):
		return fmt.Errorf("%w: %s: valor numérico fuera de rango", domain.ErrInvalidInput, op)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// mapDeleteError: en un DELETE la violación de FK significa que hay dependientes.
func mapDeleteError(op string, err error) error {
	if isForeignKeyViolation(err) {
		return domain.ErrProtected
	}
	return fmt.Errorf("%s: %w", op, err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapa los comodines de LIKE para comparar el texto literalmente.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
