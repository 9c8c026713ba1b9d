package usecase

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/clientes-api/internal/domain"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domain.ErrInvalidInput}, args...)...)
}

// requireText recorta espacios y valida presencia y longitud máxima (en runas).
func requireText(field, value string, max int) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", invalid("%s es requerido", field)
	}
	if utf8.RuneCountInString(v) > max {
		return "", invalid("%s admite máximo %d caracteres", field, max)
	}
	return v, nil
}

func optionalText(field, value string, max int) (string, error) {
	v := strings.TrimSpace(value)
	if utf8.RuneCountInString(v) > max {
		return "", invalid("%s admite máximo %d caracteres", field, max)
	}
	return v, nil
}

func validEmail(value string) (string, error) {
	v := strings.TrimSpace(value)
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v {
		return "", invalid("email %q no es una dirección válida", value)
	}
	return v, nil
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
