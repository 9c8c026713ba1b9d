package entity

import "time"

// Customer representa un cliente identificado por su número de documento.
type Customer struct {
	ID               int64
	DocumentTypeID   int64
	DocumentTypeName string // solo lectura, viene del JOIN con document_types
	DocumentNumber   string // único
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Address          string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	IsActive         bool
}

// FullName nombre y apellido separados por espacio.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
