package dto

import "time"

// CustomerRequest body para POST/PUT /api/customers.
type CustomerRequest struct {
	DocumentTypeID int64  `json:"document_type_id"`
	DocumentNumber string `json:"document_number"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	IsActive       *bool  `json:"is_active,omitempty"`
}

// CustomerResponse cliente en respuestas CRUD.
type CustomerResponse struct {
	ID               int64     `json:"id"`
	DocumentTypeID   int64     `json:"document_type_id"`
	DocumentTypeName string    `json:"document_type_name"`
	DocumentNumber   string    `json:"document_number"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CustomerListFilter query params de GET /api/customers.
type CustomerListFilter struct {
	PageRequest
	Search         string `query:"search"`
	DocumentTypeID int64  `query:"document_type_id"`
	IsActive       *bool  `query:"is_active"`
}
