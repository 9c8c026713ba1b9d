package dto

import "github.com/shopspring/decimal"

// DocumentTypeRequest body para crear/actualizar un tipo de documento.
type DocumentTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	DIANCode    string `json:"dian_code,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// DocumentTypeResponse tipo de documento en respuestas.
type DocumentTypeResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	DIANCode    string `json:"dian_code,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// ProductCategoryRequest body para crear/actualizar una categoría.
type ProductCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// ProductCategoryResponse categoría en respuestas.
type ProductCategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// ProductRequest body para crear/actualizar un producto.
type ProductRequest struct {
	Name        string          `json:"name"`
	CategoryID  int64           `json:"category_id"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	IsActive    *bool           `json:"is_active,omitempty"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category_name,omitempty"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	IsActive     bool            `json:"is_active"`
}

// ProductListFilter query params de GET /api/products.
type ProductListFilter struct {
	PageRequest
	Search     string `query:"search"`
	CategoryID int64  `query:"category_id"`
	IsActive   *bool  `query:"is_active"`
}
