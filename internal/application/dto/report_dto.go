package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LookupCustomerDTO cliente en la respuesta de búsqueda por prefijo de documento.
type LookupCustomerDTO struct {
	ID               int64  `json:"id"`
	DocumentTypeName string `json:"document_type_name"`
	DocumentNumber   string `json:"document_number"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
}

// LookupPurchaseDTO compra reciente en la respuesta de búsqueda.
type LookupPurchaseDTO struct {
	ID           int64                  `json:"id"`
	PurchaseDate time.Time              `json:"purchase_date"`
	TotalAmount  decimal.Decimal        `json:"total_amount"`
	Items        []PurchaseItemResponse `json:"items"`
}

// CustomerLookupResponse GET /api/customer/:document_number.
// purchases_by_customer va indexado por id de cliente (clave string en JSON).
type CustomerLookupResponse struct {
	Customers           []LookupCustomerDTO           `json:"customers"`
	PurchasesByCustomer map[int64][]LookupPurchaseDTO `json:"purchases_by_customer"`
}

// FileDTO archivo generado listo para descargar.
type FileDTO struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ReportErrorResponse cuerpo 404 de búsqueda y exportación.
type ReportErrorResponse struct {
	Error string `json:"error"`
}

// ReportMessageResponse cuerpo 404 del reporte de fidelización.
type ReportMessageResponse struct {
	Message string `json:"message"`
}
