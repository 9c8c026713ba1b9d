package repository

import "time"

// Page paginación común a los listados.
type Page struct {
	Limit  int
	Offset int
}

// CustomerFilter filtros del listado de clientes (búsqueda del panel administrativo).
type CustomerFilter struct {
	Page
	Search         string // documento, nombre, apellido o email (contiene, sin distinguir mayúsculas)
	DocumentTypeID int64  // 0 = todos
	IsActive       *bool
}

// ProductFilter filtros del listado de productos.
type ProductFilter struct {
	Page
	Search     string // nombre
	CategoryID int64
	IsActive   *bool
}

// PurchaseFilter filtros del listado de compras.
type PurchaseFilter struct {
	Page
	Search     string // número de documento o nombre del cliente
	CustomerID int64
	From       time.Time // inclusive; cero = sin límite
	To         time.Time // exclusivo; cero = sin límite
}
