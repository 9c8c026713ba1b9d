package entity

// ProductCategory agrupa productos.
type ProductCategory struct {
	ID          int64
	Name        string
	Description string
	IsActive    bool
}
