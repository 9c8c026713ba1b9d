package entity

// DocumentType tipo de documento de identidad (cédula, NIT, pasaporte...).
type DocumentType struct {
	ID          int64
	Name        string // único
	Description string // vacío = NULL
	DIANCode    string // código tabla 13.2.1 DIAN; vacío si no aplica
	IsActive    bool
}
