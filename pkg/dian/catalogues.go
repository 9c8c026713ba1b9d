// Package dian contiene el catálogo de tipos de documento de identificación
// (Anexo Técnico DIAN v1.9, tabla 13.2.1) y la validación del NIT.
package dian

import "sort"

// Códigos DIAN de tipos de documento de identificación.
const (
	IdentificationRegistroCivil       = "11"
	IdentificationTarjetaIdentidad    = "12"
	IdentificationCedulaCiudadania    = "13"
	IdentificationTarjetaExtranjeria  = "21"
	IdentificationCedulaExtranjeria   = "22"
	IdentificationNIT                 = "31" // requiere dígito de verificación
	IdentificationPasaporte           = "41"
	IdentificationDocumentoExtranjero = "42"
	IdentificationNITOtroPais         = "50"
	IdentificationNUIP                = "91"
)

// IdentificationType entrada del catálogo.
type IdentificationType struct {
	Code string
	Name string
}

var identificationNames = map[string]string{
	IdentificationRegistroCivil:       "Registro civil",
	IdentificationTarjetaIdentidad:    "Tarjeta de identidad",
	IdentificationCedulaCiudadania:    "Cédula de ciudadanía",
	IdentificationTarjetaExtranjeria:  "Tarjeta de extranjería",
	IdentificationCedulaExtranjeria:   "Cédula de extranjería",
	IdentificationNIT:                 "NIT",
	IdentificationPasaporte:           "Pasaporte",
	IdentificationDocumentoExtranjero: "Documento de identificación extranjero",
	IdentificationNITOtroPais:         "NIT de otro país",
	IdentificationNUIP:                "NUIP",
}

// IdentificationTypes devuelve el catálogo ordenado por código.
func IdentificationTypes() []IdentificationType {
	out := make([]IdentificationType, 0, len(identificationNames))
	for code, name := range identificationNames {
		out = append(out, IdentificationType{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// IsValidIdentificationCode indica si el código pertenece al catálogo.
func IsValidIdentificationCode(code string) bool {
	_, ok := identificationNames[code]
	return ok
}
