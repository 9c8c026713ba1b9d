package dian

import (
	"fmt"
	"unicode"
)

// pesos para el cálculo del dígito de verificación NIT (Orden Administrativa 4 de 1989, DIAN).
// Se aplican de derecha a izquierda sobre el número base (hasta 15 dígitos).
var nitWeights = [15]int{3, 7, 13, 17, 19, 23, 29, 37, 41, 43, 47, 53, 59, 67, 71}

// ComputeNITVerificationDigit calcula el dígito de verificación (módulo 11) del número base.
func ComputeNITVerificationDigit(base string) (byte, error) {
	digits := extractDigits(base)
	if len(digits) == 0 || len(digits) > len(nitWeights) {
		return 0, fmt.Errorf("dian: el NIT base debe tener entre 1 y %d dígitos, se encontraron %d", len(nitWeights), len(digits))
	}
	var sum int
	for i := range digits {
		d := digits[len(digits)-1-i]
		sum += int(d-'0') * nitWeights[i]
	}
	remainder := sum % 11
	if remainder == 0 || remainder == 1 {
		return byte('0' + remainder), nil
	}
	return byte('0' + (11 - remainder)), nil
}

// ValidateNITVerificationDigit valida un NIT con su dígito de verificación al final.
// Acepta "900123456-8", "900.123.456-8" o "9001234568".
func ValidateNITVerificationDigit(nit string) error {
	digits := extractDigits(nit)
	if len(digits) < 2 {
		return fmt.Errorf("dian: NIT debe incluir número base y dígito de verificación")
	}
	base, got := digits[:len(digits)-1], digits[len(digits)-1]
	expected, err := ComputeNITVerificationDigit(string(base))
	if err != nil {
		return err
	}
	if got != expected {
		return fmt.Errorf("dian: dígito de verificación del NIT inválido: esperado %c, recibido %c", expected, got)
	}
	return nil
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
