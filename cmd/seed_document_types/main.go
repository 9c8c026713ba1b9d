// seed_document_types genera la migración que puebla document_types con el
// catálogo DIAN de tipos de documento de identificación.
//
// Uso: go run ./cmd/seed_document_types [ruta/TipoDocumento.xml]
// Sin argumento usa el catálogo embebido en pkg/dian.
// Escribe: internal/infrastructure/postgres/migrations/000002_seed_document_types.{up,down}.sql
package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/clientes-api/pkg/dian"
)

type parametros struct {
	Tabla struct {
		Valores []valor `xml:"valor"`
	} `xml:"tabla"`
}

type valor struct {
	Cod    string `xml:"cod,attr"`
	Nombre string `xml:"nombre,attr"`
}

func main() {
	types := dian.IdentificationTypes()
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
			os.Exit(1)
		}
		types, err = parseCatalogue(f)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
			os.Exit(1)
		}
	}

	dir := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations")
	if err := writeFile(filepath.Join(dir, "000002_seed_document_types.up.sql"), func(w io.Writer) error { return renderUp(w, types) }); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir up: %v\n", err)
		os.Exit(1)
	}
	if err := writeFile(filepath.Join(dir, "000002_seed_document_types.down.sql"), func(w io.Writer) error { return renderDown(w, types) }); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir down: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d tipos de documento\n", dir, len(types))
}

// parseCatalogue lee el XML paramétrico DIAN (ISO-8859-1) y devuelve los tipos ordenados por código.
func parseCatalogue(r io.Reader) ([]dian.IdentificationType, error) {
	var p parametros
	dec := xml.NewDecoder(r)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}
	var out []dian.IdentificationType
	for _, v := range p.Tabla.Valores {
		code, name := strings.TrimSpace(v.Cod), strings.TrimSpace(v.Nombre)
		if code == "" || name == "" {
			continue
		}
		out = append(out, dian.IdentificationType{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func renderUp(w io.Writer, types []dian.IdentificationType) error {
	var b strings.Builder
	b.WriteString("-- Tipos de documento de identificación (DIAN, tabla 13.2.1)\n")
	b.WriteString("-- Generado por cmd/seed_document_types\n\n")
	b.WriteString("INSERT INTO document_types (name, description, dian_code, is_active) VALUES\n")
	for i, t := range types {
		sep := ","
		if i == len(types)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "  ('%s', 'Código DIAN %s', '%s', TRUE)%s\n", escapeSQL(t.Name), t.Code, t.Code, sep)
	}
	b.WriteString("ON CONFLICT (name) DO UPDATE SET dian_code = EXCLUDED.dian_code;\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func renderDown(w io.Writer, types []dian.IdentificationType) error {
	codes := make([]string, 0, len(types))
	for _, t := range types {
		codes = append(codes, "'"+t.Code+"'")
	}
	_, err := fmt.Fprintf(w,
		"DELETE FROM document_types d\nWHERE d.dian_code IN (%s)\n  AND NOT EXISTS (SELECT 1 FROM customers c WHERE c.document_type_id = d.id);\n",
		strings.Join(codes, ", "))
	return err
}

func writeFile(path string, render func(io.Writer) error) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
