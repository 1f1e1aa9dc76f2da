// seed_executives genera el script SQL que puebla el directorio de ejecutivos (tabla executive)
// a partir de un CSV exportado de RR.HH.
//
// Uso: go run ./cmd/seed_executives [ruta/executives.csv]
// Por defecto busca executives.csv en el directorio actual. El archivo puede venir en UTF-8 o ISO-8859-1.
// Columnas (con cabecera, en cualquier orden): employee_id, name, email, role, cluster, variable_pay.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_executives.sql
package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type executiveRow struct {
	EmployeeID  string
	Name        string
	Email       string
	Role        string
	Cluster     string
	VariablePay decimal.NullDecimal
}

var requiredColumns = []string{"employee_id", "name", "email", "role", "cluster", "variable_pay"}

func main() {
	csvPath := "executives.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}

	rows, skipped, err := readExecutives(decodeInput(raw))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_executives.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d ejecutivos, %d filas omitidas\n", outPath, len(rows), skipped)
}

// decodeInput pasa a UTF-8 los exports en Latin-1.
func decodeInput(raw []byte) io.Reader {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if utf8.Valid(raw) {
		return bytes.NewReader(raw)
	}
	return transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder())
}

// readExecutives parsea el CSV. Las filas sin employee_id se omiten; un employee_id repetido conserva la última fila.
func readExecutives(r io.Reader) ([]executiveRow, int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, errors.New("CSV vacío")
		}
		return nil, 0, err
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			return nil, 0, fmt.Errorf("falta la columna %q", c)
		}
	}

	field := func(rec []string, col string) string {
		i := idx[col]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var rows []executiveRow
	pos := map[string]int{}
	skipped := 0
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, 0, fmt.Errorf("línea %d: %w", line, err)
		}
		row := executiveRow{
			EmployeeID: field(rec, "employee_id"),
			Name:       field(rec, "name"),
			Email:      field(rec, "email"),
			Role:       strings.ToUpper(field(rec, "role")),
			Cluster:    field(rec, "cluster"),
		}
		if row.EmployeeID == "" {
			skipped++
			continue
		}
		if pay := strings.ReplaceAll(field(rec, "variable_pay"), ",", ""); pay != "" {
			d, err := decimal.NewFromString(pay)
			if err != nil {
				return nil, 0, fmt.Errorf("línea %d: variable_pay %q: %w", line, pay, err)
			}
			row.VariablePay = decimal.NullDecimal{Decimal: d, Valid: true}
		}
		if i, ok := pos[row.EmployeeID]; ok {
			rows[i] = row
			continue
		}
		pos[row.EmployeeID] = len(rows)
		rows = append(rows, row)
	}
	return rows, skipped, nil
}

func writeSQL(w io.Writer, rows []executiveRow) error {
	var b strings.Builder
	b.WriteString("-- Directorio de ejecutivos\n")
	b.WriteString("-- Generado por cmd/seed_executives\n\n")
	if len(rows) == 0 {
		b.WriteString("-- sin filas\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString("INSERT INTO executive (employee_id, name, email, role, cluster, variable_pay) VALUES\n")
	for i, r := range rows {
		fmt.Fprintf(&b, "  (%s, %s, %s, %s, %s, %s)",
			sqlText(r.EmployeeID), sqlText(r.Name), sqlText(r.Email), sqlText(r.Role), sqlText(r.Cluster), sqlNumeric(r.VariablePay))
		if i < len(rows)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}
	b.WriteString("ON CONFLICT (employee_id) DO UPDATE SET\n")
	b.WriteString("  name = EXCLUDED.name, email = EXCLUDED.email, role = EXCLUDED.role,\n")
	b.WriteString("  cluster = EXCLUDED.cluster, variable_pay = EXCLUDED.variable_pay;\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// sqlText literal SQL; vacío = NULL.
func sqlText(s string) string {
	if s == "" {
		return "NULL"
	}
	return "'" + escapeSQL(s) + "'"
}

func sqlNumeric(d decimal.NullDecimal) string {
	if !d.Valid {
		return "NULL"
	}
	return d.Decimal.StringFixed(2)
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
