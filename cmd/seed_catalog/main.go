// seed_catalog genera un script SQL para poblar las tablas de catálogo
// (posiciones, niveles, países, localizaciones, contratos y requisitos)
// a partir de un CSV de definición.
//
// Uso: go run ./cmd/seed_catalog [ruta/catalog.csv]
// Por defecto busca catalog.csv en el directorio actual.
// Formato (punto y coma): tipo;nombre[;extra]
//   position;Backend Developer
//   level;Junior
//   country;Poland
//   localization;Poland;Warsaw
//   contract;B2B
//   requirement;Git
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type catalogRow struct {
	kind  string
	name  string
	extra string
}

func main() {
	csvPath := "catalog.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	byKind := make(map[string][]catalogRow)
	for _, rec := range records {
		if len(rec) < 2 || strings.TrimSpace(rec[0]) == "" {
			continue
		}
		row := catalogRow{
			kind: strings.ToLower(strings.TrimSpace(rec[0])),
			name: strings.TrimSpace(rec[1]),
		}
		if len(rec) > 2 {
			row.extra = strings.TrimSpace(rec[2])
		}
		byKind[row.kind] = append(byKind[row.kind], row)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo de ofertas (posiciones, niveles, localizaciones, contratos, requisitos)\n")
	out.WriteString("-- Generado desde catalog.csv\n\n")

	simple := []struct{ kind, table string }{
		{"position", "positions"},
		{"level", "levels"},
		{"country", "countries"},
		{"contract", "contracts"},
		{"requirement", "requirements"},
	}
	total := 0
	for _, s := range simple {
		rows := byKind[s.kind]
		if len(rows) == 0 {
			continue
		}
		fmt.Fprintf(out, "-- %s\n", s.table)
		fmt.Fprintf(out, "INSERT INTO %s (id, name) VALUES\n", s.table)
		for i, r := range rows {
			sep := ","
			if i == len(rows)-1 {
				sep = ""
			}
			fmt.Fprintf(out, "  (gen_random_uuid(), '%s')%s\n", escapeSQL(r.name), sep)
		}
		out.WriteString("ON CONFLICT (name) DO NOTHING;\n\n")
		total += len(rows)
	}

	// Localizaciones con subquery al país: tipo;país;ciudad
	if locs := byKind["localization"]; len(locs) > 0 {
		out.WriteString("-- localizations\n")
		for _, l := range locs {
			if l.extra == "" {
				continue
			}
			fmt.Fprintf(out, "INSERT INTO localizations (id, country_id, city)\n")
			fmt.Fprintf(out, "SELECT gen_random_uuid(), id, '%s' FROM countries WHERE name = '%s'\n",
				escapeSQL(l.extra), escapeSQL(l.name))
			out.WriteString("ON CONFLICT (country_id, city) DO NOTHING;\n")
			total++
		}
	}

	fmt.Printf("Generado %s: %d entradas de catálogo\n", outPath, total)
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
