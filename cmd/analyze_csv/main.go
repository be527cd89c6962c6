// Command analyze_csv sniffs a tabular file, auto-maps its columns
// against one of the registered import layouts and prints the quality
// report. Useful for checking a customer file before uploading it.
//
// Usage: analyze_csv <tipo> <arquivo>
package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/ImplantacaoMW/datacheckai/database"
	"github.com/ImplantacaoMW/datacheckai/importer"
	"github.com/ImplantacaoMW/datacheckai/layout"
	"github.com/ImplantacaoMW/datacheckai/mapping"
	"github.com/ImplantacaoMW/datacheckai/quality"
)

func main() {
	if len(os.Args) != 3 {
		ids := layout.IDs()
		sort.Strings(ids)
		fmt.Fprintf(os.Stderr, "uso: %s <tipo> <arquivo>\ntipos: %s\n",
			os.Args[0], strings.Join(ids, ", "))
		os.Exit(2)
	}
	tipo, path := os.Args[1], os.Args[2]

	l, ok := layout.Get(tipo)
	if !ok {
		log.Fatalf("tipo de layout desconhecido: %q", tipo)
	}
	val, _ := quality.For(tipo)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("erro ao ler %q: %v", path, err)
	}

	result, err := importer.Detect(data, path)
	if err != nil {
		log.Fatalf("erro ao interpretar %q: %v", path, err)
	}

	fmt.Printf("arquivo:    %s\n", path)
	fmt.Printf("encoding:   %s\n", result.Encoding)
	if result.Delimiter != 0 {
		fmt.Printf("separador:  %q\n", result.Delimiter)
	}
	fmt.Printf("colunas:    %d\n", len(result.Dataset.Columns))
	fmt.Printf("registros:  %d\n", result.Dataset.RowCount())
	for _, alert := range result.Alerts {
		fmt.Printf("%s\n", alert)
	}

	// Learned samples sharpen the mapping when the local store exists,
	// header matching alone otherwise.
	var samples map[string][]string
	dbPath := os.Getenv("SAMPLE_DB_PATH")
	if dbPath == "" {
		dbPath = "amostras.db"
	}
	if _, err := os.Stat(dbPath); err == nil {
		store, err := database.NewSampleStore(dbPath)
		if err != nil {
			log.Printf("banco de amostras indisponível: %v", err)
		} else {
			defer store.Close()
			if samples, err = store.Load(tipo); err != nil {
				log.Printf("erro ao carregar amostras: %v", err)
				samples = nil
			}
		}
	}

	mapper := mapping.NewMapper(0, 0)
	autoMap := mapper.Map(result.Dataset, l, samples, val)

	fmt.Println("\nmapeamento:")
	for _, fieldID := range l.FieldIDs() {
		col, ok := autoMap[fieldID]
		if !ok {
			continue
		}
		fmt.Printf("  %-30s <- %s\n", fieldID, col)
	}
	var missing []string
	for _, id := range l.RequiredIDs() {
		if autoMap[id] == "" {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		fmt.Printf("  obrigatórios sem mapeamento: %s\n", strings.Join(missing, ", "))
	}

	report, err := quality.Analyze(result.Dataset, l, autoMap)
	if err != nil {
		log.Fatalf("erro na análise: %v", err)
	}

	fmt.Printf("\nlinhas válidas:   %d\n", report.ValidRows)
	fmt.Printf("linhas inválidas: %d\n", report.InvalidRows)

	if len(report.Records) > 0 {
		fmt.Println("\ninconsistências:")
		for _, rec := range report.Records {
			fmt.Printf("  [%s] %s: %s\n", rec.Category, rec.Label, rec.Message)
			if len(rec.Samples) > 0 {
				fmt.Printf("      exemplos: %s\n", strings.Join(rec.Samples, ", "))
			}
		}
	}

	fmt.Println("\nestatísticas por campo:")
	for _, st := range report.Stats {
		fmt.Printf("  %-30s válidos=%d inválidos=%d\n", st.Field, st.Valid, st.Invalid)
	}
}
