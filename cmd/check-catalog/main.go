// CLI tool to validate a foods CSV before deploying it as the bundled catalog.
// Reports the schema check result, row count, duplicate food names (only the
// first occurrence of a name is ever served), and zero-kcal rows.
// Usage: go run ./cmd/check-catalog [path] (default: $FOODS_CSV or foods_korean.csv)
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var requiredColumns = []string{"food", "serving", "kcal", "carbs_g", "protein_g", "fat_g"}

func main() {
	_ = godotenv.Load()

	path := os.Getenv("FOODS_CSV")
	if path == "" {
		path = "foods_korean.csv"
	}
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
		os.Exit(1)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading header of %s: %v\n", path, err)
		os.Exit(1)
	}
	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := colIdx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "Schema check FAILED: missing columns: %s\n", strings.Join(missing, ", "))
		os.Exit(1)
	}

	seen := make(map[string]bool)
	var rows, duplicates, zeroKcal int
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading row %d: %v\n", rows+1, err)
			os.Exit(1)
		}
		rows++

		name := strings.TrimSpace(record[colIdx["food"]])
		if seen[name] {
			fmt.Printf("  duplicate: %s (row %d, earlier row wins lookups)\n", name, rows)
			duplicates++
		}
		seen[name] = true

		kcalCell := ""
		if i := colIdx["kcal"]; i < len(record) {
			kcalCell = strings.TrimSpace(record[i])
		}
		if kcal, err := strconv.ParseFloat(kcalCell, 64); err != nil || kcal == 0 {
			fmt.Printf("  zero kcal: %s (row %d)\n", name, rows)
			zeroKcal++
		}
	}

	fmt.Printf("\n%s: schema OK, %d food(s), %d duplicate(s), %d zero-kcal row(s).\n",
		path, rows, duplicates, zeroKcal)
}
