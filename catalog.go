package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// requiredFoodColumns is the schema contract for a foods CSV. A source missing
// any of these is rejected wholesale — without them no meal calorie can be
// derived. Also defines the column order of the export.
var requiredFoodColumns = []string{"food", "serving", "kcal", "carbs_g", "protein_g", "fat_g"}

// foodTable is the loaded food catalog. Immutable after load: the only way to
// change it is wholesale replacement via catalogHolder.
type foodTable struct {
	rows []foodItem
}

// loadFoodCatalog parses a foods CSV into a foodTable. The header must contain
// all six required columns (any order, extra columns ignored). That is the
// only validation: blank or unparseable numeric cells become 0, negative
// values and duplicate food names are kept as-is.
func loadFoodCatalog(r io.Reader) (*foodTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("foods CSV is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read foods CSV header: %w", err)
	}

	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range requiredFoodColumns {
		if _, ok := colIdx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("foods CSV missing required columns: %s", strings.Join(missing, ", "))
	}

	t := &foodTable{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read foods CSV row: %w", err)
		}
		cell := func(name string) string {
			i := colIdx[name]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}
		t.rows = append(t.rows, foodItem{
			Food:     cell("food"),
			Serving:  cell("serving"),
			Kcal:     lenientFloat(cell("kcal")),
			CarbsG:   lenientFloat(cell("carbs_g")),
			ProteinG: lenientFloat(cell("protein_g")),
			FatG:     lenientFloat(cell("fat_g")),
		})
	}
	return t, nil
}

// lenientFloat parses a numeric cell, treating blanks and garbage as 0 rather
// than failing the whole load.
func lenientFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// lookup finds a food by exact, case-sensitive name. First match wins when
// the catalog carries duplicates.
func (t *foodTable) lookup(name string) (foodItem, bool) {
	for _, row := range t.rows {
		if row.Food == name {
			return row, true
		}
	}
	return foodItem{}, false
}

// len reports the number of registered foods.
func (t *foodTable) len() int {
	return len(t.rows)
}

// writeCSV serializes the catalog in the same six-column shape it was loaded
// in, for the export download.
func (t *foodTable) writeCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(requiredFoodColumns); err != nil {
		return fmt.Errorf("write foods CSV header: %w", err)
	}
	for _, row := range t.rows {
		record := []string{
			row.Food,
			row.Serving,
			strconv.FormatFloat(row.Kcal, 'f', -1, 64),
			strconv.FormatFloat(row.CarbsG, 'f', -1, 64),
			strconv.FormatFloat(row.ProteinG, 'f', -1, 64),
			strconv.FormatFloat(row.FatG, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write foods CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

/* ─── Catalog holder ─────────────────────────────────────────────────── */

// catalogHolder guards the current catalog. Reads vastly outnumber the rare
// wholesale replacement from an upload, hence the RWMutex. A nil table means
// no valid catalog has been supplied yet; core routes refuse to serve until
// one is.
type catalogHolder struct {
	mu    sync.RWMutex
	table *foodTable
}

func (h *catalogHolder) get() *foodTable {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.table
}

func (h *catalogHolder) replace(t *foodTable) {
	h.mu.Lock()
	h.table = t
	h.mu.Unlock()
}
