// Package report writes the prices CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"pricecheck/internal/fetcher"
)

// Header of the output file.
var header = []string{"Holding", "GBP Price"}

// Write persists one row per successfully fetched holding, in the order the
// results are given (the coordinator hands them over in input order). Failed
// holdings contribute no row. The file is written exactly once per run and
// replaced atomically enough for a single-writer tool: created fresh,
// flushed, then closed.
func Write(path string, results []fetcher.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, result := range results {
		if result.Err != nil {
			continue
		}
		row := []string{result.Symbol, result.Price.Decimal().String()}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row for %s: %w", result.Symbol, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush output file: %w", err)
	}
	return nil
}
