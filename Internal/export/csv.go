// Package export writes and re-reads the normalized article table as CSV,
// the hand-off format between the harvesting and analysis phases.
package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/fazecat/newspulse/Internal/types"
)

var header = []string{"headline", "pub_date", "pub_time"}

// WriteRecords saves the sorted table to path with a header row. The three
// columns round-trip losslessly through ReadRecords.
func WriteRecords(path string, records []types.ArticleRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range records {
		if err := w.Write([]string{r.Headline, r.PubDate, r.PubTime}); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// ReadRecords loads a table previously written by WriteRecords.
func ReadRecords(path string) ([]types.ArticleRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	records := make([]types.ArticleRecord, 0, len(rows)-1)
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) != 3 {
			return nil, fmt.Errorf("row %d: expected 3 columns, got %d", i, len(row))
		}
		records = append(records, types.ArticleRecord{
			Headline: row[0],
			PubDate:  row[1],
			PubTime:  row[2],
		})
	}
	return records, nil
}
