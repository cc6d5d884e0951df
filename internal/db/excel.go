package db

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/vocabolarium/backend/internal/pkg/logger"
)

// sheetName is the single worksheet every table file uses
const sheetName = "Sheet1"

// Table is one whole-file workbook: a header row plus one row per record.
// Every mutation reads the entire sheet, applies the change in memory and
// rewrites the file. The mutex is the serialization point for concurrent
// handlers; without it two writers would race last-writer-wins.
type Table struct {
	path   string
	header []string
	mu     sync.Mutex
}

// NewTable creates a table handle for the workbook at path with the given
// column set. The file itself is not touched until Init.
func NewTable(path string, header []string) *Table {
	return &Table{path: path, header: append([]string(nil), header...)}
}

// Path returns the workbook file path
func (t *Table) Path() string {
	return t.path
}

// Header returns the configured column set, in file order
func (t *Table) Header() []string {
	return append([]string(nil), t.header...)
}

// Init creates the workbook with the header row when the file is absent,
// or appends any newly introduced columns to an existing file. Calling it
// again on a file that already matches the schema is a no-op.
func (t *Table) Init() (created bool, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, statErr := os.Stat(t.path); os.IsNotExist(statErr) {
		if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
			return false, fmt.Errorf("failed to create data directory: %w", err)
		}
		if err := t.save(nil); err != nil {
			return false, err
		}
		logger.Info().Str("path", t.path).Msg("Table file created")
		return true, nil
	}

	// Lazy migration: a column added to the schema after the file was
	// written gets appended with empty cells.
	rows, fileHeader, err := t.load()
	if err != nil {
		return false, err
	}

	missing := false
	have := make(map[string]bool, len(fileHeader))
	for _, col := range fileHeader {
		have[col] = true
	}
	for _, col := range t.header {
		if !have[col] {
			missing = true
			break
		}
	}
	if !missing {
		return false, nil
	}

	migrated := make([][]string, len(rows))
	for i, row := range rows {
		byName := make(map[string]string, len(fileHeader))
		for j, col := range fileHeader {
			if j < len(row) {
				byName[col] = row[j]
			}
		}
		out := make([]string, len(t.header))
		for j, col := range t.header {
			out[j] = byName[col]
		}
		migrated[i] = out
	}
	if err := t.save(migrated); err != nil {
		return false, err
	}
	logger.Info().Str("path", t.path).Msg("Table schema migrated to current column set")
	return false, nil
}

// ReadAll returns every data row in file order, each padded to the header
// width. An unreadable or missing file yields an empty slice and the error;
// callers that follow the "no rows and unreadable are the same" contract
// ignore the error.
func (t *Table) ReadAll() ([][]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rows, _, err := t.load()
	return rows, err
}

// Mutate runs fn on the full row set under the table lock and rewrites the
// whole file with whatever fn returns. When fn returns an error the file is
// left untouched.
func (t *Table) Mutate(fn func(rows [][]string) ([][]string, error)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, _, err := t.load()
	if err != nil {
		return err
	}

	updated, err := fn(rows)
	if err != nil {
		return err
	}

	return t.save(updated)
}

// CopyTo writes a byte-for-byte copy of the workbook to dst under the
// table lock, so a concurrent rewrite cannot tear the copy. A missing
// source file reports copied=false with no error.
func (t *Table) CopyTo(dst string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	data, err := os.ReadFile(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read table %s: %w", t.path, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return false, fmt.Errorf("failed to copy table to %s: %w", dst, err)
	}
	return true, nil
}

// load reads the workbook and returns data rows (padded to the header
// width) plus the header row actually present in the file.
func (t *Table) load() ([][]string, []string, error) {
	f, err := excelize.OpenFile(t.path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open table %s: %w", t.path, err)
	}
	defer f.Close()

	all, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read rows from %s: %w", t.path, err)
	}
	if len(all) == 0 {
		return nil, nil, nil
	}

	fileHeader := all[0]
	rows := make([][]string, 0, len(all)-1)
	for _, raw := range all[1:] {
		// excelize trims trailing empty cells; pad so column indexes
		// stay stable for every row
		row := make([]string, len(t.header))
		copy(row, raw)
		rows = append(rows, row)
	}
	return rows, fileHeader, nil
}

// save rewrites the whole workbook: header first, then one row per record
func (t *Table) save(rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(t.header))
	for i, col := range t.header {
		header[i] = col
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(t.path); err != nil {
		return fmt.Errorf("failed to save table %s: %w", t.path, err)
	}
	return nil
}
