package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/aliskhannn/wordly/internal/domain/entities"
)

// Spreadsheet column order.
const (
	colTerm = iota
	colPronunciation
	colPartOfSpeech
	colDefinition
	colExample
	colCategory
)

// ImportConfig defines the import configuration.
type ImportConfig struct {
	FilePath        string            // path to the Excel or CSV file
	SheetName       string            // sheet to import, the first sheet when empty
	StartRow        int               // row to start importing from (1-based index)
	DefaultCategory entities.Category // category for rows without one
}

// DefaultImportConfig skips the header row and files rows without a
// category under Everyday.
func DefaultImportConfig(path string) ImportConfig {
	return ImportConfig{
		FilePath:        path,
		StartRow:        2,
		DefaultCategory: entities.DefaultCategory,
	}
}

// ImportResult holds the result of an import operation.
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	Errors         []string
	Words          []*entities.Word
}

// ImportWords reads words from an Excel or CSV file.
//
// A row holding only a category name in its first cell switches the
// category for the rows that follow it.
func ImportWords(cfg ImportConfig) (*ImportResult, error) {
	if cfg.StartRow < 1 {
		cfg.StartRow = 1
	}
	if cfg.DefaultCategory == "" {
		cfg.DefaultCategory = entities.DefaultCategory
	}

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(cfg.FilePath)) {
	case ".csv":
		rows, err = readCSV(cfg.FilePath)
	case ".xlsx":
		rows, err = readExcel(cfg.FilePath, cfg.SheetName)
	default:
		return nil, fmt.Errorf("unsupported import format %q", filepath.Ext(cfg.FilePath))
	}
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: make([]string, 0)}
	seen := make(map[string]bool)
	current := cfg.DefaultCategory

	for i, row := range rows {
		rowNum := i + 1
		if rowNum < cfg.StartRow || isBlank(row) {
			continue
		}

		if c, ok := categoryHeader(row); ok {
			current = c
			continue
		}

		result.TotalProcessed++

		word, err := parseRow(row, current)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		if seen[word.ID] {
			result.Skipped++
			continue
		}

		seen[word.ID] = true
		result.Words = append(result.Words, word)
		result.Imported++
	}

	return result, nil
}

func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // allow variable number of fields
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// categoryHeader reports whether row is a lone category name.
func categoryHeader(row []string) (entities.Category, bool) {
	for col := colPronunciation; col < len(row); col++ {
		if cell(row, col) != "" {
			return "", false
		}
	}
	c, err := entities.ParseCategory(strings.Trim(cell(row, colTerm), `"`))
	if err != nil {
		return "", false
	}
	return c, true
}

func parseRow(row []string, category entities.Category) (*entities.Word, error) {
	if raw := cell(row, colCategory); raw != "" {
		c, err := entities.ParseCategory(raw)
		if err != nil {
			return nil, err
		}
		category = c
	}

	word := &entities.Word{
		Term:          cell(row, colTerm),
		Pronunciation: cell(row, colPronunciation),
		PartOfSpeech:  cell(row, colPartOfSpeech),
		Definition:    cell(row, colDefinition),
		Example:       cell(row, colExample),
		Category:      category,
	}
	if err := normalizeWord(word); err != nil {
		return nil, err
	}
	return word, nil
}
