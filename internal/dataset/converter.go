// internal/dataset/converter.go
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// InventoryEvent is one reshaped dataset row, consumable by the backend's
// event importer.
type InventoryEvent struct {
	EventType   string
	ProductName string
	Quantity    int
	Timestamp   string
	Location    string
}

// Summary is the JSON contract emitted on stdout for a calling process.
type Summary struct {
	Success       bool   `json:"success"`
	OriginalPath  string `json:"original_path,omitempty"`
	ConvertedPath string `json:"converted_path,omitempty"`
	TotalEvents   int    `json:"total_events"`
	Error         string `json:"error,omitempty"`
}

const (
	defaultEventType = "IN"
	defaultTimestamp = "2024-01-01"
	defaultQuantity  = 1
)

var eventHeader = []string{"eventType", "productName", "quantity", "timestamp", "location"}

// Convert scans inputDir for the first CSV file (converting the first XLSX
// found when no CSV exists), reshapes its rows into inventory events and
// writes them to outputPath.
func Convert(inputDir, outputPath, location string) (Summary, error) {
	csvPath, err := findSourceCSV(inputDir)
	if err != nil {
		return Summary{Success: false, Error: err.Error()}, err
	}

	events, err := readEvents(csvPath, location)
	if err != nil {
		return Summary{Success: false, Error: err.Error()}, err
	}

	if err := writeEvents(outputPath, events); err != nil {
		return Summary{Success: false, Error: err.Error()}, err
	}

	return Summary{
		Success:       true,
		OriginalPath:  inputDir,
		ConvertedPath: outputPath,
		TotalEvents:   len(events),
	}, nil
}

// findSourceCSV walks the tree and returns the first CSV file. When only
// XLSX files are present, the first one is converted to CSV next to it.
func findSourceCSV(root string) (string, error) {
	var csvFiles, xlsxFiles []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv":
			csvFiles = append(csvFiles, path)
		case ".xlsx":
			xlsxFiles = append(xlsxFiles, path)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to scan %s: %w", root, err)
	}

	sort.Strings(csvFiles)
	if len(csvFiles) > 0 {
		return csvFiles[0], nil
	}

	sort.Strings(xlsxFiles)
	if len(xlsxFiles) > 0 {
		converted := strings.TrimSuffix(xlsxFiles[0], filepath.Ext(xlsxFiles[0])) + ".csv"
		if err := convertXLSXToCSV(xlsxFiles[0], converted); err != nil {
			return "", err
		}
		return converted, nil
	}

	return "", fmt.Errorf("no CSV files found in %s", root)
}

func readEvents(csvPath, location string) ([]InventoryEvent, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", csvPath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	dateIdx := columnIndex(header, "date")
	productIdx := columnIndex(header, "product_id")
	quantityIdx := columnIndex(header, "quantity")

	// Datasets without the expected columns convert to zero events rather
	// than failing; missing fields within a row fall back to defaults.
	events := make([]InventoryEvent, 0)
	if dateIdx < 0 || productIdx < 0 {
		return events, nil
	}

	for row := 0; ; row++ {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		event := InventoryEvent{
			EventType:   defaultEventType,
			ProductName: fmt.Sprintf("Product_%s", fieldOr(record, productIdx, strconv.Itoa(row))),
			Quantity:    defaultQuantity,
			Timestamp:   fieldOr(record, dateIdx, defaultTimestamp),
			Location:    location,
		}

		if raw := fieldOr(record, quantityIdx, ""); raw != "" {
			qty, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid quantity %q on row %d: %w", raw, row, err)
			}
			event.Quantity = int(qty)
		}

		events = append(events, event)
	}

	return events, nil
}

func writeEvents(outputPath string, events []InventoryEvent) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to prepare output dir: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputPath, err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write(eventHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, e := range events {
		record := []string{e.EventType, e.ProductName, strconv.Itoa(e.Quantity), e.Timestamp, e.Location}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write event row: %w", err)
		}
	}

	w.Flush()

	return w.Error()
}

func columnIndex(header []string, name string) int {
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), name) {
			return i
		}
	}
	return -1
}

func fieldOr(record []string, idx int, fallback string) string {
	if idx < 0 || idx >= len(record) {
		return fallback
	}
	if value := strings.TrimSpace(record[idx]); value != "" {
		return value
	}
	return fallback
}
