// Package export materializes the stored corpus into flat files. It consumes
// the store's FetchAll contract and performs no decision logic beyond format
// dispatch.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"threatscout/internal/domain"
)

// ErrUnsupportedFormat reports a format other than json or csv. The CLI
// treats it as a fatal user error.
var ErrUnsupportedFormat = errors.New("export: unsupported format")

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

type exportRow struct {
	Value     string `json:"value"`
	Type      string `json:"type"`
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"`
	RiskLevel string `json:"risk_level"`
}

func toRow(record domain.IoC) exportRow {
	return exportRow{
		Value:     record.Value,
		Type:      record.Type.String(),
		Source:    record.Source,
		Timestamp: record.Timestamp.String(),
		RiskLevel: record.RiskLevel.String(),
	}
}

// Write serializes records to path in the requested format, preserving their
// given order.
func Write(records []domain.IoC, format, path string) error {
	switch format {
	case FormatJSON:
		return writeJSON(records, path)
	case FormatCSV:
		return writeCSV(records, path)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func writeJSON(records []domain.IoC, path string) error {
	rows := make([]exportRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, toRow(record))
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshal: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}

	log.Info("Exported records", "format", FormatJSON, "count", len(records), "path", path)
	return nil
}

func writeCSV(records []domain.IoC, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write([]string{"value", "type", "source", "timestamp", "risk_level"}); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}

	for _, record := range records {
		row := toRow(record)
		fields := []string{row.Value, row.Type, row.Source, row.Timestamp, row.RiskLevel}
		if err := writer.Write(fields); err != nil {
			return fmt.Errorf("export: write record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}

	log.Info("Exported records", "format", FormatCSV, "count", len(records), "path", path)
	return nil
}
