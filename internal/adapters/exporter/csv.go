package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"telegram-bulk-checker/internal/domain"
	"telegram-bulk-checker/internal/ports"
)

// csvHeaders — фиксированный порядок колонок выгрузки.
var csvHeaders = []string{
	"input", "kind", "visibility", "member_count", "verified",
	"username", "requires_approval", "title",
}

// CsvExporter реализует интерфейс ResultExporter для записи результатов
// в CSV-файл. По умолчанию выгружаются только успешные записи.
type CsvExporter struct {
	filePath  string
	onlyValid bool
}

// NewCsvExporter создает новый экземпляр CsvExporter.
func NewCsvExporter(filePath string, onlyValid bool) ports.ResultExporter {
	return &CsvExporter{filePath: filePath, onlyValid: onlyValid}
}

// Export записывает результаты в файл. Отсутствующие опциональные поля
// выводятся пустыми строками.
func (e *CsvExporter) Export(results []domain.CheckResult) error {
	if e.filePath == "" {
		return fmt.Errorf("не указан путь к файлу выгрузки")
	}

	file, err := os.Create(e.filePath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", e.filePath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeaders); err != nil {
		return fmt.Errorf("failed to write csv headers: %w", err)
	}

	for _, res := range results {
		if e.onlyValid && !domain.IsOK(res.Status) {
			continue
		}
		record := []string{
			res.Input,
			res.Kind,
			res.Visibility,
			intCell(res.MemberCount),
			boolCell(res.Verified),
			stringCell(res.Username),
			boolCell(res.RequiresApproval),
			stringCell(res.Title),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func boolCell(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}

func stringCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
