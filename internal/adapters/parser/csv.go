package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"telegram-bulk-checker/internal/ports"
)

// CsvListParser реализует интерфейс ListParser для разбора CSV-списков
// идентификаторов. Значения берутся из колонки "input", если она
// объявлена в заголовке, иначе из первой колонки.
type CsvListParser struct{}

// NewCsvListParser создает новый экземпляр CsvListParser.
func NewCsvListParser() ports.ListParser {
	return &CsvListParser{}
}

// Parse преобразует срез байт с CSV в список строк-идентификаторов.
// Заголовок распознается только по точному имени колонки "input" с учетом
// регистра; без него первая колонка каждой строки берется как есть.
// Пустые значения пропускаются.
func (p *CsvListParser) Parse(data []byte) ([]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	column := -1
	for i, name := range records[0] {
		if strings.TrimSpace(name) == "input" {
			column = i
			break
		}
	}

	rows := records
	if column >= 0 {
		// Строка заголовка пропускается только при обнаруженной колонке.
		rows = records[1:]
	} else {
		column = 0
	}

	var values []string
	for _, record := range rows {
		if column >= len(record) {
			continue
		}
		value := strings.TrimSpace(record[column])
		if value == "" {
			continue
		}
		values = append(values, value)
	}
	return values, nil
}
