package source

import (
	"fmt"

	"telegram-bulk-checker/internal/ports"
)

// MemorySource реализует интерфейс DataSource для чтения данных из памяти.
// Используется сервером для передачи загруженного файла дальше по конвейеру.
type MemorySource struct {
	data []byte
}

// NewMemorySource создает новый экземпляр MemorySource.
func NewMemorySource(data []byte) ports.DataSource {
	return &MemorySource{data: data}
}

// Fetch возвращает данные из памяти.
func (s *MemorySource) Fetch() ([]byte, error) {
	if s.data == nil {
		return nil, fmt.Errorf("данные не установлены")
	}

	// Возвращаем копию, чтобы вызывающий не изменил оригинал
	dataCopy := make([]byte, len(s.data))
	copy(dataCopy, s.data)

	return dataCopy, nil
}
