package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"telegram-bulk-checker/internal/adapters/source"
	"telegram-bulk-checker/internal/cache"
	"telegram-bulk-checker/internal/domain"
	"telegram-bulk-checker/internal/pkg/config"
	"telegram-bulk-checker/internal/ports"
)

// ProcessListUseCase инкапсулирует бизнес-логику для обработки файла
// со списком идентификаторов чатов.
type ProcessListUseCase struct {
	cfg        *config.Config
	parser     ports.ListParser
	batch      ports.BatchService
	cacheStore *cache.CacheStore
}

// NewProcessListUseCase создает новый экземпляр ProcessListUseCase.
func NewProcessListUseCase(
	cfg *config.Config,
	parser ports.ListParser,
	batch ports.BatchService,
	cacheStore *cache.CacheStore,
) *ProcessListUseCase {
	return &ProcessListUseCase{
		cfg:        cfg,
		parser:     parser,
		batch:      batch,
		cacheStore: cacheStore,
	}
}

// ProcessList обрабатывает один файл со списком идентификаторов.
// Он разбирает список, прогоняет каждый идентификатор через проверку
// и возвращает нормализованные результаты в порядке ввода.
func (uc *ProcessListUseCase) ProcessList(ctx context.Context, filePath string) ([]domain.CheckResult, error) {
	fileHash, err := cache.CalculateFileHash(filePath)
	if err != nil {
		return nil, fmt.Errorf("не удалось вычислить хеш файла %s: %w", filePath, err)
	}

	// Проверка кеша по хешу содержимого файла
	if cachedItem, found := uc.cacheStore.Get(fileHash); found {
		slog.Info("Попадание в кеш для файла", "hash", fileHash)
		return cachedItem.Data, nil
	}

	ds := source.NewCliSource(filePath)
	data, err := ds.Fetch()
	if err != nil {
		return nil, fmt.Errorf("не удалось извлечь данные из %s: %w", filePath, err)
	}

	values, err := uc.parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("не удалось разобрать данные из %s: %w", filePath, err)
	}
	slog.Info("Разобран список идентификаторов", "path", filePath, "count", len(values))

	slog.Info("Проверка идентификаторов через Telegram API...")
	results, summary := uc.batch.Run(ctx, values)

	// Кеширование окончательного результата
	ttl := time.Duration(uc.cfg.Processing.CacheTTLMinutes) * time.Minute
	uc.cacheStore.Put(fileHash, results, ttl)
	slog.Info("Результат кеширован для файла", "hash", fileHash, "ttl", ttl.String())

	slog.Info("Обработка успешно завершена",
		"processed", summary.Processed,
		"ok", summary.OK,
		"unknown", summary.Unknown,
		"invalid", summary.Invalid,
		"errors", summary.Errors,
	)
	return results, nil
}
