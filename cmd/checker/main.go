package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"telegram-bulk-checker/internal/adapters/exporter"
	"telegram-bulk-checker/internal/adapters/parser"
	"telegram-bulk-checker/internal/adapters/source"
	"telegram-bulk-checker/internal/core/services"
	"telegram-bulk-checker/internal/log"
	"telegram-bulk-checker/internal/pkg/config"
	"telegram-bulk-checker/internal/telegram"
	"telegram-bulk-checker/internal/telegram/router"
)

func main() {
	if err := run(); err != nil {
		slog.Error("checker run failed", "error", err)
		os.Exit(1)
	}
}

// run инкапсулирует всю логику проверки списка из командной строки.
func run() error {
	var (
		inputFlag   string
		outputFlag  string
		modeFlag    string
		noColorFlag bool
	)
	flag.StringVar(&inputFlag, "input", "", "путь к CSV-файлу со списком идентификаторов")
	flag.StringVar(&outputFlag, "output", "", "путь к CSV-файлу для выгрузки результатов")
	flag.StringVar(&modeFlag, "mode", "", "режим вывода: compact, minimal или jsonl")
	flag.BoolVar(&noColorFlag, "no-color", false, "отключить цветной вывод")
	flag.Parse()

	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		// Логгер еще не инициализирован, выводим в stderr
		_, _ = fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Флаги командной строки имеют приоритет над конфигурацией
	if inputFlag != "" {
		cfg.Checker.InputFile = inputFlag
	}
	if outputFlag != "" {
		cfg.Checker.OutputFile = outputFlag
	}
	if modeFlag != "" {
		cfg.Checker.OutputMode = modeFlag
	}
	if noColorFlag {
		cfg.Checker.NoColor = true
	}

	// 2. Инициализация логгера: консольный инструмент пишет логи в stderr,
	// чтобы не смешивать их с отчетом на stdout.
	var level slog.Level
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := log.NewMaskedLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// 3. Валидация конфигурации
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Чтение и разбор входного списка
	data, err := source.NewCliSource(cfg.Checker.InputFile).Fetch()
	if err != nil {
		return fmt.Errorf("failed to read input list: %w", err)
	}

	values, err := parser.NewCsvListParser().Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse input list: %w", err)
	}
	if len(values) == 0 {
		return fmt.Errorf("входной файл %s не содержит ни одного идентификатора", cfg.Checker.InputFile)
	}
	slog.Info("Input list loaded", "path", cfg.Checker.InputFile, "count", len(values))

	// 5. Подключение к Telegram
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	tgRouter, err := router.NewRouter(appCtx,
		router.WithServerConfigs(cfg.GetTelegramServers()),
		router.WithHealthCheckInterval(time.Duration(cfg.TelegramAPI.HealthCheckIntervalSeconds)*time.Second),
	)
	if err != nil {
		return fmt.Errorf("failed to create telegram router: %w", err)
	}
	defer tgRouter.Stop()

	resolver := telegram.NewResolver(tgRouter,
		telegram.WithOperationTimeout(time.Duration(cfg.Resolver.OperationTimeoutSeconds)*time.Second),
		telegram.WithClientRetryPause(time.Duration(cfg.Resolver.ClientRetryPauseSeconds)*time.Second),
	)

	// 6. Сборка конвейера проверки
	reporterOpts := []exporter.ConsoleOption{}
	if cfg.Checker.NoColor {
		reporterOpts = append(reporterOpts, exporter.WithNoColor())
	}
	reporter := exporter.NewConsoleReporter(cfg.Checker.OutputMode, reporterOpts...)

	checker := services.NewCheckService(resolver)
	batch := services.NewBatchRunner(checker, services.WithReporter(reporter))

	// 7. Проверка
	results, summary := batch.Run(appCtx, values)
	slog.Info("Check finished",
		"processed", summary.Processed,
		"ok", summary.OK,
		"unknown", summary.Unknown,
		"invalid", summary.Invalid,
		"errors", summary.Errors,
	)

	// 8. Выгрузка в CSV, если она не отключена
	if cfg.Checker.OutputFile != "" {
		csvExporter := exporter.NewCsvExporter(cfg.Checker.OutputFile, cfg.Checker.CSVOnlyValid)
		if err := csvExporter.Export(results); err != nil {
			return fmt.Errorf("failed to export results: %w", err)
		}
		slog.Info("Results exported", "path", cfg.Checker.OutputFile)
	}

	return nil
}
