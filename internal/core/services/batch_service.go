package services

import (
	"context"
	"log/slog"

	"telegram-bulk-checker/internal/domain"
	"telegram-bulk-checker/internal/ports"
)

// BatchOption — функциональная опция для настройки BatchRunner.
type BatchOption func(*BatchRunner)

// WithReporter устанавливает построчный вывод результатов по мере обработки.
func WithReporter(r ports.ResultReporter) BatchOption {
	return func(s *BatchRunner) {
		s.reporter = r
	}
}

// WithBatchLogger устанавливает логгер для драйвера.
func WithBatchLogger(l *slog.Logger) BatchOption {
	return func(s *BatchRunner) {
		if l != nil {
			s.log = l
		}
	}
}

// BatchRunner последовательно прогоняет список исходных строк через
// разбор и проверку, накапливая результаты строго в порядке ввода.
// Никакого параллелизма: пока один идентификатор ожидает сетевой ответ,
// следующий не обрабатывается.
type BatchRunner struct {
	checker  ports.CheckerService
	reporter ports.ResultReporter
	log      *slog.Logger
}

// NewBatchRunner создает новый экземпляр BatchRunner.
func NewBatchRunner(checker ports.CheckerService, opts ...BatchOption) *BatchRunner {
	s := &BatchRunner{
		checker: checker,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run обрабатывает список исходных строк и возвращает результаты вместе
// со сводкой. Ошибка, вышедшая из адаптера (несмоделированный сбой),
// учитывается как ошибка драйвера и не прерывает пакет.
func (s *BatchRunner) Run(ctx context.Context, values []string) ([]domain.CheckResult, domain.BatchSummary) {
	results := make([]domain.CheckResult, 0, len(values))
	driverErrors := 0

	for _, value := range values {
		id := ParseInput(value)

		var res domain.CheckResult
		var err error

		switch id.Kind {
		case domain.IdentifierInvite:
			res, err = s.checker.CheckInvite(ctx, id.Payload)
		case domain.IdentifierUsername:
			res, err = s.checker.CheckUsername(ctx, id.Payload)
		default:
			// Нераспознанный ввод не порождает сетевой вызов.
			res = domain.CheckResult{
				Status:     domain.StatusUnrecognized,
				Kind:       domain.KindUnknown,
				Visibility: domain.VisibilityUnknown,
			}
		}

		if err != nil {
			driverErrors++
			s.log.WarnContext(ctx, "Item failed with a driver-level error", "input", value, "error", err)
			if s.reporter != nil {
				s.reporter.ReportError(value, err)
			}
			continue
		}

		// В результате всегда исходная строка, а не извлеченный payload.
		res.Input = value
		results = append(results, res)
		if s.reporter != nil {
			s.reporter.Report(res)
		}
	}

	summary := domain.Summarize(results, driverErrors)
	if s.reporter != nil {
		s.reporter.ReportSummary(summary)
	}

	s.log.InfoContext(ctx, "Batch finished",
		"processed", summary.Processed,
		"ok", summary.OK,
		"unknown", summary.Unknown,
		"errors", summary.Errors,
		"invalid", summary.Invalid,
	)

	return results, summary
}
