package ports

import (
	"context"

	"telegram-bulk-checker/internal/domain"
)

// DataSource определяет интерфейс для получения исходного списка идентификаторов.
type DataSource interface {
	// Fetch загружает данные из источника и возвращает их в виде байтового среза.
	Fetch() ([]byte, error)
}

// ListParser определяет интерфейс для разбора табличных данных
// в упорядоченный список исходных строк-идентификаторов.
type ListParser interface {
	Parse(data []byte) ([]string, error)
}

// ChatResolver — узкий интерфейс удаленного коллаборатора.
// Транспорт и аутентификация скрыты за ним; ядро видит только
// доменные типы и ошибки *domain.RemoteFault.
type ChatResolver interface {
	// CheckInvite проверяет инвайт-код.
	CheckInvite(ctx context.Context, code string) (domain.InviteInfo, error)
	// ResolveUsername разрешает публичный юзернейм.
	ResolveUsername(ctx context.Context, handle string) (*domain.ResolvedPeer, error)
	// GetFullChannelInfo запрашивает полную информацию о канале.
	// Вызов выполняется по принципу best-effort: вызывающая сторона
	// обязана переживать его сбой.
	GetFullChannelInfo(ctx context.Context, ch *domain.Channel) (*domain.ChannelFullInfo, error)
}

// CheckerService определяет интерфейс адаптеров разрешения:
// каждая операция превращает один идентификатор в нормализованный результат.
// Ошибка возвращается только для несмоделированных сбоев; смоделированные
// сбои удаленного сервиса сворачиваются в статус результата.
type CheckerService interface {
	CheckInvite(ctx context.Context, code string) (domain.CheckResult, error)
	CheckUsername(ctx context.Context, handle string) (domain.CheckResult, error)
}

// BatchService определяет интерфейс пакетного драйвера.
type BatchService interface {
	// Run последовательно обрабатывает список исходных строк и возвращает
	// результаты в порядке ввода вместе со сводкой.
	Run(ctx context.Context, values []string) ([]domain.CheckResult, domain.BatchSummary)
}

// ResultReporter определяет интерфейс построчного вывода результатов
// по мере обработки пакета.
type ResultReporter interface {
	// Report выводит одну запись результата.
	Report(res domain.CheckResult)
	// ReportError выводит ошибку уровня драйвера для одного элемента.
	ReportError(value string, err error)
	// ReportSummary выводит итоговую сводку.
	ReportSummary(s domain.BatchSummary)
}

// ResultExporter определяет интерфейс табличного экспорта результатов.
type ResultExporter interface {
	Export(results []domain.CheckResult) error
}
