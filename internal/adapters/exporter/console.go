package exporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"telegram-bulk-checker/internal/core/format"
	"telegram-bulk-checker/internal/domain"
	"telegram-bulk-checker/internal/ports"
)

// Режимы консольного вывода.
const (
	ModeCompact = "compact"
	ModeMinimal = "minimal"
	ModeJSONL   = "jsonl"
)

// ConsoleReporter реализует интерфейс ResultReporter для построчного
// вывода результатов проверки в консоль. Каждая запись печатается сразу
// после обработки, не дожидаясь конца пакета.
type ConsoleReporter struct {
	out  io.Writer
	mode string

	green  *color.Color
	yellow *color.Color
	red    *color.Color
	cyan   *color.Color
}

var _ ports.ResultReporter = (*ConsoleReporter)(nil)

// ConsoleOption настраивает ConsoleReporter.
type ConsoleOption func(*ConsoleReporter)

// WithWriter задает приемник вывода вместо os.Stdout.
func WithWriter(w io.Writer) ConsoleOption {
	return func(r *ConsoleReporter) {
		r.out = w
	}
}

// WithNoColor отключает цветовую разметку меток статусов.
func WithNoColor() ConsoleOption {
	return func(r *ConsoleReporter) {
		r.green.DisableColor()
		r.yellow.DisableColor()
		r.red.DisableColor()
		r.cyan.DisableColor()
	}
}

// NewConsoleReporter создает новый экземпляр ConsoleReporter.
// Неизвестный режим трактуется как compact.
func NewConsoleReporter(mode string, opts ...ConsoleOption) *ConsoleReporter {
	r := &ConsoleReporter{
		out:    os.Stdout,
		mode:   mode,
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
		cyan:   color.New(color.FgCyan),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report выводит одну запись результата в выбранном режиме.
func (r *ConsoleReporter) Report(res domain.CheckResult) {
	if r.mode == ModeJSONL {
		line, err := json.Marshal(res)
		if err != nil {
			fmt.Fprintf(r.out, "%s %s -> %v\n", r.red.Sprint("[ERROR]"), res.Input, err)
			return
		}
		fmt.Fprintln(r.out, string(line))
		return
	}

	switch {
	case domain.IsOK(res.Status):
		body := format.Compact(res)
		if r.mode == ModeMinimal {
			body = format.Minimal(res)
		}
		fmt.Fprintf(r.out, "%s %s -> %s\n", r.green.Sprint("[VALID]"), res.Input, body)
	case res.Status == domain.StatusUnrecognized:
		fmt.Fprintf(r.out, "%s %s\n", r.yellow.Sprint("[UNKNOWN]"), res.Input)
	default:
		reason := format.Reason(res.Status, res.Extra)
		fmt.Fprintf(r.out, "%s %s -> %s\n", r.red.Sprint("[INVALID]"), res.Input, reason)
	}
}

// ReportError выводит запись о сбое драйвера, не попавшем в результаты.
func (r *ConsoleReporter) ReportError(value string, err error) {
	fmt.Fprintf(r.out, "%s %s -> %v\n", r.red.Sprint("[ERROR]"), value, err)
}

// ReportSummary выводит итоговую сводку после пустой строки.
func (r *ConsoleReporter) ReportSummary(s domain.BatchSummary) {
	fmt.Fprintf(r.out, "\n%s: processed=%d  ok=%d  unknown=%d  errors=%d  invalid=%d\n",
		r.cyan.Sprint("Summary"), s.Processed, s.OK, s.Unknown, s.Errors, s.Invalid)
}
