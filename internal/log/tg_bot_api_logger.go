package log

import (
	"fmt"
	"log/slog"
	"strings"
)

// TGBotAPIAdapter адаптирует slog.Logger под интерфейс логгера,
// который ожидает библиотека go-telegram-bot-api/v5. Сообщения
// библиотеки проходят через общий маскировщик токенов.
type TGBotAPIAdapter struct {
	Logger *slog.Logger
}

// Println реализует метод интерфейса tgbotapi.BotLogger.
func (a *TGBotAPIAdapter) Println(v ...interface{}) {
	a.log(strings.TrimSpace(fmt.Sprintln(v...)))
}

// Printf реализует метод интерфейса tgbotapi.BotLogger.
func (a *TGBotAPIAdapter) Printf(format string, v ...interface{}) {
	a.log(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Библиотека пишет в основном сетевой шум, поэтому уровень — Debug,
// а ошибки поднимаются до Error по префиксу сообщения.
func (a *TGBotAPIAdapter) log(msg string) {
	if strings.HasPrefix(strings.ToLower(msg), "error") {
		a.Logger.Error(msg, slog.String("component", "tgbotapi"))
		return
	}
	a.Logger.Debug(msg, slog.String("component", "tgbotapi"))
}
