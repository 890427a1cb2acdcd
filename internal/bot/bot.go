package bot

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/xuri/excelize/v2"

	"telegram-bulk-checker/cmd/bot/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	startCommand = "start"
)

// ServerAPI описывает операции бэкенд-сервера, нужные боту.
type ServerAPI interface {
	StartTask(ctx context.Context, fileName string, content io.Reader) (*StartTaskResponse, error)
	GetTaskStatus(ctx context.Context, taskID string) (*TaskStatusResponse, error)
	GetTaskResult(ctx context.Context, taskID string, page, pageSize int) (*TaskResultResponse, error)
}

// Bot представляет собой основной объект Telegram-бота.
type Bot struct {
	api          *tgbotapi.BotAPI
	cfg          config.BotConfig
	serverClient ServerAPI
	taskStore    *TaskStore
	logger       *slog.Logger
	httpClient   *http.Client

	// Точки подмены для тестов.
	sendMessageFunc      func(msg tgbotapi.Chattable) (tgbotapi.Message, error)
	getFileDirectURLFunc func(fileID string) (string, error)
}

// NewBot создает и инициализирует новый экземпляр бота.
func NewBot(cfg config.BotConfig, serverClient ServerAPI, taskStore *TaskStore, logger *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot api: %w", err)
	}
	// api.Debug = true // Включаем для отладки

	logger.Info("Authorized on account", slog.String("username", api.Self.UserName))

	return &Bot{
		api:          api,
		cfg:          cfg,
		serverClient: serverClient,
		taskStore:    taskStore,
		logger:       logger,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		},
		sendMessageFunc:      api.Send,
		getFileDirectURLFunc: api.GetFileDirectURL,
	}, nil
}

// Start запускает основной цикл обработки обновлений от Telegram.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Context cancelled, stopping bot...")
			b.api.StopReceivingUpdates()
			return
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	if msg.Document != nil {
		b.handleDocument(ctx, msg)
		return
	}

	if strings.TrimSpace(msg.Text) != "" {
		b.handleTextList(ctx, msg)
		return
	}

	// Ответ на любые другие сообщения
	reply := tgbotapi.NewMessage(msg.Chat.ID, "Пожалуйста, отправьте мне CSV-файл или список ссылок и юзернеймов чатов, по одному в строке.")
	b.sendMessage(reply)
}

// handleCommand обрабатывает команды.
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case startCommand:
		replyText := "Добро пожаловать! Я бот для массовой проверки ссылок и юзернеймов Telegram-чатов.\n\n" +
			"Отправьте мне CSV-файл со списком идентификаторов (инвайт-ссылки, t.me-ссылки, @юзернеймы) " +
			"или просто список, по одному идентификатору в строке, и я проверю каждый из них.\n\n" +
			"Пожалуйста, обратите внимание:\n" +
			"• Я принимаю только один файл за раз.\n" +
			"• Файлы не сохраняются на сервере и обрабатываются на лету."
		reply := tgbotapi.NewMessage(msg.Chat.ID, replyText)
		b.sendMessage(reply)
	default:
		reply := tgbotapi.NewMessage(msg.Chat.ID, "Я не знаю такой команды.")
		b.sendMessage(reply)
	}
}

// handleDocument обрабатывает входящий документ (файл).
func (b *Bot) handleDocument(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	logger := b.logger.With(slog.Int64("chat_id", chatID))

	// 1. Проверяем, нет ли уже активной задачи.
	if _, ok := b.taskStore.Get(chatID); ok {
		age, _ := b.taskStore.Age(chatID)
		logger.Warn("user tried to start a new task while another is active",
			slog.Duration("active_for", age))
		reply := tgbotapi.NewMessage(chatID, "Пожалуйста, подождите завершения предыдущей задачи, прежде чем начинать новую.")
		b.sendMessage(reply)
		return
	}

	// 2. Скачиваем файл.
	fileURL, err := b.getFileDirectURLFunc(msg.Document.FileID)
	if err != nil {
		logger.Error("failed to get file direct url", slog.String("error", err.Error()))
		reply := tgbotapi.NewMessage(chatID, "Не удалось получить доступ к файлу. Попробуйте отправить его еще раз.")
		b.sendMessage(reply)
		return
	}

	resp, err := b.httpClient.Get(fileURL)
	if err != nil {
		logger.Error("failed to download file", slog.String("error", err.Error()))
		reply := tgbotapi.NewMessage(chatID, "Не удалось скачать файл. Попробуйте отправить его еще раз.")
		b.sendMessage(reply)
		return
	}
	defer resp.Body.Close()

	// 3. Запускаем задачу на бэкенде.
	startResp, err := b.serverClient.StartTask(ctx, msg.Document.FileName, resp.Body)
	if err != nil {
		logger.Error("failed to start task on backend", slog.String("error", err.Error()))
		reply := tgbotapi.NewMessage(chatID, "Не удалось начать проверку списка на сервере. Пожалуйста, попробуйте позже.")
		b.sendMessage(reply)
		return
	}

	b.trackTask(chatID, startResp.TaskID, logger)
}

// handleTextList обрабатывает текстовое сообщение со списком идентификаторов.
func (b *Bot) handleTextList(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	logger := b.logger.With(slog.Int64("chat_id", chatID))

	if _, ok := b.taskStore.Get(chatID); ok {
		age, _ := b.taskStore.Age(chatID)
		logger.Warn("user tried to start a new task while another is active",
			slog.Duration("active_for", age))
		reply := tgbotapi.NewMessage(chatID, "Пожалуйста, подождите завершения предыдущей задачи, прежде чем начинать новую.")
		b.sendMessage(reply)
		return
	}

	// Текст сообщения отправляется на сервер как виртуальный файл:
	// каждая строка содержит один идентификатор.
	startResp, err := b.serverClient.StartTask(ctx, "input.csv", strings.NewReader(msg.Text))
	if err != nil {
		logger.Error("failed to start task on backend", slog.String("error", err.Error()))
		reply := tgbotapi.NewMessage(chatID, "Не удалось начать проверку списка на сервере. Пожалуйста, попробуйте позже.")
		b.sendMessage(reply)
		return
	}

	b.trackTask(chatID, startResp.TaskID, logger)
}

// trackTask сохраняет идентификатор задачи и запускает опрос ее статуса.
func (b *Bot) trackTask(chatID int64, taskID string, logger *slog.Logger) {
	logger = logger.With(slog.String("task_id", taskID))
	logger.Info("task started on backend")

	b.taskStore.Set(chatID, taskID)
	go b.pollTaskStatus(context.Background(), chatID, taskID) // Используем новый контекст для фоновой задачи

	reply := tgbotapi.NewMessage(chatID, "✅ Список получен и поставлен в очередь на проверку. Ожидайте результата.")
	b.sendMessage(reply)
}

func (b *Bot) sendMessage(msg tgbotapi.Chattable) {
	if _, err := b.sendMessageFunc(msg); err != nil {
		b.logger.Error("failed to send message", slog.String("error", err.Error()))
	}
}

// pollTaskStatus асинхронно опрашивает статус задачи на бэкенд-сервере.
func (b *Bot) pollTaskStatus(ctx context.Context, chatID int64, taskID string) {
	logger := b.logger.With(slog.Int64("chat_id", chatID), slog.String("task_id", taskID))
	defer b.taskStore.Delete(chatID) // Гарантированно удаляем задачу по завершении.

	ticker := time.NewTicker(time.Duration(b.cfg.PollingIntervalSeconds) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Warn("polling cancelled by context")
			return
		case <-ticker.C:
			logger.Debug("polling task status")
			status, err := b.serverClient.GetTaskStatus(ctx, taskID)
			if err != nil {
				logger.Error("failed to get task status", slog.String("error", err.Error()))
				// Можно добавить логику ретраев или просто прекратить опрос
				continue
			}

			switch status.Status {
			case "completed":
				logger.Info("task completed")
				b.processCompletedTask(ctx, chatID, taskID)
				return // Завершаем опрос
			case "failed":
				logger.Warn("task failed", slog.String("reason", status.ErrorMessage))
				reply := tgbotapi.NewMessage(chatID, fmt.Sprintf("Произошла ошибка при проверке списка: %s", status.ErrorMessage))
				b.sendMessage(reply)
				return // Завершаем опрос
			case "pending", "processing":
				logger.Debug("task is in progress", slog.String("status", status.Status))
				// Продолжаем опрос
			default:
				logger.Warn("unknown task status", slog.String("status", status.Status))
			}
		}
	}
}

// processCompletedTask обрабатывает успешно завершенную задачу.
func (b *Bot) processCompletedTask(ctx context.Context, chatID int64, taskID string) {
	logger := b.logger.With(slog.Int64("chat_id", chatID), slog.String("task_id", taskID))
	logger.Info("fetching results for completed task")

	results, err := b.fetchAllResults(ctx, taskID)
	if err != nil {
		logger.Error("failed to fetch all results", slog.String("error", err.Error()))
		reply := tgbotapi.NewMessage(chatID, "Не удалось получить результаты для выполненной задачи. Пожалуйста, попробуйте позже.")
		b.sendMessage(reply)
		return
	}

	logger.Info("successfully fetched all results", slog.Int("result_count", len(results)))

	if len(results) == 0 {
		reply := tgbotapi.NewMessage(chatID, "Не удалось найти ни одного идентификатора в присланном списке.")
		b.sendMessage(reply)
		return
	}

	// Логика ветвления в зависимости от количества записей
	if len(results) >= b.cfg.ExcelThreshold {
		logger.Info("result count is over threshold, sending excel file")
		b.sendMessage(tgbotapi.NewMessage(chatID, fmt.Sprintf("Проверено %d идентификаторов. Формирую Excel-файл...", len(results))))
		b.sendExcelResult(chatID, results)
	} else {
		logger.Info("result count is under threshold, sending text message")
		b.sendTextResult(chatID, results)
	}
}

// fetchAllResults собирает все страницы с результатами для данной задачи.
func (b *Bot) fetchAllResults(ctx context.Context, taskID string) ([]ResultDTO, error) {
	var allResults []ResultDTO
	page := 1
	pageSize := 100 // Запрашиваем по 100, чтобы уменьшить количество запросов

	for {
		result, err := b.serverClient.GetTaskResult(ctx, taskID, page, pageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to get task result page %d: %w", page, err)
		}

		allResults = append(allResults, result.Data...)

		if page >= result.Pagination.TotalPages {
			break // Все страницы собраны
		}
		page++
	}

	return allResults, nil
}

func (b *Bot) sendExcelResult(chatID int64, results []ResultDTO) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			b.logger.Error("failed to close excel file", slog.String("error", err.Error()))
		}
	}()

	sheetName := "Результаты"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)

	// Заголовки
	headers := []string{"Дата проверки", "Идентификатор", "Статус", "Тип", "Видимость", "Участники", "Название", "Username", "Причина"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}

	// Данные
	checkDate := time.Now().Format(time.RFC3339)
	for i, res := range results {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), checkDate)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), res.Input)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), res.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), res.Kind)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), res.Visibility)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), memberCell(res))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), deref(res.Title))
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), deref(res.Username))
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), deref(res.Extra))
	}

	// Запись в буфер
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		b.logger.Error("failed to write excel to buffer", slog.String("error", err.Error()))
		b.sendMessage(tgbotapi.NewMessage(chatID, "Не удалось сгенерировать Excel-файл."))
		return
	}

	// Отправка файла
	fileName := fmt.Sprintf("check_results_%s.xlsx", time.Now().Format("2006-01-02_15-04-05"))
	fileBytes := tgbotapi.FileBytes{
		Name:  fileName,
		Bytes: buf.Bytes(),
	}

	msg := tgbotapi.NewDocument(chatID, fileBytes)
	msg.Caption = fmt.Sprintf("Проверка завершена. Обработано %d идентификаторов.", len(results))
	b.sendMessage(msg)
}

// sendTextResult форматирует и отправляет результат в виде текстового сообщения HTML.
func (b *Bot) sendTextResult(chatID int64, results []ResultDTO) {
	if len(results) == 0 {
		reply := tgbotapi.NewMessage(chatID, "Не найдено ни одной записи.")
		b.sendMessage(reply)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Проверено %d идентификаторов. Вот результаты:\n", len(results)))
	sb.WriteString("<pre><code>") // Используем HTML для надежного форматирования

	// Получаем ширину колонок из конфигурации
	inputColWidth := b.cfg.Render.Input
	statusColWidth := b.cfg.Render.Status
	titleColWidth := b.cfg.Render.Title
	reasonColWidth := b.cfg.Render.Reason

	showReason := hasReasonData(results)

	// Формируем заголовок
	headerInput := "Input"
	headerStatus := "Status"
	headerTitle := "Title"
	headerReason := "Reason"

	headerLine := fmt.Sprintf("| %s%s | %s%s | %s%s ",
		headerInput, strings.Repeat(" ", inputColWidth-len(headerInput)),
		headerStatus, strings.Repeat(" ", statusColWidth-len(headerStatus)),
		headerTitle, strings.Repeat(" ", titleColWidth-len(headerTitle)),
	)
	if showReason {
		headerLine += fmt.Sprintf("| %s%s ", headerReason, strings.Repeat(" ", reasonColWidth-len(headerReason)))
	}
	headerLine += "|\n"
	sb.WriteString(headerLine)

	// Формируем разделитель
	separatorLine := fmt.Sprintf("|%s|%s|%s",
		strings.Repeat("-", inputColWidth+2),
		strings.Repeat("-", statusColWidth+2),
		strings.Repeat("-", titleColWidth+2),
	)
	if showReason {
		separatorLine += fmt.Sprintf("|%s", strings.Repeat("-", reasonColWidth+2))
	}
	separatorLine += "|\n"
	sb.WriteString(separatorLine)

	for _, res := range results {
		// 1. Очищаем данные
		cleanInput := strings.ToValidUTF8(res.Input, "")
		cleanTitle := strings.ToValidUTF8(titleCell(res), "")

		// 2. Экранируем и убираем исходные переносы
		input := html.EscapeString(cleanInput)
		input = strings.ReplaceAll(input, "\n", " ")
		title := html.EscapeString(cleanTitle)
		title = strings.ReplaceAll(title, "\n", " ")

		// 3. Разбиваем строки на несколько с переносом слов
		inputLines := wrapString(input, inputColWidth)
		statusLines := wrapString(res.Status, statusColWidth)
		titleLines := wrapString(title, titleColWidth)
		var reasonLines []string
		if showReason {
			cleanReason := strings.ToValidUTF8(deref(res.Extra), "")
			reason := html.EscapeString(cleanReason)
			reason = strings.ReplaceAll(reason, "\n", " ")
			reasonLines = wrapString(reason, reasonColWidth)
		}

		maxLines := len(inputLines)
		if len(statusLines) > maxLines {
			maxLines = len(statusLines)
		}
		if len(titleLines) > maxLines {
			maxLines = len(titleLines)
		}
		if len(reasonLines) > maxLines {
			maxLines = len(reasonLines)
		}

		// 4. Печатаем строки для текущей записи
		for i := 0; i < maxLines; i++ {
			inputPart := ""
			if i < len(inputLines) {
				inputPart = inputLines[i]
			}

			statusPart := ""
			if i < len(statusLines) {
				statusPart = statusLines[i]
			}

			titlePart := ""
			if i < len(titleLines) {
				titlePart = titleLines[i]
			}

			reasonPart := ""
			if i < len(reasonLines) {
				reasonPart = reasonLines[i]
			}

			// Добиваем пробелами до нужной ширины
			padInput := generatePadding(inputPart, inputColWidth)
			padStatus := generatePadding(statusPart, statusColWidth)
			padTitle := generatePadding(titlePart, titleColWidth)

			line := fmt.Sprintf("| %s%s | %s%s | %s%s ", inputPart, padInput, statusPart, padStatus, titlePart, padTitle)
			if showReason {
				padReason := generatePadding(reasonPart, reasonColWidth)
				line += fmt.Sprintf("| %s%s ", reasonPart, padReason)
			}
			line += "|\n"
			sb.WriteString(line)
		}
	}
	sb.WriteString("</code></pre>")

	text := sb.String()
	reply := tgbotapi.NewMessage(chatID, text)
	reply.ParseMode = tgbotapi.ModeHTML

	// Проверка на максимальную длину сообщения в Telegram (4096 символов)
	if len(text) > 4096 {
		b.logger.Warn("сгенерированный текст слишком длинный, отправка в виде файла", "length", len(text))
		b.sendResultAsTextFile(chatID, results)
		return
	}

	if _, err := b.sendMessageFunc(reply); err != nil {
		b.logger.Error("не удалось отправить текстовый результат", "error", err.Error())
	}
}

// generatePadding вычисляет отступ для строки с учетом поправки на CJK-символы.
func generatePadding(s string, colWidth int) string {
	paddingNeeded := colWidth - runewidth.StringWidth(s)

	// Прагматическая поправка: если в строке есть CJK-символы, добавляем один пробел,
	// чтобы компенсировать ошибку рендеринга в некоторых клиентах.
	hasCJK := false
	for _, r := range s {
		if unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hangul, r) || unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r) {
			hasCJK = true
			break
		}
	}

	if hasCJK && paddingNeeded >= 0 {
		paddingNeeded++
	}

	if paddingNeeded > 0 {
		return strings.Repeat(" ", paddingNeeded)
	}
	return ""
}

// wrapString wraps a given string to a specified width using runewidth.
// It prioritizes wrapping on word boundaries (spaces). If a single word is
// longer than the width, it will be broken mid-word.
func wrapString(s string, width int) []string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}

	var lines []string
	words := strings.Fields(s)

	if len(words) == 0 { // Handles strings with only spaces or empty strings
		runes := []rune(s)
		for len(runes) > 0 {
			i := 0
			currentWidth := 0
			for i < len(runes) {
				runeWidth := runewidth.RuneWidth(runes[i])
				if currentWidth+runeWidth > width {
					break
				}
				currentWidth += runeWidth
				i++
			}
			lines = append(lines, string(runes[:i]))
			runes = runes[i:]
		}
		if len(lines) == 0 {
			return []string{""}
		}
		return lines
	}

	var currentLine strings.Builder
	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)

		// Handle words longer than the entire width
		if wordWidth > width {
			if currentLine.Len() > 0 {
				lines = append(lines, currentLine.String())
				currentLine.Reset()
			}

			runes := []rune(word)
			for len(runes) > 0 {
				i := 0
				currentWidth := 0
				for i < len(runes) {
					runeWidth := runewidth.RuneWidth(runes[i])
					if currentWidth+runeWidth > width {
						break
					}
					currentWidth += runeWidth
					i++
				}
				lines = append(lines, string(runes[:i]))
				runes = runes[i:]
			}
			continue
		}

		// If the word doesn't fit on the current line, start a new one
		lineLen := runewidth.StringWidth(currentLine.String())
		if lineLen > 0 && lineLen+1+wordWidth > width {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
		}

		if currentLine.Len() > 0 {
			currentLine.WriteString(" ")
		}
		currentLine.WriteString(word)
	}

	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return lines
}

// hasReasonData проверяет, есть ли в результатах хотя бы одна запись с непустой причиной.
func hasReasonData(results []ResultDTO) bool {
	for _, res := range results {
		if res.Extra != nil && *res.Extra != "" {
			return true
		}
	}
	return false
}

// deref возвращает значение строкового указателя или пустую строку.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// titleCell возвращает название чата; для каналов и групп без названия — юзернейм.
func titleCell(res ResultDTO) string {
	if res.Title != nil && *res.Title != "" {
		return *res.Title
	}
	if res.Username != nil && *res.Username != "" {
		return "@" + *res.Username
	}
	return ""
}

// memberCell возвращает количество участников в виде строки.
func memberCell(res ResultDTO) string {
	if res.MemberCount == nil {
		return ""
	}
	return strconv.Itoa(*res.MemberCount)
}

// sendResultAsTextFile отправляет результаты проверки в виде текстового файла.
func (b *Bot) sendResultAsTextFile(chatID int64, results []ResultDTO) {
	var buf bytes.Buffer
	showReason := hasReasonData(results)

	// Заголовки для файла
	headers := []string{"Input", "Status", "Kind", "Visibility", "Members", "Title", "Username"}
	if showReason {
		headers = append(headers, "Reason")
	}
	buf.WriteString(strings.Join(headers, ","))
	buf.WriteString("\n")

	for _, res := range results {
		// Форматируем как CSV для простоты
		record := []string{
			fmt.Sprintf("\"%s\"", strings.ReplaceAll(res.Input, "\"", "\"\"")),
			fmt.Sprintf("\"%s\"", res.Status),
			fmt.Sprintf("\"%s\"", res.Kind),
			fmt.Sprintf("\"%s\"", res.Visibility),
			fmt.Sprintf("\"%s\"", memberCell(res)),
			fmt.Sprintf("\"%s\"", strings.ReplaceAll(deref(res.Title), "\"", "\"\"")),
			fmt.Sprintf("\"%s\"", deref(res.Username)),
		}
		if showReason {
			record = append(record, fmt.Sprintf("\"%s\"", strings.ReplaceAll(deref(res.Extra), "\"", "\"\"")))
		}
		buf.WriteString(strings.Join(record, ","))
		buf.WriteString("\n")
	}

	fileName := fmt.Sprintf("check_results_%s.txt", time.Now().Format("2006-01-02_15-04-05"))
	fileBytes := tgbotapi.FileBytes{
		Name:  fileName,
		Bytes: buf.Bytes(),
	}

	msg := tgbotapi.NewDocument(chatID, fileBytes)
	msg.Caption = fmt.Sprintf("Проверка завершена. Обработано %d идентификаторов. Список слишком большой для одного сообщения, поэтому он прикреплен в виде файла.", len(results))
	b.sendMessage(msg)
}
