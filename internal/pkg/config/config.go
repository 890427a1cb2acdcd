// Package config предоставляет управление конфигурацией приложения
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Server содержит конфигурацию сервера
type Server struct {
	Host                   string `json:"host" yaml:"host"`
	Port                   int    `json:"port" yaml:"port"`
	ShutdownTimeoutSeconds int    `json:"shutdown_timeout_seconds" yaml:"shutdown_timeout_seconds"`
}

// TelegramAPIServer содержит конфигурацию одного сервера Telegram API
type TelegramAPIServer struct {
	APIID       int    `json:"api_id" yaml:"api_id"`
	APIHash     string `json:"api_hash" yaml:"api_hash"`
	PhoneNumber string `json:"phone_number" yaml:"phone_number"`
	SessionFile string `json:"session_file" yaml:"session_file"`
}

// TelegramAPI содержит конфигурацию Telegram API
type TelegramAPI struct {
	// Для обратной совместимости. Используйте Servers.
	APIID       int    `json:"api_id,omitempty" yaml:"api_id,omitempty"`
	APIHash     string `json:"api_hash,omitempty" yaml:"api_hash,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty" yaml:"phone_number,omitempty"`
	SessionFile string `json:"session_file,omitempty" yaml:"session_file,omitempty"`

	// Новый формат для нескольких серверов
	Servers []TelegramAPIServer `json:"servers" yaml:"servers"`

	HealthCheckIntervalSeconds int `json:"health_check_interval_seconds" yaml:"health_check_interval_seconds"`
}

// Processing содержит конфигурацию обработки
type Processing struct {
	TaskTimeoutSeconds int `json:"task_timeout_seconds" yaml:"task_timeout_seconds"` // 0 - без ограничений
	CacheTTLMinutes    int `json:"cache_ttl_minutes" yaml:"cache_ttl_minutes"`
}

// Resolver содержит конфигурацию доступа к Telegram API при проверках
type Resolver struct {
	OperationTimeoutSeconds int `json:"operation_timeout_seconds" yaml:"operation_timeout_seconds"`
	ClientRetryPauseSeconds int `json:"client_retry_pause_seconds" yaml:"client_retry_pause_seconds"`
}

// Checker содержит конфигурацию пакетной проверки идентификаторов
type Checker struct {
	InputFile    string `json:"input_file" yaml:"input_file"`
	OutputFile   string `json:"output_file" yaml:"output_file"` // пустое значение отключает выгрузку
	OutputMode   string `json:"output_mode" yaml:"output_mode"` // compact, minimal, jsonl
	NoColor      bool   `json:"no_color" yaml:"no_color"`
	CSVOnlyValid bool   `json:"csv_only_valid" yaml:"csv_only_valid"`
}

// Logging содержит конфигурацию логирования
type Logging struct {
	Level string `json:"level" yaml:"level"` // debug, info, warn, error
}

// Config содержит конфигурацию приложения
type Config struct {
	Server      Server      `json:"server" yaml:"server"`
	TelegramAPI TelegramAPI `json:"telegram_api" yaml:"telegram_api"`
	Processing  Processing  `json:"processing" yaml:"processing"`
	Resolver    Resolver    `json:"resolver" yaml:"resolver"`
	Checker     Checker     `json:"checker" yaml:"checker"`
	Logging     Logging     `json:"logging" yaml:"logging"`
}

// GetTelegramServers возвращает список конфигураций серверов Telegram,
// обеспечивая обратную совместимость со старым форматом.
func (c *Config) GetTelegramServers() []TelegramAPIServer {
	if len(c.TelegramAPI.Servers) > 0 {
		return c.TelegramAPI.Servers
	}
	// Поддержка старого формата из корневого объекта telegram_api
	if c.TelegramAPI.APIID != 0 && c.TelegramAPI.APIHash != "" {
		return []TelegramAPIServer{
			{
				APIID:       c.TelegramAPI.APIID,
				APIHash:     c.TelegramAPI.APIHash,
				PhoneNumber: c.TelegramAPI.PhoneNumber,
				SessionFile: c.TelegramAPI.SessionFile,
			},
		}
	}
	return nil
}

// LoadConfig загружает конфигурацию приложения из переменных окружения, .env файла или config.yml
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла, если он существует
	if err := godotenv.Load(); err != nil {
		// Если .env файла не существует, это нормально, мы будем полагаться на переменные окружения или config.yml
	}

	// Попытка загрузки из config.yml сначала
	cfg, err := loadFromYAML("config.yml")
	if err != nil {
		// Если загрузка YAML не удалась, используем переменные окружения
		cfg, err = loadFromEnv()
		if err != nil {
			return nil, fmt.Errorf("не удалось загрузить конфигурацию из env: %w", err)
		}
	}

	return cfg, nil
}

// loadFromYAML загружает конфигурацию из YAML-файла
func loadFromYAML(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл конфигурации %s: %w", filename, err)
	}

	// Значения по умолчанию для полей, отсутствие которых в YAML не отличимо
	// от нулевого значения (csv_only_valid по умолчанию включен).
	cfg := Config{
		Checker: Checker{
			InputFile:    DefaultInputFile,
			OutputFile:   DefaultOutputFile,
			OutputMode:   DefaultOutputMode,
			CSVOnlyValid: true,
		},
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("не удалось разобрать YAML конфигурацию: %w", err)
	}

	return &cfg, nil
}

// loadFromEnv загружает конфигурацию из переменных окружения (обратная совместимость)
func loadFromEnv() (*Config, error) {
	apiIDStr := getEnv("API_ID", "")
	apiHash := getEnv("API_HASH", "")
	phoneNumber := getEnv("PHONE_NUMBER", "")
	sessionFile := getEnv("SESSION_FILE", "")
	host := getEnv("SERVER_HOST", DefaultServerHost)
	portStr := getEnv("SERVER_PORT", "8080")
	taskTimeoutStr := getEnv("TASK_TIMEOUT_SECONDS", "30")
	cacheTTLStr := getEnv("CACHE_TTL_MINUTES", "60")

	if apiIDStr == "" || apiHash == "" {
		return nil, fmt.Errorf("API_ID и API_HASH должны быть установлены в переменных окружения")
	}

	apiID, err := strconv.Atoi(apiIDStr)
	if err != nil {
		return nil, fmt.Errorf("недопустимый API_ID: %w", err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("недопустимый SERVER_PORT: %w", err)
	}

	taskTimeout, err := strconv.Atoi(taskTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("недопустимый TASK_TIMEOUT_SECONDS: %w", err)
	}

	cacheTTL, err := strconv.Atoi(cacheTTLStr)
	if err != nil {
		return nil, fmt.Errorf("недопустимый CACHE_TTL_MINUTES: %w", err)
	}

	// Имя сессии в стиле SESSION_NAME поддерживается как запасной вариант.
	if sessionFile == "" {
		sessionFile = getEnv("SESSION_NAME", "bulk_checker") + ".session"
	}

	// OUTPUT_FILE="" — осознанное отключение выгрузки, отличаем его от отсутствия переменной.
	outputFile := DefaultOutputFile
	if value, ok := os.LookupEnv("OUTPUT_FILE"); ok {
		outputFile = value
	}

	return &Config{
		Server: Server{
			Host:                   host,
			Port:                   port,
			ShutdownTimeoutSeconds: int(DefaultShutdownTimeout / time.Second),
		},
		TelegramAPI: TelegramAPI{
			APIID:                      apiID,
			APIHash:                    apiHash,
			PhoneNumber:                phoneNumber,
			SessionFile:                sessionFile,
			HealthCheckIntervalSeconds: int(DefaultHealthCheckInterval / time.Second),
		},
		Processing: Processing{
			TaskTimeoutSeconds: taskTimeout,
			CacheTTLMinutes:    cacheTTL,
		},
		Resolver: Resolver{
			OperationTimeoutSeconds: int(DefaultResolverOperationTimeout / time.Second),
			ClientRetryPauseSeconds: int(DefaultResolverClientRetryPause / time.Second),
		},
		Checker: Checker{
			InputFile:    getEnv("INPUT_FILE", DefaultInputFile),
			OutputFile:   outputFile,
			OutputMode:   getEnv("OUTPUT_MODE", DefaultOutputMode),
			NoColor:      os.Getenv("NO_COLOR") != "",
			CSVOnlyValid: getEnv("CSV_ONLY_VALID", "1") != "0",
		},
		Logging: Logging{
			Level: getEnv("LOG_LEVEL", DefaultLogLevel),
		},
	}, nil
}

// Address возвращает адрес сервера в формате "host:port"
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Validate проверяет, являются ли значения конфигурации допустимыми
func (c *Config) Validate() error {
	// Валидация Telegram API
	servers := c.GetTelegramServers()
	if len(servers) == 0 {
		return fmt.Errorf("конфигурация telegram_api не найдена или пуста")
	}

	for i, s := range servers {
		if s.APIID <= 0 {
			return fmt.Errorf("telegram_api.servers[%d].api_id должно быть положительным целым числом", i)
		}
		if s.APIHash == "" {
			return fmt.Errorf("telegram_api.servers[%d].api_hash не может быть пустым", i)
		}
	}

	// Валидация остальных полей
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port должен быть действительным номером порта (1-65535)")
	}

	if c.Server.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("server.shutdown_timeout_seconds должно быть положительным")
	}

	if c.Processing.TaskTimeoutSeconds < 0 {
		return fmt.Errorf("processing.task_timeout_seconds должно быть неотрицательным (0 для отсутствия ограничений)")
	}

	if c.Processing.CacheTTLMinutes <= 0 {
		return fmt.Errorf("processing.cache_ttl_minutes должно быть положительным целым числом")
	}

	if c.TelegramAPI.HealthCheckIntervalSeconds <= 0 {
		return fmt.Errorf("telegram_api.health_check_interval_seconds должно быть положительным")
	}

	if c.Resolver.OperationTimeoutSeconds <= 0 {
		return fmt.Errorf("resolver.operation_timeout_seconds должно быть положительным")
	}

	if c.Resolver.ClientRetryPauseSeconds <= 0 {
		return fmt.Errorf("resolver.client_retry_pause_seconds должно быть положительным")
	}

	if c.Checker.InputFile == "" {
		return fmt.Errorf("checker.input_file не может быть пустым")
	}

	switch c.Checker.OutputMode {
	case "compact", "minimal", "jsonl":
		// all good
	default:
		return fmt.Errorf("checker.output_mode должен быть одним из: compact, minimal, jsonl")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// all good
	default:
		return fmt.Errorf("logging.level должен быть одним из: debug, info, warn, error")
	}

	return nil
}

// getEnv извлекает значение переменной окружения или возвращает значение по умолчанию, если она не установлена
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
