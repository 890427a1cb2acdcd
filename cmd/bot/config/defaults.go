package config

// Default column widths for text rendering.
const (
	DefaultInputColumnWidth  = 24
	DefaultStatusColumnWidth = 10
	DefaultTitleColumnWidth  = 22
	DefaultReasonColumnWidth = 20
)

const DefaultHTTPTimeoutSeconds = 30

// Logging defaults.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)
