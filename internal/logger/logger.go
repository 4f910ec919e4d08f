// Package logger provides centralized logging functionality for calchub.
// It configures structured logging with support for different output destinations and log levels.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Logger is the global logger instance used throughout calchub.
var Logger *log.Logger

// output is where the global logger and component loggers write.
var output io.Writer = os.Stderr

func init() {
	Logger = log.New(os.Stderr)
	Logger.SetTimeFormat("")
	Logger.SetLevel(log.InfoLevel)
}

// Configure sets up the logger based on CLI flags and environment variables.
// CLI flags take precedence over CALCHUB_LOG_LEVEL.
func Configure(logLevel string, logFile string, testMode bool) error {
	level := logLevel
	if level == "" {
		level = strings.ToLower(os.Getenv("CALCHUB_LOG_LEVEL"))
	}
	if level == "" {
		level = "info"
	}

	var out io.Writer = os.Stderr
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return err
		}
		out = file
	}
	output = out

	Logger = log.New(out)
	Logger.SetTimeFormat("")
	Logger.SetLevel(parseLogLevel(level))

	if testMode {
		// Deterministic output: no timestamps, fixed level
		Logger.SetLevel(log.InfoLevel)
	}

	return nil
}

// SetOutput redirects the global logger, mainly for tests.
func SetOutput(w io.Writer) {
	output = w
	Logger.SetOutput(w)
}

// parseLogLevel converts string to log level
func parseLogLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// Fatal logs a fatal message with optional key-value pairs and exits.
func Fatal(msg interface{}, keyvals ...interface{}) {
	Logger.Fatal(msg, keyvals...)
}

// CommandExecution logs command execution details for debugging.
func CommandExecution(command string, args map[string]string) {
	Debug("Executing command", "command", command, "args", args)
}

// ServiceOperation logs service operation details for debugging.
func ServiceOperation(service string, operation string, details ...interface{}) {
	Debug("Service operation", "service", service, "operation", operation, "details", details)
}

// NewStyledLogger creates a new logger with custom styles and prefix for component-specific logging.
// The prefix names the component (e.g., "Keypad", "Store").
func NewStyledLogger(prefix string) *log.Logger {
	styles := log.DefaultStyles()

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("33")).
		Foreground(lipgloss.Color("15"))

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("196")).
		Foreground(lipgloss.Color("15"))

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("240")).
		Foreground(lipgloss.Color("15"))

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("214")).
		Foreground(lipgloss.Color("15"))

	styles.Levels[log.FatalLevel] = lipgloss.NewStyle().
		SetString("FATAL").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("88")).
		Foreground(lipgloss.Color("15"))

	styles.Keys["phase"] = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	styles.Keys["key"] = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	styles.Keys["display"] = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styles.Keys["command"] = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	styles.Keys["calculator"] = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

	styles.Values["phase"] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	styles.Values["error"] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	componentLogger := log.NewWithOptions(output, log.Options{
		Prefix: prefix + " ",
	})
	componentLogger.SetStyles(styles)
	componentLogger.SetLevel(Logger.GetLevel())

	return componentLogger
}
