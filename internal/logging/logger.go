package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

const (
	// logMaxSize is the maximum size in megabytes before log rotation
	logMaxSize = 10
	// logMaxBackups is the number of old log files to retain
	logMaxBackups = 3
	// logMaxAge is the maximum number of days to retain old log files
	logMaxAge = 28
)

var (
	Logger           *slog.Logger
	lumberjackLogger *lumberjack.Logger
	logPath          string
)

// ConsoleHandler is a custom slog handler for clean console output
type ConsoleHandler struct {
	verbose bool
}

func (h *ConsoleHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	// Only show certain messages in console based on level
	switch r.Level {
	case slog.LevelError:
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", r.Message)
	case slog.LevelWarn:
		fmt.Fprintf(os.Stderr, "WARNING: %s\n", r.Message)
	case slog.LevelInfo:
		// Regular user-facing messages - no prefix
		fmt.Fprintln(os.Stderr, r.Message)
	case slog.LevelDebug:
		// Only show debug messages if verbose is enabled
		if h.verbose {
			fmt.Fprintf(os.Stderr, "[DEBUG] %s\n", r.Message)
		}
	}

	return nil
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	return h
}

// logDir resolves the directory log files are written to. SCOPEDIR_LOG_DIR
// takes precedence, then the user cache directory, then the temp root.
func logDir() string {
	if dir := os.Getenv("SCOPEDIR_LOG_DIR"); dir != "" {
		return filepath.Join(dir, "scopedir")
	}

	if cache, err := os.UserCacheDir(); err == nil {
		return filepath.Join(cache, "scopedir")
	}

	return filepath.Join(os.TempDir(), "scopedir")
}

// Setup initializes the logging system with both file and console handlers
func Setup(verbose bool) error {
	dir := logDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create log directory: %w", err)
	}

	logPath = filepath.Join(dir, "scopedir.log")

	// Set up lumberjack for log rotation
	lumberjackLogger = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAge,
		Compress:   true,
	}

	fileHandler := slog.NewTextHandler(lumberjackLogger, &slog.HandlerOptions{
		Level: slog.LevelDebug, // Log everything to file
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Add microsecond precision to file logs
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format("2006/01/02 15:04:05.000000"))
			}

			return a
		},
	})

	consoleHandler := &ConsoleHandler{verbose: verbose}

	multiHandler := NewMultiHandler(fileHandler, consoleHandler)

	Logger = slog.New(multiHandler)

	// Set as the global default logger so slog.Info(), slog.Debug() etc. work everywhere
	slog.SetDefault(Logger)

	slog.Debug("=== scopedir started ===")

	return nil
}

// GetLogPath returns the path to the current log file
func GetLogPath() string {
	return logPath
}

// PrintLogFile copies the current log file to the provided writer.
// If writer is nil, prints to stdout.
func PrintLogFile(w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	path := logPath
	if path == "" {
		path = filepath.Join(logDir(), "scopedir.log")
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	defer file.Close()

	if _, err := io.Copy(w, file); err != nil {
		return fmt.Errorf("failed to read log file: %w", err)
	}

	return nil
}

// Close closes the log file and flushes any buffered data
func Close() {
	if lumberjackLogger != nil {
		lumberjackLogger.Close()
	}
}

// MultiHandler sends logs to multiple handlers
type MultiHandler struct {
	handlers []slog.Handler
}

func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		if err := handler.Handle(ctx, r); err != nil {
			return err
		}
	}

	return nil
}

func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))

	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}

	return &MultiHandler{handlers: newHandlers}
}

func (h *MultiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))

	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}

	return &MultiHandler{handlers: newHandlers}
}
