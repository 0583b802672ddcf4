// Package log provides a unified logging abstraction for lrt.
//
// All lrt output MUST go through this package.
// Uses lipgloss for terminal styling, stderr for warn/error, stdout for everything else.
package log

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// LogLevel controls the verbosity of log output.
type LogLevel int

const (
	// LevelDebug is the most verbose level.
	LevelDebug LogLevel = iota
	// LevelInfo is the default level.
	LevelInfo
	// LevelWarn shows only warnings and errors.
	LevelWarn
	// LevelError shows only errors.
	LevelError
	// LevelSilent suppresses all output.
	LevelSilent
)

var cfg = struct {
	mu     sync.RWMutex
	level  LogLevel
	prefix bool
	quiet  bool
}{
	level: LevelInfo,
}

var (
	dimStyle    = lipgloss.NewStyle().Faint(true)
	boldStyle   = lipgloss.NewStyle().Bold(true)
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cyanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

var noStyle = lipgloss.NewStyle()

// --- Configuration ---

// SetLevel sets the minimum log level. Messages below this level are suppressed.
func SetLevel(level LogLevel) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.level = level
}

// GetLevel returns the current log level.
func GetLevel() LogLevel {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.level
}

// SetPrefix enables or disables the [lrt] prefix on all messages.
func SetPrefix(enabled bool) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.prefix = enabled
}

// EnableQuietMode suppresses ALL output including errors.
// Only exit codes communicate success/failure.
func EnableQuietMode() {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.quiet = true
	cfg.level = LevelSilent
}

// DisableQuietMode restores normal output.
func DisableQuietMode() {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.quiet = false
	cfg.level = LevelInfo
}

// IsQuiet returns whether quiet mode is enabled.
func IsQuiet() bool {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.quiet
}

// --- Internal helpers ---

// canOutput checks if output is allowed at the given level.
func canOutput(level LogLevel) bool {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return !cfg.quiet && cfg.level <= level
}

// formatMessage applies the optional [lrt] prefix.
func formatMessage(message string) string {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	if cfg.prefix {
		return "[lrt] " + message
	}
	return message
}

// emit is the single output path: level gate, prefix, style, destination.
func emit(level LogLevel, w *os.File, style lipgloss.Style, message string) {
	if !canOutput(level) {
		return
	}
	fmt.Fprintln(w, style.Render(formatMessage(message)))
}

// --- Log output functions ---

// Debug outputs a debug-level message (dim styling).
// Only shown when level <= LevelDebug.
func Debug(message string) {
	emit(LevelDebug, os.Stdout, dimStyle, message)
}

// Debugf outputs a formatted debug-level message.
func Debugf(format string, args ...any) {
	emit(LevelDebug, os.Stdout, dimStyle, fmt.Sprintf(format, args...))
}

// Info outputs an info-level message (no styling).
func Info(message string) {
	emit(LevelInfo, os.Stdout, noStyle, message)
}

// Infof outputs a formatted info-level message.
func Infof(format string, args ...any) {
	emit(LevelInfo, os.Stdout, noStyle, fmt.Sprintf(format, args...))
}

// Warn outputs a warning message (yellow, to stderr).
func Warn(message string) {
	emit(LevelWarn, os.Stderr, yellowStyle, message)
}

// Warnf outputs a formatted warning message.
func Warnf(format string, args ...any) {
	emit(LevelWarn, os.Stderr, yellowStyle, fmt.Sprintf(format, args...))
}

// Error outputs an error message (red, to stderr).
func Error(message string) {
	emit(LevelError, os.Stderr, redStyle, message)
}

// Errorf outputs a formatted error message.
func Errorf(format string, args ...any) {
	emit(LevelError, os.Stderr, redStyle, fmt.Sprintf(format, args...))
}

// Success outputs a success message (green, info level).
func Success(message string) {
	emit(LevelInfo, os.Stdout, greenStyle, message)
}

// Dim outputs a subtle/dim message (info level).
func Dim(message string) {
	emit(LevelInfo, os.Stdout, dimStyle, message)
}

// Bold outputs a bold/emphasized message (info level).
func Bold(message string) {
	emit(LevelInfo, os.Stdout, boldStyle, message)
}

// Yellow outputs a yellow-colored message (info level, not warning).
func Yellow(message string) {
	emit(LevelInfo, os.Stdout, yellowStyle, message)
}

// Raw outputs a message without styling or prefix (for pre-styled content).
// Respects log level (info).
func Raw(message string) {
	if canOutput(LevelInfo) {
		fmt.Fprintln(os.Stdout, message)
	}
}

// Newline outputs an empty line. Respects log level (info).
func Newline() {
	if canOutput(LevelInfo) {
		fmt.Fprintln(os.Stdout)
	}
}

// --- Style builders (return styled strings without printing) ---

// Style provides string styling functions that return styled strings
// without printing them. Use with Raw() for composed lines.
var Style = struct {
	Dim    func(...string) string
	Bold   func(...string) string
	Red    func(...string) string
	Green  func(...string) string
	Yellow func(...string) string
	Cyan   func(...string) string
}{
	Dim:    dimStyle.Render,
	Bold:   boldStyle.Render,
	Red:    redStyle.Render,
	Green:  greenStyle.Render,
	Yellow: yellowStyle.Render,
	Cyan:   cyanStyle.Render,
}
