// Package ui provides the transient status surface shared by all panels:
// single-line notifications and the loading indicator.
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

// Level classifies a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

var levelColors = map[Level]*color.Color{
	LevelSuccess: color.New(color.FgGreen),
	LevelError:   color.New(color.FgRed),
	LevelWarning: color.New(color.FgYellow),
	LevelInfo:    color.New(color.FgCyan),
}

var levelSymbols = map[Level]string{
	LevelSuccess: "✓",
	LevelError:   "✗",
	LevelWarning: "⚠",
	LevelInfo:    "ℹ",
}

// Notifier writes one-line status notifications.
type Notifier struct {
	mu  sync.Mutex
	out io.Writer
}

// NewNotifier creates a notifier writing to out; nil defaults to stderr.
func NewNotifier(out io.Writer) *Notifier {
	if out == nil {
		out = os.Stderr
	}
	return &Notifier{out: out}
}

// Notify writes a single notification line at the given level.
func (n *Notifier) Notify(level Level, format string, args ...interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	symbol := levelSymbols[level]
	message := fmt.Sprintf(format, args...)
	if c, ok := levelColors[level]; ok {
		_, _ = c.Fprintf(n.out, "%s %s\n", symbol, message)
		return
	}
	_, _ = fmt.Fprintf(n.out, "%s %s\n", symbol, message)
}

// Success prints a success notification.
func (n *Notifier) Success(format string, args ...interface{}) {
	n.Notify(LevelSuccess, format, args...)
}

// Error prints an error notification.
func (n *Notifier) Error(format string, args ...interface{}) {
	n.Notify(LevelError, format, args...)
}

// Warning prints a warning notification.
func (n *Notifier) Warning(format string, args ...interface{}) {
	n.Notify(LevelWarning, format, args...)
}

// Info prints an informational notification.
func (n *Notifier) Info(format string, args ...interface{}) {
	n.Notify(LevelInfo, format, args...)
}
