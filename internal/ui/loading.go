package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Loading is the shared in-progress indicator. Show and Hide bracket every
// submitting workflow; Hide always runs before the terminal success or
// failure notification.
type Loading struct {
	mu      sync.Mutex
	out     io.Writer
	active  bool
	message string
}

// NewLoading creates a loading indicator writing to out; nil defaults to
// stderr.
func NewLoading(out io.Writer) *Loading {
	if out == nil {
		out = os.Stderr
	}
	return &Loading{out: out}
}

// Show displays the loading message.
func (l *Loading) Show(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.active = true
	l.message = message
	_, _ = fmt.Fprintf(l.out, "… %s\n", message)
}

// Hide clears the indicator.
func (l *Loading) Hide() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.active = false
	l.message = ""
}

// Active reports whether the indicator is currently shown.
func (l *Loading) Active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

// Surface bundles the notification and loading widgets shared by panels.
type Surface struct {
	Notify  *Notifier
	Loading *Loading
}

// NewSurface creates a surface writing to out; nil defaults to stderr.
func NewSurface(out io.Writer) *Surface {
	return &Surface{
		Notify:  NewNotifier(out),
		Loading: NewLoading(out),
	}
}
