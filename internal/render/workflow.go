// Package render turns analysis API payloads into terminal panel output.
// Each panel runs exactly once per triggering user action; missing optional
// fields degrade to placeholder values and never abort rendering.
package render

import (
	"log/slog"

	"github.com/ecocode-app/ecocode-cli/internal/ui"
)

// State is a panel workflow state.
type State int

const (
	// StateIdle means no submission is in flight.
	StateIdle State = iota
	// StateSubmitting means a request is in flight and the loading
	// indicator is shown.
	StateSubmitting
	// StateRendered means the last submission succeeded and its result is
	// on screen.
	StateRendered
)

// Workflow drives one panel through Idle → Submitting → {Rendered | Idle}.
// Both terminal transitions hide the loading indicator first; failure
// surfaces a notification and returns to Idle with no retained partial
// state.
type Workflow struct {
	state   State
	surface *ui.Surface
	logger  *slog.Logger
}

// NewWorkflow creates an idle workflow over the shared status surface.
func NewWorkflow(surface *ui.Surface, logger *slog.Logger) *Workflow {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workflow{surface: surface, logger: logger}
}

// State returns the current workflow state.
func (w *Workflow) State() State {
	return w.state
}

// Begin enters Submitting and shows the loading indicator.
func (w *Workflow) Begin(message string) {
	w.state = StateSubmitting
	w.surface.Loading.Show(message)
}

// Succeed hides the loading indicator, enters Rendered and optionally
// surfaces a success notification.
func (w *Workflow) Succeed(message string) {
	w.surface.Loading.Hide()
	w.state = StateRendered
	if message != "" {
		w.surface.Notify.Success("%s", message)
	}
}

// Fail hides the loading indicator, logs the failure, surfaces a single
// notification prefixed with the attempted action and returns to Idle.
func (w *Workflow) Fail(action string, err error) {
	w.surface.Loading.Hide()
	w.state = StateIdle
	w.logger.Error("action failed", "action", action, "error", err)
	w.surface.Notify.Error("%s: %s", action, userMessage(err))
}

// Reject surfaces a validation rejection without ever entering Submitting.
func (w *Workflow) Reject(err error) {
	w.state = StateIdle
	w.surface.Notify.Warning("%s", userMessage(err))
}
