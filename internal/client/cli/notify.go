package cli

import (
	"fmt"
	"io"
	"time"
)

// Severity classifies a user-visible message.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityError   Severity = "error"
)

// Notifier shows a message to the user. d is how long a transient display
// should keep it; zero means the notifier's own default.
type Notifier func(message string, severity Severity, d time.Duration)

// NewConsoleNotifier prints messages to w. Terminal lines do not expire, so
// the duration is ignored.
func NewConsoleNotifier(w io.Writer) Notifier {
	return func(message string, severity Severity, _ time.Duration) {
		switch severity {
		case SeveritySuccess:
			fmt.Fprintf(w, "✔ %s\n", message)
		case SeverityError:
			fmt.Fprintf(w, "✖ %s\n", message)
		default:
			fmt.Fprintln(w, message)
		}
	}
}
