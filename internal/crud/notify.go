package crud

import "log/slog"

// Notification kinds understood by the toast partial.
const (
	KindSuccess = "success"
	KindWarning = "warning"
	KindError   = "error"
	KindInfo    = "info"
)

// Notifier receives user-facing outcome messages.
type Notifier interface {
	Notify(kind, message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(kind, message string)

// Notify calls f.
func (f NotifierFunc) Notify(kind, message string) {
	f(kind, message)
}

// Discard drops every notification.
var Discard Notifier = NotifierFunc(func(string, string) {})

type logNotifier struct {
	logger   *slog.Logger
	resource string
	next     Notifier
}

// LogNotifier forwards to next and also logs warnings and errors.
func LogNotifier(logger *slog.Logger, resource string, next Notifier) Notifier {
	if next == nil {
		next = Discard
	}
	if logger == nil {
		return next
	}
	return &logNotifier{logger: logger, resource: resource, next: next}
}

func (n *logNotifier) Notify(kind, message string) {
	switch kind {
	case KindError:
		n.logger.Error("user notified", slog.String("resource", n.resource), slog.String("message", message))
	case KindWarning:
		n.logger.Warn("user notified", slog.String("resource", n.resource), slog.String("message", message))
	}
	n.next.Notify(kind, message)
}
