package shared

import "context"

type sessionContextKey struct{}

// ContextWithSession stores the session in context.
func ContextWithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sess)
}

// SessionFromContext extracts the session from context.
func SessionFromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(sessionContextKey{}).(*Session)
	return sess
}

// NotifierFromContext returns the request session as a toast sink. Outside a
// session-bearing request the notifications are dropped.
func NotifierFromContext(ctx context.Context) interface{ Notify(kind, message string) } {
	if sess := SessionFromContext(ctx); sess != nil {
		return sess
	}
	return discard{}
}

type discard struct{}

func (discard) Notify(string, string) {}
