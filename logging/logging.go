// Package logging defines the leveled logger the cache reports to. The
// cache only ever calls it; implementations live with the application.
package logging

// Logger accepts printf-style messages at three levels: debug for
// per-key detail, info for routine events, notice for bulk operations.
// Calls must not block; the cache never inspects the outcome.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Noticef(format string, args ...any)
}

// NopLogger discards everything. It is the default collaborator so the
// cache never nil-checks its logger.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)  {}
func (NopLogger) Infof(string, ...any)   {}
func (NopLogger) Noticef(string, ...any) {}
