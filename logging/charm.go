package logging

import "github.com/charmbracelet/log"

// CharmLogger adapts a charmbracelet/log logger, handy for CLI tools
// embedding the cache.
type CharmLogger struct {
	l *log.Logger
}

var _ Logger = (*CharmLogger)(nil)

func NewCharmLogger(l *log.Logger) *CharmLogger {
	return &CharmLogger{l: l}
}

func (c *CharmLogger) Debugf(format string, args ...any) { c.l.Debugf(format, args...) }
func (c *CharmLogger) Infof(format string, args ...any)  { c.l.Infof(format, args...) }

// Noticef maps to warn, mirroring the zap adapter.
func (c *CharmLogger) Noticef(format string, args ...any) { c.l.Warnf(format, args...) }
