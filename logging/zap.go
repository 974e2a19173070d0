package logging

import "go.uber.org/zap"

// ZapLogger adapts a zap logger to the cache's Logger interface.
type ZapLogger struct {
	s *zap.SugaredLogger
}

var _ Logger = (*ZapLogger)(nil)

func NewZapLogger(l *zap.Logger) *ZapLogger {
	return &ZapLogger{s: l.Sugar()}
}

func (z *ZapLogger) Debugf(format string, args ...any) { z.s.Debugf(format, args...) }
func (z *ZapLogger) Infof(format string, args ...any)  { z.s.Infof(format, args...) }

// Noticef maps to warn: zap has no level between info and warn, and
// notice-level events (bulk clears) should stand out from routine info.
func (z *ZapLogger) Noticef(format string, args ...any) { z.s.Warnf(format, args...) }
