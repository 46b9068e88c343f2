package history

import "go.uber.org/zap"

// badgerLogger adapts zap's sugared logger to Badger's Logger interface.
type badgerLogger struct {
	sugar *zap.SugaredLogger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.sugar.Errorf(format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.sugar.Warnf(format, args...)
}

func (l *badgerLogger) Infof(format string, args ...any) {
	l.sugar.Infof(format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.sugar.Debugf(format, args...)
}
