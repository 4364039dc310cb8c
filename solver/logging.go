package solver

import "github.com/sirupsen/logrus"

// engineLogger adapts a *logrus.Entry to the narrow engine.Logger
// capability, so the internal engine can log without importing logrus
// itself.
type engineLogger struct {
	entry *logrus.Entry
}

func (l engineLogger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l engineLogger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }

// SetLogger replaces the solver's logrus entry, e.g. to redirect output or
// attach fields. The default logger is silent (level Warn) to match the
// header's "quiet unless verbose is raised" default.
func (s *Solver) SetLogger(entry *logrus.Entry) {
	s.logger = entry
	s.ext.Engine.Log = engineLogger{entry: entry}
}

func defaultLogger() *logrus.Entry {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l.WithField("component", "satkit")
}
