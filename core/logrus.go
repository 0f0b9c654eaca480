package core

import (
	"io"

	"github.com/signatory-io/hashime/logger"
	"github.com/sirupsen/logrus"
)

type LogrusAdapter struct {
	*logrus.Logger
}

type logrusEntryAdapter struct {
	*logrus.Entry
}

func logrusLevel(l logger.Level) logrus.Level {
	switch l {
	case logger.LevelDebug:
		return logrus.DebugLevel
	case logger.LevelError:
		return logrus.ErrorLevel
	case logger.LevelWarn:
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}

// NewLogger returns a logrus backed logger writing to w. Art goes to stdout
// so w is normally stderr.
func NewLogger(level logger.Level, w io.Writer) LogrusAdapter {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrusLevel(level))
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return LogrusAdapter{Logger: l}
}

func (l LogrusAdapter) With(field string, value any) logger.Logger {
	return logrusEntryAdapter{Entry: l.Logger.WithField(field, value)}
}

func (l LogrusAdapter) WithFields(fields map[string]any) logger.Logger {
	return logrusEntryAdapter{Entry: l.Logger.WithFields(fields)}
}

func (l logrusEntryAdapter) With(field string, value any) logger.Logger {
	return logrusEntryAdapter{Entry: l.Entry.WithField(field, value)}
}

func (l logrusEntryAdapter) WithFields(fields map[string]any) logger.Logger {
	return logrusEntryAdapter{Entry: l.Entry.WithFields(fields)}
}

var (
	_ logger.Logger = LogrusAdapter{}
	_ logger.Logger = logrusEntryAdapter{}
)
