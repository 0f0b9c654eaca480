package logger

import (
	"fmt"
	"strings"
)

type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelNames = [...]string{
	LevelError: "error",
	LevelWarn:  "warn",
	LevelInfo:  "info",
	LevelDebug: "debug",
}

func ParseLevel(text string) (Level, error) {
	for l, name := range levelNames {
		if strings.EqualFold(text, name) {
			return Level(l), nil
		}
	}
	return 0, fmt.Errorf("unknown log level: %s", text)
}

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

func (l Level) MarshalText() (text []byte, err error) {
	if l < 0 || int(l) >= len(levelNames) {
		return nil, fmt.Errorf("unexpected logger.Level: %d", int(l))
	}
	return []byte(levelNames[l]), nil
}

func (l *Level) UnmarshalText(text []byte) (err error) {
	*l, err = ParseLevel(string(text))
	return
}

type Logger interface {
	With(field string, value any) Logger
	WithFields(fields map[string]any) Logger
	Errorf(format string, args ...any)
	Warnf(format string, args ...any)
	Infof(format string, args ...any)
	Debugf(format string, args ...any)
}

type nop struct{}

func (nop) With(string, any) Logger          { return nop{} }
func (nop) WithFields(map[string]any) Logger { return nop{} }
func (nop) Errorf(string, ...any)            {}
func (nop) Warnf(string, ...any)             {}
func (nop) Infof(string, ...any)             {}
func (nop) Debugf(string, ...any)            {}

// Nop discards everything
var Nop Logger = nop{}
