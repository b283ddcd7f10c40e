package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/lyraproj/issue/issue"
)

type (
	LogLevel string

	Logger interface {
		Logf(level LogLevel, format string, args ...interface{})

		LogIssue(issue issue.Reported)
	}

	stdlog struct {
		out io.Writer
		err io.Writer
	}

	LogEntry struct {
		level   LogLevel
		message string
	}

	ArrayLogger struct {
		entries []*LogEntry
	}
)

const (
	ALERT   = LogLevel(`alert`)
	CRIT    = LogLevel(`crit`)
	DEBUG   = LogLevel(`debug`)
	EMERG   = LogLevel(`emerg`)
	ERR     = LogLevel(`err`)
	INFO    = LogLevel(`info`)
	NOTICE  = LogLevel(`notice`)
	WARNING = LogLevel(`warning`)
)

var LogLevels = []LogLevel{ALERT, CRIT, DEBUG, EMERG, ERR, INFO, NOTICE, WARNING}

func Debug(logger Logger, format string, args ...interface{}) {
	logger.Logf(DEBUG, format, args...)
}

func Err(logger Logger, format string, args ...interface{}) {
	logger.Logf(ERR, format, args...)
}

func Info(logger Logger, format string, args ...interface{}) {
	logger.Logf(INFO, format, args...)
}

func Notice(logger Logger, format string, args ...interface{}) {
	logger.Logf(NOTICE, format, args...)
}

func Warning(logger Logger, format string, args ...interface{}) {
	logger.Logf(WARNING, format, args...)
}

func NewStdLogger() Logger {
	return &stdlog{os.Stdout, os.Stderr}
}

// NewWriterLogger returns a logger that writes debug, info, and notice entries to out and all other
// entries to err
func NewWriterLogger(out, err io.Writer) Logger {
	return &stdlog{out, err}
}

func (l *stdlog) Logf(level LogLevel, format string, args ...interface{}) {
	w := l.writerFor(level)
	fmt.Fprintf(w, `%s: `, level)
	fmt.Fprintf(w, format, args...)
	fmt.Fprintln(w)
}

func (l *stdlog) writerFor(level LogLevel) io.Writer {
	switch level {
	case DEBUG, INFO, NOTICE:
		return l.out
	default:
		return l.err
	}
}

func (l *stdlog) LogIssue(issue issue.Reported) {
	fmt.Fprintln(l.err, issue.String())
}

func NewArrayLogger() *ArrayLogger {
	return &ArrayLogger{make([]*LogEntry, 0, 16)}
}

func (l *ArrayLogger) Entries(level LogLevel) (result []string) {
	result = make([]string, 0, 8)
	for _, entry := range l.entries {
		if entry.level == level {
			result = append(result, entry.message)
		}
	}
	return
}

func (l *ArrayLogger) Logf(level LogLevel, format string, args ...interface{}) {
	l.entries = append(l.entries, &LogEntry{level, fmt.Sprintf(format, args...)})
}

func (l *ArrayLogger) LogIssue(i issue.Reported) {
	var level LogLevel
	switch i.Severity() {
	case issue.SEVERITY_ERROR:
		level = ERR
	case issue.SEVERITY_WARNING, issue.SEVERITY_DEPRECATION:
		level = WARNING
	default:
		return
	}
	l.entries = append(l.entries, &LogEntry{level, i.String()})
}
