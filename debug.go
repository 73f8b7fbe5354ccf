package quicktween

import (
	"fmt"
	"io"
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[quicktween] ", log.LstdFlags)

// debug enables panics on misuse that is otherwise logged and ignored.
var debug bool

// SetLogger replaces the package logger. A nil logger discards output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}

// SetDebug toggles debug checks. In debug mode using a disposed tween or
// sequence panics instead of being ignored.
func SetDebug(enabled bool) {
	debug = enabled
}

func warnf(format string, args ...any) {
	logger.Printf("warning: "+format, args...)
}

func errorf(format string, args ...any) {
	logger.Printf("error: "+format, args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed object
// is driven. Callers only reach it in debug mode.
func debugCheckDisposed(tag, op string) {
	panic(fmt.Sprintf("quicktween debug: %s on disposed object %q", op, tag))
}

// describe names an object in log lines.
func describe(t Tweenable) string {
	if t == nil {
		return "<nil>"
	}
	switch v := t.(type) {
	case *Tween:
		return fmt.Sprintf("tween %q", v.tag)
	case *Sequence:
		return fmt.Sprintf("sequence %q", v.tag)
	}
	return fmt.Sprintf("%T", t)
}
