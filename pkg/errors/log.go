package errors

import (
	"log"
	"os"
)

// LogHandler is an ErrorHandler that writes through the standard logger.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Logger overrides the destination; nil writes to stderr.
	Logger *log.Logger
}

func (h *LogHandler) logger() *log.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return stderrLogger
}

var stderrLogger = log.New(os.Stderr, "", log.LstdFlags)

// HandleError logs a UIError.
func (h *LogHandler) HandleError(err *UIError) {
	if err == nil {
		return
	}
	l := h.logger()
	if h.Verbose {
		l.Printf("[ui error] %s [%s] view=%q: %v", err.Op, err.Kind, err.View, err.Err)
	} else {
		l.Printf("[ui error] %s: %v", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	l := h.logger()
	if err.Op != "" {
		l.Printf("[ui panic] %s: %v", err.Op, err.Value)
	} else {
		l.Printf("[ui panic] %v", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		l.Printf("Stack trace:\n%s", err.StackTrace)
	}
}
