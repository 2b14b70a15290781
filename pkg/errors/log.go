package errors

import "log"

// LogHandler writes reported errors to the standard logger.
type LogHandler struct {
	// Verbose includes timestamps and error kinds in the output.
	Verbose bool
}

// HandleError logs the error.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	if h.Verbose {
		log.Printf("expandtext: %s [%s] at %s: %v", err.Op, err.Kind, err.Timestamp.Format("15:04:05.000"), err.Err)
		return
	}
	log.Printf("expandtext: %v", err)
}
