package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

var (
	ErrorLogger *log.Logger
	PanicLogger *log.Logger
)

// InitLogger opens errors.log and panics.log under logsDir. The returned func closes both files.
func InitLogger(logsDir string) (func(), error) {
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	errorFile, err := openLogFile(logsDir, "errors.log")
	if err != nil {
		return nil, err
	}
	panicFile, err := openLogFile(logsDir, "panics.log")
	if err != nil {
		errorFile.Close()
		return nil, err
	}

	SetLogOutput(errorFile, panicFile)
	return func() {
		errorFile.Close()
		panicFile.Close()
	}, nil
}

// SetLogOutput points the loggers at arbitrary writers. Tests use it with buffers.
func SetLogOutput(errOut, panicOut io.Writer) {
	ErrorLogger = log.New(errOut, "", 0)
	PanicLogger = log.New(panicOut, "", 0)
}

func openLogFile(dir, name string) (*os.File, error) {
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	return f, nil
}

// LogError records a store or handler failure. requestID may be empty.
func LogError(err error, context, requestID string) {
	if ErrorLogger == nil {
		return
	}
	ErrorLogger.Printf("[%s] ERROR in %s req=%s - %s: %v", timestamp(), caller(2), requestID, context, err)
}

func LogPanic(recovered interface{}, context, requestID string) {
	if PanicLogger == nil {
		return
	}
	// skip LogPanic, the recovery handler and gin's deferred recover
	PanicLogger.Printf("[%s] PANIC in %s req=%s - %s: %v", timestamp(), caller(4), requestID, context, recovered)
}

func timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown:0"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
