package notion

import (
	"log"
	"sync"
	"time"
)

// APILogger provides debug logging of outbound API calls
type APILogger struct {
	enabled bool
	mu      sync.RWMutex
}

// NewAPILogger creates a new API call logger
func NewAPILogger(enabled bool) *APILogger {
	return &APILogger{
		enabled: enabled,
	}
}

// IsEnabled returns whether call logging is enabled
func (l *APILogger) IsEnabled() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.enabled
}

// SetEnabled enables or disables call logging
func (l *APILogger) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

// LogCall logs a completed API round trip with its duration and status
func (l *APILogger) LogCall(method, path string, duration time.Duration, status int) {
	if !l.IsEnabled() {
		return
	}

	log.Printf("[notion] [%.2fms] [%d] %s %s",
		float64(duration.Nanoseconds())/1e6,
		status,
		method,
		path)
}

// LogError logs a call that failed before yielding a response
func (l *APILogger) LogError(method, path string, duration time.Duration, err error) {
	if !l.IsEnabled() {
		return
	}

	log.Printf("[notion] [%.2fms] [ERROR] %s %s - %v",
		float64(duration.Nanoseconds())/1e6,
		method,
		path,
		err)
}
