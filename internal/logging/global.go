package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	globalMu     sync.Mutex
	globalLogrus = logrus.New()
	globalLogger Logger
)

// GetLogger returns the shared application logger. Packages that need a
// logger at init time use this; the level and format are adjusted later by
// SetAllLogLevels once configuration has been loaded.
func GetLogger() Logger {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		globalLogger = NewLogrusAdapterFromLogger(globalLogrus)
	}
	return globalLogger
}

// GetLogrusLogger returns the underlying logrus instance for packages that
// still take *logrus.Logger via SetLogger hooks.
func GetLogrusLogger() *logrus.Logger {
	return globalLogrus
}

// SetAllLogLevels sets the level of the shared logger.
func SetAllLogLevels(level logrus.Level) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogrus.SetLevel(level)
}
