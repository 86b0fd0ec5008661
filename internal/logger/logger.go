// File: internal/logger/logger.go
package logger

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Init 設定全域 logrus，無法解析的 level 退回 info
func Init(level string, debug bool) {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = log.InfoLevel
	}
	if debug && lvl < log.DebugLevel {
		lvl = log.DebugLevel
	}
	log.SetLevel(lvl)
	log.WithField("level", lvl.String()).Debug("logger initialized")
}
