package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"})
	log.SetLevel(logrus.InfoLevel)
}

// SetLevel accepts logrus level names ("debug", "info", "warn", ...).
// Unknown names leave the current level untouched.
func SetLevel(level string) {
	if level == "" {
		return
	}
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		log.Warnf("⚠️ unknown log level %q, keeping %s", level, log.GetLevel())
		return
	}
	log.SetLevel(lvl)
}

// WithFields returns an entry for structured logging.
func WithFields(fields map[string]interface{}) *logrus.Entry {
	return log.WithFields(logrus.Fields(fields))
}

func Success(message string) {
	log.Info("✅ " + message)
}

func Info(message string) {
	log.Info("ℹ️ " + message)
}

func Infof(format string, args ...interface{}) {
	log.Info("ℹ️ " + fmt.Sprintf(format, args...))
}

func Warning(message string) {
	log.Warn("⚠️ " + message)
}

func Warningf(format string, args ...interface{}) {
	log.Warn("⚠️ " + fmt.Sprintf(format, args...))
}

func Error(message string, err error) {
	if err != nil {
		log.Error("❌ " + message + ": " + err.Error())
		return
	}
	log.Error("❌ " + message)
}

func Debugf(format string, args ...interface{}) {
	log.Debug("🐛 " + fmt.Sprintf(format, args...))
}

func Fatal(message string, err error) {
	if err != nil {
		log.Fatal("💥 " + message + ": " + err.Error())
	}
	log.Fatal("💥 " + message)
}
