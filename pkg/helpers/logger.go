package helpers

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger creates a configured Logrus logger: human-readable text in
// development, JSON everywhere else.
func NewLogger(appName, env string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if env == "development" {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	logger.WithFields(logrus.Fields{"app": appName, "env": env}).Info("logger initialized")
	return logger
}

// UseCase returns an entry keyed by the application operation, so every log
// line of one use case invocation is attributable.
func UseCase(logger *logrus.Logger, name string) *logrus.Entry {
	if logger == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return logger.WithField("use_case", name)
}
