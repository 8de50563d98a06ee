package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Init configures logrus for the whole process. Output goes to the file
// named by LOG_FILE when set, otherwise stdout.
func Init() {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	if logFilePath := os.Getenv("LOG_FILE"); logFilePath != "" {
		logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			logrus.Warnf("Failed to open log file (%s), using stdout: %v", logFilePath, err)
		} else {
			logrus.SetOutput(logFile)
		}
	}

	logrus.Info("Logger initialized")
}
