package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log est le logger global de l'application
var Log = logrus.New()

// InitLogger configure le logger global (format JSON, niveau depuis LOG_LEVEL)
func InitLogger() {
	Log.SetFormatter(&logrus.JSONFormatter{})
	Log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)
}
