package config

import (
	"io"

	"github.com/friendsofgo/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Logger logger config struct
type Logger struct {
	Level  string
	Format string
}

func getLoggerConfig(v *viper.Viper) *Logger {
	return &Logger{
		Level:  v.GetString("logger.level"),
		Format: v.GetString("logger.format"),
	}
}

// NewLogger builds a logrus logger writing to out.
func (l *Logger) NewLogger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(l.Level)
	if err != nil {
		return nil, errors.Wrap(err, "config: logger.level")
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)

	switch l.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{})
	default:
		return nil, errors.Errorf("config: unsupported logger.format %q", l.Format)
	}

	return logger, nil
}
