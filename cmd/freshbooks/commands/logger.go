package commands

import (
	"io"
	"os"
	"time"

	"github.com/fivetwenty-io/freshbooks/pkg/freshbooks"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// zerologAdapter implements freshbooks.Logger on top of zerolog.
type zerologAdapter struct {
	logger zerolog.Logger
}

// newLogger builds the CLI logger. Verbose mode logs requests at debug level.
func newLogger() freshbooks.Logger {
	level := zerolog.WarnLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    viper.GetBool("no-color"),
	}

	return newZerologAdapter(output, level)
}

func newZerologAdapter(w io.Writer, level zerolog.Level) *zerologAdapter {
	return &zerologAdapter{
		logger: zerolog.New(w).Level(level).With().Timestamp().Logger(),
	}
}

func (l *zerologAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

func (l *zerologAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

func (l *zerologAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

func (l *zerologAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}
