package config

import (
	"github.com/rs/zerolog"

	apperrors "github.com/jrsteele09/go-authlete/internal/errors"
)

type LogConfig interface {
	GetLogLevel() (zerolog.Level, error)
}

type Log struct {
	file LogSection
}

var _ LogConfig = Log{}

func (l Log) GetLogLevel() (zerolog.Level, error) {
	raw := GetEnv(logLevelVar, orDefault(l.file.Level, "info"))
	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.NoLevel, apperrors.Wrapf(apperrors.ErrInvalidLogLevel, "[config GetLogLevel] %q", raw)
	}
	return level, nil
}
