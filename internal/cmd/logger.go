package cmd

import "github.com/rs/zerolog"

// zerologAdapter satisfies label.Logger on top of a zerolog logger.
type zerologAdapter struct {
	l zerolog.Logger
}

func (z zerologAdapter) Debugf(format string, args ...any) { z.l.Debug().Msgf(format, args...) }
func (z zerologAdapter) Infof(format string, args ...any)  { z.l.Info().Msgf(format, args...) }
func (z zerologAdapter) Warnf(format string, args ...any)  { z.l.Warn().Msgf(format, args...) }
func (z zerologAdapter) Errorf(format string, args ...any) { z.l.Error().Msgf(format, args...) }
