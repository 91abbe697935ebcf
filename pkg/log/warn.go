package log

import (
	"github.com/rs/zerolog"

	"github.com/varbench/varbench/pkg/errors"
)

// UseZerologWarnings routes library warnings (degenerate metrics, recovered
// fit failures) through the given zerolog logger. Warning types that
// implement zerolog.LogObjectMarshaler are emitted as structured objects.
func UseZerologWarnings(logger zerolog.Logger) {
	errors.SetZerologWarnFunc(func(warning error) {
		ev := logger.Warn()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			ev.Object("warning", obj).Msg(warning.Error())
			return
		}
		ev.Err(warning).Msg("warning")
	})
}
