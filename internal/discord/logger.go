package discord

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap/zapcore"

	"github.com/davidbz/promptrelay/internal/observability"
)

//nolint:gochecknoglobals // discordgo exposes its logger as a package variable
var routeOnce sync.Once

// routeLogs sends discordgo's internal log lines to the zap logger.
func routeLogs() {
	routeOnce.Do(func() {
		discordgo.Logger = func(msgL, _ int, format string, a ...interface{}) {
			logger := observability.Logger().With(observability.String("component", "discordgo"))
			if ce := logger.Check(logLevel(msgL), fmt.Sprintf(format, a...)); ce != nil {
				ce.Write()
			}
		}
	})
}

func logLevel(msgL int) zapcore.Level {
	switch msgL {
	case discordgo.LogError:
		return zapcore.ErrorLevel
	case discordgo.LogWarning:
		return zapcore.WarnLevel
	case discordgo.LogInformational:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
