package mylog

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/MarcGrol/salessimulator/lib/mycontext"
)

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") != "" {
		New = newGcloudLogger
	}
}

// structuredLogger writes one JSON object per line, in the format Cloud Logging parses.
// A timestamp is added when shipping logs to Cloud Logging.
type structuredLogger struct {
	componentName string
	logger        zerolog.Logger
}

func newGcloudLogger(componentName string) Logger {
	return structuredLogger{
		componentName: componentName,
		logger:        zerolog.New(os.Stdout),
	}
}

func (l structuredLogger) Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any) {
	event := l.logger.Log().
		Str("component", l.componentName).
		Str("severity", string(severity)).
		Dict("labels", zerolog.Dict().Str("aggregate", traceLabel))

	trace := mycontext.TraceFromContext(ctx)
	if trace != "" {
		event = event.Str("logging.googleapis.com/trace", trace)
	}

	event.Str("message", l.componentName+":"+fmt.Sprintf(format, a...)).Send()
}
