package logger

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ErrAppNameIsEmpty is returned by Init without Log.AppName.
	ErrAppNameIsEmpty = errors.New("config Log.AppName can not be empty")

	// ErrServiceNameIsEmpty is returned by Init without Log.ServiceName.
	ErrServiceNameIsEmpty = errors.New("config Log.ServiceName can not be empty")
)

var (
	writeErrors = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "log_write_errors_total",
		Help: "Number of log events that could not be written.",
	})

	errorOutput io.Writer = os.Stderr //nolint:gochecknoglobals
)

// ErrorHandler is installed as zerolog.ErrorHandler. Lost events are counted
// and reported on stderr, the one output that does not go through zerolog.
func ErrorHandler(err error) {
	writeErrors.Inc()

	_, _ = fmt.Fprintf(errorOutput, "zerolog: could not write event: %v\n", err)
}
