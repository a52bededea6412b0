package webfolder

import (
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/junovhs/web-folder/internal/logging"
)

// Options configures traversal and picker behavior. The zero value is usable;
// unset fields take the documented defaults.
type Options struct {
	// Logger receives structured traversal events. Nil disables logging.
	Logger *zerolog.Logger

	// MaxParallel bounds how many sibling subdirectories are traversed
	// concurrently. Each subdirectory uses its own reader, so per-reader
	// serialization is unaffected. Default is runtime.NumCPU().
	MaxParallel int

	// CancelGrace is how long PickFolder waits for a completion
	// notification after the control regains focus before concluding the
	// dialog was dismissed. Default is 1 second.
	CancelGrace time.Duration
}

// DefaultCancelGrace is the default Options.CancelGrace.
const DefaultCancelGrace = time.Second

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = logging.Nop()
	}
	if o.MaxParallel <= 0 {
		o.MaxParallel = runtime.NumCPU()
	}
	if o.CancelGrace <= 0 {
		o.CancelGrace = DefaultCancelGrace
	}
	return o
}
