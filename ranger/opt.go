package ranger

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/xy-planning-network/microapp"
	"github.com/xy-planning-network/microapp/http/middleware"
	"github.com/xy-planning-network/microapp/logger"
	"golang.org/x/time/rate"
)

// A RangerOption configures a *Ranger under construction.
//
// RangerOptions run before the micro-app's configuration is loaded
// and may be shared by every Ranger in a Fleet.
type RangerOption func(rng *Ranger) error

// WithEnv sets the Environment the micro-app runs in.
//
// An invalid Environment is an error.
func WithEnv(env microapp.Environment) RangerOption {
	return func(rng *Ranger) error {
		if err := env.Valid(); err != nil {
			return fmt.Errorf("%w: environment %q", err, env)
		}

		rng.env = env
		return nil
	}
}

// WithLaunchFS sets the filesystem the launch page is read from.
func WithLaunchFS(fsys fs.FS) RangerOption {
	return func(rng *Ranger) error {
		if fsys == nil {
			return fmt.Errorf("%w: launch filesystem", microapp.ErrMissingData)
		}

		rng.launch = fsys
		return nil
	}
}

// WithLogger sets the logger.Logger the micro-app logs through.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) error {
		if l == nil {
			return fmt.Errorf("%w: logger", microapp.ErrMissingData)
		}

		rng.l = l
		return nil
	}
}

// WithName sets the name the micro-app is logged under.
func WithName(name string) RangerOption {
	return func(rng *Ranger) error {
		rng.name = name
		return nil
	}
}

// WithRateLimit limits each client address to perSecond requests
// with bursts of up to burst.
// A non-positive perSecond turns rate limiting off.
//
// Each Ranger tracks its own clients.
func WithRateLimit(perSecond float64, burst int) RangerOption {
	return func(rng *Ranger) error {
		if perSecond <= 0 {
			rng.visitors = nil
			return nil
		}

		rng.visitors = middleware.NewVisitors(rate.Limit(perSecond), burst)
		return nil
	}
}

// WithServerTimeouts sets the read, write and idle timeouts of the micro-app's server.
// Zero values leave the current timeout in place.
func WithServerTimeouts(read, write, idle time.Duration) RangerOption {
	return func(rng *Ranger) error {
		if read > 0 {
			rng.timeouts.read = read
		}

		if write > 0 {
			rng.timeouts.write = write
		}

		if idle > 0 {
			rng.timeouts.idle = idle
		}

		return nil
	}
}
