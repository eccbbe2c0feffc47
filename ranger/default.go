package ranger

import (
	"context"
	"io/fs"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/xy-planning-network/microapp"
	"github.com/xy-planning-network/microapp/http/middleware"
	"github.com/xy-planning-network/microapp/logger"
	"github.com/xy-planning-network/microapp/page"
	"golang.org/x/time/rate"
)

const (
	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar = "LOG_LEVEL"
	defaultLogLvl  = logger.LogLevelInfo

	// Launch page defaults
	launchPageDirEnvVar = "LAUNCH_PAGE_DIR"

	// Rate limiting defaults
	rateLimitEnvVar = "RATE_LIMIT"

	// Web server defaults
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second
	DefaultShutdownTimeout    = 5 * time.Second

	// TLS material every micro-app with tls enabled provides in its directory
	CertFile = "cert.pem"
	KeyFile  = "key.pem"
)

type timeouts struct {
	idle  time.Duration
	read  time.Duration
	write time.Duration
}

func defaultTimeouts() timeouts {
	return timeouts{
		idle:  microapp.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		read:  microapp.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		write: microapp.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
}

// defaultEnv reads the ENVIRONMENT env var, defaulting to Development.
func defaultEnv() microapp.Environment {
	return microapp.EnvVarOrEnv(environmentEnvVar, microapp.Development)
}

// defaultLogger constructs a logger.Logger configured for the environment
// and the LOG_LEVEL env var.
func defaultLogger(env microapp.Environment) logger.Logger {
	return logger.New(
		logger.WithEnv(env.String()),
		logger.WithLevel(envVarOrLogLevel(logLevelEnvVar, defaultLogLvl)),
	)
}

// defaultLaunchFS overlays the directory named by LAUNCH_PAGE_DIR, if any,
// over the embedded launch page.
func defaultLaunchFS() fs.FS {
	return page.NewOverlayFS(os.Getenv(launchPageDirEnvVar))
}

// defaultVisitors constructs the rate limiter state the RATE_LIMIT env var asks for,
// or nil when requests are not limited.
func defaultVisitors() *middleware.Visitors {
	l := envVarOrRate(rateLimitEnvVar)
	if l == rate.Inf {
		return nil
	}

	return middleware.NewVisitors(l, 0)
}

// defaultServer constructs a default [*http.Server].
func defaultServer(ctx context.Context, h http.Handler, t timeouts) *http.Server {
	srv := &http.Server{
		Handler:      h,
		IdleTimeout:  t.idle,
		ReadTimeout:  t.read,
		WriteTimeout: t.write,
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}
