package ranger

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/microapp"
	"github.com/xy-planning-network/microapp/app"
	"github.com/xy-planning-network/microapp/config"
	"github.com/xy-planning-network/microapp/dispatch"
	"github.com/xy-planning-network/microapp/http/middleware"
	"github.com/xy-planning-network/microapp/http/resp"
	"github.com/xy-planning-network/microapp/http/router"
	"github.com/xy-planning-network/microapp/logger"
)

var _ app.Server = (*Ranger)(nil)

// A Ranger runs a single micro-app: its configuration, its listener
// and the dispatcher answering every request made to it.
//
// A Ranger implements app.Server.
type Ranger struct {
	app      app.App
	cfg      config.AppConfig
	dir      string
	env      microapp.Environment
	h        http.Handler
	l        logger.Logger
	launch   fs.FS
	name     string
	timeouts timeouts
	visitors *middleware.Visitors

	mu   sync.Mutex
	done chan struct{}
	ln   net.Listener
	srv  *http.Server
}

// New constructs a *Ranger for the micro-app a living in dir.
//
// The defaults of a are shallow-merged with the config.json in dir
// and handed to a if it is app.Configurable.
// A missing or malformed config.json returns an error wrapping microapp.ErrBadConfig.
//
// Default options are read from the environment first,
// followed by the options passed into New.
func New(dir string, a app.App, opts ...RangerOption) (*Ranger, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: no micro-app for %s", microapp.ErrMissingData, dir)
	}

	rng := &Ranger{
		app:      a,
		dir:      dir,
		env:      defaultEnv(),
		launch:   defaultLaunchFS(),
		name:     filepath.Base(dir),
		timeouts: defaultTimeouts(),
		visitors: defaultVisitors(),
	}
	if n, ok := a.(app.Named); ok && n.Name() != "" {
		rng.name = n.Name()
	}

	for _, opt := range opts {
		if err := opt(rng); err != nil {
			return nil, fmt.Errorf("%w: %w", microapp.ErrBadConfig, err)
		}
	}

	if rng.l == nil {
		rng.l = defaultLogger(rng.env)
	}

	cfg, err := config.Load(dir, a.Defaults())
	if err != nil {
		return nil, fmt.Errorf("could not configure %s: %w", rng.name, err)
	}
	rng.cfg = cfg
	if c, ok := a.(app.Configurable); ok {
		c.Configure(cfg)
	}

	d := dispatch.New(
		a,
		cfg,
		os.DirFS(dir),
		rng.launch,
		dispatch.WithLogger(rng.l),
		dispatch.WithName(rng.name),
		dispatch.WithResponder(resp.NewResponder(resp.WithLogger(rng.l))),
	)

	r := router.New()
	r.OnEveryRequest(
		middleware.Recover(rng.l),
		middleware.ReportPanic(rng.env),
		middleware.InjectAppName(rng.name),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(rng.l),
		middleware.RateLimit(rng.visitors),
	)
	r.CatchAll(d)
	rng.h = r

	return rng, nil
}

// StartMicroApp constructs a *Ranger for a and starts it.
func StartMicroApp(ctx context.Context, dir string, a app.App, opts ...RangerOption) (*Ranger, error) {
	rng, err := New(dir, a, opts...)
	if err != nil {
		return nil, err
	}

	if err := rng.Start(ctx); err != nil {
		return nil, err
	}

	return rng, nil
}

// Addr is the address the micro-app is listening on, or nil if it is not.
func (rng *Ranger) Addr() net.Addr {
	rng.mu.Lock()
	defer rng.mu.Unlock()
	if rng.ln == nil {
		return nil
	}

	return rng.ln.Addr()
}

// Config is the effective configuration of the micro-app.
func (rng *Ranger) Config() config.AppConfig { return rng.cfg }

// Done is closed once the micro-app stops serving.
// Done is nil until Start succeeds.
func (rng *Ranger) Done() <-chan struct{} {
	rng.mu.Lock()
	defer rng.mu.Unlock()
	return rng.done
}

// Handler is the http.Handler every request to the micro-app is served by.
func (rng *Ranger) Handler() http.Handler { return rng.h }

// Name is the name the micro-app is logged under.
func (rng *Ranger) Name() string { return rng.name }

// Start binds the configured serverPort, over TLS when the tls key is true,
// and begins serving in a new goroutine.
// ctx is the base context of every request.
//
// Once listening, a micro-app implementing app.Starter has StartServer called with rng.
func (rng *Ranger) Start(ctx context.Context) error {
	rng.mu.Lock()
	if rng.srv != nil {
		rng.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrStarted, rng.name)
	}

	ln, err := rng.listen()
	if err != nil {
		rng.mu.Unlock()
		return err
	}

	srv := defaultServer(ctx, rng.h, rng.timeouts)
	done := make(chan struct{})
	rng.ln, rng.srv, rng.done = ln, srv, done
	rng.mu.Unlock()

	scheme := "http"
	if rng.cfg.TLS() {
		scheme = "https"
	}
	rng.l.Info(fmt.Sprintf("serving %s over %s at %s", rng.name, scheme, ln.Addr()), &logger.LogContext{App: rng.name})

	go func() {
		defer close(done)
		defer ln.Close()
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			rng.l.Error("stopped serving", &logger.LogContext{App: rng.name, Error: err})
		}
	}()

	if s, ok := rng.app.(app.Starter); ok {
		s.StartServer(rng)
	}

	return nil
}

// Shutdown gracefully stops the micro-app's server,
// waiting at most DefaultShutdownTimeout for requests in flight.
func (rng *Ranger) Shutdown(ctx context.Context) error {
	rng.mu.Lock()
	srv := rng.srv
	rng.mu.Unlock()
	if srv == nil {
		return fmt.Errorf("%w: %s", ErrNotStarted, rng.name)
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultShutdownTimeout)
	defer cancel()

	rng.l.Info("shutting down micro-app", &logger.LogContext{App: rng.name})
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown %s: %w", rng.name, err)
	}

	rng.l.Info("micro-app shutdown successfully", &logger.LogContext{App: rng.name})
	return nil
}

// listen binds the configured port, wrapping the listener in TLS
// with the key pair in the micro-app's directory when required.
func (rng *Ranger) listen() (net.Listener, error) {
	port, err := rng.cfg.Port()
	if err != nil {
		return nil, fmt.Errorf("could not listen for %s: %w", rng.name, err)
	}

	var tlsCfg *tls.Config
	if rng.cfg.TLS() {
		cert, err := tls.LoadX509KeyPair(filepath.Join(rng.dir, CertFile), filepath.Join(rng.dir, KeyFile))
		if err != nil {
			return nil, fmt.Errorf("%w: could not load key pair for %s: %s", microapp.ErrBadConfig, rng.name, err)
		}

		tlsCfg = &tls.Config{Certificates: []tls.Certificate{cert}, MinVersion: tls.VersionTLS12}
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("could not listen for %s: %w", rng.name, err)
	}

	if tlsCfg != nil {
		ln = tls.NewListener(ln, tlsCfg)
	}

	return ln, nil
}
