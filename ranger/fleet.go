package ranger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/xy-planning-network/microapp"
	"github.com/xy-planning-network/microapp/app"
	"github.com/xy-planning-network/microapp/logger"
	"github.com/xy-planning-network/microapp/page"
)

// A Fleet runs many micro-apps side by side.
//
// Each micro-app starts in its own goroutine.
// A micro-app failing to start, even by panicking, is logged
// and leaves the rest of the Fleet serving.
type Fleet struct {
	l    logger.Logger
	opts []RangerOption

	mu       sync.Mutex
	closed   bool
	rangers  []*Ranger
	starting sync.WaitGroup
	stopped  map[*Ranger]bool
	wg       sync.WaitGroup
}

// NewFleet constructs a *Fleet whose micro-apps log through l
// and are each configured with opts.
//
// If l is nil, a logger.Logger is configured from the environment.
func NewFleet(l logger.Logger, opts ...RangerOption) *Fleet {
	if l == nil {
		l = defaultLogger(defaultEnv())
	}

	return &Fleet{
		l:       l,
		opts:    append([]RangerOption{WithLogger(l)}, opts...),
		stopped: make(map[*Ranger]bool),
	}
}

// Launch starts the micro-app a living in dir in a new goroutine.
func (f *Fleet) Launch(ctx context.Context, dir string, a app.App) {
	f.launch(ctx, dir, func() (app.App, error) { return a, nil })
}

// Discover launches a micro-app for every directory in appsDir.
//
// A directory whose name was registered with Register runs that micro-app.
// Otherwise, a directory holding a page.html.template runs as a StaticApp.
// Other directories and files are skipped.
//
// Discover returns the number of micro-apps launched.
func (f *Fleet) Discover(ctx context.Context, appsDir string) (int, error) {
	entries, err := os.ReadDir(appsDir)
	if err != nil {
		return 0, fmt.Errorf("could not discover micro-apps in %s: %w", appsDir, err)
	}

	var n int
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}

		dir := filepath.Join(appsDir, e.Name())
		if fn, ok := lookup(e.Name()); ok {
			f.launch(ctx, dir, func() (app.App, error) { return fn(), nil })
			n++
			continue
		}

		if _, err := os.Stat(filepath.Join(dir, page.MainPage)); err != nil {
			f.l.Debug(fmt.Sprintf("skipping %s: no %s", dir, page.MainPage), nil)
			continue
		}

		f.Launch(ctx, dir, new(StaticApp))
		n++
	}

	return n, nil
}

// Rangers returns the micro-apps that have started serving.
func (f *Fleet) Rangers() []*Ranger {
	f.mu.Lock()
	defer f.mu.Unlock()
	started := make([]*Ranger, 0, len(f.rangers))
	for _, rng := range f.rangers {
		if rng.Done() != nil {
			started = append(started, rng)
		}
	}

	return started
}

// Settle blocks until every launched micro-app has started serving or failed to.
func (f *Fleet) Settle() { f.starting.Wait() }

// Wait blocks until every launched micro-app has failed to start or stopped serving.
func (f *Fleet) Wait() { f.wg.Wait() }

// Shutdown gracefully stops every micro-app serving.
//
// A micro-app still starting when Shutdown is called never serves:
// it is dropped before it listens or stopped as soon as it has.
func (f *Fleet) Shutdown(ctx context.Context) error {
	f.mu.Lock()
	f.closed = true
	var serving []*Ranger
	for _, rng := range f.rangers {
		if rng.Done() != nil && !f.stopped[rng] {
			f.stopped[rng] = true
			serving = append(serving, rng)
		}
	}
	f.mu.Unlock()

	var errs []error
	for _, rng := range serving {
		if err := rng.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Guide blocks until ctx is done or the process receives one of these signals,
// then shuts down every micro-app and waits for them to stop:
//
//   - os.Interrupt
//   - syscall.SIGHUP
//   - syscall.SIGINT
//   - syscall.SIGQUIT
//   - syscall.SIGTERM
func (f *Fleet) Guide(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer signal.Stop(ch)

	select {
	case s := <-ch:
		f.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
	case <-ctx.Done():
	}

	err := f.Shutdown(context.Background())
	f.Wait()

	return err
}

// launch runs the micro-app mk constructs in a new goroutine,
// holding that goroutine open for as long as the micro-app serves.
func (f *Fleet) launch(ctx context.Context, dir string, mk func() (app.App, error)) {
	f.wg.Add(1)
	f.starting.Add(1)
	caller := logger.CurrentCaller()

	go func() {
		var rng *Ranger
		defer f.wg.Done()
		defer func() {
			if p := recover(); p != nil {
				f.l.Error("recovered micro-app panic", &logger.LogContext{
					App:    filepath.Base(dir),
					Caller: caller,
					Error:  fmt.Errorf("%w: %v", microapp.ErrPanic, p),
				})
			}

			if rng == nil {
				return
			}

			if done := rng.Done(); done != nil {
				<-done
			}
		}()
		defer f.starting.Done()

		a, err := mk()
		if err != nil {
			f.l.Error("could not construct micro-app", &logger.LogContext{App: filepath.Base(dir), Caller: caller, Error: err})
			return
		}

		next, err := New(dir, a, f.opts...)
		if err != nil {
			f.l.Error("could not start micro-app", &logger.LogContext{App: filepath.Base(dir), Caller: caller, Error: err})
			return
		}

		f.mu.Lock()
		if f.closed {
			f.mu.Unlock()
			f.l.Info("fleet shut down before micro-app started", &logger.LogContext{App: next.Name(), Caller: caller})
			return
		}
		rng = next
		f.rangers = append(f.rangers, rng)
		f.mu.Unlock()

		if err := rng.Start(ctx); err != nil {
			f.l.Error("could not start micro-app", &logger.LogContext{App: rng.Name(), Caller: caller, Error: err})
			return
		}

		f.mu.Lock()
		late := f.closed && !f.stopped[rng]
		if late {
			f.stopped[rng] = true
		}
		f.mu.Unlock()

		if late {
			if err := rng.Shutdown(context.Background()); err != nil {
				f.l.Error("could not stop micro-app started during shutdown", &logger.LogContext{App: rng.Name(), Caller: caller, Error: err})
			}
		}
	}()
}
