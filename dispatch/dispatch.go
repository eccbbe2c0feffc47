// Package dispatch decides how a micro-app answers a single HTTP request.
//
// Every request passes, in order, through the authentication gate,
// the micro-app's supporting page handler, and finally page rendering:
// the main page when the request carries the windowopen marker,
// the launch page otherwise.
package dispatch

import (
	"io/fs"
	"net/http"

	"github.com/xy-planning-network/microapp/app"
	"github.com/xy-planning-network/microapp/auth"
	"github.com/xy-planning-network/microapp/config"
	"github.com/xy-planning-network/microapp/http/resp"
	"github.com/xy-planning-network/microapp/logger"
	"github.com/xy-planning-network/microapp/page"
)

// A Dispatcher serves every request made to one micro-app.
//
// Dispatcher implements http.Handler.
type Dispatcher struct {
	app    app.App
	cfg    config.AppConfig
	dir    fs.FS
	launch fs.FS
	logger logger.Logger
	name   string
	resp   *resp.Responder
}

// An Option configures a Dispatcher under construction.
type Option func(*Dispatcher)

// WithLogger sets the logger.Logger a Dispatcher logs through.
func WithLogger(l logger.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// WithName sets the micro-app name a Dispatcher logs under.
func WithName(name string) Option {
	return func(d *Dispatcher) {
		d.name = name
	}
}

// WithResponder sets the *resp.Responder a Dispatcher writes pages and errors with.
func WithResponder(r *resp.Responder) Option {
	return func(d *Dispatcher) {
		d.resp = r
	}
}

// New constructs a *Dispatcher for a, configured by cfg.
//
// dir holds the micro-app's main page; launch holds the framework's launch page.
// A nil launch uses page.LaunchFS.
func New(a app.App, cfg config.AppConfig, dir fs.FS, launch fs.FS, opts ...Option) *Dispatcher {
	d := &Dispatcher{app: a, cfg: cfg, dir: dir, launch: launch}
	for _, opt := range opts {
		opt(d)
	}

	if d.launch == nil {
		d.launch = page.LaunchFS
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	if d.resp == nil {
		d.resp = resp.NewResponder(resp.WithLogger(d.logger))
	}

	return d
}

// ServeHTTP answers r.
//
// When the micro-app requires authentication and r does not authenticate,
// the 401 challenge is the response.
// A supporting page handler that reports handling r ends the request.
// Otherwise the micro-app's replacements are requested once
// and the selected page is rendered with them.
// A page that cannot be read is answered with a 500.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	dec, ok := d.authenticate(w, r)
	if !ok {
		return
	}

	if sp, ok := d.app.(app.SupportingPageHandler); ok && sp.HandleSupportingPages(w, r, dec) {
		return
	}

	reps := d.app.TemplateReplacements(r, dec)

	fsys, name := d.launch, page.LaunchPage
	if page.WantsMainPage(r) {
		fsys, name = d.dir, page.MainPage
	}

	body, err := page.Render(fsys, name, d.cfg, r, reps)
	if err != nil {
		d.resp.Err(w, r, err, resp.Data(map[string]any{"page": name}))
		return
	}

	if err := d.resp.Html(w, r, body); err != nil {
		d.logger.Warn(err.Error(), &logger.LogContext{App: d.name, Request: r})
	}
}

func (d *Dispatcher) authenticate(w http.ResponseWriter, r *http.Request) (auth.Decrypter, bool) {
	if !d.cfg.Authenticate() {
		return auth.NoDecrypter, true
	}

	dec, ok := auth.Authenticate(d.cfg.AuthInfo(), w, r)
	if !ok {
		d.logger.Debug("rejected unauthenticated request", &logger.LogContext{App: d.name, Request: r})
	}

	return dec, ok
}
