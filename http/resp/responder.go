package resp

import (
	"fmt"
	"io"
	"net/http"

	"github.com/xy-planning-network/microapp"
	"github.com/xy-planning-network/microapp/logger"
)

const responderFrames = 1

// Responder maintains reusable pieces for responding to HTTP requests
// handled by a micro-app.
// These are the forms of response Responder can execute:
//
//	Html
//	Err
//
// When handling a specific HTTP request, calling code supplies additional structure
// through Fn functions.
type Responder struct {
	injector ContextInjector
	logger   logger.Logger
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
//
// By default, the request ID is logged with errors.
func NewResponder(opts ...ResponderOptFn) *Responder {
	d := &Responder{
		injector: DefaultInjector{Keys: []microapp.Key{microapp.RequestIDKey}},
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	if sl, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = sl.AddSkip(sl.Skip() + responderFrames)
	}

	return d
}

// Html writes body as an HTML page.
//
// Html returns ErrNoWriter if w is nil.
func (doer *Responder) Html(w http.ResponseWriter, r *http.Request, body string, opts ...Fn) error {
	if w == nil {
		return ErrNoWriter
	}

	rr := newResponse(http.StatusOK, opts)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(rr.code)
	if _, err := io.WriteString(w, body); err != nil {
		return fmt.Errorf("failed writing html: %w", err)
	}

	return nil
}

// Err logs err and responds with the status text of the response code.
//
// err never reaches the client.
func (doer *Responder) Err(w http.ResponseWriter, r *http.Request, err error, opts ...Fn) {
	rr := newResponse(http.StatusInternalServerError, opts)

	data := make(map[string]any)
	for k, v := range rr.data {
		data[k] = v
	}
	data["status"] = rr.code

	lc := &logger.LogContext{Data: data, Error: err}
	if r != nil {
		doer.injector.Inject(data, r.Context())
		lc.Request = r
		if name, ok := r.Context().Value(microapp.AppNameKey).(string); ok {
			lc.App = name
		}
	}

	doer.logger.Error("failed responding", lc)
	if w == nil {
		return
	}

	http.Error(w, http.StatusText(rr.code), rr.code)
}
