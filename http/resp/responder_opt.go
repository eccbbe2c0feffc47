package resp

import (
	"github.com/xy-planning-network/microapp"
	"github.com/xy-planning-network/microapp/logger"
)

// A ResponderOptFn mutates the provided *Responder in some way.
// A ResponderOptFn is used when constructing a new Responder.
type ResponderOptFn func(*Responder)

// WithCtxKeys sets the keys whose values are pulled out of *http.Request.Context
// and logged alongside an error response.
func WithCtxKeys(keys ...microapp.Key) ResponderOptFn {
	return func(d *Responder) {
		d.injector = DefaultInjector{Keys: keys}
	}
}

// WithLogger sets the provided implementation of Logger in order to log all statements through it.
//
// If no Logger is provided through this option, logger.New configures one.
func WithLogger(log logger.Logger) ResponderOptFn {
	return func(d *Responder) {
		d.logger = log
	}
}
