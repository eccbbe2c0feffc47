package resp

import (
	"net/http"
)

// A Response is the part of an HTTP response a Fn may shape.
type Response struct {
	code int
	data map[string]any
}

// A Fn mutates a Response before it is written.
type Fn func(*Response)

// Code sets the status code written.
//
// Html defaults to 200, Err defaults to 500.
func Code(c int) Fn {
	return func(r *Response) {
		r.code = c
	}
}

// Data adds key-value pairs to what is logged alongside a response.
func Data(d map[string]any) Fn {
	return func(r *Response) {
		if r.data == nil {
			r.data = make(map[string]any)
		}
		for k, v := range d {
			r.data[k] = v
		}
	}
}

func newResponse(def int, opts []Fn) *Response {
	rr := &Response{code: def}
	for _, opt := range opts {
		opt(rr)
	}

	if http.StatusText(rr.code) == "" {
		rr.code = def
	}

	return rr
}
