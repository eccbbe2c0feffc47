package ranger

import "errors"

var (
	ErrNotStarted = errors.New("not started")
	ErrStarted    = errors.New("already started")
)
