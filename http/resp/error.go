package resp

import "errors"

var (
	ErrNoWriter = errors.New("no http.ResponseWriter")
)
