package microapp

import "net/url"

const LogMaskVal = "xxxxxx"

// Mask replaces every value stored under key in vals with a single [LogMaskVal].
//
// Mask is a noop if key is not present.
func Mask(vals url.Values, key string) {
	if _, ok := vals[key]; !ok {
		return
	}

	vals.Set(key, LogMaskVal)
}
