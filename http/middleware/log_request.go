package middleware

import (
	"net/http"
	"strings"

	"github.com/felixge/httpsnoop"
	"github.com/xy-planning-network/microapp"
	"github.com/xy-planning-network/microapp/logger"
)

// LogRequest logs the request's originating IP address, method and requested URL
// along with the response's status, size and latency
// using the enclosed implementation of logger.Logger.
//
// LogRequest scrubs the values for the following keys:
//   - password
//
// if logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(h, w, r)

			uri := r.URL.Path
			q := r.URL.Query()
			microapp.Mask(q, "password")
			if query := q.Encode(); query != "" {
				uri += "?" + query
			}

			strs := []string{r.Method, uri}
			if val, ok := r.Context().Value(microapp.IpAddrKey).(string); ok {
				strs = append([]string{val}, strs...)
			}

			data := map[string]any{
				"bytes":      m.Written,
				"durationMs": m.Duration.Milliseconds(),
				"status":     m.Code,
			}
			if id, ok := r.Context().Value(microapp.RequestIDKey).(string); ok {
				data["requestID"] = id
			}

			app, _ := r.Context().Value(microapp.AppNameKey).(string)
			ls.Info(strings.Join(strs, " "), &logger.LogContext{App: app, Data: data})
		})
	}
}
