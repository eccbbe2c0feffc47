package middleware_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/microapp"
	"github.com/xy-planning-network/microapp/http/middleware"
)

func TestLogRequest(t *testing.T) {
	// Arrange + Act
	actual := middleware.LogRequest(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	tcs := []struct {
		name     string
		method   string
		ip       string
		target   string
		expected []string
		hidden   []string
	}{
		{"Zero-Value", http.MethodGet, "", "/", []string{"GET /'", `"status":200`}, nil},
		{"With-IP", http.MethodPost, "192.168.0.0", "/", []string{"192.168.0.0 POST /'"}, nil},
		{
			"With-Query-Params",
			http.MethodGet,
			"192.168.0.0",
			"/?foo=1&windowopen=y",
			[]string{"GET /?foo=1&windowopen=y'"},
			nil,
		},
		{
			"With-Query-Params-Hid",
			http.MethodGet,
			"192.168.0.0",
			"/?param=true&password=hunter2",
			[]string{"/?param=true&password=" + microapp.LogMaskVal},
			[]string{"hunter2"},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, tc.target, nil)
			r = r.Clone(context.WithValue(r.Context(), microapp.RequestIDKey, "test-id"))
			if tc.ip != "" {
				r = r.Clone(context.WithValue(r.Context(), microapp.IpAddrKey, tc.ip))
			}

			// Act
			middleware.LogRequest(newTestLogger(b))(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
				fmt.Fprint(wx, "test")
			})).ServeHTTP(w, r)

			// Assert
			require.Equal(t, "test", w.Body.String())
			out := b.String()
			require.Contains(t, out, `"requestID":"test-id"`)
			require.Contains(t, out, `"bytes":4`)
			for _, s := range tc.expected {
				require.Contains(t, out, s)
			}
			for _, s := range tc.hidden {
				require.NotContains(t, out, s)
			}
		})
	}
}

func TestLogRequestStatus(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.Clone(context.WithValue(r.Context(), microapp.AppNameKey, "greeter"))

	// Act
	middleware.LogRequest(newTestLogger(b))(http.HandlerFunc(func(wx http.ResponseWriter, _ *http.Request) {
		wx.WriteHeader(http.StatusUnauthorized)
	})).ServeHTTP(httptest.NewRecorder(), r)

	// Assert
	require.Contains(t, b.String(), `"status":401`)
	require.Contains(t, b.String(), `"app":"greeter"`)
}
