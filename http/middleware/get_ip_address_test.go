package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/microapp"
	"github.com/xy-planning-network/microapp/http/middleware"
)

func TestGetIPAddress(t *testing.T) {
	tcs := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		expected   string
	}{
		{"Remote-Addr", "203.0.113.9:5555", nil, "203.0.113.9"},
		{"Remote-Addr-Loopback", "127.0.0.1:5555", nil, "127.0.0.1"},
		{"Remote-Addr-No-Port", "203.0.113.9", nil, "203.0.113.9"},
		{"Unparseable", "pipe", nil, middleware.UnknownIP},
		{"Only-Private-IP", "127.0.0.1:5555", map[string]string{"X-Forwarded-For": "192.168.0.0"}, "127.0.0.1"},
		{"Only-Public-IP", "127.0.0.1:5555", map[string]string{"X-Forwarded-For": "1.1.1.1"}, "1.1.1.1"},
		{"Get-Before-Proxy", "127.0.0.1:5555", map[string]string{"X-Real-Ip": "10.0.0.1,1.1.1.1"}, "1.1.1.1"},
		{
			"Get-First-Public",
			"127.0.0.1:5555",
			map[string]string{"X-Real-Ip": "10.255.255.255,8.8.8.8,1.1.1.1,172.16.0.0"},
			"1.1.1.1",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				r.Header.Set(k, v)
			}

			// Act + Assert
			require.Equal(t, tc.expected, middleware.GetIPAddress(r))
		})
	}
}

func TestInjectIPAddress(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "198.51.100.7:1234"
	var actual string

	// Act
	middleware.InjectIPAddress()(http.HandlerFunc(func(_ http.ResponseWriter, rx *http.Request) {
		actual, _ = rx.Context().Value(microapp.IpAddrKey).(string)
	})).ServeHTTP(httptest.NewRecorder(), r)

	// Assert
	require.Equal(t, "198.51.100.7", actual)
}
