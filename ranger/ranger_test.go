package ranger_test

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"io"
	"log"
	"math/big"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/microapp"
	"github.com/xy-planning-network/microapp/app"
	"github.com/xy-planning-network/microapp/app/apptest"
	"github.com/xy-planning-network/microapp/auth"
	"github.com/xy-planning-network/microapp/config"
	"github.com/xy-planning-network/microapp/http/middleware"
	"github.com/xy-planning-network/microapp/logger"
	"github.com/xy-planning-network/microapp/page"
	"github.com/xy-planning-network/microapp/ranger"
)

const mainPage = "<URL_TYPE>://<NAME>"

type testApp struct {
	name string
}

func (testApp) Defaults() config.AppConfig { return config.AppConfig{config.ServerPortKey: 0} }

func (a testApp) TemplateReplacements(*http.Request, auth.Decrypter) []page.Replacement {
	return []page.Replacement{{Key: "<NAME>", Value: a.name}}
}

type namedApp struct{ testApp }

func (namedApp) Name() string { return "named" }

type panicApp struct{ testApp }

func (panicApp) Defaults() config.AppConfig { panic("no defaults") }

type starterApp struct {
	testApp
	*apptest.MockStarter
}

type configurableApp struct {
	testApp
	*apptest.MockConfigurable
}

func newTestLogger() logger.Logger {
	return logger.NewStdLogger(logger.WithLogger(log.New(io.Discard, "", 0)))
}

// writeApp lays out a micro-app directory under root.
// An empty cfg writes no config.json.
func writeApp(t *testing.T, root, name, cfg string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.Nil(t, os.MkdirAll(dir, 0o755))
	require.Nil(t, os.WriteFile(filepath.Join(dir, page.MainPage), []byte(mainPage), 0o644))
	if cfg != "" {
		require.Nil(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(cfg), 0o644))
	}

	return dir
}

// writeKeyPair writes a self-signed certificate for 127.0.0.1 into dir.
func writeKeyPair(t *testing.T, dir string) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.Nil(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "localhost"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		IPAddresses:  []net.IP{net.ParseIP("127.0.0.1")},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.Nil(t, err)

	keyDER, err := x509.MarshalECPrivateKey(key)
	require.Nil(t, err)

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})
	require.Nil(t, os.WriteFile(filepath.Join(dir, ranger.CertFile), certPEM, 0o644))
	require.Nil(t, os.WriteFile(filepath.Join(dir, ranger.KeyFile), keyPEM, 0o600))
}

func localURL(scheme string, addr net.Addr, target string) string {
	return fmt.Sprintf("%s://127.0.0.1:%d%s", scheme, addr.(*net.TCPAddr).Port, target)
}

func get(t *testing.T, c *http.Client, url string) (int, string) {
	t.Helper()
	res, err := c.Get(url)
	require.Nil(t, err)
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	require.Nil(t, err)

	return res.StatusCode, string(b)
}

func start(t *testing.T, dir string, a app.App, opts ...ranger.RangerOption) *ranger.Ranger {
	t.Helper()
	rng, err := ranger.StartMicroApp(context.Background(), dir, a, append([]ranger.RangerOption{ranger.WithLogger(newTestLogger())}, opts...)...)
	require.Nil(t, err)
	t.Cleanup(func() { rng.Shutdown(context.Background()) })

	return rng
}

func TestNew(t *testing.T) {
	root := t.TempDir()
	good := writeApp(t, root, "good", "{}")

	tcs := []struct {
		name     string
		dir      string
		app      app.App
		opts     []ranger.RangerOption
		expected error
	}{
		{"Missing-Config", writeApp(t, root, "missing", ""), testApp{}, nil, microapp.ErrBadConfig},
		{"Malformed-Config", writeApp(t, root, "malformed", `{"serverPort": `), testApp{}, nil, microapp.ErrBadConfig},
		{"No-App", good, nil, nil, microapp.ErrMissingData},
		{"Bad-Env", good, testApp{}, []ranger.RangerOption{ranger.WithEnv("nowhere")}, microapp.ErrBadConfig},
		{"Nil-Logger", good, testApp{}, []ranger.RangerOption{ranger.WithLogger(nil)}, microapp.ErrMissingData},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			rng, err := ranger.New(tc.dir, tc.app, tc.opts...)

			// Assert
			require.Nil(t, rng)
			require.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestNewConfig(t *testing.T) {
	// Arrange
	dir := writeApp(t, t.TempDir(), "greeter", `{"tls": "false", "closeLaunchWindow": "false"}`)

	// Act
	rng, err := ranger.New(dir, testApp{}, ranger.WithLogger(newTestLogger()))

	// Assert
	require.Nil(t, err)
	require.Equal(t, "greeter", rng.Name())
	require.Equal(t, config.AppConfig{
		config.ServerPortKey:        0,
		config.TLSKey:               "false",
		config.CloseLaunchWindowKey: "false",
	}, rng.Config())
	require.Nil(t, rng.Addr())
	require.Nil(t, rng.Done())
	require.ErrorIs(t, rng.Shutdown(context.Background()), ranger.ErrNotStarted)
}

func TestNewConfigures(t *testing.T) {
	// Arrange
	dir := writeApp(t, t.TempDir(), "greeter", `{"greeting": "Howdy"}`)
	ctrl := gomock.NewController(t)
	a := configurableApp{testApp{}, apptest.NewMockConfigurable(ctrl)}
	a.EXPECT().Configure(config.AppConfig{config.ServerPortKey: 0, "greeting": "Howdy"}).Times(1)

	// Act
	_, err := ranger.New(dir, a, ranger.WithLogger(newTestLogger()))

	// Assert
	require.Nil(t, err)
}

func TestNewName(t *testing.T) {
	// Arrange
	dir := writeApp(t, t.TempDir(), "greeter", "{}")

	// Act
	byDir, err := ranger.New(dir, testApp{}, ranger.WithLogger(newTestLogger()))
	require.Nil(t, err)
	named, err := ranger.New(dir, namedApp{}, ranger.WithLogger(newTestLogger()))
	require.Nil(t, err)
	opted, err := ranger.New(dir, namedApp{}, ranger.WithLogger(newTestLogger()), ranger.WithName("opted"))
	require.Nil(t, err)

	// Assert
	require.Equal(t, "greeter", byDir.Name())
	require.Equal(t, "named", named.Name())
	require.Equal(t, "opted", opted.Name())
}

func TestHandler(t *testing.T) {
	// Arrange
	dir := writeApp(t, t.TempDir(), "greeter", "{}")
	rng, err := ranger.New(dir, testApp{name: "greeter"}, ranger.WithLogger(newTestLogger()))
	require.Nil(t, err)

	for _, target := range []string{"/", "/deep/path", "/a/../b", "/?windowopen=y"} {
		t.Run(target, func(t *testing.T) {
			w := httptest.NewRecorder()

			// Act
			rng.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, target, nil))

			// Assert
			require.Equal(t, http.StatusOK, w.Code)
			require.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestHandlerRateLimit(t *testing.T) {
	// Arrange
	dir := writeApp(t, t.TempDir(), "greeter", "{}")
	rng, err := ranger.New(dir, testApp{}, ranger.WithLogger(newTestLogger()), ranger.WithRateLimit(1, 1))
	require.Nil(t, err)

	// Act
	first, second := httptest.NewRecorder(), httptest.NewRecorder()
	rng.Handler().ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	rng.Handler().ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestStart(t *testing.T) {
	// Arrange
	dir := writeApp(t, t.TempDir(), "greeter", "{}")

	// Act
	rng := start(t, dir, testApp{name: "greeter"})

	// Assert
	code, body := get(t, http.DefaultClient, localURL("http", rng.Addr(), "/?foo=1"))
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body, "'/?foo=1&windowopen=y'")

	code, body = get(t, http.DefaultClient, localURL("http", rng.Addr(), "/?foo=1&windowopen=y"))
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "http://greeter", body)

	require.ErrorIs(t, rng.Start(context.Background()), ranger.ErrStarted)
}

func TestStartErrors(t *testing.T) {
	root := t.TempDir()

	tcs := []struct {
		name string
		cfg  string
	}{
		{"Bad-Port", `{"serverPort": "eighty"}`},
		{"Port-Out-Of-Range", `{"serverPort": 70000}`},
		{"TLS-Without-Keys", `{"tls": "true"}`},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			dir := writeApp(t, root, tc.name, tc.cfg)

			// Act
			rng, err := ranger.StartMicroApp(context.Background(), dir, testApp{}, ranger.WithLogger(newTestLogger()))

			// Assert
			require.Nil(t, rng)
			require.ErrorIs(t, err, microapp.ErrBadConfig)
		})
	}
}

func TestStartTLS(t *testing.T) {
	// Arrange
	dir := writeApp(t, t.TempDir(), "secure", `{"tls": "TRUE"}`)
	writeKeyPair(t, dir)
	c := &http.Client{Transport: &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}}}

	// Act
	rng := start(t, dir, testApp{name: "secure"})

	// Assert
	code, body := get(t, c, localURL("https", rng.Addr(), "/"))
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body, "'https://'")

	code, body = get(t, c, localURL("https", rng.Addr(), "/?windowopen=y"))
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "https://secure", body)
}

func TestStartServerHook(t *testing.T) {
	// Arrange
	dir := writeApp(t, t.TempDir(), "hooked", "{}")
	ctrl := gomock.NewController(t)
	a := starterApp{testApp{name: "hooked"}, apptest.NewMockStarter(ctrl)}

	var live bool
	a.EXPECT().StartServer(gomock.Any()).Do(func(srv app.Server) {
		code, _ := get(t, http.DefaultClient, localURL("http", srv.Addr(), "/"))
		live = code == http.StatusOK
		require.Equal(t, 0, srv.Config()[config.ServerPortKey])
	}).Times(1)

	// Act
	start(t, dir, a)

	// Assert
	require.True(t, live)
}

func TestShutdown(t *testing.T) {
	// Arrange
	dir := writeApp(t, t.TempDir(), "greeter", "{}")
	rng, err := ranger.StartMicroApp(context.Background(), dir, testApp{}, ranger.WithLogger(newTestLogger()))
	require.Nil(t, err)

	// Act
	err = rng.Shutdown(context.Background())

	// Assert
	require.Nil(t, err)
	select {
	case <-rng.Done():
	case <-time.After(time.Second):
		t.Fatal("micro-app still serving")
	}

	_, err = http.Get(localURL("http", rng.Addr(), "/"))
	require.NotNil(t, err)
}
