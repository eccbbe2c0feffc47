package greeter_test

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/microapp/auth"
	"github.com/xy-planning-network/microapp/config"
	"github.com/xy-planning-network/microapp/example/greeter"
	"github.com/xy-planning-network/microapp/logger"
	"github.com/xy-planning-network/microapp/page"
	"github.com/xy-planning-network/microapp/ranger"
)

func replacementMap(reps []page.Replacement) map[string]string {
	m := make(map[string]string, len(reps))
	for _, rep := range reps {
		m[rep.Key] = rep.Value
	}
	return m
}

func TestRegistered(t *testing.T) {
	require.Contains(t, ranger.Registered(), greeter.Name)
}

func TestTemplateReplacements(t *testing.T) {
	password := "hunter2"
	note, err := auth.Encrypt("the vault code is 1234", password)
	require.Nil(t, err)

	tcs := []struct {
		name     string
		target   string
		cfg      config.AppConfig
		dec      auth.Decrypter
		expected map[string]string
	}{
		{
			"Defaults",
			"/",
			nil,
			auth.NoDecrypter,
			map[string]string{
				greeter.TitlePlaceholder:    "Greeter",
				greeter.GreetingPlaceholder: "Hello",
				greeter.NamePlaceholder:     "world",
				greeter.NotePlaceholder:     "",
			},
		},
		{
			"Named-And-Escaped",
			"/?name=%3Cscript%3E&windowopen=y",
			config.AppConfig{greeter.GreetingKey: "Howdy", greeter.TitleKey: "Saloon"},
			auth.NoDecrypter,
			map[string]string{
				greeter.TitlePlaceholder:    "Saloon",
				greeter.GreetingPlaceholder: "Howdy",
				greeter.NamePlaceholder:     "&lt;script&gt;",
				greeter.NotePlaceholder:     "",
			},
		},
		{
			"Note-Unauthenticated",
			"/",
			config.AppConfig{greeter.EncryptedNoteKey: note},
			auth.NoDecrypter,
			map[string]string{greeter.NotePlaceholder: ""},
		},
		{
			"Note-Wrong-Password",
			"/",
			config.AppConfig{greeter.EncryptedNoteKey: note},
			auth.NewDecrypter("hunter3"),
			map[string]string{greeter.NotePlaceholder: ""},
		},
		{
			"Note-Authenticated",
			"/",
			config.AppConfig{greeter.EncryptedNoteKey: note},
			auth.NewDecrypter(password),
			map[string]string{greeter.NotePlaceholder: "the vault code is 1234"},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			g := greeter.New()
			if tc.cfg != nil {
				g.Configure(config.Merge(g.Defaults(), tc.cfg))
			}

			// Act
			actual := replacementMap(g.TemplateReplacements(httptest.NewRequest(http.MethodGet, tc.target, nil), tc.dec))

			// Assert
			for k, v := range tc.expected {
				require.Equal(t, v, actual[k], k)
			}
		})
	}
}

func TestHandleSupportingPages(t *testing.T) {
	tcs := []struct {
		name     string
		target   string
		expected bool
	}{
		{"Script", greeter.ScriptPath, true},
		{"Script-With-Query", greeter.ScriptPath + "?v=2", true},
		{"Root", "/", false},
		{"Main-Page", "/?windowopen=y", false},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()

			// Act
			handled := greeter.New().HandleSupportingPages(w, httptest.NewRequest(http.MethodGet, tc.target, nil), auth.NoDecrypter)

			// Assert
			require.Equal(t, tc.expected, handled)
			if tc.expected {
				require.Equal(t, "text/javascript; charset=utf-8", w.Header().Get("Content-Type"))
				require.Contains(t, w.Body.String(), "DOMContentLoaded")
			} else {
				require.Zero(t, w.Body.Len())
			}
		})
	}
}

func TestServesExampleDirectory(t *testing.T) {
	// Arrange
	l := logger.NewStdLogger(logger.WithLogger(log.New(io.Discard, "", 0)))
	rng, err := ranger.New("../apps/greeter", greeter.New(), ranger.WithLogger(l))
	require.Nil(t, err)

	tcs := []struct {
		target   string
		expected string
	}{
		{"/?name=Ada", "'/?name=Ada&windowopen=y'"},
		{"/?name=Ada&windowopen=y", "<h1>Hello, Ada!</h1>"},
		{greeter.ScriptPath, "DOMContentLoaded"},
	}

	for _, tc := range tcs {
		t.Run(tc.target, func(t *testing.T) {
			w := httptest.NewRecorder()

			// Act
			rng.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.target, nil))

			// Assert
			require.Equal(t, http.StatusOK, w.Code)
			require.Contains(t, w.Body.String(), tc.expected)
		})
	}
}
