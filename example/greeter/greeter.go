// Package greeter is an example micro-app.
//
// Importing it registers the micro-app with ranger under the name "greeter",
// so a Fleet discovering a directory of that name runs it.
package greeter

import (
	"html"
	"io"
	"net/http"
	"sync"

	"github.com/xy-planning-network/microapp/app"
	"github.com/xy-planning-network/microapp/auth"
	"github.com/xy-planning-network/microapp/config"
	"github.com/xy-planning-network/microapp/page"
	"github.com/xy-planning-network/microapp/ranger"
)

// Name is the directory name Greeter is registered under.
const Name = "greeter"

// Configuration keys Greeter reads.
const (
	EncryptedNoteKey = "encryptedNote"
	GreetingKey      = "greeting"
	TitleKey         = "title"
)

// Placeholders in Greeter's page.html.template.
const (
	GreetingPlaceholder = "<GREETING>"
	NamePlaceholder     = "<NAME>"
	NotePlaceholder     = "<NOTE>"
	TitlePlaceholder    = "<TITLE>"
)

// ScriptPath is the supporting page Greeter serves itself.
const ScriptPath = "/greeter.js"

const script = `document.addEventListener('DOMContentLoaded', function () {
  var note = document.getElementById('note');
  if (note && note.textContent === '') { note.hidden = true; }
});
`

func init() {
	ranger.Register(Name, func() app.App { return New() })
}

var (
	_ app.App                   = (*Greeter)(nil)
	_ app.Configurable          = (*Greeter)(nil)
	_ app.SupportingPageHandler = (*Greeter)(nil)
)

// A Greeter greets whoever is named in the query string.
// An authenticated user is also shown the note encrypted in config.json.
type Greeter struct {
	mu  sync.RWMutex
	cfg config.AppConfig
}

// New constructs a *Greeter configured with its defaults.
func New() *Greeter {
	g := new(Greeter)
	g.cfg = g.Defaults()
	return g
}

// Defaults serves on 8080 without TLS or authentication.
func (*Greeter) Defaults() config.AppConfig {
	return config.AppConfig{
		config.AuthenticateKey:      "false",
		config.CloseLaunchWindowKey: "true",
		config.ServerPortKey:        8080,
		config.TLSKey:               "false",
		GreetingKey:                 "Hello",
		TitleKey:                    "Greeter",
	}
}

// Configure replaces the config the Greeter renders with.
func (g *Greeter) Configure(cfg config.AppConfig) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cfg = cfg
}

// TemplateReplacements fills the page with the configured title and greeting,
// the name query parameter, and the decrypted note.
//
// The note is empty unless dec can open it.
func (g *Greeter) TemplateReplacements(r *http.Request, dec auth.Decrypter) []page.Replacement {
	g.mu.RLock()
	cfg := g.cfg
	g.mu.RUnlock()

	name := r.URL.Query().Get("name")
	if name == "" {
		name = "world"
	}

	var note string
	if ct := cfg.String(EncryptedNoteKey); ct != "" {
		if plain, err := dec(ct); err == nil {
			note = plain
		}
	}

	return []page.Replacement{
		{Key: TitlePlaceholder, Value: html.EscapeString(cfg.String(TitleKey))},
		{Key: GreetingPlaceholder, Value: html.EscapeString(cfg.String(GreetingKey))},
		{Key: NamePlaceholder, Value: html.EscapeString(name)},
		{Key: NotePlaceholder, Value: html.EscapeString(note)},
	}
}

// HandleSupportingPages serves the script the main page loads.
func (*Greeter) HandleSupportingPages(w http.ResponseWriter, r *http.Request, _ auth.Decrypter) bool {
	if r.URL.Path != ScriptPath {
		return false
	}

	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	io.WriteString(w, script)
	return true
}
