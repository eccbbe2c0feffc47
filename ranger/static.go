package ranger

import (
	"net/http"

	"github.com/xy-planning-network/microapp/auth"
	"github.com/xy-planning-network/microapp/config"
	"github.com/xy-planning-network/microapp/page"
)

// A StaticApp is a micro-app made of nothing but a directory:
// its config.json and page.html.template.
//
// The placeholders of its main page are the keys of the replacements object in config.json,
// substituted in key order.
type StaticApp struct {
	reps []page.Replacement
}

// Defaults is empty; everything a StaticApp needs is in its config.json.
func (*StaticApp) Defaults() config.AppConfig { return config.AppConfig{} }

// Configure reads the replacements object out of cfg.
func (sa *StaticApp) Configure(cfg config.AppConfig) {
	pairs := cfg.Replacements()
	sa.reps = make([]page.Replacement, 0, len(pairs))
	for _, p := range pairs {
		sa.reps = append(sa.reps, page.Replacement{Key: p[0], Value: p[1]})
	}
}

// TemplateReplacements returns the replacements read by Configure, whatever the request.
func (sa *StaticApp) TemplateReplacements(*http.Request, auth.Decrypter) []page.Replacement {
	return sa.reps
}
