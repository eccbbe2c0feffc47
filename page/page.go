// Package page renders the two pages every micro-app serves:
// the launch page, which opens the micro-app in a popup window,
// and the micro-app's own main page.
//
// Templates are plain text with literal placeholders.
// They are re-read from their filesystem and re-substituted on every call.
package page

import (
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/xy-planning-network/microapp/config"
)

const (
	// LaunchPage is the framework's launch page template.
	LaunchPage = "page_open.html"

	// MainPage is the template every micro-app provides in its own directory.
	MainPage = "page.html.template"
)

// Placeholders substituted by the framework.
const (
	DoClose           = "<DO_CLOSE>"
	LaunchPageMessage = "<LAUNCH_PAGE_MESSAGE>"
	URLString         = "<URL_STRING>"
	URLType           = "<URL_TYPE>"
)

const (
	closeAction = "close();"

	keepOpenMsg = "You requested that the page not be closed after micro-app launch"
	closeMsg    = "If you allow windows to be closed from javascript in your browser " +
		"this page will automatically close when the micro-app windows is opened"

	// WindowOpenParam marks the follow-up request the launch page makes for the main page.
	WindowOpenParam = "windowopen"
	windowOpenQuery = WindowOpenParam + "=y"
)

// queryEscaper percent-encodes the characters that could break out of
// the script string or element the launch page embeds the URL in.
var queryEscaper = strings.NewReplacer(
	`"`, "%22",
	"'", "%27",
	"<", "%3C",
	">", "%3E",
	`\`, "%5C",
	" ", "%20",
)

// A Replacement is a literal placeholder and the value substituted for it.
type Replacement struct {
	Key   string
	Value string
}

// Render reads the template name from fsys and substitutes placeholders in it.
//
// The launch page receives the close-window directive, its message, and the URL
// the popup is opened on. Every page receives the URL scheme.
// reps are applied last, in order.
//
// A missing template returns an error wrapping [fs.ErrNotExist].
func Render(fsys fs.FS, name string, cfg config.AppConfig, r *http.Request, reps []Replacement) (string, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("could not read template %s: %w", name, err)
	}

	text := string(b)
	if name == LaunchPage {
		text = Substitute(text, launchReplacements(cfg, r))
	}

	scheme := "http"
	if cfg.TLS() {
		scheme = "https"
	}
	text = strings.ReplaceAll(text, URLType, scheme)

	return Substitute(text, reps), nil
}

// Substitute replaces every occurrence of each Replacement.Key in text with its Value,
// one Replacement at a time, so later Replacements see values inserted by earlier ones.
//
// Replacements with an empty Key are skipped.
func Substitute(text string, reps []Replacement) string {
	for _, rep := range reps {
		if rep.Key == "" {
			continue
		}
		text = strings.ReplaceAll(text, rep.Key, rep.Value)
	}

	return text
}

// WantsMainPage asserts whether r is the follow-up request made by the launch page.
func WantsMainPage(r *http.Request) bool {
	_, ok := r.URL.Query()[WindowOpenParam]
	return ok
}

// PopupURL is the URL the launch page opens: the original query string,
// if any, with the window open marker appended.
func PopupURL(r *http.Request) string {
	if r.URL.RawQuery != "" || r.URL.ForceQuery {
		return "/?" + queryEscaper.Replace(r.URL.RawQuery) + "&" + windowOpenQuery
	}

	return "/?" + windowOpenQuery
}

func launchReplacements(cfg config.AppConfig, r *http.Request) []Replacement {
	reps := []Replacement{
		{Key: DoClose, Value: closeAction},
		{Key: LaunchPageMessage, Value: closeMsg},
	}

	if cfg.KeepLaunchWindow() {
		reps = []Replacement{
			{Key: DoClose, Value: ""},
			{Key: LaunchPageMessage, Value: keepOpenMsg},
		}
	}

	return append(reps, Replacement{Key: URLString, Value: PopupURL(r)})
}
