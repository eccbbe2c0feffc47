// Package app declares the contract between the framework and a micro-app.
//
// Every micro-app implements [App]. It may also implement [Configurable] to read
// its configuration, [SupportingPageHandler] to serve the additional resources
// its main page loads, and [Starter] to run code once its listener is up.
package app

import (
	"context"
	"net"
	"net/http"

	"github.com/xy-planning-network/microapp/auth"
	"github.com/xy-planning-network/microapp/config"
	"github.com/xy-planning-network/microapp/page"
)

// An App supplies its default configuration and the placeholder values of its main page.
type App interface {
	// Defaults returns the configuration config.json is merged over.
	Defaults() config.AppConfig

	// TemplateReplacements returns, in the order they apply,
	// the substitutions made on the page served for r.
	//
	// dec decrypts configuration values for the authenticated user;
	// it is auth.NoDecrypter when the app does not authenticate.
	TemplateReplacements(r *http.Request, dec auth.Decrypter) []page.Replacement
}

// A SupportingPageHandler serves requests other than the launch and main pages,
// such as scripts or data the main page loads.
type SupportingPageHandler interface {
	// HandleSupportingPages reports whether it wrote a response for r.
	HandleSupportingPages(w http.ResponseWriter, r *http.Request, dec auth.Decrypter) bool
}

// A Configurable App receives its effective configuration,
// its defaults merged with its config.json, before it serves any request.
type Configurable interface {
	Configure(cfg config.AppConfig)
}

// A Starter is called once the micro-app is listening.
type Starter interface {
	StartServer(srv Server)
}

// A Named App reports the name it is logged under.
// Apps that are not Named are known by their directory name.
type Named interface {
	Name() string
}

// Server is the live listener handed to a Starter.
type Server interface {
	// Addr is the address the listener is bound to.
	Addr() net.Addr

	// Config is the effective configuration of the micro-app.
	Config() config.AppConfig

	// Shutdown gracefully stops the listener.
	Shutdown(ctx context.Context) error
}
