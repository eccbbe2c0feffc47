package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/microapp/http/middleware"
)

// Router funnels every request a micro-app receives to a single handler.
type Router struct {
	everyReqStack []middleware.Adapter
	r             *mux.Router
}

// New constructs a [*Router].
//
// Paths are not cleaned before matching, so a dispatcher sees the path the client sent.
func New() *Router {
	return &Router{r: mux.NewRouter().SkipClean(true)}
}

// CatchAll routes requests of every method and path to handler,
// applying the stack set by OnEveryRequest first.
func (r *Router) CatchAll(handler http.Handler) {
	r.r.PathPrefix("/").Handler(middleware.Chain(handler, r.everyReqStack...))
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
//
// Call it before CatchAll.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}
