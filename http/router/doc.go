/*
Package router wraps [mux.Router] for the single-route shape of a micro-app.

A micro-app answers every request with the same dispatcher,
so a [*Router] registers one catch-all route rather than a table of routes.
Middlewares given to OnEveryRequest run in the order they appear
before a request reaches that handler.
*/
package router
