/*
The resp package provides the responses a micro-app listener writes itself,
configured once per micro-app:
  - rendered HTML pages
  - consistent error responses, logged with whatever request-scoped values are in context
*/
package resp
