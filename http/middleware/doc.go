/*
The middleware package defines the adapters every micro-app listener runs a request through
before it reaches the dispatcher.

The available middlewares are:
  - InjectAppName
  - InjectIPAddress
  - LogRequest
  - RateLimit
  - Recover
  - ReportPanic
  - RequestID

Micro-apps never see this chain; a ranger hands it to its router in this order:

	r.OnEveryRequest(
		middleware.Recover(log),
		middleware.ReportPanic(env),
		middleware.InjectAppName(name),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(log),
		middleware.RateLimit(vs),
	)
*/
package middleware
