/*
Package ranger starts and manages micro-apps.

# Ranger

A [Ranger] runs one micro-app. Construct it with [New] from the micro-app's directory
and its [app.App]; [New] merges the app's defaults with the directory's config.json.
[*Ranger.Start] binds the configured serverPort, over TLS with the directory's
key.pem and cert.pem when tls is "true", and serves every request through
a [dispatch.Dispatcher]. Stop it with [*Ranger.Shutdown].
[StartMicroApp] does both steps at once.

# Fleet

A [Fleet] runs many micro-apps, each in its own goroutine, so one micro-app failing
to start leaves the others serving. [*Fleet.Discover] launches every directory of
an apps directory: those registered with [Register] under the directory's name,
and otherwise, those with a page.html.template, as a [StaticApp].
[*Fleet.Guide] blocks until a shutdown signal and then stops every micro-app.

# Configuration

Process-wide settings are read from environment variables,
which ought to be set in a file called ".env"
found at the same directory the host is executed from.

Here are the available environment variables.
  - ENVIRONMENT: the environment the host is running in; default: DEVELOPMENT; cf. [microapp.Environment]
  - LAUNCH_PAGE_DIR: a directory whose page_open.html replaces the embedded launch page
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - RATE_LIMIT: requests per second allowed from one client address; default: unlimited
  - SENTRY_DSN: the Sentry project logged errors and panics are reported to
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
*/
package ranger
