/*
Package logger provides logging functionality to a micro-app host by defining the required behavior in [Logger]
and providing an implementation of it with [StdLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
[StdLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*StdLogger.Warn], [*StdLogger.Error], and [*StdLogger.Fatal] produce messages.

Log messages emitted by [StdLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2026/04/28 15:55:21 [INFO] ranger/ranger.go:143 'listening on :8080' log_context: {"app":"greeter"}

The log context is a JSON-encoded [LogContext].
It allows for including additional data inessential to the message proper,
such as the micro-app a message concerns or the request being handled.

# SentryLogger

When SENTRY_DSN is set, [New] wraps the [StdLogger] in a [SentryLogger],
which additionally ships errors found in a [LogContext] to Sentry.

# SkipLogger

[SkipLogger] sets the number of frames to skip back in order to reach the desired caller.
*/
package logger
