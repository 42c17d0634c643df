/*

Package logger provides logging functionality to an urbanfix app by defining the required behavior in [Logger]
and providing an implementation of it with [CityLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, [CityLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*CityLogger.Warn], [*CityLogger.Error], and [*CityLogger.Fatal] produce messages.

# CityLogger

Log messages emitted by [CityLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2026/02/12 15:55:21 [DEBUG] handler/report.go:43 'report created' log_context: "{"user":{"id": 1, "email": "citizen@example.com"}}"

The message is the actual string passed into the [CityLogger] method.
The log context is a JSON-encoded [*LogContext] allowing for additional data
inessential to the message proper, but providing a fuller picture
of the application state at the time of logging.

# SkipLogger

Sometimes, especially with internal packages, the file and line number in a log needs to be configurable.
[SkipLogger] provides additional configuration functionality by setting the number of frames to skip
back in order to reach the desired caller.
*/
package logger
