package logger

import "log"

// A LoggerOptFn is a functional option configuring a CityLogger when constructing a new one.
type LoggerOptFn func(*CityLogger)

// WithEnv sets the environment CityLogger is operating in.
func WithEnv(env string) func(*CityLogger) {
	return func(l *CityLogger) {
		l.env = env
	}
}

// WithLevel sets the log level CityLogger uses.
func WithLevel(level LogLevel) func(*CityLogger) {
	return func(l *CityLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger CityLogger uses.
func WithLogger(log *log.Logger) func(*CityLogger) {
	return func(l *CityLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) func(*CityLogger) {
	return func(l *CityLogger) {
		l.skip = skip
	}
}
