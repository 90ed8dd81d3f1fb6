package logger

// Logger is the logging contract used across the application. Implementations
// format their arguments with fmt.Sprint semantics.
type Logger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
