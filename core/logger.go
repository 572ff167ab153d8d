package core

// Logger is the application-wide logging contract. Implementations live in
// services/logger; the API error handler and the aggregation service depend
// on this interface only.
//
// Credential tokens must never be passed as args.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}
