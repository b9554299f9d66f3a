package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs internal housekeeping that must stay out of user-facing output.
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
