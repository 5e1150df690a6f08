// Package logging provides a minimal logging facade for the ecm
// library.
//
// The Logger interface wraps the subset of log/slog that the factoring
// orchestrator uses. It is intentionally small so applications can
// supply their own implementation for testing or for integration with
// an existing logging system.
//
// The default implementation binds to slog:
//
//	logger := logging.New(nil) // slog.Default()
//
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger = logging.New(slog.New(handler))
//
// Discard returns a Logger that drops everything, useful in tests and
// as a library-internal fallback.
package logging
