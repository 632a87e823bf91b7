// Package logger builds *slog.Logger values with functional options and
// provides attribute helpers shared by the cookiekit packages.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and wraps it with LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks on every record.
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevelName("debug"),
//	    logger.WithAttr(logger.Component("cookie")),
//	)
//	log.Debug("cookie written", logger.CookieName("sid"))
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
