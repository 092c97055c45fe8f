// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers that keep key names consistent.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "burger"),
//	    logger.WithLevel(slog.LevelWarn),
//	)
//	log.Error("invalid recipe", logger.File(path), logger.ValidationErrors(err))
//
// The default logger writes JSON at info level to stdout. WithEnvironment
// switches development to text output at debug level and tags every record
// with "service" and "env".
package logger
