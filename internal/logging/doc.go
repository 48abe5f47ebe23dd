// Package logging builds the slog loggers shared by the viewer and the
// crawler. Options select the level and the console or JSON format; extra
// writers such as a log file are fanned in with io.MultiWriter.
package logging
