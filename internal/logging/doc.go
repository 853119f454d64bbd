// Package logging builds slog loggers with console and JSON handlers.
//
// The console handler renders compact single-line records with a component
// prefix; the JSON handler emits machine-readable records for log files.
// Components attach themselves with WithComponent so related records can be
// filtered by a shared attribute.
package logging
