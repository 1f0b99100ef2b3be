// Package log provides structured logging for cleanfloat.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with persistent context fields,
//              text, JSON and logfmt output, and integration with the
//              structured error type. Diagnostics go to stderr so that
//              cleaned output on stdout stays machine readable.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatJSON).
//		WithCorrelationID(id)
//
//	logger.Debug("value cleaned", log.Fields{"input": in, "output": out})
//
//	timer := logger.StartTimer("clean_json")
//	// ... clean the document
//	timer.Stop(log.Int("numbers", stats.Numbers))
//
//	logger.LogError(err) // level follows the error severity
package log
