// Package logging provides a unified logging interface for the calculator
// and the stress harness. It abstracts the underlying zerolog backend,
// allowing consistent structured logging across components.
package logging
