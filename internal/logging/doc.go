// Package logging provides the leveled logger shared by the gallery server
// and the pluto command line tool.
//
// It supports the following log levels:
//   - DEBUG: Verbose debugging information (per-entry scan decisions)
//   - INFO: General operational messages
//   - WARN: Unreadable folders and other recoverable conditions
//   - ERROR: Error conditions
//   - FATAL: Fatal errors that terminate the process
//
// The initial level comes from the DEBUG or LOG_LEVEL environment variables
// and can be overridden with SetLevel.
package logging
