// Package logging provides structured logging for fdtool.
//
// This package wraps zap with convenience functions used throughout the
// CLI. By default it is completely silent so that command output stays
// pipeable; set FDTOOL_LOG_LEVEL to opt in.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (blob hex dumps, offsets, timings)
//   - Info: Normal operations (file loaded, tree statistics)
//   - Warn: Non-fatal issues (structural problems found by verify)
//   - Error: Fatal issues (unreadable files, parse failures)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Debug("parsed device tree",
//	    zap.String("path", "board.dtb"),
//	    zap.Uint32("version", tree.Header.Version),
//	    zap.Int("nodes", count),
//	)
//
// # Blob Logging
//
// For debugging malformed blobs the package can dump raw bytes in hex and
// ASCII side by side:
//
//	logging.LogBlob("board.dtb", buf)
//	logging.LogRawBytes("structure block", buf[off:])
//
// # Configuration
//
// CLI commands initialize from the environment at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Logs go to stderr so they never mix with rendered tree output on stdout.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
