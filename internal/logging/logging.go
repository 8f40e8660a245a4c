// Package logging configures the process-wide logger.
//
// Diagnostic output goes to stderr so it never pollutes command output or
// the --json envelope on stdout.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// Setup configures the default logger. Verbose enables debug-level output;
// otherwise only warnings and errors surface.
func Setup(verbose bool) {
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(false)
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}
