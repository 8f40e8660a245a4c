// Package shellquote quotes arguments for shell-invoked commands. Note
// filenames routinely contain spaces and bracketed titles, so any path
// handed to a shell goes through here.
package shellquote

import "strings"

// Quote wraps s in single quotes, escaping any internal single quotes.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
