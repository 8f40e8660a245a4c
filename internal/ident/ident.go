// Package ident allocates and recognizes note identifiers.
//
// An identifier is an opaque fixed-pattern string. The default shape is
// twelve decimal digits derived from a minute-granularity timestamp
// (e.g. "202012091130"). Everything outside this package treats
// identifiers as plain strings; only the allocator knows they started
// life as timestamps.
package ident

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	// DefaultFormat is the time layout used to derive new identifiers.
	DefaultFormat = "200601021504"

	// DefaultPatternSource is the default identifier pattern.
	DefaultPatternSource = `[0-9]{12}`
)

var defaultPattern = regexp.MustCompile(DefaultPatternSource)

// Config describes how identifiers are shaped and minted.
// The zero value uses the twelve-digit timestamp defaults.
type Config struct {
	// Pattern recognizes identifiers inside arbitrary text.
	Pattern *regexp.Regexp

	// Format is the time layout used to mint new identifiers.
	Format string
}

// Pattern returns the configured pattern, falling back to the default.
func (c Config) pattern() *regexp.Regexp {
	if c.Pattern != nil {
		return c.Pattern
	}
	return defaultPattern
}

// format returns the configured time layout, falling back to the default.
func (c Config) format() string {
	if c.Format != "" {
		return c.Format
	}
	return DefaultFormat
}

// PatternSource returns the regexp source of the identifier pattern.
func (c Config) PatternSource() string {
	return c.pattern().String()
}

// Matches reports whether s is exactly one identifier.
func (c Config) Matches(s string) bool {
	m := c.pattern().FindString(s)
	return m == s && s != ""
}

// Candidate formats the instant into an identifier candidate.
func (c Config) Candidate(now time.Time) string {
	return now.Format(c.format())
}

// NonNumericError reports an identifier collision that cannot be resolved
// because the candidate is not a decimal number. The increment-and-retry
// strategy only works for purely numeric identifier formats.
type NonNumericError struct {
	Candidate string
}

func (e *NonNumericError) Error() string {
	return fmt.Sprintf("identifier %q collides and is not numeric: increment retry requires a numeric identifier format", e.Candidate)
}

// Allocate mints an identifier that is unique among existing.
//
// The candidate is the formatted current instant. While it collides with an
// existing identifier, it is treated as a decimal integer and incremented,
// preserving width. Each retry strictly increases the value, so the loop
// terminates once it clears the (finite) set of existing identifiers. An
// increment that rolls over past the pattern's width fails loudly rather
// than returning an identifier the pattern no longer recognizes.
func (c Config) Allocate(now time.Time, existing []string) (string, error) {
	taken := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		taken[id] = struct{}{}
	}

	candidate := c.Candidate(now)
	if !c.Matches(candidate) {
		return "", fmt.Errorf("identifier format %q produced %q, which does not match pattern %q",
			c.format(), candidate, c.PatternSource())
	}

	for {
		if _, ok := taken[candidate]; !ok {
			return candidate, nil
		}
		next, err := increment(candidate)
		if err != nil {
			return "", err
		}
		if !c.Matches(next) {
			return "", fmt.Errorf("incremented identifier %q does not match pattern %q", next, c.PatternSource())
		}
		candidate = next
	}
}

// increment adds one to a decimal identifier, preserving its width.
func increment(id string) (string, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return "", &NonNumericError{Candidate: id}
	}
	return fmt.Sprintf("%0*d", len(id), n+1), nil
}
