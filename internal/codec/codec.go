// Package codec translates between note filenames and their
// (identifier, title) components.
//
// The canonical filename form is "<identifier> <title>.<extension>", with
// the title omitted when empty. This is the single place that knows the
// filename grammar; every other package goes through Encode/Decode instead
// of re-deriving the split.
package codec

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	goslug "github.com/gosimple/slug"

	"github.com/zetkit/zet/internal/ident"
)

// Title styles supported by Encode.
const (
	// TitleStylePlain keeps the title as given (spaces and case preserved).
	TitleStylePlain = "plain"

	// TitleStyleSlug slugifies the title into a lowercase, dash-separated form.
	TitleStyleSlug = "slug"
)

// DefaultExtension is the note file extension used when none is configured.
const DefaultExtension = "txt"

// Codec encodes and decodes note filenames for one store's configuration.
type Codec struct {
	ident      ident.Config
	extension  string
	titleStyle string
	leading    *regexp.Regexp
}

// New builds a Codec. extension is given without the leading dot; titleStyle
// is TitleStylePlain or TitleStyleSlug (empty means plain).
func New(identCfg ident.Config, extension, titleStyle string) (*Codec, error) {
	if extension == "" {
		extension = DefaultExtension
	}
	extension = strings.TrimPrefix(extension, ".")

	if titleStyle == "" {
		titleStyle = TitleStylePlain
	}
	if titleStyle != TitleStylePlain && titleStyle != TitleStyleSlug {
		return nil, fmt.Errorf("unknown title style %q", titleStyle)
	}

	leading, err := regexp.Compile(`^(` + identCfg.PatternSource() + `)`)
	if err != nil {
		return nil, fmt.Errorf("compile identifier pattern: %w", err)
	}

	return &Codec{
		ident:      identCfg,
		extension:  extension,
		titleStyle: titleStyle,
		leading:    leading,
	}, nil
}

// Extension returns the configured extension without the leading dot.
func (c *Codec) Extension() string {
	return c.extension
}

// MalformedFilenameError reports a filename that carries no parseable
// identifier. Such files are foreign to the store and are surfaced rather
// than silently skipped.
type MalformedFilenameError struct {
	Filename string
}

func (e *MalformedFilenameError) Error() string {
	return fmt.Sprintf("filename %q carries no identifier", e.Filename)
}

// InvalidTitleError reports a title the codec refuses to encode.
type InvalidTitleError struct {
	Title  string
	Reason string
}

func (e *InvalidTitleError) Error() string {
	return fmt.Sprintf("invalid title %q: %s", e.Title, e.Reason)
}

// Encode produces the canonical filename for an identifier and title.
//
// Surrounding whitespace is trimmed from the title, since Decode cannot
// distinguish it from the separator space; the round-trip law holds for
// every title Encode accepts. Titles containing a path separator or the
// extension separator are rejected; callers that want leniency run the
// title through SanitizeTitle first.
func (c *Codec) Encode(id, title string) (string, error) {
	if !c.ident.Matches(id) {
		return "", fmt.Errorf("identifier %q does not match pattern %q", id, c.ident.PatternSource())
	}

	title = strings.TrimSpace(title)

	if c.titleStyle == TitleStyleSlug && title != "" {
		title = slugTitle(title)
	}

	if strings.ContainsRune(title, '/') || strings.ContainsRune(title, filepath.Separator) {
		return "", &InvalidTitleError{Title: title, Reason: "contains a path separator"}
	}
	if strings.ContainsRune(title, '.') {
		return "", &InvalidTitleError{Title: title, Reason: "contains the extension separator"}
	}

	if title == "" {
		return id + "." + c.extension, nil
	}
	return id + " " + title + "." + c.extension, nil
}

// Decode splits a filename into its identifier and title.
//
// The leading run matching the identifier pattern is the identifier;
// everything up to the final extension suffix is the title. Fails with
// MalformedFilenameError when the identifier pattern is not found.
func (c *Codec) Decode(filename string) (id, title string, err error) {
	base := filepath.Base(filename)

	m := c.leading.FindString(base)
	if m == "" {
		return "", "", &MalformedFilenameError{Filename: base}
	}
	id = m

	rest := strings.TrimSuffix(base[len(id):], "."+c.extension)
	title = strings.TrimSpace(rest)
	return id, title, nil
}

// SanitizeTitle strips the characters Encode rejects: path separators and
// the extension separator.
func SanitizeTitle(title string) string {
	title = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.':
			return -1
		}
		return r
	}, title)
	return strings.TrimSpace(title)
}

// slugTitle slugifies a title for filename use, with a conservative fallback
// when slugification strips everything.
func slugTitle(title string) string {
	slugged := goslug.Make(title)
	if slugged == "" {
		slugged = strings.ToLower(strings.ReplaceAll(SanitizeTitle(title), " ", "-"))
	}
	return slugged
}
