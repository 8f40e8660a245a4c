package codec

import (
	"errors"
	"strings"
	"testing"

	"github.com/zetkit/zet/internal/ident"
)

func mustCodec(t *testing.T, ext, style string) *Codec {
	t.Helper()
	c, err := New(ident.Config{}, ext, style)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return c
}

func TestEncode(t *testing.T) {
	c := mustCodec(t, "txt", "")

	tests := []struct {
		name    string
		id      string
		title   string
		want    string
		wantErr bool
	}{
		{name: "with title", id: "202012091130", title: "Example", want: "202012091130 Example.txt"},
		{name: "empty title", id: "202012091130", title: "", want: "202012091130.txt"},
		{name: "multi word title", id: "202012091130", title: "An Example Note", want: "202012091130 An Example Note.txt"},
		{name: "surrounding whitespace trimmed", id: "202012091130", title: "  Padded \t", want: "202012091130 Padded.txt"},
		{name: "whitespace only title", id: "202012091130", title: "   ", want: "202012091130.txt"},
		{name: "bad identifier", id: "banana", title: "Example", wantErr: true},
		{name: "path separator in title", id: "202012091130", title: "a/b", wantErr: true},
		{name: "extension separator in title", id: "202012091130", title: "v1.2", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Encode(tt.id, tt.title)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Encode(%q, %q) = %q, want error", tt.id, tt.title, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	c := mustCodec(t, "txt", "")

	tests := []struct {
		name      string
		filename  string
		wantID    string
		wantTitle string
		wantErr   bool
	}{
		{name: "with title", filename: "202012091130 Example.txt", wantID: "202012091130", wantTitle: "Example"},
		{name: "no title", filename: "202012091130.txt", wantID: "202012091130", wantTitle: ""},
		{name: "full path", filename: "/notes/202012091130 Example.txt", wantID: "202012091130", wantTitle: "Example"},
		{name: "no identifier", filename: "README.txt", wantErr: true},
		{name: "empty", filename: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, title, err := c.Decode(tt.filename)
			if tt.wantErr {
				var malformed *MalformedFilenameError
				if !errors.As(err, &malformed) {
					t.Fatalf("Decode(%q) error = %v, want MalformedFilenameError", tt.filename, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if id != tt.wantID || title != tt.wantTitle {
				t.Errorf("Decode(%q) = (%q, %q), want (%q, %q)", tt.filename, id, title, tt.wantID, tt.wantTitle)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	c := mustCodec(t, "org", "")

	tests := []struct {
		id    string
		title string
	}{
		{"202012091130", "Example"},
		{"202012091130", ""},
		{"000000000001", "leading zeros"},
		{"202109011200", "Other note with  double spaces"},
		{"202109011200", " Padded "},
	}
	for _, tt := range tests {
		name, err := c.Encode(tt.id, tt.title)
		if err != nil {
			t.Fatalf("Encode(%q, %q) error: %v", tt.id, tt.title, err)
		}
		id, title, err := c.Decode(name)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", name, err)
		}
		// Encode trims surrounding whitespace before writing the name.
		wantTitle := strings.TrimSpace(tt.title)
		if id != tt.id || title != wantTitle {
			t.Errorf("round trip of (%q, %q) via %q = (%q, %q)", tt.id, tt.title, name, id, title)
		}
	}
}

func TestEncodeSlugStyle(t *testing.T) {
	c := mustCodec(t, "md", TitleStyleSlug)

	got, err := c.Encode("202012091130", "An Example Note")
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if got != "202012091130 an-example-note.md" {
		t.Errorf("Encode() = %q, want %q", got, "202012091130 an-example-note.md")
	}
}

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain title", "plain title"},
		{"a/b", "ab"},
		{"v1.2 notes", "v12 notes"},
		{"  padded  ", "padded"},
	}
	for _, tt := range tests {
		if got := SanitizeTitle(tt.in); got != tt.want {
			t.Errorf("SanitizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewRejectsUnknownTitleStyle(t *testing.T) {
	if _, err := New(ident.Config{}, "txt", "shouty"); err == nil {
		t.Error("New() accepted unknown title style")
	}
}
