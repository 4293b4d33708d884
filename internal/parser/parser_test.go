package parser

import (
	"reflect"
	"testing"
)

func TestExtractLinks_Basic(t *testing.T) {
	text := "See [[Note A]] and [[Note B|alias]].\nAlso [[Note A]] again."
	links := ExtractLinks(text)
	want := []string{"Note A", "Note B|alias"}
	if !reflect.DeepEqual(links, want) {
		t.Errorf("links = %v, want %v", links, want)
	}
}

func TestExtractLinks_SkipsImages(t *testing.T) {
	text := "Text [[A]] and [[A.png]] and [[shot.jpg|screenshot]] end."
	links := ExtractLinks(text)
	want := []string{"A"}
	if !reflect.DeepEqual(links, want) {
		t.Errorf("links = %v, want %v", links, want)
	}
}

func TestExtractLinks_Unterminated(t *testing.T) {
	text := "good [[One]] then broken [[Two with no close"
	links := ExtractLinks(text)
	want := []string{"One"}
	if !reflect.DeepEqual(links, want) {
		t.Errorf("links = %v, want %v", links, want)
	}
}

func TestExtractLinks_Empty(t *testing.T) {
	if links := ExtractLinks(""); len(links) != 0 {
		t.Errorf("expected no links, got %v", links)
	}
}

func TestExtractLinks_KeepsSectionSuffix(t *testing.T) {
	// The raw target (with anchor) is what the expander resolves later.
	links := ExtractLinks("see [[Guide#Setup]]")
	want := []string{"Guide#Setup"}
	if !reflect.DeepEqual(links, want) {
		t.Errorf("links = %v, want %v", links, want)
	}
}

func TestParseRef(t *testing.T) {
	cases := []struct {
		raw     string
		name    string
		section string
	}{
		{"Plain", "Plain", ""},
		{"Target|Alias", "Target", ""},
		{"Target#Setup", "Target", "Setup"},
		{"Target|Alias#ignored", "Target", ""},
		{"Target#Setup|stays", "Target", "Setup|stays"},
		{"", "", ""},
	}
	for _, c := range cases {
		got := ParseRef(c.raw)
		if got.Name != c.name || got.Section != c.section {
			t.Errorf("ParseRef(%q) = %+v, want name=%q section=%q", c.raw, got, c.name, c.section)
		}
	}
}

func TestStripExtension(t *testing.T) {
	if got := StripExtension("ideas.md"); got != "ideas" {
		t.Errorf("got %q", got)
	}
	if got := StripExtension("ideas"); got != "ideas" {
		t.Errorf("got %q", got)
	}
	// Only the suffix is trimmed, not arbitrary trailing characters.
	if got := StripExtension("dm.md"); got != "dm" {
		t.Errorf("got %q", got)
	}
}
