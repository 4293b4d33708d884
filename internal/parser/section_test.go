package parser

import (
	"strings"
	"testing"
)

const sectionFixture = `# Title

Intro paragraph.

## Setup

Install the thing.

### Details

Deep detail line.

## Usage

Run the thing.
`

func TestExtractSection_NestedSubsectionIncluded(t *testing.T) {
	got, ok := ExtractSection(sectionFixture, "Setup")
	if !ok {
		t.Fatal("section not found")
	}
	if !strings.HasPrefix(got, "## Setup\n\n") {
		t.Errorf("missing heading prefix: %q", got)
	}
	if !strings.Contains(got, "### Details") || !strings.Contains(got, "Deep detail line.") {
		t.Errorf("level-3 subsection should be part of the level-2 body: %q", got)
	}
	if strings.Contains(got, "## Usage") {
		t.Errorf("section leaked past the next level-2 heading: %q", got)
	}
}

func TestExtractSection_DirectSubsection(t *testing.T) {
	got, ok := ExtractSection(sectionFixture, "Details")
	if !ok {
		t.Fatal("section not found")
	}
	want := "### Details\n\nDeep detail line."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtractSection_RunsToEnd(t *testing.T) {
	got, ok := ExtractSection(sectionFixture, "Usage")
	if !ok {
		t.Fatal("section not found")
	}
	want := "## Usage\n\nRun the thing."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtractSection_NotAHeading(t *testing.T) {
	if _, ok := ExtractSection(sectionFixture, "Intro paragraph"); ok {
		t.Error("expected not found for non-heading line")
	}
}

func TestExtractSection_Missing(t *testing.T) {
	if _, ok := ExtractSection(sectionFixture, "Nonexistent"); ok {
		t.Error("expected not found")
	}
}

func TestExtractSection_HeadingAtEOF(t *testing.T) {
	got, ok := ExtractSection("text\n## Tail", "Tail")
	if !ok {
		t.Fatal("section not found")
	}
	if got != "## Tail\n\n" {
		t.Errorf("got %q", got)
	}
}
