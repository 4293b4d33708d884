package index

import (
	"strings"
	"testing"
)

func TestSplitChunksShortBody(t *testing.T) {
	chunks := splitChunks("short body")
	if len(chunks) != 1 || chunks[0] != "short body" {
		t.Fatalf("chunks = %v", chunks)
	}
}

func TestSplitChunksParagraphBoundaries(t *testing.T) {
	para := strings.Repeat("x", 4000)
	body := para + "\n\n" + para + "\n\n" + para

	chunks := splitChunks(body)
	if len(chunks) < 2 {
		t.Fatalf("chunks = %d, want at least 2", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > chunkSize {
			t.Errorf("chunk %d length %d exceeds %d", i, len(c), chunkSize)
		}
	}
}

func TestSplitChunksOverlap(t *testing.T) {
	paraA := strings.Repeat("a", 4000)
	paraB := strings.Repeat("b", 4000)
	body := paraA + "\n\n" + paraB

	chunks := splitChunks(body)
	if len(chunks) != 2 {
		t.Fatalf("chunks = %d, want 2", len(chunks))
	}
	// Second chunk starts with trailing context from the first.
	if !strings.HasPrefix(chunks[1], strings.Repeat("a", chunkOverlap)) {
		t.Errorf("chunk 2 missing overlap seed: %q...", chunks[1][:20])
	}
	if !strings.Contains(chunks[1], paraB) {
		t.Error("chunk 2 missing its own paragraph")
	}
}

func TestSplitChunksOversizedParagraph(t *testing.T) {
	body := strings.Repeat("z", 3*chunkSize)

	chunks := splitChunks(body)
	total := 0
	for i, c := range chunks {
		if len(c) > chunkSize {
			t.Errorf("chunk %d length %d exceeds %d", i, len(c), chunkSize)
		}
		total += len(c)
	}
	// With overlap, total coverage is at least the body length.
	if total < len(body) {
		t.Errorf("chunks cover %d bytes, body is %d", total, len(body))
	}
}
