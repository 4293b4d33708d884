package index

import "strings"

// Chunking bounds for full-text indexing of long note bodies. A note shorter
// than chunkSize is indexed as a single chunk.
const (
	chunkSize    = 7500
	chunkOverlap = 200
)

// splitChunks breaks body into search chunks of at most chunkSize bytes,
// preferring paragraph boundaries and carrying chunkOverlap bytes of trailing
// context into the next chunk so matches spanning a boundary still hit.
func splitChunks(body string) []string {
	if len(body) <= chunkSize {
		return []string{body}
	}

	var chunks []string
	carry := "" // overlap seed for the next chunk
	var cur strings.Builder

	flush := func() {
		if cur.Len() == 0 {
			return
		}
		text := cur.String()
		chunks = append(chunks, text)
		carry = overlapTail(text)
		cur.Reset()
	}

	for _, p := range strings.Split(body, "\n\n") {
		// A single paragraph longer than the chunk size is split hard.
		for len(p) > chunkSize {
			flush()
			chunks = append(chunks, p[:chunkSize])
			carry = ""
			p = p[chunkSize-chunkOverlap:]
		}
		if cur.Len() > 0 && cur.Len()+2+len(p) > chunkSize {
			flush()
		}
		if cur.Len() == 0 && carry != "" {
			cur.WriteString(carry)
			carry = ""
		}
		if cur.Len() > 0 {
			cur.WriteString("\n\n")
		}
		cur.WriteString(p)
	}
	if cur.Len() > 0 {
		chunks = append(chunks, cur.String())
	}

	return chunks
}

func overlapTail(text string) string {
	if len(text) <= chunkOverlap {
		return text
	}
	return text[len(text)-chunkOverlap:]
}
