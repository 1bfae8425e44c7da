// ABOUTME: Greedy packing of sections into size-bounded message chunks.
// ABOUTME: Chunk boundaries fall only between sections, never inside one.

package markdown

import "strings"

// Chunk is an ordered group of sections emitted as one outbound message.
type Chunk struct {
	Sections []Section
}

// Text renders the chunk's sections joined by newlines.
func (c Chunk) Text() string {
	parts := make([]string, 0, len(c.Sections))
	for _, s := range c.Sections {
		parts = append(parts, s.Render())
	}
	return strings.Join(parts, "\n")
}

// ChunkSections packs sections into chunks whose rendered length stays under
// limit. A limit <= 0 disables splitting and returns a single chunk. The
// size check prepends a newline to each candidate and compares with strict
// less-than, matching the behavior downstream consumers were tuned against;
// a chunk landing exactly on the limit therefore opens a new one. A single
// section whose own render exceeds the limit is emitted whole as its own
// oversized chunk rather than split or dropped. Never fails for any input.
func ChunkSections(sections []Section, limit int) []Chunk {
	if len(sections) == 0 {
		return nil
	}
	if limit <= 0 {
		return []Chunk{{Sections: sections}}
	}

	var chunks []Chunk
	var acc string
	var accSections []Section

	for _, s := range sections {
		rendered := s.Render()
		candidate := acc + "\n" + rendered
		if len(candidate) < limit {
			acc = candidate
			accSections = append(accSections, s)
			continue
		}
		if len(accSections) > 0 {
			chunks = append(chunks, Chunk{Sections: accSections})
		}
		acc = rendered
		accSections = []Section{s}
	}

	if len(accSections) > 0 {
		chunks = append(chunks, Chunk{Sections: accSections})
	}
	return chunks
}

// Split sectionizes md and packs the result into chunk texts, ready for
// escaping and delivery.
func Split(md string, limit int) []string {
	chunks := ChunkSections(Sectionize(md), limit)
	out := make([]string, 0, len(chunks))
	for _, c := range chunks {
		out = append(out, c.Text())
	}
	return out
}
