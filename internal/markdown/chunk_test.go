// ABOUTME: Tests for greedy section chunking.
// ABOUTME: Covers size limits, oversized sections, and reconstruction.

package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkSections_SingleChunkUnderLimit(t *testing.T) {
	sections := Sectionize("# Title\nBody line\n\n## Sub\nMore text")
	chunks := ChunkSections(sections, 1000)

	require.Len(t, chunks, 1)
	assert.Len(t, chunks[0].Sections, 2)
	assert.Equal(t, "# Title\nBody line\n## Sub\nMore text", chunks[0].Text())
}

func TestChunkSections_SplitsAtSectionBoundary(t *testing.T) {
	sections := Sectionize("# Title\nBody line\n\n## Sub\nMore text")
	chunks := ChunkSections(sections, 20)

	require.Len(t, chunks, 2)
	assert.Len(t, chunks[0].Sections, 1)
	assert.Len(t, chunks[1].Sections, 1)
	assert.Equal(t, "# Title\nBody line", chunks[0].Text())
	assert.Equal(t, "## Sub\nMore text", chunks[1].Text())
}

func TestChunkSections_NoLimit(t *testing.T) {
	sections := []Section{
		{Heading: "A", Level: 1, Body: strings.Repeat("x", 5000)},
		{Heading: "B", Level: 1, Body: strings.Repeat("y", 5000)},
	}
	chunks := ChunkSections(sections, 0)

	require.Len(t, chunks, 1)
	assert.Len(t, chunks[0].Sections, 2)
}

func TestChunkSections_OversizedSectionEmittedWhole(t *testing.T) {
	big := Section{Heading: "Big", Level: 1, Body: strings.Repeat("z", 100)}
	small := Section{Heading: "Small", Level: 1, Body: "ok"}
	chunks := ChunkSections([]Section{small, big, small}, 50)

	require.Len(t, chunks, 3)
	assert.Equal(t, []Section{small}, chunks[0].Sections)
	assert.Equal(t, []Section{big}, chunks[1].Sections)
	assert.Equal(t, []Section{small}, chunks[2].Sections)
	assert.Greater(t, len(chunks[1].Text()), 50)
}

func TestChunkSections_NoSectionDroppedOrDuplicated(t *testing.T) {
	var sections []Section
	for i := 0; i < 17; i++ {
		sections = append(sections, Section{
			Heading: strings.Repeat("h", i+1),
			Level:   1,
			Body:    strings.Repeat("b", (i*13)%40),
		})
	}

	for _, limit := range []int{0, 10, 25, 60, 100, 10000} {
		chunks := ChunkSections(sections, limit)

		var got []Section
		for _, c := range chunks {
			got = append(got, c.Sections...)
		}
		assert.Equal(t, sections, got, "limit %d", limit)
	}
}

func TestChunkSections_NoOversizeExceptSingletons(t *testing.T) {
	var sections []Section
	for i := 0; i < 12; i++ {
		sections = append(sections, Section{Body: strings.Repeat("a", 5+i*7)})
	}

	for _, limit := range []int{16, 40, 80} {
		for _, c := range ChunkSections(sections, limit) {
			if len(c.Sections) == 1 {
				continue
			}
			assert.LessOrEqual(t, len(c.Text()), limit,
				"multi-section chunk exceeds limit %d", limit)
		}
	}
}

func TestChunkSections_ExactlyAtLimitOpensNewChunk(t *testing.T) {
	// The candidate is accumulator + "\n" + render compared with strict
	// less-than, so a candidate of exactly limit bytes starts a new chunk.
	a := Section{Body: strings.Repeat("a", 4)}
	b := Section{Body: strings.Repeat("b", 4)}
	// First candidate: "\n" + "aaaa" (5). Second: "\naaaa\nbbbb" (10).
	chunks := ChunkSections([]Section{a, b}, 10)
	require.Len(t, chunks, 2)

	chunks = ChunkSections([]Section{a, b}, 11)
	require.Len(t, chunks, 1)
}

func TestChunkSections_Empty(t *testing.T) {
	assert.Nil(t, ChunkSections(nil, 100))
}

func TestSplit_EndToEnd(t *testing.T) {
	parts := Split("# One\nfirst\n\n# Two\nsecond", 15)
	require.Len(t, parts, 2)
	assert.Equal(t, "# One\nfirst", parts[0])
	assert.Equal(t, "# Two\nsecond", parts[1])
}
