// ABOUTME: Tests for MarkdownV2 escaping.
// ABOUTME: Covers reserved characters, marker preservation, and idempotence.

package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeV2_ReservedCharacters(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dot", "v1.0", `v1\.0`},
		{"dash", "pre-release", `pre\-release`},
		{"bang", "wow!", `wow\!`},
		{"hash", "# not a heading here", `\# not a heading here`},
		{"pipe_and_braces", "a|{b}", `a\|\{b\}`},
		{"plus_equals", "1+1=2", `1\+1\=2`},
		{"gt_tilde", "~> hi", `\~\> hi`},
		{"plain", "hello world", "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeV2(tt.in))
		})
	}
}

func TestEscapeV2_PreservesWellFormedMarkers(t *testing.T) {
	assert.Equal(t, "*bold*", EscapeV2("*bold*"))
	assert.Equal(t, "_italic_", EscapeV2("_italic_"))
	assert.Equal(t, "`code`", EscapeV2("`code`"))
	assert.Equal(t, "[site](https://example.com/)", EscapeV2("[site](https://example.com/)"))
}

func TestEscapeV2_EscapesInnerTextOfMarkers(t *testing.T) {
	assert.Equal(t, `*v1\.0 is out\!*`, EscapeV2("*v1.0 is out!*"))
	assert.Equal(t, `_rate\-limited_`, EscapeV2("_rate-limited_"))
}

func TestEscapeV2_UnpairedMarkersEscaped(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5 * 3", `5 \* 3`},
		{"snake_case", `snake\_case`},
		{"`unterminated", "\\`unterminated"},
		{"[no url]", `\[no url\]`},
		{"[label](", `\[label\]\(`},
	}
	for _, tt := range tests {
		got := EscapeV2(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestEscapeV2_WordInternalUnderscoresStayLiteral(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"two snake_case words one line",
			"use crypto_info or stop_mode",
			`use crypto\_info or stop\_mode`,
		},
		{
			"command list across lines",
			"• /crypto_info - coin info\n• /stop_mode - stop",
			"• /crypto\\_info \\- coin info\n• /stop\\_mode \\- stop",
		},
		{
			"italic pair still preserved after a snake_case word",
			"run stop_mode\n_then relax_",
			"run stop\\_mode\n_then relax_",
		},
		{"word-adjacent asterisk", "2*3*4", `2\*3\*4`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeV2(tt.in))
		})
	}
}

func TestEscapeV2_NoCrossLineEmphasisPair(t *testing.T) {
	// A marker pair must never span a newline; both markers get escaped.
	assert.Equal(t, "a \\_b\nc\\_ d", EscapeV2("a _b\nc_ d"))
	assert.Equal(t, "\\*x\ny\\*", EscapeV2("*x\ny*"))
}

func TestEscapeV2_NoUnterminatedMarkers(t *testing.T) {
	// Whatever garbage comes in, the output must never contain an odd,
	// unescaped marker that would make Telegram reject the message.
	inputs := []string{
		"*", "**", "***", "_a", "a_", "`", "[", "](", "*_`[",
		"mixed *bold _and broken", "a*b*c*d",
	}
	for _, in := range inputs {
		out := EscapeV2(in)
		for _, marker := range []byte{'*', '_', '`'} {
			assert.Equal(t, 0, countUnescaped(out, marker)%2,
				"unbalanced %q in escape of %q: %q", string(marker), in, out)
		}
	}
}

func TestEscapeV2_Idempotent(t *testing.T) {
	inputs := []string{
		"plain text",
		"v1.0 - done!",
		"*bold* and _italic_ and `code`",
		"[link](https://example.com/a.b)",
		"already \\. escaped \\*",
		"mix: 1+1=2, a|b, {set}",
	}
	for _, in := range inputs {
		once := EscapeV2(in)
		twice := EscapeV2(once)
		assert.Equal(t, once, twice, "escaping %q twice changed the output", in)
	}
}

func TestEscapeV2_Whitespace(t *testing.T) {
	assert.Equal(t, "", EscapeV2(""))
	assert.Equal(t, "   ", EscapeV2("   "))
	assert.Equal(t, "\n\t", EscapeV2("\n\t"))
}

func TestEscapeV2_Unicode(t *testing.T) {
	assert.Equal(t, "ценa 🚀", EscapeV2("ценa 🚀"))
	assert.Equal(t, `📊 запуск\!`, EscapeV2("📊 запуск!"))
}

// countUnescaped counts marker bytes not preceded by a backslash.
func countUnescaped(s string, marker byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' {
			i++
			continue
		}
		if s[i] == marker {
			n++
		}
	}
	return n
}

func TestEscapeV2_CodeSpanContentLeftAlone(t *testing.T) {
	got := EscapeV2("run `a.b(c)` now.")
	assert.Equal(t, "run `a.b(c)` now\\.", got)
	assert.True(t, strings.Contains(got, "`a.b(c)`"))
}
