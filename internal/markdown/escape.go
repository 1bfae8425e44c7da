// ABOUTME: MarkdownV2 escaping for outbound Telegram messages.
// ABOUTME: Escapes reserved characters while preserving well-formed inline markers.

package markdown

import "strings"

// reservedV2 marks every byte Telegram's MarkdownV2 parser treats as special.
var reservedV2 = map[byte]bool{
	'\\': true,
	'_':  true,
	'*':  true,
	'[':  true,
	']':  true,
	'(':  true,
	')':  true,
	'~':  true,
	'`':  true,
	'>':  true,
	'#':  true,
	'+':  true,
	'-':  true,
	'=':  true,
	'|':  true,
	'{':  true,
	'}':  true,
	'.':  true,
	'!':  true,
}

// EscapeV2 returns text with every MarkdownV2-reserved character escaped,
// except where a character participates in a well-formed inline marker pair:
// *bold*, _italic_, `code` and [text](url) keep their markers. Unpaired
// markers are escaped away rather than risking an unterminated entity that
// Telegram would reject. The function is total: it never fails, and running
// it over already-escaped text leaves the escapes untouched.
func EscapeV2(text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 16)

	i := 0
	for i < len(text) {
		c := text[i]
		switch c {
		case '\\':
			// An existing escape of a reserved character is kept verbatim
			// so escaping is idempotent. A stray backslash is escaped.
			if i+1 < len(text) && reservedV2[text[i+1]] {
				b.WriteByte('\\')
				b.WriteByte(text[i+1])
				i += 2
			} else {
				b.WriteString(`\\`)
				i++
			}

		case '`':
			if j := strings.IndexByte(text[i+1:], '`'); j >= 1 {
				end := i + 1 + j
				b.WriteByte('`')
				// Inside a code span only the backslash needs help; the
				// span cannot contain a backtick by construction.
				b.WriteString(strings.ReplaceAll(text[i+1:end], `\`, `\\`))
				b.WriteByte('`')
				i = end + 1
			} else {
				b.WriteString("\\`")
				i++
			}

		case '*', '_':
			if end, ok := emphasisClose(text, i, c); ok {
				b.WriteByte(c)
				b.WriteString(escapeAll(text[i+1 : end]))
				b.WriteByte(c)
				i = end + 1
			} else {
				b.WriteByte('\\')
				b.WriteByte(c)
				i++
			}

		case '[':
			if label, url, end, ok := parseInlineLink(text, i); ok {
				b.WriteByte('[')
				b.WriteString(escapeAll(label))
				b.WriteString("](")
				b.WriteString(strings.ReplaceAll(url, `\`, `\\`))
				b.WriteByte(')')
				i = end
			} else {
				b.WriteString("\\[")
				i++
			}

		default:
			if reservedV2[c] {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
			i++
		}
	}

	return b.String()
}

// emphasisClose finds the closing marker for the emphasis character opened
// at text[i]. Pairing is refused when the opener sits inside a word (a
// snake_case underscore is literal text, never an italic opener) or when no
// closer exists before the end of the line, so a pair can never span lines.
func emphasisClose(text string, i int, c byte) (end int, ok bool) {
	if i > 0 && isWordByte(text[i-1]) {
		return 0, false
	}
	for j := i + 1; j < len(text); j++ {
		switch text[j] {
		case '\n':
			return 0, false
		case c:
			if j == i+1 {
				return 0, false
			}
			return j, true
		}
	}
	return 0, false
}

// isWordByte treats ASCII alphanumerics, underscore and any non-ASCII byte
// as word content. Erring toward "word" only costs an escaped marker.
func isWordByte(b byte) bool {
	return b == '_' || b >= 0x80 ||
		('0' <= b && b <= '9') ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z')
}

// escapeAll escapes every reserved character without attempting to preserve
// marker pairs. Used for the inner text of already-recognized markers, where
// nested emphasis is traded away for guaranteed-parseable output.
func escapeAll(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 8)
	i := 0
	for i < len(text) {
		c := text[i]
		if c == '\\' && i+1 < len(text) && reservedV2[text[i+1]] {
			b.WriteByte('\\')
			b.WriteByte(text[i+1])
			i += 2
			continue
		}
		if reservedV2[c] {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}

// parseInlineLink recognizes [label](url) starting at text[start] == '['.
// Returns the label, the url and the index just past the closing paren.
func parseInlineLink(text string, start int) (label, url string, end int, ok bool) {
	bracket := strings.IndexByte(text[start+1:], ']')
	if bracket < 0 {
		return "", "", 0, false
	}
	labelEnd := start + 1 + bracket
	if labelEnd+1 >= len(text) || text[labelEnd+1] != '(' {
		return "", "", 0, false
	}
	paren := strings.IndexByte(text[labelEnd+2:], ')')
	if paren < 0 {
		return "", "", 0, false
	}
	urlEnd := labelEnd + 2 + paren
	url = text[labelEnd+2 : urlEnd]
	if strings.TrimSpace(url) == "" || strings.ContainsAny(url, " \n") {
		return "", "", 0, false
	}
	return text[start+1 : labelEnd], url, urlEnd + 1, true
}
