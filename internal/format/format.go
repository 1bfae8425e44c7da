// ABOUTME: Shared number and emoji helpers for the message formatters.
// ABOUTME: Price trimming, thousands grouping, and score thresholds.

package format

import (
	"fmt"
	"strings"
)

// scoreEmoji maps a 0-10 component score onto a strength indicator.
func scoreEmoji(score float64) string {
	switch {
	case score >= 7.5:
		return "🟢"
	case score >= 5:
		return "🟡"
	default:
		return "🔴"
	}
}

var signalEmojis = map[string]string{
	"BUY":     "🟢",
	"SELL":    "🔴",
	"HOLD":    "🟡",
	"NEUTRAL": "⚪️",
}

func signalEmoji(signal string) string {
	if e, ok := signalEmojis[strings.ToUpper(signal)]; ok {
		return e
	}
	return "❓"
}

// trimPrice renders a price with up to 8 decimal places, dropping trailing
// zeros so $0.00004200 shows as $0.000042 and $64250.00000000 as $64250.
func trimPrice(v float64) string {
	s := fmt.Sprintf("%.8f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}

// floatOrNA renders an optional metric with %.8g, or N/A when absent.
func floatOrNA(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.8g", *v)
}

// groupThousands inserts commas into the integer rendering of v.
func groupThousands(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.0f", v)
	if len(s) > 3 {
		var b strings.Builder
		lead := len(s) % 3
		if lead > 0 {
			b.WriteString(s[:lead])
		}
		for i := lead; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	if neg {
		return "-" + s
	}
	return s
}

// titleCase converts snake_case keys into Title Case labels.
func titleCase(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
