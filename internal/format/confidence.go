// ABOUTME: Renders a confidence score payload into a Telegram-ready message.
// ABOUTME: Signal and per-component emoji indicators plus the disclaimer.

package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/projectnostradamus/amenbot/internal/analysis"
)

// Confidence renders a confidence score as markdown.
func Confidence(score *analysis.ConfidenceScore) string {
	parts := []string{
		fmt.Sprintf("📊 Analysis for %s", score.Symbol),
		fmt.Sprintf("Current Price: $%s", trimPrice(score.ClosingPrice)),
		fmt.Sprintf("\nSignal: %s %s", signalEmoji(score.Signal), score.Signal),
		fmt.Sprintf("\nConfidence Score: %s %.1f/10", scoreEmoji(score.ConfidenceScore), score.ConfidenceScore),
		"\nDetailed Scores:",
		fmt.Sprintf("• Trend: %s %.1f", scoreEmoji(score.TrendScore), score.TrendScore),
		fmt.Sprintf("• Momentum: %s %.1f", scoreEmoji(score.MomentumScore), score.MomentumScore),
		fmt.Sprintf("• Volatility: %s %.1f", scoreEmoji(score.VolatilityScore), score.VolatilityScore),
		fmt.Sprintf("• Volume: %s %.1f", scoreEmoji(score.VolumeScore), score.VolumeScore),
		fmt.Sprintf("• Pattern: %s %.1f", scoreEmoji(score.PatternScore), score.PatternScore),
		fmt.Sprintf("• Support/Resistance: %s %.1f", scoreEmoji(score.SupportResistanceScore), score.SupportResistanceScore),
	}

	if len(score.AdditionalInfo) > 0 {
		parts = append(parts, "\nAdditional Information:")
		keys := make([]string, 0, len(score.AdditionalInfo))
		for k := range score.AdditionalInfo {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("• %s: %v", titleCase(k), score.AdditionalInfo[k]))
		}
	}

	if score.Version != nil {
		parts = append(parts, fmt.Sprintf("\nAnalysis Version: %d", *score.Version))
	}

	parts = append(parts,
		"\n⚠️ *Disclaimer*: This analysis is for informational purposes only. "+
			"Always conduct your own research before making investment decisions.")

	return strings.Join(parts, "\n")
}
