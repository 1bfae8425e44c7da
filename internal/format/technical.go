// ABOUTME: Renders a technical analysis snapshot into sectioned markdown.
// ABOUTME: Optional indicator blocks are skipped when the backend omits them.

package format

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/projectnostradamus/amenbot/internal/analysis"
)

// Technical renders an indicator snapshot as markdown. Sections are joined
// by newlines so the chunker can split long reports cleanly.
func Technical(ta *analysis.TechnicalAnalysis) string {
	var sections []string

	basic := []string{fmt.Sprintf("📊 *Technical Analysis for %s*\n", ta.Symbol)}
	if ta.Name != "" {
		basic = append(basic, "🏢 Name: "+ta.Name)
	}
	basic = append(basic, fmt.Sprintf("📅 Period: %s to %s\n", ta.StartDate, ta.EndDate))
	sections = append(sections, strings.Join(basic, "\n"))

	sections = append(sections, strings.Join([]string{
		"💰 *Price Information*\n",
		fmt.Sprintf("• 💵 Current Price: $%s", floatOrNA(ta.CurrentPrice)),
		"• 📊 Daily Range:",
		fmt.Sprintf("  ↓ Low: $%s", floatOrNA(ta.DailyLow)),
		fmt.Sprintf("  ↑ High: $%s", floatOrNA(ta.DailyHigh)),
		fmt.Sprintf("• 📈 Volume: %s", floatOrNA(ta.DailyVolume)),
		fmt.Sprintf("• ⏰ 24h Change: %s%%", floatOrNA(ta.PriceChange24h)),
		fmt.Sprintf("• 📅 7d Change: %s%%\n", floatOrNA(ta.PriceChange7d)),
	}, "\n"))

	sections = append(sections, strings.Join([]string{
		"📈 *Moving Averages*\n",
		fmt.Sprintf("• 📊 SMA20: $%s", floatOrNA(ta.SMA20)),
		fmt.Sprintf("• 📉 SMA200: $%s", floatOrNA(ta.SMA200)),
		fmt.Sprintf("• 📈 EMA8: $%s", floatOrNA(ta.EMA8)),
		fmt.Sprintf("• 📊 EMA20: $%s\n", floatOrNA(ta.EMA20)),
	}, "\n"))

	sections = append(sections, strings.Join([]string{
		"🔄 *Momentum Indicators*\n",
		fmt.Sprintf("• 🔋 RSI: %s", floatOrNA(ta.RSI)),
		fmt.Sprintf("• 💹 MFI: %s", floatOrNA(ta.MFI)),
		fmt.Sprintf("• 📊 CCI: %s", floatOrNA(ta.CCI)),
		fmt.Sprintf("• 📈 RMI: %s\n", floatOrNA(ta.RMI)),
	}, "\n"))

	sections = append(sections, strings.Join([]string{
		"📊 *MACD Analysis*\n",
		fmt.Sprintf("• 📈 MACD Line: %s", floatOrNA(ta.MACD)),
		fmt.Sprintf("• 📉 Signal Line: %s", floatOrNA(ta.MACDSignal)),
		fmt.Sprintf("• 📊 Histogram: %s\n", floatOrNA(ta.MACDHistogram)),
	}, "\n"))

	sections = append(sections, strings.Join([]string{
		"📏 *Bollinger Bands*\n",
		fmt.Sprintf("• ⬆️ Upper Band: $%s", floatOrNA(ta.BollingerUpper)),
		fmt.Sprintf("• ➖ Middle Band: $%s", floatOrNA(ta.BollingerMiddle)),
		fmt.Sprintf("• ⬇️ Lower Band: $%s\n", floatOrNA(ta.BollingerLower)),
	}, "\n"))

	trend := []string{
		"📈 *Trend Indicators*\n",
		fmt.Sprintf("• 🎯 ADX: %s", floatOrNA(ta.ADX)),
		fmt.Sprintf("• ⬆️ DI+: %s", floatOrNA(ta.PlusDI)),
		fmt.Sprintf("• ⬇️ DI-: %s", floatOrNA(ta.MinusDI)),
	}
	if ta.SuperTrendDirection != "" {
		trend = append(trend,
			fmt.Sprintf("• 🔄 Super Trend: %s", strings.ToUpper(ta.SuperTrendDirection)),
			fmt.Sprintf("  💹 Value: $%s\n", floatOrNA(ta.SuperTrend)),
		)
	}
	sections = append(sections, strings.Join(trend, "\n"))

	if ta.FearGreedIndex != nil || ta.FearGreedSentiment != "" {
		sections = append(sections, strings.Join([]string{
			"🎭 *Market Sentiment*\n",
			fmt.Sprintf("• 📊 Fear & Greed Index: %s", floatOrNA(ta.FearGreedIndex)),
			fmt.Sprintf("• 🔍 Sentiment: %s\n", ta.FearGreedSentiment),
		}, "\n"))
	}

	if ta.SignalsReport != "" {
		sections = append(sections, fmt.Sprintf("📑 *Technical Signals*\n• %s\n", ta.SignalsReport))
	}

	if ta.MarketCondition != "" {
		sections = append(sections, fmt.Sprintf("⚠️ *Market Condition*\n• %s\n", ta.MarketCondition))
	}

	if len(ta.SnRChannels) > 0 {
		snr := []string{"🎯 *Support & Resistance Channels*\n"}
		for _, ch := range ta.SnRChannels {
			snr = append(snr, fmt.Sprintf("• 📈 Level: $%s - $%s",
				floatOrNA(ch.Support), floatOrNA(ch.Resistance)))
		}
		sections = append(sections, strings.Join(snr, "\n")+"\n")
	}

	if len(ta.FibonacciLevels) > 0 {
		fib := []string{"🌀 *Fibonacci Levels*\n"}
		ratios := make([]string, 0, len(ta.FibonacciLevels))
		for r := range ta.FibonacciLevels {
			ratios = append(ratios, r)
		}
		sort.Slice(ratios, func(i, j int) bool {
			a, _ := strconv.ParseFloat(ratios[i], 64)
			b, _ := strconv.ParseFloat(ratios[j], 64)
			return a < b
		})
		for _, r := range ratios {
			ratio, _ := strconv.ParseFloat(r, 64)
			level := ta.FibonacciLevels[r]
			fib = append(fib, fmt.Sprintf("• %.3f: $%s", ratio, floatOrNA(&level)))
		}
		sections = append(sections, strings.Join(fib, "\n")+"\n")
	}

	msg := strings.Join(sections, "\n")
	msg += "\n⚠️ *Disclaimer*\n" +
		"• This analysis is for informational purposes only\n" +
		"• Always conduct your own research before making investment decisions\n" +
		"• Past performance is not indicative of future results"
	return msg
}
