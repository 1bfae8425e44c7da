// ABOUTME: Renders a price snapshot into a compact Telegram update message.
// ABOUTME: Trend emoji picked from the 24h change sign.

package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/projectnostradamus/amenbot/internal/analysis"
)

// Price renders a price snapshot as markdown.
func Price(p *analysis.PriceInfo) string {
	updated := time.Unix(p.LastUpdatedAt, 0).UTC().Format("2006-01-02 15:04:05 UTC")

	trend := "📉"
	if p.USD24hChange > 0 {
		trend = "📈"
	}

	return fmt.Sprintf(`💰 *%s Update*

💵 Price: $%s
📊 24h Change: %.2f%% %s
🌐 Market Cap: $%s
📈 24h Volume: $%s
🕒 Last Updated: %s`,
		strings.ToUpper(p.CoinID),
		trimPrice(p.USD),
		p.USD24hChange,
		trend,
		groupThousands(p.USDMarketCap),
		groupThousands(p.USD24hVol),
		updated,
	)
}
