// ABOUTME: Response payload types returned by the analysis backend.
// ABOUTME: Mirrors the backend's JSON shapes for scores, indicators and prices.

package analysis

// ConfidenceScore is the backend's confidence scoring for one symbol.
// Component scores range 0-10.
type ConfidenceScore struct {
	TrendScore             float64        `json:"trend_score"`
	MomentumScore          float64        `json:"momentum_score"`
	VolatilityScore        float64        `json:"volatility_score"`
	VolumeScore            float64        `json:"volume_score"`
	PatternScore           float64        `json:"pattern_score"`
	SupportResistanceScore float64        `json:"support_resistance_score"`
	ConfidenceScore        float64        `json:"confidence_score"`
	Signal                 string         `json:"signal"`
	Symbol                 string         `json:"symbol"`
	ClosingPrice           float64        `json:"closing_price"`
	Version                *int           `json:"version,omitempty"`
	AdditionalInfo         map[string]any `json:"additional_info,omitempty"`
}

// SnRChannel is one support/resistance band.
type SnRChannel struct {
	Support    *float64 `json:"support"`
	Resistance *float64 `json:"resistance"`
}

// TechnicalAnalysis is the backend's indicator snapshot for one symbol.
// Optional blocks are pointers or zero values; the formatter skips what is
// absent.
type TechnicalAnalysis struct {
	Symbol    string `json:"symbol"`
	Name      string `json:"name,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	CurrentPrice   *float64 `json:"current_price"`
	DailyLow       *float64 `json:"daily_low"`
	DailyHigh      *float64 `json:"daily_high"`
	DailyVolume    *float64 `json:"daily_volume"`
	PriceChange24h *float64 `json:"price_change_24h"`
	PriceChange7d  *float64 `json:"price_change_7d"`

	SMA20  *float64 `json:"sma_20"`
	SMA200 *float64 `json:"sma_200"`
	EMA8   *float64 `json:"ema_8"`
	EMA20  *float64 `json:"ema_20"`

	RSI *float64 `json:"rsi"`
	MFI *float64 `json:"mfi"`
	CCI *float64 `json:"cci"`
	RMI *float64 `json:"rmi"`

	MACD          *float64 `json:"macd"`
	MACDSignal    *float64 `json:"macd_signal"`
	MACDHistogram *float64 `json:"macd_histogram"`

	BollingerUpper  *float64 `json:"bollinger_upper"`
	BollingerMiddle *float64 `json:"bollinger_middle"`
	BollingerLower  *float64 `json:"bollinger_lower"`

	ADX     *float64 `json:"adx"`
	PlusDI  *float64 `json:"plus_di"`
	MinusDI *float64 `json:"minus_di"`

	SuperTrend          *float64 `json:"super_trend,omitempty"`
	SuperTrendDirection string   `json:"super_trend_direction,omitempty"`

	FearGreedIndex     *float64 `json:"fear_greed_index,omitempty"`
	FearGreedSentiment string   `json:"fear_greed_sentiment,omitempty"`

	SignalsReport   string `json:"signals_report,omitempty"`
	MarketCondition string `json:"market_condition,omitempty"`

	SnRChannels     []SnRChannel       `json:"snr_channels,omitempty"`
	FibonacciLevels map[string]float64 `json:"fibonacci_levels,omitempty"`
}

// PriceInfo is the backend's latest price snapshot for one coin.
type PriceInfo struct {
	CoinID        string  `json:"coin_id"`
	USD           float64 `json:"usd"`
	USDMarketCap  float64 `json:"usd_market_cap"`
	USD24hVol     float64 `json:"usd_24h_vol"`
	USD24hChange  float64 `json:"usd_24h_change"`
	LastUpdatedAt int64   `json:"last_updated_at"`
}
