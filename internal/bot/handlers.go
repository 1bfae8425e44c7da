// ABOUTME: Mode handler implementations backed by the analysis service.
// ABOUTME: Each converts one backend reply into a renderable Response.

package bot

import (
	"context"

	"github.com/projectnostradamus/amenbot/internal/analysis"
	"github.com/projectnostradamus/amenbot/internal/format"
	"github.com/projectnostradamus/amenbot/internal/mode"
)

// Handlers builds the full mode-to-handler table plus the free-form
// fallback, all backed by one analysis client. The fallback doubles as the
// crypto mode handler.
func Handlers(client *analysis.Client) (map[mode.Mode]mode.Handler, mode.Handler) {
	fallback := analysisHandler(client)
	handlers := map[mode.Mode]mode.Handler{
		mode.Crypto:     fallback,
		mode.Confidence: confidenceHandler(client),
		mode.Technical:  technicalHandler(client),
		mode.CryptoInfo: coinInfoHandler(client),
		mode.Price:      priceHandler(client),
	}
	return handlers, fallback
}

func analysisHandler(c *analysis.Client) mode.Handler {
	return mode.HandlerFunc(func(ctx context.Context, req mode.Request) mode.Response {
		ok, text, plots := c.Analysis(ctx, req.Query)
		if !ok {
			return mode.Failure(text)
		}
		return mode.Success(text, plots...)
	})
}

func confidenceHandler(c *analysis.Client) mode.Handler {
	return mode.HandlerFunc(func(ctx context.Context, req mode.Request) mode.Response {
		ok, score, errText := c.ConfidenceScore(ctx, req.Query)
		if !ok {
			return mode.Failure(errText)
		}
		return mode.Success(format.Confidence(score))
	})
}

func technicalHandler(c *analysis.Client) mode.Handler {
	return mode.HandlerFunc(func(ctx context.Context, req mode.Request) mode.Response {
		ok, ta, errText := c.TechnicalAnalysis(ctx, req.Query)
		if !ok {
			return mode.Failure(errText)
		}
		return mode.Success(format.Technical(ta))
	})
}

func coinInfoHandler(c *analysis.Client) mode.Handler {
	return mode.HandlerFunc(func(ctx context.Context, req mode.Request) mode.Response {
		ok, text := c.CoinInfo(ctx, req.Query)
		if !ok {
			return mode.Failure(text)
		}
		return mode.Success(text)
	})
}

func priceHandler(c *analysis.Client) mode.Handler {
	return mode.HandlerFunc(func(ctx context.Context, req mode.Request) mode.Response {
		ok, info, errText := c.PriceInfo(ctx, req.Query)
		if !ok {
			return mode.Failure(errText)
		}
		return mode.Success(format.Price(info))
	})
}
