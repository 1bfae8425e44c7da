// ABOUTME: HTTP client for the analysis backend's addon endpoints.
// ABOUTME: Converts transport faults into failed results with a fixed apology.

package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// ErrConnecting is the user-facing text shown when the backend cannot be
// reached or returns garbage. It is a message, not an error value: callers
// receive it through the failed-result path.
const ErrConnecting = "Sorry, there was an error connecting to the analysis service."

// Client calls the analysis backend. All methods report failure through an
// ok flag plus a human-readable string; they never return Go errors for the
// dispatcher to interpret.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a backend client. A zero timeout defaults to 60s.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		logger:  slog.Default().With("component", "analysis"),
	}
}

// envelope is the backend's common response wrapper. Data holds either the
// payload (success) or an error string (failure); Text/Plots are only used
// by the free-form endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Text    string          `json:"text,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Plots   []string        `json:"plots,omitempty"`
}

func (c *Client) post(ctx context.Context, path string, body any) (*envelope, bool) {
	payload, err := json.Marshal(body)
	if err != nil {
		c.logger.Error("marshaling request", "path", path, "error", err)
		return nil, false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		c.logger.Error("creating request", "path", path, "error", err)
		return nil, false
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("backend request failed", "path", path, "error", err)
		return nil, false
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("reading backend response", "path", path, "error", err)
		return nil, false
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("backend returned non-2xx", "path", path,
			"status", resp.StatusCode, "body", strings.TrimSpace(string(raw)))
		return nil, false
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.logger.Error("decoding backend response", "path", path, "error", err)
		return nil, false
	}
	return &env, true
}

// dataError extracts the error string a failed envelope carries in data.
func dataError(env *envelope) string {
	var msg string
	if len(env.Data) > 0 && json.Unmarshal(env.Data, &msg) == nil && msg != "" {
		return msg
	}
	return ErrConnecting
}

// Analysis runs the free-form analysis endpoint with the user's query.
// Returns (ok, text, plot references). On failure text is the error string.
func (c *Client) Analysis(ctx context.Context, query string) (bool, string, []string) {
	env, ok := c.post(ctx, "/addon/response", map[string]string{"query": query})
	if !ok {
		return false, ErrConnecting, nil
	}
	if !env.Success {
		if env.Text != "" {
			return false, env.Text, nil
		}
		return false, dataError(env), nil
	}
	return true, env.Text, env.Plots
}

// ConfidenceScore fetches the confidence scoring for a symbol.
func (c *Client) ConfidenceScore(ctx context.Context, symbol string) (bool, *ConfidenceScore, string) {
	env, ok := c.post(ctx, "/addon/confidence_score", map[string]string{"symbol": symbol})
	if !ok {
		return false, nil, ErrConnecting
	}
	if !env.Success {
		return false, nil, dataError(env)
	}
	var score ConfidenceScore
	if err := json.Unmarshal(env.Data, &score); err != nil {
		c.logger.Error("decoding confidence score", "error", err)
		return false, nil, ErrConnecting
	}
	return true, &score, ""
}

// TechnicalAnalysis fetches the indicator snapshot for a symbol.
func (c *Client) TechnicalAnalysis(ctx context.Context, symbol string) (bool, *TechnicalAnalysis, string) {
	env, ok := c.post(ctx, "/addon/technical", map[string]string{"symbol": symbol})
	if !ok {
		return false, nil, ErrConnecting
	}
	if !env.Success {
		return false, nil, dataError(env)
	}
	var ta TechnicalAnalysis
	if err := json.Unmarshal(env.Data, &ta); err != nil {
		c.logger.Error("decoding technical analysis", "error", err)
		return false, nil, ErrConnecting
	}
	return true, &ta, ""
}

// CoinInfo fetches the descriptive text for a coin. The payload is already
// markdown-ish text.
func (c *Client) CoinInfo(ctx context.Context, symbol string) (bool, string) {
	env, ok := c.post(ctx, "/addon/coin_info", map[string]string{"symbol": symbol})
	if !ok {
		return false, ErrConnecting
	}
	if !env.Success {
		return false, dataError(env)
	}
	var text string
	if err := json.Unmarshal(env.Data, &text); err != nil {
		c.logger.Error("decoding coin info", "error", err)
		return false, ErrConnecting
	}
	return true, text
}

// PriceInfo fetches the latest price snapshot for a coin.
func (c *Client) PriceInfo(ctx context.Context, symbol string) (bool, *PriceInfo, string) {
	env, ok := c.post(ctx, "/addon/price_info", map[string]string{"symbol": symbol})
	if !ok {
		return false, nil, ErrConnecting
	}
	if !env.Success {
		return false, nil, dataError(env)
	}
	var price PriceInfo
	if err := json.Unmarshal(env.Data, &price); err != nil {
		c.logger.Error("decoding price info", "error", err)
		return false, nil, ErrConnecting
	}
	return true, &price, ""
}

// PlotImage downloads a rendered plot by its opaque hash reference.
// This is the one method that returns an error: a missing plot only
// suppresses an attachment, it never fails the user's request.
func (c *Client) PlotImage(ctx context.Context, hash string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/addon/plot_image/"+hash, nil)
	if err != nil {
		return nil, fmt.Errorf("creating plot request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching plot %s: %w", hash, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetching plot %s: http %d", hash, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
