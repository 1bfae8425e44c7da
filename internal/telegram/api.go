// ABOUTME: HTTP client for the Telegram Bot API.
// ABOUTME: JSON method calls plus multipart upload for photo groups.

package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the public Bot API endpoint.
const DefaultBaseURL = "https://api.telegram.org"

// ChatActionTyping shows the "typing…" indicator in the chat.
const ChatActionTyping = "typing"

// APIError is a Bot API rejection (ok=false) with Telegram's error code.
type APIError struct {
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram api error %d: %s", e.Code, e.Description)
}

// IsForbidden reports whether err is Telegram telling us we lack permission
// to act (bot kicked, blocked, or missing rights).
func IsForbidden(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusForbidden
}

// Client talks to the Bot API for a single bot token.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
	logger  *slog.Logger
}

// NewClient creates a Bot API client. An empty baseURL uses the public
// endpoint; a nil httpClient gets a 60s-timeout default.
func NewClient(httpClient *http.Client, baseURL, token string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		logger:  slog.Default().With("component", "telegram"),
	}
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
	Description string          `json:"description,omitempty"`
}

// call posts body as JSON to the named Bot API method and decodes the
// result into out (which may be nil).
func (c *Client) call(ctx context.Context, method string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling %s request: %w", method, err)
		}
		reader = bytes.NewReader(payload)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reader)
	if err != nil {
		return fmt.Errorf("creating %s request: %w", method, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", method, err)
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return fmt.Errorf("reading %s response: %w", method, readErr)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return fmt.Errorf("decoding %s response (http %d): %w", method, resp.StatusCode, err)
	}
	if !apiResp.OK {
		return &APIError{Code: apiResp.ErrorCode, Description: apiResp.Description}
	}
	if out != nil && len(apiResp.Result) > 0 {
		if err := json.Unmarshal(apiResp.Result, out); err != nil {
			return fmt.Errorf("decoding %s result: %w", method, err)
		}
	}
	return nil
}

// GetMe returns the bot's own account.
func (c *Client) GetMe(ctx context.Context) (*User, error) {
	var me User
	if err := c.call(ctx, "getMe", nil, &me); err != nil {
		return nil, err
	}
	return &me, nil
}

// GetUpdates long-polls for updates past offset and returns them with the
// next offset to use. The HTTP deadline is stretched past the poll timeout
// so the server-side wait does not trip the client.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, int64, error) {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	reqCtx, cancel := context.WithTimeout(ctx, timeout+5*time.Second)
	defer cancel()

	req := struct {
		Offset  int64 `json:"offset,omitempty"`
		Timeout int   `json:"timeout"`
	}{Offset: offset, Timeout: int(timeout.Seconds())}

	var updates []Update
	if err := c.call(reqCtx, "getUpdates", req, &updates); err != nil {
		return nil, offset, err
	}

	next := offset
	for _, u := range updates {
		if u.UpdateID >= next {
			next = u.UpdateID + 1
		}
	}
	return updates, next, nil
}

// SendMessageRequest are the sendMessage parameters this bot uses.
type SendMessageRequest struct {
	ChatID           int64                 `json:"chat_id"`
	Text             string                `json:"text"`
	ParseMode        string                `json:"parse_mode,omitempty"`
	ReplyToMessageID int64                 `json:"reply_to_message_id,omitempty"`
	ReplyMarkup      *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// SendMessage sends a text message and returns the sent message (needed to
// delete placeholders later).
func (c *Client) SendMessage(ctx context.Context, req SendMessageRequest) (*Message, error) {
	var msg Message
	if err := c.call(ctx, "sendMessage", req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// DeleteMessage removes a previously sent message.
func (c *Client) DeleteMessage(ctx context.Context, chatID, messageID int64) error {
	req := struct {
		ChatID    int64 `json:"chat_id"`
		MessageID int64 `json:"message_id"`
	}{chatID, messageID}
	return c.call(ctx, "deleteMessage", req, nil)
}

// SendChatAction shows a transient activity indicator in the chat.
func (c *Client) SendChatAction(ctx context.Context, chatID int64, action string) error {
	req := struct {
		ChatID int64  `json:"chat_id"`
		Action string `json:"action"`
	}{chatID, action}
	return c.call(ctx, "sendChatAction", req, nil)
}

// AnswerCallbackQuery acknowledges a button press so the client stops its
// loading spinner.
func (c *Client) AnswerCallbackQuery(ctx context.Context, callbackID string) error {
	req := struct {
		CallbackQueryID string `json:"callback_query_id"`
	}{callbackID}
	return c.call(ctx, "answerCallbackQuery", req, nil)
}

// SetMyCommands publishes the bot's command menu.
func (c *Client) SetMyCommands(ctx context.Context, commands []BotCommand) error {
	req := struct {
		Commands []BotCommand `json:"commands"`
	}{commands}
	return c.call(ctx, "setMyCommands", req, nil)
}

// SendPhotoGroup uploads the given images as one media group (album).
func (c *Client) SendPhotoGroup(ctx context.Context, chatID int64, photos [][]byte) error {
	if len(photos) == 0 {
		return nil
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	type inputMedia struct {
		Type  string `json:"type"`
		Media string `json:"media"`
	}
	media := make([]inputMedia, 0, len(photos))
	for i, photo := range photos {
		name := fmt.Sprintf("photo%d", i)
		part, err := w.CreateFormFile(name, name+".png")
		if err != nil {
			return fmt.Errorf("creating media part: %w", err)
		}
		if _, err := part.Write(photo); err != nil {
			return fmt.Errorf("writing media part: %w", err)
		}
		media = append(media, inputMedia{Type: "photo", Media: "attach://" + name})
	}

	mediaJSON, err := json.Marshal(media)
	if err != nil {
		return fmt.Errorf("marshaling media list: %w", err)
	}
	if err := w.WriteField("chat_id", fmt.Sprintf("%d", chatID)); err != nil {
		return fmt.Errorf("writing chat_id field: %w", err)
	}
	if err := w.WriteField("media", string(mediaJSON)); err != nil {
		return fmt.Errorf("writing media field: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing multipart body: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMediaGroup", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return fmt.Errorf("creating sendMediaGroup request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling sendMediaGroup: %w", err)
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return fmt.Errorf("reading sendMediaGroup response: %w", readErr)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return fmt.Errorf("decoding sendMediaGroup response: %w", err)
	}
	if !apiResp.OK {
		return &APIError{Code: apiResp.ErrorCode, Description: apiResp.Description}
	}
	return nil
}
