// ABOUTME: Dispatch controller: routes commands and free text to mode
// ABOUTME: handlers and delivers rendered replies through the chunk pipeline.

package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/projectnostradamus/amenbot/internal/markdown"
	"github.com/projectnostradamus/amenbot/internal/mode"
	"github.com/projectnostradamus/amenbot/internal/store"
	"github.com/projectnostradamus/amenbot/internal/telegram"
)

// Transport is the outbound Telegram surface the dispatcher needs. The
// concrete client satisfies it; tests substitute a fake.
type Transport interface {
	SendMessage(ctx context.Context, req telegram.SendMessageRequest) (*telegram.Message, error)
	DeleteMessage(ctx context.Context, chatID, messageID int64) error
	SendChatAction(ctx context.Context, chatID int64, action string) error
	AnswerCallbackQuery(ctx context.Context, callbackID string) error
	SendPhotoGroup(ctx context.Context, chatID int64, photos [][]byte) error
}

// PlotFetcher resolves a plot reference from a handler response into image
// bytes. The analysis client satisfies it.
type PlotFetcher interface {
	PlotImage(ctx context.Context, hash string) ([]byte, error)
}

// DispatcherConfig carries the dispatcher's construction parameters.
type DispatcherConfig struct {
	Transport  Transport
	Registry   *mode.Registry
	Store      store.ModeStore
	Plots      PlotFetcher
	Logger     *slog.Logger
	ChunkLimit int
	SiteURL    string
	CoinURL    string
}

// Dispatcher owns the mode state machine and the render/deliver pipeline.
type Dispatcher struct {
	transport   Transport
	registry    *mode.Registry
	store       store.ModeStore
	plots       PlotFetcher
	logger      *slog.Logger
	chunkLimit  int
	siteURL     string
	coinURL     string
	botUsername string
}

// NewDispatcher builds a dispatcher from its dependencies.
func NewDispatcher(cfg DispatcherConfig) *Dispatcher {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		transport:  cfg.Transport,
		registry:   cfg.Registry,
		store:      cfg.Store,
		plots:      cfg.Plots,
		logger:     logger.With("component", "dispatcher"),
		chunkLimit: cfg.ChunkLimit,
		siteURL:    cfg.SiteURL,
		coinURL:    cfg.CoinURL,
	}
}

// SetBotUsername records the bot's own username so /command@bot mentions
// can be matched. Called once before updates start flowing.
func (d *Dispatcher) SetBotUsername(username string) {
	d.botUsername = username
}

// Commands is the command menu published to Telegram: the static commands
// plus one activation command per cataloged mode.
func Commands() ([]telegram.BotCommand, error) {
	entries, err := mode.Catalog()
	if err != nil {
		return nil, err
	}
	cmds := []telegram.BotCommand{
		{Command: "start", Description: "🤖 Start the bot"},
		{Command: "help", Description: "❓ Show help message"},
		{Command: "about", Description: "📖 About this bot"},
		{Command: "nostradamus", Description: "🌟 About Nostradamus"},
	}
	for _, e := range entries {
		cmds = append(cmds, telegram.BotCommand{Command: e.ID, Description: e.Description})
	}
	cmds = append(cmds,
		telegram.BotCommand{Command: "mode", Description: "🔍 Check current mode"},
		telegram.BotCommand{Command: "stop_mode", Description: "⏹️ Stop current mode"},
	)
	return cmds, nil
}

// HandleUpdate processes one inbound update. It never returns an error:
// every failure is logged and, where a chat is known, reported to the user.
func (d *Dispatcher) HandleUpdate(ctx context.Context, upd telegram.Update) {
	switch {
	case upd.CallbackQuery != nil:
		d.handleCallback(ctx, upd.CallbackQuery)
	case upd.Message != nil && upd.Message.Text != "":
		d.handleMessage(ctx, upd.Message)
	}
}

func (d *Dispatcher) handleMessage(ctx context.Context, msg *telegram.Message) {
	if msg.Chat == nil || msg.From == nil || msg.From.IsBot {
		return
	}
	logger := d.logger.With(
		"event_id", uuid.NewString(),
		"chat_id", msg.Chat.ID,
		"user_id", msg.From.ID,
	)

	if cmd, args, ok := parseCommand(msg.Text, d.botUsername); ok {
		d.handleCommand(ctx, logger, msg.Chat, msg.From, cmd, args)
		return
	}

	// Plain text: private chats consult the stored mode; groups always go
	// through the default handler and never carry mode state.
	current := mode.None
	if msg.Chat.IsPrivate() {
		var err error
		current, err = d.store.Get(ctx, msg.From.ID)
		if err != nil {
			logger.Error("reading mode state", "error", err)
		}
	}
	d.runQuery(ctx, logger, msg.Chat, msg.From, current, msg.Text)
}

func (d *Dispatcher) handleCommand(ctx context.Context, logger *slog.Logger, chat *telegram.Chat, from *telegram.User, cmd, args string) {
	logger = logger.With("command", cmd)
	switch cmd {
	case "start":
		d.sendStart(ctx, logger, chat, from)
	case "help":
		d.send(ctx, logger, chat.ID, helpText, nil)
	case "about":
		d.send(ctx, logger, chat.ID, aboutText(d.siteURL, d.coinURL), siteKeyboard(d.siteURL))
	case "nostradamus":
		d.send(ctx, logger, chat.ID, nostradamusText, siteKeyboard(d.siteURL))
	case "mode":
		d.checkMode(ctx, logger, chat, from)
	case "stop_mode":
		d.stopMode(ctx, logger, chat, from)
	default:
		if m, ok := mode.Parse(cmd); ok && m != mode.None {
			d.activate(ctx, logger, chat, from, m, args)
			return
		}
		logger.Debug("ignoring unknown command")
	}
}

// activate turns a mode on. In groups the mode is never persisted: the
// handler runs once with the supplied argument so one user cannot change a
// shared conversation's behavior for everyone.
func (d *Dispatcher) activate(ctx context.Context, logger *slog.Logger, chat *telegram.Chat, from *telegram.User, m mode.Mode, args string) {
	if !chat.IsPrivate() {
		d.runQuery(ctx, logger, chat, from, m, args)
		return
	}

	if err := d.store.Set(ctx, from.ID, m); err != nil {
		logger.Error("persisting mode", "mode", string(m), "error", err)
		d.send(ctx, logger, chat.ID, errGeneric, nil)
		return
	}
	logger.Info("mode activated", "mode", string(m))

	text := fmt.Sprintf("💬 %s Mode enabled. type further queries\n\nExample: *%s*\n\nEnter /stop_mode to switch to normal mode",
		m.Label(), m.Example())
	d.send(ctx, logger, chat.ID, text, coinKeyboard(d.coinURL, true))
}

func (d *Dispatcher) checkMode(ctx context.Context, logger *slog.Logger, chat *telegram.Chat, from *telegram.User) {
	current := mode.None
	if chat.IsPrivate() {
		var err error
		current, err = d.store.Get(ctx, from.ID)
		if err != nil {
			logger.Error("reading mode state", "error", err)
		}
	}

	var text string
	if current == mode.None {
		text = "No mode has been activated"
	} else {
		text = fmt.Sprintf("You are in *%s mode*", current.Label())
	}
	text += "\n\nType /help to see all commands!"
	d.send(ctx, logger, chat.ID, text, coinKeyboard(d.coinURL, true))
}

func (d *Dispatcher) stopMode(ctx context.Context, logger *slog.Logger, chat *telegram.Chat, from *telegram.User) {
	if !chat.IsPrivate() {
		return
	}

	current, err := d.store.Get(ctx, from.ID)
	if err != nil {
		logger.Error("reading mode state", "error", err)
	}

	var text string
	if current == mode.None {
		text = "No mode has been activated."
	} else {
		if err := d.store.Clear(ctx, from.ID); err != nil {
			logger.Error("clearing mode state", "error", err)
			d.send(ctx, logger, chat.ID, errGeneric, nil)
			return
		}
		logger.Info("mode cleared", "mode", string(current))
		text = fmt.Sprintf("✅ *%s Mode* removed. You can now chat normally.", current.Label())
	}
	text += "\n\n/help to get all of available commands"
	d.send(ctx, logger, chat.ID, text, coinKeyboard(d.coinURL, false))
}

func (d *Dispatcher) sendStart(ctx context.Context, logger *slog.Logger, chat *telegram.Chat, from *telegram.User) {
	if chat.IsPrivate() {
		d.send(ctx, logger, chat.ID, startTextPrivate(from.FirstName), startKeyboard(d.siteURL, d.botUsername))
		return
	}
	d.send(ctx, logger, chat.ID, startTextGroup, siteKeyboard(d.siteURL))
}

// runQuery is the shared handler pipeline: placeholder, handler call,
// format, sectionize, chunk, escape, deliver in order. The placeholder is
// removed on every exit path.
func (d *Dispatcher) runQuery(ctx context.Context, logger *slog.Logger, chat *telegram.Chat, from *telegram.User, m mode.Mode, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		d.send(ctx, logger, chat.ID, errNoQuery, coinKeyboard(d.coinURL, chat.IsPrivate()))
		return
	}

	if err := d.transport.SendChatAction(ctx, chat.ID, telegram.ChatActionTyping); err != nil {
		logger.Debug("sending chat action", "error", err)
	}

	placeholder, err := d.transport.SendMessage(ctx, telegram.SendMessageRequest{
		ChatID:    chat.ID,
		Text:      markdown.EscapeV2(analyzingText),
		ParseMode: telegram.ParseModeMarkdownV2,
	})
	if err != nil {
		logger.Error("sending placeholder", "error", err)
	}
	defer func() {
		if placeholder == nil {
			return
		}
		if err := d.transport.DeleteMessage(ctx, chat.ID, placeholder.MessageID); err != nil {
			logger.Debug("deleting placeholder", "error", err)
		}
	}()

	logger.Info("dispatching query", "mode", string(m))
	resp := d.registry.Resolve(m).Handle(ctx, mode.Request{
		UserID: from.ID,
		ChatID: chat.ID,
		Query:  query,
	})

	if !resp.OK {
		logger.Info("handler reported failure", "mode", string(m), "error", resp.Err)
		d.send(ctx, logger, chat.ID, "❌ "+resp.Err, nil)
		return
	}

	sections := markdown.Sectionize(resp.Markdown)
	chunks := markdown.ChunkSections(sections, d.chunkLimit)
	for i, chunk := range chunks {
		var markup *telegram.InlineKeyboardMarkup
		if i == len(chunks)-1 {
			markup = coinKeyboard(d.coinURL, chat.IsPrivate())
		}
		if !d.send(ctx, logger, chat.ID, chunk.Text(), markup) {
			return
		}
	}

	if len(resp.Plots) > 0 {
		d.sendPlots(ctx, logger, chat.ID, resp.Plots)
	}
}

func (d *Dispatcher) sendPlots(ctx context.Context, logger *slog.Logger, chatID int64, refs []string) {
	photos := make([][]byte, 0, len(refs))
	for _, ref := range refs {
		img, err := d.plots.PlotImage(ctx, ref)
		if err != nil {
			logger.Error("fetching plot image", "ref", ref, "error", err)
			continue
		}
		photos = append(photos, img)
	}
	if len(photos) == 0 {
		return
	}
	if err := d.transport.SendPhotoGroup(ctx, chatID, photos); err != nil {
		logger.Error("sending plot images", "error", err)
	}
}

func (d *Dispatcher) handleCallback(ctx context.Context, cb *telegram.CallbackQuery) {
	logger := d.logger.With("event_id", uuid.NewString(), "callback", cb.Data)
	if err := d.transport.AnswerCallbackQuery(ctx, cb.ID); err != nil {
		logger.Debug("answering callback query", "error", err)
	}
	if cb.Message == nil || cb.Message.Chat == nil || cb.From == nil {
		return
	}
	chat := cb.Message.Chat
	logger = logger.With("chat_id", chat.ID, "user_id", cb.From.ID)

	switch cb.Data {
	case callbackStopMode:
		d.stopMode(ctx, logger, chat, cb.From)
	case callbackStartCrypto:
		d.activate(ctx, logger, chat, cb.From, mode.Crypto, "")
	default:
		logger.Debug("ignoring unknown callback")
	}
}

// send escapes text and delivers it as one MarkdownV2 message. On failure
// it reports a fixed apology for permission faults and a generic error
// otherwise, then returns false.
func (d *Dispatcher) send(ctx context.Context, logger *slog.Logger, chatID int64, text string, markup *telegram.InlineKeyboardMarkup) bool {
	_, err := d.transport.SendMessage(ctx, telegram.SendMessageRequest{
		ChatID:      chatID,
		Text:        markdown.EscapeV2(text),
		ParseMode:   telegram.ParseModeMarkdownV2,
		ReplyMarkup: markup,
	})
	if err == nil {
		return true
	}
	logger.Error("sending message", "error", err)

	report := errGeneric
	if telegram.IsForbidden(err) {
		report = errForbidden
	}
	if _, rerr := d.transport.SendMessage(ctx, telegram.SendMessageRequest{ChatID: chatID, Text: report}); rerr != nil {
		logger.Debug("reporting send failure", "error", rerr)
	}
	return false
}

// parseCommand splits "/cmd@bot args" into its command name and argument
// string. Commands addressed to a different bot are not treated as
// commands at all.
func parseCommand(text, botUsername string) (cmd, args string, ok bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}
	head, rest, _ := strings.Cut(text[1:], " ")
	if head == "" {
		return "", "", false
	}
	if name, mention, found := strings.Cut(head, "@"); found {
		if botUsername != "" && !strings.EqualFold(mention, botUsername) {
			return "", "", false
		}
		head = name
	}
	return strings.ToLower(head), strings.TrimSpace(rest), true
}
