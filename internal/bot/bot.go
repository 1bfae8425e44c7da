// ABOUTME: Long-poll loop: fetches updates, dedupes them, and hands each
// ABOUTME: one to the dispatcher on its own goroutine, serialized per chat.

package bot

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/projectnostradamus/amenbot/internal/dedupe"
	"github.com/projectnostradamus/amenbot/internal/telegram"
)

const (
	pollRetryDelay = 3 * time.Second

	dedupeTTL     = 10 * time.Minute
	dedupeMaxSize = 4096
)

// Bot runs the getUpdates loop and fans updates out to the dispatcher.
type Bot struct {
	client      *telegram.Client
	dispatcher  *Dispatcher
	dedupe      *dedupe.Tracker
	logger      *slog.Logger
	pollTimeout time.Duration

	// chatLocks serializes handling per chat so two rapid messages from
	// one conversation cannot race on the mode store or interleave their
	// reply chunks.
	chatLocks sync.Map // chat ID -> *sync.Mutex
	wg        sync.WaitGroup
}

// New builds a bot around a Telegram client and a dispatcher.
func New(client *telegram.Client, dispatcher *Dispatcher, logger *slog.Logger, pollTimeout time.Duration) *Bot {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bot{
		client:      client,
		dispatcher:  dispatcher,
		dedupe:      dedupe.NewTracker(dedupeTTL, dedupeMaxSize),
		logger:      logger.With("component", "bot"),
		pollTimeout: pollTimeout,
	}
}

// Run polls for updates until ctx is canceled, then waits for in-flight
// handlers to finish.
func (b *Bot) Run(ctx context.Context) error {
	me, err := b.client.GetMe(ctx)
	if err != nil {
		return err
	}
	b.dispatcher.SetBotUsername(me.Username)
	b.logger.Info("bot authorized", "username", me.Username, "id", me.ID)

	b.publishCommandMenu(ctx)

	var offset int64
	for {
		updates, next, err := b.client.GetUpdates(ctx, offset, b.pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				b.wg.Wait()
				return ctx.Err()
			}
			b.logger.Error("polling updates", "error", err)
			select {
			case <-time.After(pollRetryDelay):
			case <-ctx.Done():
				b.wg.Wait()
				return ctx.Err()
			}
			continue
		}
		offset = next

		for _, upd := range updates {
			// CheckAndMark reports true when the ID was already handled.
			if b.dedupe.CheckAndMark(upd.UpdateID) {
				b.logger.Debug("skipping duplicate update", "update_id", upd.UpdateID)
				continue
			}
			b.wg.Add(1)
			go func(u telegram.Update) {
				defer b.wg.Done()
				b.handle(ctx, u)
			}(upd)
		}
	}
}

func (b *Bot) handle(ctx context.Context, upd telegram.Update) {
	chatID, hasChat := updateChatID(upd)

	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("panic handling update", "update_id", upd.UpdateID, "panic", r)
			if hasChat {
				_, _ = b.client.SendMessage(ctx, telegram.SendMessageRequest{
					ChatID: chatID,
					Text:   errGeneric,
				})
			}
		}
	}()

	if hasChat {
		mu := b.chatLock(chatID)
		mu.Lock()
		defer mu.Unlock()
	}
	b.dispatcher.HandleUpdate(ctx, upd)
}

func (b *Bot) chatLock(chatID int64) *sync.Mutex {
	if mu, ok := b.chatLocks.Load(chatID); ok {
		return mu.(*sync.Mutex)
	}
	mu, _ := b.chatLocks.LoadOrStore(chatID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func updateChatID(upd telegram.Update) (int64, bool) {
	switch {
	case upd.Message != nil && upd.Message.Chat != nil:
		return upd.Message.Chat.ID, true
	case upd.CallbackQuery != nil && upd.CallbackQuery.Message != nil && upd.CallbackQuery.Message.Chat != nil:
		return upd.CallbackQuery.Message.Chat.ID, true
	}
	return 0, false
}

// publishCommandMenu registers the command menu once the bot is authorized.
// A failure only costs the menu, never startup.
func (b *Bot) publishCommandMenu(ctx context.Context) {
	cmds, err := Commands()
	if err != nil {
		b.logger.Error("building command menu", "error", err)
		return
	}
	if err := b.client.SetMyCommands(ctx, cmds); err != nil {
		b.logger.Error("publishing command menu", "error", err)
		return
	}
	b.logger.Info("command menu published", "commands", len(cmds))
}
