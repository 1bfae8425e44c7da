// Package telegram is a minimal Telegram Bot API client covering what the
// bot needs: long-poll updates, MarkdownV2 messages with inline keyboards,
// chat actions, message deletion, photo groups, the command menu, and
// callback-query acknowledgement.
package telegram
