// ABOUTME: Inline keyboard layouts attached to bot replies.
// ABOUTME: Buy link plus an optional switch-to-normal callback button.

package bot

import (
	"fmt"

	"github.com/projectnostradamus/amenbot/internal/telegram"
)

// Callback tokens carried by inline buttons.
const (
	callbackStopMode    = "stop_mode"
	callbackStartCrypto = "crypto"
)

// coinKeyboard is the standard reply keyboard: a buy link, plus the
// switch-to-normal button in private chats where a mode can be active.
func coinKeyboard(coinURL string, includeSwitch bool) *telegram.InlineKeyboardMarkup {
	rows := [][]telegram.InlineKeyboardButton{
		{{Text: "Buy $AMEN", URL: coinURL}},
	}
	if includeSwitch {
		rows = append(rows, []telegram.InlineKeyboardButton{
			{Text: "Switch to Normal Mode", CallbackData: callbackStopMode},
		})
	}
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// siteKeyboard links to the project site.
func siteKeyboard(siteURL string) *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: [][]telegram.InlineKeyboardButton{
		{{Text: "🌐 Nostradamus", URL: siteURL}},
	}}
}

// startKeyboard is shown on /start in private chats: jump into analysis
// mode, visit the site, or add the bot to a group.
func startKeyboard(siteURL, botUsername string) *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: [][]telegram.InlineKeyboardButton{
		{{Text: "🤖 Start Analysis", CallbackData: callbackStartCrypto}},
		{
			{Text: "🌐 Nostradamus", URL: siteURL},
			{Text: "💬 Add to Group", URL: fmt.Sprintf("https://t.me/%s?startgroup=true", botUsername)},
		},
	}}
}
