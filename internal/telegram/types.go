// ABOUTME: Telegram Bot API wire types, the subset this bot consumes.
// ABOUTME: Updates, messages, chats, users, keyboards, and commands.

package telegram

// Chat types as reported by the Bot API.
const (
	ChatTypePrivate    = "private"
	ChatTypeGroup      = "group"
	ChatTypeSupergroup = "supergroup"
	ChatTypeChannel    = "channel"
)

// ParseModeMarkdownV2 selects Telegram's strict MarkdownV2 dialect.
const ParseModeMarkdownV2 = "MarkdownV2"

// Update is one long-poll event: a message or a callback query.
type Update struct {
	UpdateID      int64          `json:"update_id"`
	Message       *Message       `json:"message,omitempty"`
	CallbackQuery *CallbackQuery `json:"callback_query,omitempty"`
}

// Message is an inbound or outbound chat message.
type Message struct {
	MessageID int64  `json:"message_id"`
	Date      int64  `json:"date,omitempty"`
	Chat      *Chat  `json:"chat,omitempty"`
	From      *User  `json:"from,omitempty"`
	Text      string `json:"text,omitempty"`
}

// Chat identifies the conversation a message belongs to.
type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type,omitempty"`
}

// IsPrivate reports whether the chat is a one-to-one conversation.
func (c *Chat) IsPrivate() bool {
	return c != nil && c.Type == ChatTypePrivate
}

// IsGroup reports whether the chat is a group or supergroup.
func (c *Chat) IsGroup() bool {
	return c != nil && (c.Type == ChatTypeGroup || c.Type == ChatTypeSupergroup)
}

// User is a Telegram account.
type User struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot,omitempty"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// CallbackQuery is a button press carrying the button's opaque data token.
type CallbackQuery struct {
	ID      string   `json:"id"`
	From    *User    `json:"from"`
	Message *Message `json:"message,omitempty"`
	Data    string   `json:"data,omitempty"`
}

// InlineKeyboardButton is one labeled action: either a URL or a callback
// token delivered back when pressed.
type InlineKeyboardButton struct {
	Text         string `json:"text"`
	URL          string `json:"url,omitempty"`
	CallbackData string `json:"callback_data,omitempty"`
}

// InlineKeyboardMarkup is a grid of inline buttons attached to a message.
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

// BotCommand is one entry in the bot's command menu.
type BotCommand struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}
