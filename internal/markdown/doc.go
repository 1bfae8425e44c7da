// Package markdown prepares generated analysis text for Telegram's
// MarkdownV2 dialect: splitting documents into heading-delimited sections,
// packing sections into size-bounded chunks, and escaping reserved
// characters without breaking well-formed inline markers.
package markdown
