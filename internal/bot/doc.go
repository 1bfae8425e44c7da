// Package bot wires Telegram updates to the analysis mode machinery: the
// long-poll loop, per-chat serialization, command routing, mode
// transitions, and the markdown render/chunk/escape delivery pipeline.
package bot
