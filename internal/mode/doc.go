// Package mode defines the closed set of analysis modes a conversation can
// be in, the catalog describing each mode, and the registry that resolves a
// mode to its handler with a guaranteed default fallback.
package mode
