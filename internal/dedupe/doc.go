// Package dedupe tracks recently processed update IDs so a restart or a
// long-poll hiccup that redelivers updates does not run the same analysis
// twice.
package dedupe
