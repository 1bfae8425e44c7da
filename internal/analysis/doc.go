// Package analysis is the HTTP client for the analysis backend. Every call
// returns an opaque success flag with either a payload or a human-readable
// error string; transport faults are converted to a failed result with a
// fixed apology, never surfaced as errors to the dispatch layer.
package analysis
