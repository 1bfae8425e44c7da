// Package store persists per-user conversation mode so an active mode
// survives process restarts. The interface is a small keyed get/set/clear;
// the SQLite implementation writes synchronously before callers acknowledge
// a mode change to the user.
package store
