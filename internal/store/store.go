// ABOUTME: ModeStore interface for per-user conversation mode persistence.
// ABOUTME: Reads default to mode.None when a user has no stored record.

package store

import (
	"context"

	"github.com/projectnostradamus/amenbot/internal/mode"
)

// ModeStore is the durable per-user mode state. Implementations must treat
// each call as an independent atomic single-key operation; no cross-user
// transactions are required. Reads from concurrent goroutines must be safe.
//
// The store is only consulted for one-to-one conversations; group chats
// never carry mode state.
type ModeStore interface {
	// Get returns the user's current mode, or mode.None when the user has
	// never activated one.
	Get(ctx context.Context, userID int64) (mode.Mode, error)

	// Set durably records the user's mode before returning.
	Set(ctx context.Context, userID int64, m mode.Mode) error

	// Clear resets the user to mode.None. Equivalent to Set(userID, None).
	Clear(ctx context.Context, userID int64) error

	// Close releases any resources held by the store.
	Close() error
}
