// ABOUTME: Mode enumeration for the analysis state machine.
// ABOUTME: One mode (or none) is active per private conversation at a time.

package mode

// Mode selects which analysis handler serves a conversation's messages.
// The zero value None means free-form analysis.
type Mode string

const (
	None       Mode = ""
	Crypto     Mode = "crypto"
	Confidence Mode = "confidence"
	Technical  Mode = "technical"
	CryptoInfo Mode = "crypto_info"
	Price      Mode = "price"
)

// All returns every non-None mode in catalog order.
func All() []Mode {
	return []Mode{Crypto, Confidence, Technical, CryptoInfo, Price}
}

// Parse maps a stored or user-supplied string onto the mode set. Unknown
// values report ok=false; callers fall back to the default handler rather
// than failing.
func Parse(s string) (Mode, bool) {
	switch Mode(s) {
	case None, Crypto, Confidence, Technical, CryptoInfo, Price:
		return Mode(s), true
	default:
		return None, false
	}
}

// Label returns the human-readable name shown in mode confirmations.
func (m Mode) Label() string {
	if e, ok := catalogByID[string(m)]; ok {
		return e.Label
	}
	return string(m)
}

// Example returns the sample query shown when the mode is activated.
func (m Mode) Example() string {
	if e, ok := catalogByID[string(m)]; ok {
		return e.Example
	}
	return ""
}
