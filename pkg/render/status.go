package render

import "time"

// DefaultMessageTimeout is how long a StatusMessage stays on the message bar.
const DefaultMessageTimeout = 5 * time.Second

// StatusMessage is a transient notification shown on the message bar.
type StatusMessage struct {
	Text    string
	Created time.Time
}

// NewStatusMessage stamps text with now.
func NewStatusMessage(text string, now time.Time) StatusMessage {
	return StatusMessage{Text: text, Created: now}
}

// Visible reports whether the message is still within its timeout at now.
// time.Time carries a monotonic reading, so Sub is immune to clock changes.
func (m StatusMessage) Visible(now time.Time, timeout time.Duration) bool {
	if m.Text == "" {
		return false
	}
	return now.Sub(m.Created) < timeout
}
