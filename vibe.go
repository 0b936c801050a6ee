package resdesk

import "time"

// VibeInterval is the time between two vibe rotations.
const VibeInterval = 9 * time.Second

// VibeMessages are the writing reminders shown in rotation.
var VibeMessages = []string{
	"Explain intuition before equations.",
	"Clearly state assumptions and constraints.",
	"Negative results are still valuable.",
	"Compare with prior work honestly.",
	"Write so your future self can understand.",
	"Focus on method clarity, not performance hype.",
}

// VibeRotator cycles through VibeMessages.
// It is owned by a single session and is not safe for concurrent use.
type VibeRotator struct {
	surface DisplaySurface
	index   int
}

// NewVibeRotator returns a rotator that starts at the first message.
func NewVibeRotator(surface DisplaySurface) *VibeRotator {
	return &VibeRotator{surface: surface}
}

// Rotate shows the current message and advances to the next one.
func (r *VibeRotator) Rotate() string {
	msg := VibeMessages[r.index]
	if r.surface != nil {
		r.surface.SetText(TargetVibe, msg)
	}
	r.index = (r.index + 1) % len(VibeMessages)
	return msg
}
