package booking

import (
	"strings"

	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/menu"
)

// Answers accumulates one validated value per visited step. Values are only
// ever added or overwritten; clearing happens through Session.Reset.
type Answers map[string]string

// ParseYesNo normalizes a yes/no answer: yes, y, true and 1 (any case) mean
// yes, everything else means no.
func ParseYesNo(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "y", "true", "1":
		return true
	}
	return false
}

// PartnerIncluded reports whether the partner branch was taken.
func (a Answers) PartnerIncluded() bool {
	return ParseYesNo(a["partner_included"])
}

// Session is the mutable state of one in-progress booking. It is mutated only
// by the state machine operations and is serializable for the session store.
type Session struct {
	ID           string    `json:"id"`
	Mode         menu.Mode `json:"mode"`
	Cursor       Step      `json:"cursor"`
	Answers      Answers   `json:"answers"`
	WelcomeShown bool      `json:"welcome_shown"`
}

// NewSession creates an empty session at the main menu.
func NewSession(id string) *Session {
	return &Session{
		ID:      id,
		Mode:    menu.ModeMain,
		Cursor:  StepIdentityFirst,
		Answers: make(Answers),
	}
}

// StartBooking switches the session into the booking flow at the first step.
// Any answers from an abandoned earlier attempt are discarded.
func (s *Session) StartBooking() {
	s.Mode = menu.ModeBooking
	s.Cursor = StepIdentityFirst
	s.Answers = make(Answers)
}

// Reset clears all booking state and returns the session to the main menu.
func (s *Session) Reset() {
	s.Mode = menu.ModeMain
	s.Cursor = StepIdentityFirst
	s.Answers = make(Answers)
}

// AtReview reports whether the session is parked on the review step of an
// active booking, the only state finalize accepts.
func (s *Session) AtReview() bool {
	return s.Mode == menu.ModeBooking && s.Cursor == StepReview
}
