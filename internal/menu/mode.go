// Package menu dispatches between the chatbot's top-level modes. The mode set
// is flat: every transition is a single unconditional move and "back to main"
// always lands on ModeMain.
package menu

import "fmt"

// Mode identifies one top-level chatbot surface.
type Mode int

const (
	ModeMain Mode = iota
	ModeBooking
	ModeCost
	ModeTreatments
	ModeLocation
	ModeExpert
	ModeStories
)

var modeNames = map[Mode]string{
	ModeMain:       "main",
	ModeBooking:    "booking",
	ModeCost:       "cost",
	ModeTreatments: "treatments",
	ModeLocation:   "location",
	ModeExpert:     "expert",
	ModeStories:    "stories",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode resolves a mode name sent by the client.
func ParseMode(name string) (Mode, error) {
	for mode, n := range modeNames {
		if n == name {
			return mode, nil
		}
	}
	return ModeMain, fmt.Errorf("menu: unknown mode %q", name)
}
