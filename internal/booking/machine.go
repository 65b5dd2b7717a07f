package booking

import (
	"strings"
	"time"
)

// dateLayout is day/month/year, as the intake form asks for.
const dateLayout = "02/01/2006"

// Directory supplies the department/doctor/slot roster the machine validates
// choices against.
type Directory interface {
	IsDepartment(name string) bool
	DoctorsFor(department string) []string
	SlotsFor(department, doctor string) []string
}

// Machine applies the step transition rules to sessions. It holds no session
// state itself; all state lives in the Session passed to each call.
type Machine struct {
	dir Directory
}

// NewMachine creates a state machine validating against dir.
func NewMachine(dir Directory) *Machine {
	if dir == nil {
		panic("booking: directory required")
	}
	return &Machine{dir: dir}
}

// SubmitStep validates raw input for the session's current step. On success
// the value is stored and the cursor advances; on failure the session is left
// unchanged and the error describes what to fix.
func (m *Machine) SubmitStep(s *Session, raw string) error {
	val := strings.TrimSpace(raw)
	if val == "" {
		return &ValidationError{Step: s.Cursor, Msg: "please enter a value"}
	}

	switch s.Cursor {
	case StepDate:
		if _, err := time.Parse(dateLayout, val); err != nil {
			return &ValidationError{Step: s.Cursor, Msg: "invalid date format, use DD/MM/YYYY"}
		}
	case StepDepartment:
		if !m.dir.IsDepartment(val) {
			return &ValidationError{Step: s.Cursor, Msg: "please choose one of the listed departments"}
		}
	case StepDoctor:
		if !contains(m.dir.DoctorsFor(s.Answers["department"]), val) {
			return &ValidationError{Step: s.Cursor, Msg: "please choose a doctor from the list"}
		}
		// A doctor without configured slots is a dead end at the slot step;
		// refuse to advance past doctor selection.
		if len(m.dir.SlotsFor(s.Answers["department"], val)) == 0 {
			return &NoSlotsError{Doctor: val}
		}
	case StepTimeSlot:
		slots := m.dir.SlotsFor(s.Answers["department"], s.Answers["doctor"])
		if len(slots) == 0 {
			// Restored sessions can land here with a stale doctor choice.
			s.Cursor = StepDoctor
			return &NoSlotsError{Doctor: s.Answers["doctor"]}
		}
		if !contains(slots, val) {
			return &ValidationError{Step: s.Cursor, Msg: "please choose one of the available time slots"}
		}
	case StepReview:
		return &ValidationError{Step: s.Cursor, Msg: "booking is awaiting confirmation"}
	}

	s.Answers[s.Cursor.Field()] = val
	s.Cursor = next(s.Cursor, s.Answers)
	return nil
}

// GoBack moves the cursor to the previous step. It never fails and clamps at
// the first step. Previously stored answers are kept; resubmitting a step
// overwrites its value.
func (m *Machine) GoBack(s *Session) {
	s.Cursor = prev(s.Cursor, s.Answers)
}

// Edit returns the session from review to the first step, keeping answers so
// the user can resubmit or adjust them.
func (m *Machine) Edit(s *Session) {
	if s.AtReview() {
		s.Cursor = StepIdentityFirst
	}
}

// Cancel discards the booking and returns the session to the main menu.
func (m *Machine) Cancel(s *Session) {
	s.Reset()
}

// SlotChoices lists the slots offered at the time-slot step for the session's
// chosen doctor.
func (m *Machine) SlotChoices(s *Session) []string {
	return m.dir.SlotsFor(s.Answers["department"], s.Answers["doctor"])
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
