package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/clinic"
)

// fakeDirectory lets tests configure rosters the static clinic data cannot
// express, like a doctor with zero slots.
type fakeDirectory struct {
	departments map[string]map[string][]string // dept -> doctor -> slots
}

func (d *fakeDirectory) IsDepartment(name string) bool {
	_, ok := d.departments[name]
	return ok
}

func (d *fakeDirectory) DoctorsFor(department string) []string {
	var out []string
	for doc := range d.departments[department] {
		out = append(out, doc)
	}
	return out
}

func (d *fakeDirectory) SlotsFor(department, doctor string) []string {
	return d.departments[department][doctor]
}

// noPartnerInputs is one valid pass through the flow with the partner branch
// declined.
var noPartnerInputs = []string{
	"Maya", "Kulkarni", "Female", "+1 619 555 0111", "12/04/1990", "maya@example.com",
	"no",
	"Andrology", "Dr. Arun Menon", "15/03/2025", "11:00 AM", "Initial consultation",
}

func newBookingSession() *Session {
	s := NewSession("sess-1")
	s.StartBooking()
	return s
}

func TestFullFlowWithoutPartnerReachesReview(t *testing.T) {
	m := NewMachine(clinic.StaticDirectory{})
	s := newBookingSession()

	for _, input := range noPartnerInputs {
		require.NoError(t, m.SubmitStep(s, input), "input %q at step %s", input, s.Cursor)
	}

	assert.Equal(t, StepReview, s.Cursor)
	assert.True(t, s.AtReview())
	assert.Empty(t, s.Answers["partner_first"])
	assert.Empty(t, s.Answers["partner_last"])
	assert.Equal(t, "no", s.Answers["partner_included"])
}

func TestPartnerBranchAddsTwoSteps(t *testing.T) {
	m := NewMachine(clinic.StaticDirectory{})
	s := newBookingSession()

	inputs := []string{
		"Maya", "Kulkarni", "Female", "+1 619 555 0111", "12/04/1990", "maya@example.com",
		"Yes",
		"Arjun", "Kulkarni",
		"Andrology", "Dr. Arun Menon", "15/03/2025", "11:00 AM", "Initial consultation",
	}
	for _, input := range inputs {
		require.NoError(t, m.SubmitStep(s, input), "input %q at step %s", input, s.Cursor)
	}

	assert.Equal(t, StepReview, s.Cursor)
	assert.Equal(t, "Arjun", s.Answers["partner_first"])
	assert.Equal(t, "Kulkarni", s.Answers["partner_last"])
	assert.True(t, s.Answers.PartnerIncluded())
}

func TestEmptyInputRejectedEverywhere(t *testing.T) {
	m := NewMachine(clinic.StaticDirectory{})
	s := newBookingSession()

	err := m.SubmitStep(s, "   ")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, StepIdentityFirst, s.Cursor)
	assert.Empty(t, s.Answers)
}

func TestParseYesNo(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"yes", true}, {"YES", true}, {"y", true}, {"TRUE", true}, {"1", true},
		{" yes ", true},
		{"no", false}, {"n", false}, {"maybe", false}, {"0", false}, {"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseYesNo(tt.in), "input %q", tt.in)
	}
}

func TestDateValidation(t *testing.T) {
	m := NewMachine(clinic.StaticDirectory{})
	s := newBookingSession()

	for _, input := range noPartnerInputs[:9] { // up to and including doctor
		require.NoError(t, m.SubmitStep(s, input))
	}
	require.Equal(t, StepDate, s.Cursor)

	err := m.SubmitStep(s, "31/02/2025")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr, "31/02/2025 is not a calendar date")
	assert.Equal(t, StepDate, s.Cursor)
	assert.Empty(t, s.Answers["date"])

	require.NoError(t, m.SubmitStep(s, "15/03/2025"))
	assert.Equal(t, "15/03/2025", s.Answers["date"])
	assert.Equal(t, StepTimeSlot, s.Cursor)
}

func TestDepartmentConstrainsDoctors(t *testing.T) {
	m := NewMachine(clinic.StaticDirectory{})
	s := newBookingSession()

	for _, input := range noPartnerInputs[:7] {
		require.NoError(t, m.SubmitStep(s, input))
	}
	require.Equal(t, StepDepartment, s.Cursor)

	var verr *ValidationError
	require.ErrorAs(t, m.SubmitStep(s, "Cardiology"), &verr)

	require.NoError(t, m.SubmitStep(s, "Andrology"))
	require.Equal(t, StepDoctor, s.Cursor)

	// Only Andrology doctors are accepted.
	require.ErrorAs(t, m.SubmitStep(s, "Dr. Priya Nair"), &verr)
	for _, doc := range []string{"Dr. Arun Menon", "Dr. Sanjay Gupta", "Dr. Rohit Verma"} {
		copySess := *s
		copySess.Answers = Answers{}
		for k, v := range s.Answers {
			copySess.Answers[k] = v
		}
		require.NoError(t, m.SubmitStep(&copySess, doc), doc)
	}
}

func TestSlotConstrainedToChosenDoctor(t *testing.T) {
	m := NewMachine(clinic.StaticDirectory{})
	s := newBookingSession()

	for _, input := range noPartnerInputs[:10] {
		require.NoError(t, m.SubmitStep(s, input))
	}
	require.Equal(t, StepTimeSlot, s.Cursor)

	var verr *ValidationError
	require.ErrorAs(t, m.SubmitStep(s, "8:00 AM"), &verr)
	require.NoError(t, m.SubmitStep(s, "11:00 AM"))
}

func TestDoctorWithoutSlotsIsDeadEnd(t *testing.T) {
	dir := &fakeDirectory{departments: map[string]map[string][]string{
		"Andrology": {
			"Dr. Arun Menon": {"11:00 AM"},
			"Dr. No Slots":   {},
		},
	}}
	m := NewMachine(dir)
	s := newBookingSession()

	for _, input := range noPartnerInputs[:8] {
		require.NoError(t, m.SubmitStep(s, input))
	}
	require.Equal(t, StepDoctor, s.Cursor)

	err := m.SubmitStep(s, "Dr. No Slots")
	var nerr *NoSlotsError
	require.ErrorAs(t, err, &nerr)
	assert.Contains(t, nerr.Error(), "no slots")
	assert.Equal(t, StepDoctor, s.Cursor, "cursor must not advance past doctor")

	// Re-selecting a doctor with slots recovers.
	require.NoError(t, m.SubmitStep(s, "Dr. Arun Menon"))
	assert.Equal(t, StepDate, s.Cursor)
}

func TestGoBackThenResubmitIsIdempotent(t *testing.T) {
	m := NewMachine(clinic.StaticDirectory{})
	s := newBookingSession()

	for _, input := range noPartnerInputs[:6] {
		require.NoError(t, m.SubmitStep(s, input))
	}
	before := make(Answers, len(s.Answers))
	for k, v := range s.Answers {
		before[k] = v
	}
	cursor := s.Cursor

	m.GoBack(s)
	assert.Equal(t, cursor-1, s.Cursor)
	require.NoError(t, m.SubmitStep(s, noPartnerInputs[5]))

	assert.Equal(t, before, s.Answers)
	assert.Equal(t, cursor, s.Cursor)
}

func TestGoBackClampsAtFirstStep(t *testing.T) {
	m := NewMachine(clinic.StaticDirectory{})
	s := newBookingSession()

	m.GoBack(s)
	m.GoBack(s)
	assert.Equal(t, StepIdentityFirst, s.Cursor)
}

func TestGoBackFromDepartmentIsBranchAware(t *testing.T) {
	m := NewMachine(clinic.StaticDirectory{})

	// Partner declined: department goes back to the partner choice.
	s := newBookingSession()
	for _, input := range noPartnerInputs[:7] {
		require.NoError(t, m.SubmitStep(s, input))
	}
	require.Equal(t, StepDepartment, s.Cursor)
	m.GoBack(s)
	assert.Equal(t, StepPartnerChoice, s.Cursor)

	// Partner included: department goes back to the partner last name.
	s2 := newBookingSession()
	inputs := append(append([]string{}, noPartnerInputs[:6]...), "yes", "Arjun", "Kulkarni")
	for _, input := range inputs {
		require.NoError(t, m.SubmitStep(s2, input))
	}
	require.Equal(t, StepDepartment, s2.Cursor)
	m.GoBack(s2)
	assert.Equal(t, StepPartnerLast, s2.Cursor)
}

func TestEditReturnsToFirstStepKeepingAnswers(t *testing.T) {
	m := NewMachine(clinic.StaticDirectory{})
	s := newBookingSession()
	for _, input := range noPartnerInputs {
		require.NoError(t, m.SubmitStep(s, input))
	}
	require.True(t, s.AtReview())

	m.Edit(s)
	assert.Equal(t, StepIdentityFirst, s.Cursor)
	assert.Equal(t, "Maya", s.Answers["first_name"])
}

func TestCancelDiscardsAnswers(t *testing.T) {
	m := NewMachine(clinic.StaticDirectory{})
	s := newBookingSession()
	for _, input := range noPartnerInputs[:4] {
		require.NoError(t, m.SubmitStep(s, input))
	}

	m.Cancel(s)
	assert.Empty(t, s.Answers)
	assert.Equal(t, StepIdentityFirst, s.Cursor)
	assert.False(t, s.AtReview())
}
