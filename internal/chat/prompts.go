package chat

import (
	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/booking"
	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/clinic"
)

// questions holds the text shown for each intake step.
var questions = map[booking.Step]string{
	booking.StepIdentityFirst: "Please enter your first name:",
	booking.StepIdentityLast:  "Please enter your last name:",
	booking.StepSex:           "Sex assigned at birth (Female / Male / Prefer not to say):",
	booking.StepMobile:        "Mobile number (for confirmation):",
	booking.StepDOB:           "Date of birth (DD/MM/YYYY):",
	booking.StepEmail:         "Email ID:",
	booking.StepPartnerChoice: "Would you like to add partner details? (yes/no)",
	booking.StepPartnerFirst:  "Partner's First Name:",
	booking.StepPartnerLast:   "Partner's Last Name:",
	booking.StepDepartment:    "Which department would you like to book an appointment with?",
	booking.StepDoctor:        "Choose a doctor from the list:",
	booking.StepDate:          "Please pick a preferred Date (DD/MM/YYYY):",
	booking.StepTimeSlot:      "Please pick a time slot:",
	booking.StepReason:        "Briefly tell us your reason for appointment:",
	booking.StepReview:        "Please review your appointment details and confirm.",
}

// choicesFor lists the selectable values for enumerated steps; free-text
// steps return nil.
func choicesFor(s *booking.Session) []string {
	switch s.Cursor {
	case booking.StepPartnerChoice:
		return []string{"yes", "no"}
	case booking.StepDepartment:
		return clinic.Departments()
	case booking.StepDoctor:
		return clinic.DoctorsFor(s.Answers["department"])
	case booking.StepTimeSlot:
		return clinic.SlotsFor(s.Answers["department"], s.Answers["doctor"])
	}
	return nil
}

// reviewOrder is the canonical field order for the review summary.
var reviewOrder = []string{
	"first_name", "last_name", "sex", "mobile", "dob", "email",
	"partner_included", "partner_first", "partner_last",
	"department", "doctor", "date", "time_slot", "reason",
}
