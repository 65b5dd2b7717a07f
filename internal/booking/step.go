// Package booking owns the multi-step intake state machine: one Session per
// in-progress booking, a branch-aware step sequence, and an at-most-once
// finalize that persists the completed record.
package booking

import "fmt"

// Step is one question in the booking sequence.
type Step int

const (
	StepIdentityFirst Step = iota
	StepIdentityLast
	StepSex
	StepMobile
	StepDOB
	StepEmail
	StepPartnerChoice
	StepPartnerFirst
	StepPartnerLast
	StepDepartment
	StepDoctor
	StepDate
	StepTimeSlot
	StepReason
	StepReview
)

var stepFields = map[Step]string{
	StepIdentityFirst: "first_name",
	StepIdentityLast:  "last_name",
	StepSex:           "sex",
	StepMobile:        "mobile",
	StepDOB:           "dob",
	StepEmail:         "email",
	StepPartnerChoice: "partner_included",
	StepPartnerFirst:  "partner_first",
	StepPartnerLast:   "partner_last",
	StepDepartment:    "department",
	StepDoctor:        "doctor",
	StepDate:          "date",
	StepTimeSlot:      "time_slot",
	StepReason:        "reason",
}

// Field returns the answer key the step writes to. Review has none.
func (s Step) Field() string {
	return stepFields[s]
}

func (s Step) String() string {
	switch s {
	case StepIdentityFirst:
		return "identity_first"
	case StepIdentityLast:
		return "identity_last"
	case StepSex:
		return "sex"
	case StepMobile:
		return "mobile"
	case StepDOB:
		return "dob"
	case StepEmail:
		return "email"
	case StepPartnerChoice:
		return "partner_choice"
	case StepPartnerFirst:
		return "partner_first"
	case StepPartnerLast:
		return "partner_last"
	case StepDepartment:
		return "department"
	case StepDoctor:
		return "doctor"
	case StepDate:
		return "date"
	case StepTimeSlot:
		return "time_slot"
	case StepReason:
		return "reason"
	case StepReview:
		return "review"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// next returns the step that follows s given the accumulated answers. The
// only branch is the partner choice: answering "no" skips the two partner
// name steps.
func next(s Step, a Answers) Step {
	switch s {
	case StepPartnerChoice:
		if a.PartnerIncluded() {
			return StepPartnerFirst
		}
		return StepDepartment
	case StepReason:
		return StepReview
	case StepReview:
		return StepReview
	default:
		return s + 1
	}
}

// prev returns the step before s, branch-aware and clamped at the first step.
func prev(s Step, a Answers) Step {
	switch s {
	case StepIdentityFirst:
		return StepIdentityFirst
	case StepDepartment:
		if a.PartnerIncluded() {
			return StepPartnerLast
		}
		return StepPartnerChoice
	default:
		return s - 1
	}
}
