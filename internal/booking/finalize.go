package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/records"
	"github.com/vidaisolutions/VIDAI-Chatbot-AI/pkg/logging"
)

// recordSummary is the provenance string stamped on every finalized booking.
const recordSummary = "Appointment booked via chatbot"

// Store persists finalized records. Append failures abort the finalize.
type Store interface {
	Append(ctx context.Context, rec records.Record) error
}

// Forwarder posts a finalized appointment to the remote record service.
// Failures are advisory; local persistence is authoritative.
type Forwarder interface {
	Submit(ctx context.Context, appt records.Appointment) error
}

// Provider turns a prompt into confirmation copy. On any failure the
// finalizer substitutes a fixed template instead.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// FinalizeMetrics is the subset of booking metrics finalize reports to.
type FinalizeMetrics interface {
	BookingFinalized()
	ForwardFailed()
	ProviderFellBack()
}

// Finalizer runs the terminal transition: build the record, persist it,
// best-effort forward it, produce a confirmation message, reset the session.
type Finalizer struct {
	store     Store
	forwarder Forwarder
	provider  Provider
	metrics   FinalizeMetrics
	logger    *logging.Logger
	now       func() time.Time
}

// NewFinalizer wires the finalize collaborators. forwarder, provider and
// metrics may be nil; store is required.
func NewFinalizer(store Store, forwarder Forwarder, provider Provider, metrics FinalizeMetrics, logger *logging.Logger) *Finalizer {
	if store == nil {
		panic("booking: store required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Finalizer{
		store:     store,
		forwarder: forwarder,
		provider:  provider,
		metrics:   metrics,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Finalize persists the session's booking and resets the session. It only
// acts when the session is at review inside an active booking; any other
// state, including a session already reset by a previous call, is a no-op.
// That makes a repeated confirm click append at most one record.
func (f *Finalizer) Finalize(ctx context.Context, s *Session) (string, error) {
	if !s.AtReview() {
		return "", nil
	}

	appt := f.buildAppointment(s.Answers)

	if err := f.store.Append(ctx, appt.Record()); err != nil {
		// Local persistence is authoritative; do not reset so the user can
		// retry the confirmation.
		return "", fmt.Errorf("booking: save appointment: %w", err)
	}
	if f.metrics != nil {
		f.metrics.BookingFinalized()
	}

	if f.forwarder != nil {
		if err := f.forwarder.Submit(ctx, appt); err != nil {
			f.logger.Warn("booking: remote forward failed, appointment saved locally", "error", err)
			if f.metrics != nil {
				f.metrics.ForwardFailed()
			}
		}
	}

	msg := f.confirmation(ctx, appt)

	s.Reset()
	f.logger.Info("booking: appointment finalized",
		"session_id", s.ID,
		"department", appt.Department,
		"doctor", appt.Doctor,
	)
	return msg, nil
}

func (f *Finalizer) buildAppointment(a Answers) records.Appointment {
	return records.Appointment{
		FirstName:       a["first_name"],
		LastName:        a["last_name"],
		Sex:             a["sex"],
		Mobile:          a["mobile"],
		DOB:             a["dob"],
		Email:           a["email"],
		PartnerIncluded: a.PartnerIncluded(),
		PartnerFirst:    a["partner_first"],
		PartnerLast:     a["partner_last"],
		Department:      a["department"],
		Doctor:          a["doctor"],
		Date:            a["date"],
		TimeSlot:        a["time_slot"],
		Reason:          a["reason"],
		Summary:         recordSummary,
		CreatedAt:       f.now(),
	}
}

func (f *Finalizer) confirmation(ctx context.Context, appt records.Appointment) string {
	fallback := fmt.Sprintf(
		"Thank you %s! Your appointment with %s on %s at %s has been confirmed. We look forward to seeing you! Warm regards, Avenir Fertility Clinic",
		appt.FirstName, appt.Doctor, appt.Date, appt.TimeSlot,
	)
	if f.provider == nil {
		return fallback
	}

	prompt := fmt.Sprintf(`Create a warm, professional confirmation message for a fertility clinic appointment.
Include: patient name, doctor, date/time, and a reassuring tone. Keep it to 3-4 sentences and also include Thank you for connecting with Avenir Fertility! Our team will reach out soon.

Details: patient %s %s, doctor %s, department %s, date %s, time %s`,
		appt.FirstName, appt.LastName, appt.Doctor, appt.Department, appt.Date, appt.TimeSlot)

	msg, err := f.provider.Generate(ctx, prompt)
	if err != nil || msg == "" {
		f.logger.Warn("booking: confirmation generation failed, using fallback", "error", err)
		if f.metrics != nil {
			f.metrics.ProviderFellBack()
		}
		return fallback
	}
	return msg
}
