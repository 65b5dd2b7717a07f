// Package records provides the durable append-only store for finalized
// appointment and expert-callback records.
package records

import (
	"fmt"
	"strconv"
	"time"
)

// Appointment column order is fixed; the on-disk header starts with exactly
// these columns.
var appointmentColumns = []string{
	"first_name", "last_name", "sex", "mobile", "dob", "email",
	"partner_included", "partner_first", "partner_last", "department",
	"doctor", "date", "time_slot", "reason", "summary", "created_at",
}

// Callback-only columns follow the appointment columns. Rows of either kind
// leave the other kind's cells empty.
var callbackColumns = []string{"name", "phone", "preference", "type"}

// Header returns the full on-disk column order.
func Header() []string {
	h := make([]string, 0, len(appointmentColumns)+len(callbackColumns))
	h = append(h, appointmentColumns...)
	h = append(h, callbackColumns...)
	return h
}

// Record maps column names to cell values. Unset columns are written empty.
type Record map[string]string

// Appointment is the finalized, immutable result of a completed booking.
type Appointment struct {
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Sex             string    `json:"sex"`
	Mobile          string    `json:"mobile"`
	DOB             string    `json:"dob"`
	Email           string    `json:"email"`
	PartnerIncluded bool      `json:"partner_included"`
	PartnerFirst    string    `json:"partner_first"`
	PartnerLast     string    `json:"partner_last"`
	Department      string    `json:"department"`
	Doctor          string    `json:"doctor"`
	Date            string    `json:"date"`
	TimeSlot        string    `json:"time_slot"`
	Reason          string    `json:"reason"`
	Summary         string    `json:"summary"`
	CreatedAt       time.Time `json:"created_at"`
}

// Record converts the appointment into its column/value form.
func (a Appointment) Record() Record {
	return Record{
		"first_name":       a.FirstName,
		"last_name":        a.LastName,
		"sex":              a.Sex,
		"mobile":           a.Mobile,
		"dob":              a.DOB,
		"email":            a.Email,
		"partner_included": strconv.FormatBool(a.PartnerIncluded),
		"partner_first":    a.PartnerFirst,
		"partner_last":     a.PartnerLast,
		"department":       a.Department,
		"doctor":           a.Doctor,
		"date":             a.Date,
		"time_slot":        a.TimeSlot,
		"reason":           a.Reason,
		"summary":          a.Summary,
		"created_at":       a.CreatedAt.Format(time.RFC3339),
	}
}

// AppointmentFromRecord rebuilds an appointment from a stored row. Cells that
// fail to parse are left at their zero value; stored rows are trusted.
func AppointmentFromRecord(r Record) Appointment {
	included, _ := strconv.ParseBool(r["partner_included"])
	created, _ := time.Parse(time.RFC3339, r["created_at"])
	return Appointment{
		FirstName:       r["first_name"],
		LastName:        r["last_name"],
		Sex:             r["sex"],
		Mobile:          r["mobile"],
		DOB:             r["dob"],
		Email:           r["email"],
		PartnerIncluded: included,
		PartnerFirst:    r["partner_first"],
		PartnerLast:     r["partner_last"],
		Department:      r["department"],
		Doctor:          r["doctor"],
		Date:            r["date"],
		TimeSlot:        r["time_slot"],
		Reason:          r["reason"],
		Summary:         r["summary"],
		CreatedAt:       created,
	}
}

// Callback is a request for an expert to call the patient back.
type Callback struct {
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Preference string    `json:"preference"`
	Type       string    `json:"type"`
	CreatedAt  time.Time `json:"created_at"`
}

// Record converts the callback into its column/value form.
func (c Callback) Record() Record {
	return Record{
		"name":       c.Name,
		"phone":      c.Phone,
		"email":      c.Email,
		"preference": c.Preference,
		"type":       c.Type,
		"created_at": c.CreatedAt.Format(time.RFC3339),
	}
}

// StorageError reports that the backing medium was unreachable or unwritable.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("records: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
