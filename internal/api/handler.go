// Package api implements the appointment record service: a small HTTP surface
// over the CSV-backed record store, kept separate from the chat server so the
// chatbot can forward finalized bookings to it.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/records"
	"github.com/vidaisolutions/VIDAI-Chatbot-AI/pkg/logging"
)

// RecordStore is the store surface the record service needs.
type RecordStore interface {
	Append(ctx context.Context, rec records.Record) error
	ListAll(ctx context.Context) ([]records.Record, error)
}

// Handler serves the appointment record endpoints.
type Handler struct {
	store  RecordStore
	logger *logging.Logger
}

func NewHandler(store RecordStore, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{store: store, logger: logger}
}

// Routes returns the record-service routes, mounted at the server root.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.handleRoot)
	r.Get("/api/appointments", h.handleList)
	r.Post("/api/appointments", h.handleCreate)
	return r
}

func (h *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Appointment API is running"})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ListAll(r.Context())
	if err != nil {
		h.logger.Error("api: failed to list appointments", "error", err)
		http.Error(w, "failed to read appointments", http.StatusInternalServerError)
		return
	}

	appts := make([]records.Appointment, 0, len(rows))
	for _, row := range rows {
		// The store also holds expert-callback rows; only appointment
		// rows belong on this endpoint.
		if row["type"] != "" {
			continue
		}
		appts = append(appts, records.AppointmentFromRecord(row))
	}
	writeJSON(w, http.StatusOK, appts)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var appt records.Appointment
	if err := json.NewDecoder(r.Body).Decode(&appt); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if missing := missingFields(appt); missing != "" {
		http.Error(w, "missing required field: "+missing, http.StatusUnprocessableEntity)
		return
	}

	if err := h.store.Append(r.Context(), appt.Record()); err != nil {
		h.logger.Error("api: failed to save appointment", "error", err)
		http.Error(w, "failed to save appointment", http.StatusInternalServerError)
		return
	}
	h.logger.Info("api: appointment saved",
		"department", appt.Department,
		"doctor", appt.Doctor,
	)
	writeJSON(w, http.StatusCreated, map[string]string{
		"status":  "ok",
		"message": "appointment saved",
	})
}

// missingFields returns the first required field the payload leaves empty, or
// "" when the payload is complete. Partner and summary fields are optional.
func missingFields(a records.Appointment) string {
	required := []struct {
		name  string
		value string
	}{
		{"first_name", a.FirstName},
		{"last_name", a.LastName},
		{"sex", a.Sex},
		{"mobile", a.Mobile},
		{"dob", a.DOB},
		{"email", a.Email},
		{"department", a.Department},
		{"doctor", a.Doctor},
		{"date", a.Date},
		{"time_slot", a.TimeSlot},
		{"reason", a.Reason},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return f.name
		}
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
