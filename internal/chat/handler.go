// Package chat exposes the conversational surface over HTTP and WebSocket:
// menu navigation, the step-by-step booking flow, and the expert callback
// form.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/booking"
	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/menu"
	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/observability/metrics"
	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/records"
	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/session"
	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/textgen"
	"github.com/vidaisolutions/VIDAI-Chatbot-AI/pkg/logging"
)

// RecordStore is the subset of the record store the chat surface writes to
// directly (expert callbacks; appointments go through the finalizer).
type RecordStore interface {
	Append(ctx context.Context, rec records.Record) error
}

// Handler serves the chat surface.
type Handler struct {
	sessions  session.Store
	machine   *booking.Machine
	finalizer *booking.Finalizer
	store     RecordStore
	provider  textgen.Provider
	metrics   *metrics.BookingMetrics
	logger    *logging.Logger
	now       func() time.Time
}

// NewHandler wires the chat surface. provider and metrics may be nil.
func NewHandler(sessions session.Store, machine *booking.Machine, finalizer *booking.Finalizer, store RecordStore, provider textgen.Provider, m *metrics.BookingMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		sessions:  sessions,
		machine:   machine,
		finalizer: finalizer,
		store:     store,
		provider:  provider,
		metrics:   m,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Event is one user action sent by the client.
type Event struct {
	SessionID string `json:"session_id"`
	Type      string `json:"type"`  // "menu", "input", "back", "confirm", "edit", "cancel", "treatment"
	Value     string `json:"value"` // mode name, step input or treatment name
}

// Reply is what the client renders after an event.
type Reply struct {
	SessionID string            `json:"session_id"`
	Mode      string            `json:"mode"`
	View      *menu.View        `json:"view,omitempty"`
	Text      string            `json:"text,omitempty"`   // bot message (generated or fallback copy)
	Prompt    string            `json:"prompt,omitempty"` // current booking question
	Step      string            `json:"step,omitempty"`
	Choices   []string          `json:"choices,omitempty"`
	Review    map[string]string `json:"review,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// Routes returns the chat routes, mounted under /chat by the server.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/session", h.handleNewSession)
	r.Post("/event", h.handleEvent)
	r.Post("/callback", h.handleCallback)
	r.Get("/state", h.handleState)
	r.Get("/ws", h.HandleWebSocket)
	return r
}

func (h *Handler) handleNewSession(w http.ResponseWriter, r *http.Request) {
	s := booking.NewSession(uuid.NewString())
	s.WelcomeShown = true
	if err := h.sessions.Save(r.Context(), s); err != nil {
		h.logger.Error("chat: failed to create session", "error", err)
		http.Error(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	view := menu.Route(menu.ModeMain)
	h.logger.Info("chat: session started", "session_id", s.ID)
	writeJSON(w, http.StatusCreated, Reply{
		SessionID: s.ID,
		Mode:      s.Mode.String(),
		View:      &view,
	})
}

func (h *Handler) handleEvent(w http.ResponseWriter, r *http.Request) {
	var ev Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if ev.SessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	s, err := h.sessions.Get(r.Context(), ev.SessionID)
	if errors.Is(err, session.ErrNotFound) {
		http.Error(w, "unknown session", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("chat: failed to load session", "error", err, "session_id", ev.SessionID)
		http.Error(w, "failed to load session", http.StatusInternalServerError)
		return
	}

	reply, status := h.apply(r.Context(), s, ev)

	if err := h.sessions.Save(r.Context(), s); err != nil {
		h.logger.Error("chat: failed to save session", "error", err, "session_id", s.ID)
		http.Error(w, "failed to save session", http.StatusInternalServerError)
		return
	}
	writeJSON(w, status, reply)
}

// apply runs one event against the session and builds the reply. The session
// is mutated in place; the caller persists it.
func (h *Handler) apply(ctx context.Context, s *booking.Session, ev Event) (Reply, int) {
	switch ev.Type {
	case "menu":
		return h.applyMenu(ctx, s, ev.Value)
	case "input":
		return h.applyInput(s, ev.Value)
	case "back":
		h.machine.GoBack(s)
		return h.renderBooking(s), http.StatusOK
	case "edit":
		h.machine.Edit(s)
		return h.renderBooking(s), http.StatusOK
	case "cancel":
		h.machine.Cancel(s)
		reply := h.renderMode(ctx, s)
		reply.Text = "Appointment cancelled."
		return reply, http.StatusOK
	case "confirm":
		return h.applyConfirm(ctx, s)
	case "treatment":
		return h.applyTreatment(ctx, s, ev.Value)
	default:
		return Reply{SessionID: s.ID, Mode: s.Mode.String(), Error: "unknown event type"}, http.StatusBadRequest
	}
}

func (h *Handler) applyMenu(ctx context.Context, s *booking.Session, value string) (Reply, int) {
	mode, err := menu.ParseMode(value)
	if err != nil {
		return Reply{SessionID: s.ID, Mode: s.Mode.String(), Error: "unknown menu option"}, http.StatusBadRequest
	}

	if mode == menu.ModeBooking {
		s.StartBooking()
		return h.renderBooking(s), http.StatusOK
	}
	s.Mode = mode
	return h.renderMode(ctx, s), http.StatusOK
}

func (h *Handler) applyInput(s *booking.Session, value string) (Reply, int) {
	if s.Mode != menu.ModeBooking {
		return Reply{SessionID: s.ID, Mode: s.Mode.String(), Error: "not in a booking flow"}, http.StatusConflict
	}

	err := h.machine.SubmitStep(s, value)
	var verr *booking.ValidationError
	var nerr *booking.NoSlotsError
	switch {
	case errors.As(err, &verr):
		h.metrics.ValidationRejected()
		reply := h.renderBooking(s)
		reply.Error = verr.Msg
		return reply, http.StatusUnprocessableEntity
	case errors.As(err, &nerr):
		reply := h.renderBooking(s)
		reply.Text = "No slots available. Please choose another doctor."
		return reply, http.StatusOK
	case err != nil:
		h.logger.Error("chat: submit step failed", "error", err, "session_id", s.ID)
		return Reply{SessionID: s.ID, Mode: s.Mode.String(), Error: "internal error"}, http.StatusInternalServerError
	}
	return h.renderBooking(s), http.StatusOK
}

func (h *Handler) applyConfirm(ctx context.Context, s *booking.Session) (Reply, int) {
	msg, err := h.finalizer.Finalize(ctx, s)
	if err != nil {
		h.logger.Error("chat: finalize failed", "error", err, "session_id", s.ID)
		reply := h.renderBooking(s)
		reply.Error = "We couldn't save your appointment. Please try confirming again."
		return reply, http.StatusInternalServerError
	}

	reply := h.renderMode(ctx, s)
	reply.Text = msg
	return reply, http.StatusOK
}

func (h *Handler) applyTreatment(ctx context.Context, s *booking.Session, treatment string) (Reply, int) {
	treatment = strings.TrimSpace(treatment)
	if treatment == "" {
		return Reply{SessionID: s.ID, Mode: s.Mode.String(), Error: "treatment is required"}, http.StatusBadRequest
	}

	s.Mode = menu.ModeTreatments
	text := textgen.GenerateOrFallback(ctx, h.provider,
		textgen.TreatmentPrompt(treatment), textgen.TreatmentFallback(treatment))

	reply := h.renderMode(ctx, s)
	reply.Text = text
	return reply, http.StatusOK
}

// renderMode builds the reply for a non-booking mode, layering generated
// copy onto the static view where the surface calls for it.
func (h *Handler) renderMode(ctx context.Context, s *booking.Session) Reply {
	view := menu.Route(s.Mode)
	reply := Reply{SessionID: s.ID, Mode: s.Mode.String(), View: &view}

	switch s.Mode {
	case menu.ModeMain:
		// The full greeting is shown once per session; later returns to
		// the menu get a shorter line.
		if s.WelcomeShown {
			view.Body = "What else can I help you with?"
		}
		s.WelcomeShown = true
	case menu.ModeLocation:
		reply.Text = textgen.GenerateOrFallback(ctx, h.provider,
			textgen.LocationPrompt(), textgen.LocationFallback())
	case menu.ModeStories:
		reply.Text = textgen.GenerateOrFallback(ctx, h.provider,
			textgen.StoriesPrompt(), textgen.StoriesFallback())
	}
	return reply
}

// renderBooking builds the reply for the current booking step.
func (h *Handler) renderBooking(s *booking.Session) Reply {
	reply := Reply{
		SessionID: s.ID,
		Mode:      s.Mode.String(),
		Step:      s.Cursor.String(),
		Prompt:    questions[s.Cursor],
		Choices:   choicesFor(s),
	}
	if s.AtReview() {
		review := make(map[string]string, len(reviewOrder))
		for _, field := range reviewOrder {
			review[field] = s.Answers[field]
		}
		reply.Review = review
	}
	return reply
}

// CallbackRequest is the expert-callback form payload.
type CallbackRequest struct {
	SessionID  string `json:"session_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Preference string `json:"preference"`
}

func (h *Handler) handleCallback(w http.ResponseWriter, r *http.Request) {
	var req CallbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" {
		http.Error(w, "please provide at least your name and mobile number", http.StatusBadRequest)
		return
	}
	if req.Preference == "" {
		req.Preference = "Either"
	}

	cb := records.Callback{
		Name:       strings.TrimSpace(req.Name),
		Phone:      strings.TrimSpace(req.Phone),
		Email:      strings.TrimSpace(req.Email),
		Preference: req.Preference,
		Type:       "expert_callback",
		CreatedAt:  h.now(),
	}
	if err := h.store.Append(r.Context(), cb.Record()); err != nil {
		h.logger.Error("chat: failed to save callback request", "error", err)
		http.Error(w, "failed to save callback request", http.StatusInternalServerError)
		return
	}
	h.metrics.CallbackSaved()
	h.logger.Info("chat: expert callback requested", "preference", cb.Preference)

	msg := textgen.GenerateOrFallback(r.Context(), h.provider,
		textgen.CallbackPrompt(cb.Name, cb.Phone, cb.Preference),
		textgen.CallbackFallback(cb.Name, cb.Phone, strings.ToLower(cb.Preference)))

	writeJSON(w, http.StatusCreated, Reply{
		SessionID: req.SessionID,
		Mode:      menu.ModeExpert.String(),
		Text:      msg,
	})
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session")
	if id == "" {
		http.Error(w, "session parameter required", http.StatusBadRequest)
		return
	}

	s, err := h.sessions.Get(r.Context(), id)
	if errors.Is(err, session.ErrNotFound) {
		http.Error(w, "unknown session", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("chat: failed to load session", "error", err, "session_id", id)
		http.Error(w, "failed to load session", http.StatusInternalServerError)
		return
	}

	if s.Mode == menu.ModeBooking {
		writeJSON(w, http.StatusOK, h.renderBooking(s))
		return
	}
	view := menu.Route(s.Mode)
	writeJSON(w, http.StatusOK, Reply{SessionID: s.ID, Mode: s.Mode.String(), View: &view})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
