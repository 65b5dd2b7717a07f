package chat

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/net/websocket"

	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/booking"
	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/menu"
	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/session"
)

// wsMessage is the envelope exchanged over the WebSocket connection. Events
// reuse the HTTP event fields; "ping" keeps the connection alive.
type wsMessage struct {
	Type  string `json:"type"` // "event", "ping"
	Event Event  `json:"event,omitempty"`
}

type wsReply struct {
	Type  string `json:"type"` // "reply", "pong", "error"
	Reply *Reply `json:"reply,omitempty"`
	Error string `json:"error,omitempty"`
}

// HandleWebSocket upgrades to WebSocket for real-time chat.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(func(conn *websocket.Conn) {
		h.serveWS(conn, r)
	}).ServeHTTP(w, r)
}

func (h *Handler) serveWS(conn *websocket.Conn, r *http.Request) {
	ctx := r.Context()

	id := r.URL.Query().Get("session")
	var s *booking.Session
	if id != "" {
		loaded, err := h.sessions.Get(ctx, id)
		if err != nil && !errors.Is(err, session.ErrNotFound) {
			_ = websocket.JSON.Send(conn, wsReply{Type: "error", Error: "failed to load session"})
			return
		}
		s = loaded
	}
	if s == nil {
		s = booking.NewSession(uuid.NewString())
		s.WelcomeShown = true
		if err := h.sessions.Save(ctx, s); err != nil {
			_ = websocket.JSON.Send(conn, wsReply{Type: "error", Error: "failed to create session"})
			return
		}
	}

	view := menu.Route(s.Mode)
	_ = websocket.JSON.Send(conn, wsReply{Type: "reply", Reply: &Reply{
		SessionID: s.ID,
		Mode:      s.Mode.String(),
		View:      &view,
	}})

	h.logger.Info("chat: websocket opened", "session_id", s.ID)

	for {
		var msg wsMessage
		if err := websocket.JSON.Receive(conn, &msg); err != nil {
			h.logger.Debug("chat: websocket closed", "session_id", s.ID, "error", err)
			return
		}

		if msg.Type == "ping" {
			_ = websocket.JSON.Send(conn, wsReply{Type: "pong"})
			continue
		}
		if msg.Type != "event" {
			continue
		}

		msg.Event.SessionID = s.ID
		reply, _ := h.apply(ctx, s, msg.Event)
		if err := h.sessions.Save(ctx, s); err != nil {
			h.logger.Error("chat: failed to save session", "error", err, "session_id", s.ID)
			_ = websocket.JSON.Send(conn, wsReply{Type: "error", Error: "failed to save session"})
			continue
		}
		_ = websocket.JSON.Send(conn, wsReply{Type: "reply", Reply: &reply})
	}
}
