package rest

import (
	"log/slog"
	"net/http"
)

// messageService defines the minimal interface needed by MessageHandler.
type messageService interface {
	Generate(objective string) []string
}

// MessageHandler serves the campaign message suggestion endpoint.
type MessageHandler struct {
	svc messageService
	log *slog.Logger
}

// NewMessageHandler creates a MessageHandler.
func NewMessageHandler(svc messageService, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{svc: svc, log: logger.With("handler", "message")}
}

type messagesResponse struct {
	Messages []string `json:"messages"`
}

// Generate handles GET /ai/generate-message?objective=.
func (h *MessageHandler) Generate(w http.ResponseWriter, r *http.Request) {
	objective := r.URL.Query().Get("objective")
	writeJSON(w, http.StatusOK, messagesResponse{
		Messages: h.svc.Generate(objective),
	})
}
