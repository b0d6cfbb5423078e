// Package message generates campaign message-template variants. The
// generation is plain string formatting around a marketing objective;
// recipients' names stay as {name} placeholders for the sender to fill in.
package message

import (
	"fmt"
	"log/slog"
	"strings"
)

// DefaultObjective is used when the caller supplies no objective.
const DefaultObjective = "increase sales"

// Service produces message template suggestions.
type Service struct {
	log *slog.Logger
}

// NewService creates a message service.
func NewService(log *slog.Logger) *Service {
	return &Service{log: log.With("service", "message")}
}

// Generate returns three template variants for the given objective. An empty
// or blank objective falls back to DefaultObjective.
func (s *Service) Generate(objective string) []string {
	objective = strings.TrimSpace(objective)
	if objective == "" {
		objective = DefaultObjective
	}
	lower := strings.ToLower(objective)

	return []string{
		fmt.Sprintf("Hi {name}, achieve %s! Special offer inside. 🎯", objective),
		fmt.Sprintf("{name}, ready to %s? Exclusive deal for you! ✨", lower),
		fmt.Sprintf("Hey {name}! Your journey to %s starts here! 🚀", lower),
	}
}
