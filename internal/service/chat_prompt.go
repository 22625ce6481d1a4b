package service

import (
	"strings"

	"github.com/MKhiriev/go-wellness/models"
)

const (
	// responseDelimiter ends the prompt; the reply is whatever the backend
	// generates after its last occurrence.
	responseDelimiter = "Compassionate response:"

	// promptContextEntries is how many context entries go into a prompt.
	promptContextEntries = 5
)

const promptPreamble = `You are a compassionate mental wellness companion.
Your role is to provide supportive, empathetic responses to help users with their mental health.
Remember:
- Be warm and non-judgmental
- Listen actively
- Provide practical coping strategies when relevant
- Suggest professional help if needed
- Never diagnose or prescribe
`

// buildPrompt frames message with the guardrails and the recent history.
func buildPrompt(history []models.ChatMessage, message string) string {
	var b strings.Builder
	b.WriteString(promptPreamble)

	if len(history) > 0 {
		b.WriteString("\nRecent conversation:\n")
		for _, m := range history {
			switch m.Role {
			case models.ChatRoleAssistant:
				b.WriteString("Companion: ")
			default:
				b.WriteString("User: ")
			}
			b.WriteString(m.Content)
			b.WriteString("\n")
		}
	}

	b.WriteString("\nUser says: ")
	b.WriteString(message)
	b.WriteString("\n\n")
	b.WriteString(responseDelimiter)

	return b.String()
}

// extractResponse returns the trimmed text after the last delimiter, or the
// whole trimmed text when the backend did not echo the prompt.
func extractResponse(generated string) string {
	if i := strings.LastIndex(generated, responseDelimiter); i >= 0 {
		generated = generated[i+len(responseDelimiter):]
	}
	return strings.TrimSpace(generated)
}
