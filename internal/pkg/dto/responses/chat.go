package responses

import "patient-records-service/internal/app/models"

type ChatExchange struct {
	SessionID   string             `json:"session_id"`
	UserMessage models.ChatMessage `json:"user_message"`
	BotMessage  models.ChatMessage `json:"bot_message"`
}
