package routers

import (
	"patient-records-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachChatRoutes(router chi.Router, chatController *controllers.ChatController) {
	router.Post("/sessions", chatController.StartSession)
	router.Get("/sessions/{session_id}", chatController.GetSession)
	router.Delete("/sessions/{session_id}", chatController.EndSession)
	router.Post("/sessions/{session_id}/messages", chatController.SendMessage)
}
