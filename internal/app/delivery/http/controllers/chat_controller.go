package controllers

import (
	"net/http"
	"sync"

	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/dto/requests"
	"patient-records-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ChatController struct {
	Log         *zap.Logger
	ChatService contracts.ChatService
}

var (
	chatControllerInstance *ChatController
	onceChatController     sync.Once
)

func NewChatController(logger *zap.Logger, chatService contracts.ChatService) *ChatController {
	onceChatController.Do(func() {
		instance := &ChatController{
			Log:         logger,
			ChatService: chatService,
		}
		chatControllerInstance = instance
	})
	return chatControllerInstance
}

func (ctrl *ChatController) StartSession(w http.ResponseWriter, r *http.Request) {
	request := new(requests.StartChatSessionRequest)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	session, err := ctrl.ChatService.StartSession(r.Context(), request.PatientID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.StartChatSessionSuccessMessage, session)
}

func (ctrl *ChatController) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := ctrl.ChatService.GetSession(r.Context(), chi.URLParam(r, constvars.URLParamSessionID))
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetChatSessionSuccessMessage, session)
}

func (ctrl *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SendChatMessageRequest)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	exchange, err := ctrl.ChatService.SendMessage(r.Context(), chi.URLParam(r, constvars.URLParamSessionID), request.Text)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SendChatMessageSuccessMessage, exchange)
}

func (ctrl *ChatController) EndSession(w http.ResponseWriter, r *http.Request) {
	if err := ctrl.ChatService.EndSession(r.Context(), chi.URLParam(r, constvars.URLParamSessionID)); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EndChatSessionSuccessMessage, nil)
}
