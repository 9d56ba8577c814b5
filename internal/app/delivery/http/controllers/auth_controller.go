package controllers

import (
	"net/http"
	"sync"

	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/dto/requests"
	"patient-records-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// AuthController manages the bearer token forwarded to the patient backend.
type AuthController struct {
	Log        *zap.Logger
	TokenStore contracts.TokenStore
}

var (
	authControllerInstance *AuthController
	onceAuthController     sync.Once
)

func NewAuthController(logger *zap.Logger, tokenStore contracts.TokenStore) *AuthController {
	onceAuthController.Do(func() {
		instance := &AuthController{
			Log:        logger,
			TokenStore: tokenStore,
		}
		authControllerInstance = instance
	})
	return authControllerInstance
}

func (ctrl *AuthController) SetToken(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SetAuthTokenRequest)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	if err := ctrl.TokenStore.Set(r.Context(), request.Token); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AuthController.SetToken stored upstream token",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SetAuthTokenSuccessMessage, nil)
}

func (ctrl *AuthController) ClearToken(w http.ResponseWriter, r *http.Request) {
	if err := ctrl.TokenStore.Clear(r.Context()); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClearAuthTokenSuccessMessage, nil)
}
