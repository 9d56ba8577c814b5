package requests

type SetAuthTokenRequest struct {
	Token string `json:"token" validate:"required"`
}
