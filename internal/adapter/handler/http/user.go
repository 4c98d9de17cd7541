package http

import (
	"github.com/MikeRez0/automarket/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	Handler
	service port.Service
}

func NewUserHandler(service port.Service, logger *zap.Logger) (*UserHandler, error) {
	return &UserHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type UserRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginUser exchanges credentials for the request-scoped token carried
// into every core operation. Identity itself is owned by the external
// directory service.
func (uh *UserHandler) LoginUser(ctx *gin.Context) {
	userReq := UserRequest{}
	err := ctx.ShouldBindBodyWithJSON(&userReq)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	token, err := uh.service.LoginUser(ctx, userReq.Login, userReq.Password)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, struct {
		Token string `json:"token"`
	}{Token: token})
}
