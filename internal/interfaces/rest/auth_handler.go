package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dietplanner/backend/internal/application/services"
)

type AuthHandler struct {
	svcMgr *services.ServiceManager
}

func NewAuthHandler(svcMgr *services.ServiceManager) *AuthHandler {
	return &AuthHandler{svcMgr: svcMgr}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
	Username  string `json:"username"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSON(c, &req) {
		return
	}

	result, err := h.svcMgr.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.Format(time.RFC3339),
		Username:  result.Session.Username,
	})
}
