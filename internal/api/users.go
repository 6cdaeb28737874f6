package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxaizer/jobboard/internal/auth"
)

type UserHandler struct {
	auth *auth.Service
}

func NewUserHandler(authService *auth.Service) *UserHandler {
	return &UserHandler{auth: authService}
}

// Register handles POST /api/users/register.
func (h *UserHandler) Register(c *gin.Context) {

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBodyError(c, err)
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(c, collectFieldErrors(err))
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Mobile, req.Skills)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": newUserView(user)})
}

// Login handles POST /api/users/login.
func (h *UserHandler) Login(c *gin.Context) {

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBodyError(c, err)
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(c, collectFieldErrors(err))
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": newUserView(user)})
}
