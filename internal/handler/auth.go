package handler

import (
	"net/http"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) authSignUp(c *gin.Context) {
	var input dto.SignUpRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	user, err := h.services.User.SignUp(c.Request.Context(), input)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, dto.SignUpResponse{Ok: true, User: *user})
}

func (h *Handler) authSignIn(c *gin.Context) {
	var input dto.SignInRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	token, err := h.services.User.SignIn(c.Request.Context(), input)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.SignInResponse{Ok: true, AccessToken: token})
}

// authCheck probes whether an email or username is still free.
func (h *Handler) authCheck(c *gin.Context) {
	if email := c.Query("email"); email != "" {
		unique, err := h.services.User.IsEmailUnique(c.Request.Context(), email)
		if err != nil {
			c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
			return
		}

		c.JSON(http.StatusOK, dto.UniqueResponse{Unique: unique})
		return
	}

	if username := c.Query("username"); username != "" {
		unique, err := h.services.User.IsUsernameUnique(c.Request.Context(), username)
		if err != nil {
			c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
			return
		}

		c.JSON(http.StatusOK, dto.UniqueResponse{Unique: unique})
		return
	}

	c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errEmailOrUsernameRequired.Error()))
}
