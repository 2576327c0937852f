package handler

import (
	"net/http"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/gin-gonic/gin"
)

func (h *Handler) commentsCreate(c *gin.Context) {
	postUID := c.Param("postUID")

	var input dto.CreateCommentRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	var author model.CommentAuthor
	if user := h.getAuthUserFromRequest(c); user != nil {
		author = model.RegisteredCommenter(user.Username, user.Email)
	} else {
		if input.Name == "" {
			c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errNameRequired.Error()))
			return
		}

		author = model.VisitorCommenter(input.Name, input.Email)
	}

	commentUID, err := h.services.Comment.Create(c.Request.Context(), postUID, author, input)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, dto.NewCreatedResponse(commentUID))
}

func (h *Handler) commentsGet(c *gin.Context) {
	postUID := c.Param("postUID")

	comments, err := h.services.Comment.GetPostComments(c.Request.Context(), postUID)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, comments)
}
