package handler

import (
	"net/http"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) postsCreate(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)

	var input dto.CreatePostRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	postUID, err := h.services.Post.Create(c.Request.Context(), user.Username, input)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, dto.NewCreatedResponse(postUID))
}

// postsGetMy serves the backstage listing. ?archive=only switches to
// the archive panel view.
func (h *Handler) postsGetMy(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)

	if c.Query("archive") == "only" {
		posts, err := h.services.Post.GetArchived(c.Request.Context(), user.Username)
		if err != nil {
			c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
			return
		}

		c.JSON(http.StatusOK, posts)
		return
	}

	page, err := pageQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	postPage, err := h.services.Post.GetBackstagePage(c.Request.Context(), user.Username, page)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, postPage)
}

func (h *Handler) postsGetByUID(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)
	postUID := c.Param("postUID")

	post, err := h.services.Post.GetFull(c.Request.Context(), user.Username, postUID)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, post)
}

// postsView serves the public reading view. The author from the page
// URL must match the post, otherwise the post does not exist under
// that address.
func (h *Handler) postsView(c *gin.Context) {
	postUID := c.Param("postUID")

	author := c.Query("author")
	if author == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errAuthorRequired.Error()))
		return
	}

	post, err := h.services.Post.GetRendered(c.Request.Context(), author, postUID)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	comments, err := h.services.Comment.GetPostComments(c.Request.Context(), postUID)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	h.services.Post.ViewIncrement(author, postUID, h.viewerUsername(c))

	c.JSON(http.StatusOK, dto.PostView{Post: post, Comments: comments})
}

func (h *Handler) postsEdit(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)
	postUID := c.Param("postUID")

	var input dto.EditPostRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.Post.Edit(c.Request.Context(), user.Username, postUID, input); err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "post updated"))
}

func (h *Handler) postsSetArchived(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)
	postUID := c.Param("postUID")

	var input dto.SetArchivedRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.Post.SetArchived(c.Request.Context(), user.Username, postUID, *input.Archived); err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "post archive status updated"))
}

func (h *Handler) postsSetFeatured(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)
	postUID := c.Param("postUID")

	var input dto.SetFeaturedRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.Post.SetFeatured(c.Request.Context(), user.Username, postUID, *input.Featured); err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "post featured status updated"))
}

func (h *Handler) postsDelete(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)
	postUID := c.Param("postUID")

	if err := h.services.Post.Delete(c.Request.Context(), user.Username, postUID); err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "post deleted"))
}

// postsRead is the read beacon fired when a reader scrolls to the end.
func (h *Handler) postsRead(c *gin.Context) {
	postUID := c.Param("postUID")

	h.services.Post.ReadIncrement(postUID, h.viewerUsername(c))

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "ok"))
}

func (h *Handler) postsAll(c *gin.Context) {
	posts, err := h.services.Post.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, posts)
}
