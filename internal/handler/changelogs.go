package handler

import (
	"net/http"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) changelogsCreate(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)

	var input dto.CreateChangelogRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	changelogUID, err := h.services.Changelog.Create(c.Request.Context(), user.Username, input)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, dto.NewCreatedResponse(changelogUID))
}

func (h *Handler) changelogsGetMy(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)

	if c.Query("archive") == "only" {
		entries, err := h.services.Changelog.GetArchived(c.Request.Context(), user.Username)
		if err != nil {
			c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
			return
		}

		c.JSON(http.StatusOK, entries)
		return
	}

	page, err := pageQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	changelogPage, err := h.services.Changelog.GetBackstagePage(c.Request.Context(), user.Username, page)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, changelogPage)
}

func (h *Handler) changelogsGetByUID(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)
	changelogUID := c.Param("changelogUID")

	entry, err := h.services.Changelog.Get(c.Request.Context(), user.Username, changelogUID)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *Handler) changelogsEdit(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)
	changelogUID := c.Param("changelogUID")

	var input dto.EditChangelogRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.Changelog.Edit(c.Request.Context(), user.Username, changelogUID, input); err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "changelog updated"))
}

func (h *Handler) changelogsSetArchived(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)
	changelogUID := c.Param("changelogUID")

	var input dto.SetArchivedRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.Changelog.SetArchived(c.Request.Context(), user.Username, changelogUID, *input.Archived); err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "changelog archive status updated"))
}

func (h *Handler) changelogsDelete(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)
	changelogUID := c.Param("changelogUID")

	if err := h.services.Changelog.Delete(c.Request.Context(), user.Username, changelogUID); err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "changelog deleted"))
}
