package handler

import (
	"net/http"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) projectsCreate(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)

	var input dto.CreateProjectRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	projectUID, err := h.services.Project.Create(c.Request.Context(), user.Username, input)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, dto.NewCreatedResponse(projectUID))
}

func (h *Handler) projectsGetMy(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)

	if c.Query("archive") == "only" {
		projects, err := h.services.Project.GetArchived(c.Request.Context(), user.Username)
		if err != nil {
			c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
			return
		}

		c.JSON(http.StatusOK, projects)
		return
	}

	page, err := pageQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	projectPage, err := h.services.Project.GetBackstagePage(c.Request.Context(), user.Username, page)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, projectPage)
}

func (h *Handler) projectsGetByUID(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)
	projectUID := c.Param("projectUID")

	project, err := h.services.Project.GetFull(c.Request.Context(), user.Username, projectUID)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *Handler) projectsView(c *gin.Context) {
	projectUID := c.Param("projectUID")

	author := c.Query("author")
	if author == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errAuthorRequired.Error()))
		return
	}

	project, err := h.services.Project.GetRendered(c.Request.Context(), author, projectUID)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	h.services.Project.ViewIncrement(author, projectUID, h.viewerUsername(c))

	c.JSON(http.StatusOK, project)
}

func (h *Handler) projectsEdit(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)
	projectUID := c.Param("projectUID")

	var input dto.EditProjectRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.Project.Edit(c.Request.Context(), user.Username, projectUID, input); err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "project updated"))
}

func (h *Handler) projectsSetArchived(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)
	projectUID := c.Param("projectUID")

	var input dto.SetArchivedRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.Project.SetArchived(c.Request.Context(), user.Username, projectUID, *input.Archived); err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "project archive status updated"))
}

func (h *Handler) projectsDelete(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)
	projectUID := c.Param("projectUID")

	if err := h.services.Project.Delete(c.Request.Context(), user.Username, projectUID); err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "project deleted"))
}

func (h *Handler) projectsRead(c *gin.Context) {
	projectUID := c.Param("projectUID")

	h.services.Project.ReadIncrement(projectUID, h.viewerUsername(c))

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "ok"))
}

func (h *Handler) projectsAll(c *gin.Context) {
	projects, err := h.services.Project.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, projects)
}
