package handler

import (
	"fmt"
	"net/http"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) usersList(c *gin.Context) {
	usernames, err := h.services.User.GetUsernames(c.Request.Context(), c.Query("feature"))
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.UsernamesResponse{Usernames: usernames})
}

func (h *Handler) usersGetProfile(c *gin.Context) {
	username := c.Param("username")

	profile, err := h.services.User.GetProfile(c.Request.Context(), username)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	h.services.User.TotalViewIncrement(username, h.viewerUsername(c))

	c.JSON(http.StatusOK, profile)
}

func (h *Handler) usersGetProfileImg(c *gin.Context) {
	username := c.Param("username")

	url, err := h.services.User.GetProfileImgURL(c.Request.Context(), username)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.ProfileImgResponse{ProfileImgURL: url})
}

func (h *Handler) usersGetAbout(c *gin.Context) {
	username := c.Param("username")

	page, err := h.services.User.GetAboutPage(c.Request.Context(), username)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	h.services.User.TotalViewIncrement(username, h.viewerUsername(c))

	c.JSON(http.StatusOK, page)
}

func (h *Handler) usersGetHome(c *gin.Context) {
	username := c.Param("username")

	if _, err := h.services.User.GetInfo(c.Request.Context(), username); err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	featured, err := h.services.Post.GetFeatured(c.Request.Context(), username)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	h.services.User.TotalViewIncrement(username, h.viewerUsername(c))

	c.JSON(http.StatusOK, featured)
}

func (h *Handler) usersGetBlogPage(c *gin.Context) {
	username := c.Param("username")

	page, err := pageQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	profile, err := h.services.User.GetProfile(c.Request.Context(), username)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	postPage, err := h.services.Post.GetBlogPage(c.Request.Context(), username, page)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.BlogPage{Profile: *profile, Page: *postPage})
}

func (h *Handler) usersGetGallery(c *gin.Context) {
	username := c.Param("username")

	page, err := pageQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	info, err := h.services.User.GetInfo(c.Request.Context(), username)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}
	if !info.GalleryEnabled {
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, errPageNotFound.Error()))
		return
	}

	projectPage, err := h.services.Project.GetGalleryPage(c.Request.Context(), username, page)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, projectPage)
}

func (h *Handler) usersGetChangelog(c *gin.Context) {
	username := c.Param("username")

	info, err := h.services.User.GetInfo(c.Request.Context(), username)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}
	if !info.ChangelogEnabled {
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, errPageNotFound.Error()))
		return
	}

	entries, err := h.services.Changelog.GetPage(c.Request.Context(), username)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *Handler) usersGetTagged(c *gin.Context) {
	username := c.Param("username")
	tag := c.Param("tag")

	if _, err := h.services.User.GetInfo(c.Request.Context(), username); err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	posts, err := h.services.Post.GetTagged(c.Request.Context(), username, tag)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	projects, err := h.services.Project.GetTagged(c.Request.Context(), username, tag)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.TagPage{Tag: tag, Posts: posts, Projects: projects})
}

func (h *Handler) usersUpdateSettings(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)

	var input dto.UpdateSettingsRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.User.UpdateSettings(c.Request.Context(), user.Username, input); err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "settings updated"))
}

func (h *Handler) usersUpdateSocialLinks(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)

	var input dto.UpdateSocialLinksRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.User.UpdateSocialLinks(c.Request.Context(), user.Username, input); err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "social links updated"))
}

func (h *Handler) usersUpdateAbout(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)

	var input dto.UpdateAboutRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.User.UpdateAbout(c.Request.Context(), user.Username, input); err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "about updated"))
}

func (h *Handler) usersChangePassword(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)

	var input dto.ChangePasswordRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.User.ChangePassword(c.Request.Context(), user.Username, input); err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "password updated"))
}

func (h *Handler) usersDeleteAccount(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)

	var input dto.DeleteAccountRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.User.DeleteAccount(c.Request.Context(), user.Username, input.Password); err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "account deleted"))
}

func (h *Handler) usersExport(c *gin.Context) {
	user := h.getAuthUserFromRequest(c)

	export, err := h.services.User.Export(c.Request.Context(), user.Username)
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_data.json", user.Username))
	c.JSON(http.StatusOK, export)
}

func (h *Handler) sitemap(c *gin.Context) {
	sitemap, err := h.services.User.Sitemap(c.Request.Context())
	if err != nil {
		c.JSON(errorStatus(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, sitemap)
}
