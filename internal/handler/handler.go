package handler

import (
	"strconv"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{viper.GetString("client.origin")},
		AllowMethods: []string{"POST", "GET", "PATCH", "DELETE"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", h.authSignUp)
			auth.POST("/login", h.authSignIn)
			auth.GET("/check", h.authCheck)
		}

		users := v1.Group("/users")
		{
			users.GET("", h.usersList)

			me := users.Group("/me", h.authMiddleware)
			{
				me.PATCH("/password", h.usersChangePassword)
				me.DELETE("", h.usersDeleteAccount)
				me.GET("/export", h.usersExport)
				me.PATCH("/settings", h.usersUpdateSettings)
				me.PATCH("/social-links", h.usersUpdateSocialLinks)
				me.PATCH("/about", h.usersUpdateAbout)
			}

			user := users.Group("/:username", h.notRequiredAuthMiddleware)
			{
				user.GET("", h.usersGetProfile)
				user.GET("/profile-img", h.usersGetProfileImg)
				user.GET("/about", h.usersGetAbout)
				user.GET("/home", h.usersGetHome)
				user.GET("/posts", h.usersGetBlogPage)
				user.GET("/gallery", h.usersGetGallery)
				user.GET("/changelog", h.usersGetChangelog)
				user.GET("/tags/:tag", h.usersGetTagged)
			}
		}

		posts := v1.Group("/posts")
		{
			posts.GET("/all", h.postsAll)
			posts.POST("", h.authMiddleware, h.postsCreate)
			posts.GET("/my", h.authMiddleware, h.postsGetMy)

			post := posts.Group("/:postUID")
			{
				post.GET("", h.authMiddleware, h.postsGetByUID)
				post.GET("/view", h.notRequiredAuthMiddleware, h.postsView)
				post.PATCH("", h.authMiddleware, h.postsEdit)
				post.PATCH("/archived", h.authMiddleware, h.postsSetArchived)
				post.PATCH("/featured", h.authMiddleware, h.postsSetFeatured)
				post.DELETE("", h.authMiddleware, h.postsDelete)
				post.POST("/read", h.notRequiredAuthMiddleware, h.postsRead)
				post.POST("/comments", h.notRequiredAuthMiddleware, h.commentsCreate)
				post.GET("/comments", h.commentsGet)
			}
		}

		projects := v1.Group("/projects")
		{
			projects.GET("/all", h.projectsAll)
			projects.POST("", h.authMiddleware, h.projectsCreate)
			projects.GET("/my", h.authMiddleware, h.projectsGetMy)

			project := projects.Group("/:projectUID")
			{
				project.GET("", h.authMiddleware, h.projectsGetByUID)
				project.GET("/view", h.notRequiredAuthMiddleware, h.projectsView)
				project.PATCH("", h.authMiddleware, h.projectsEdit)
				project.PATCH("/archived", h.authMiddleware, h.projectsSetArchived)
				project.DELETE("", h.authMiddleware, h.projectsDelete)
				project.POST("/read", h.notRequiredAuthMiddleware, h.projectsRead)
			}
		}

		changelogs := v1.Group("/changelogs", h.authMiddleware)
		{
			changelogs.POST("", h.changelogsCreate)
			changelogs.GET("/my", h.changelogsGetMy)

			changelog := changelogs.Group("/:changelogUID")
			{
				changelog.GET("", h.changelogsGetByUID)
				changelog.PATCH("", h.changelogsEdit)
				changelog.PATCH("/archived", h.changelogsSetArchived)
				changelog.DELETE("", h.changelogsDelete)
			}
		}

		v1.GET("/sitemap", h.sitemap)
	}

	return r
}

func (h *Handler) getAuthUserFromRequest(c *gin.Context) *model.AuthUser {
	userReq, _ := c.Get("user")

	user, ok := userReq.(model.AuthUser)
	if !ok {
		return nil
	}

	return &user
}

// viewerUsername is empty for anonymous visitors; counters use it to
// skip self views.
func (h *Handler) viewerUsername(c *gin.Context) string {
	user := h.getAuthUserFromRequest(c)
	if user == nil {
		return ""
	}
	return user.Username
}

func pageQuery(c *gin.Context) (int, error) {
	pageString := c.Query("page")
	if pageString == "" {
		return 1, nil
	}

	page, err := strconv.Atoi(pageString)
	if err != nil {
		return 0, errPageMustBeInt
	}
	return page, nil
}
