package redisrepo

import "fmt"

const (
	USER_PROFILE_KEY      = "user:%s:profile"       // <username>
	USER_ABOUT_KEY        = "user:%s:about"         // <username>
	USER_BLOG_PAGE_KEY    = "user:%s:blog:%d:%d"    // <username>:<page>:<pageSize>
	USER_GALLERY_PAGE_KEY = "user:%s:gallery:%d:%d" // <username>:<page>:<pageSize>
	USER_CHANGELOG_KEY    = "user:%s:changelog"     // <username>
	RENDERED_POST_KEY     = "post:%s:rendered"      // <postUID>
	RENDERED_PROJECT_KEY  = "project:%s:rendered"   // <projectUID>

	USER_KEYS_PATTERN    = "user:%s:*"    // <username>
	POST_KEYS_PATTERN    = "post:%s:*"    // <postUID>
	PROJECT_KEYS_PATTERN = "project:%s:*" // <projectUID>
)

func UserProfileKey(username string) string {
	return fmt.Sprintf(USER_PROFILE_KEY, username)
}

func UserAboutKey(username string) string {
	return fmt.Sprintf(USER_ABOUT_KEY, username)
}

func UserBlogPageKey(username string, page int, pageSize int) string {
	return fmt.Sprintf(USER_BLOG_PAGE_KEY, username, page, pageSize)
}

func UserGalleryPageKey(username string, page int, pageSize int) string {
	return fmt.Sprintf(USER_GALLERY_PAGE_KEY, username, page, pageSize)
}

func UserChangelogKey(username string) string {
	return fmt.Sprintf(USER_CHANGELOG_KEY, username)
}

func RenderedPostKey(postUID string) string {
	return fmt.Sprintf(RENDERED_POST_KEY, postUID)
}

func RenderedProjectKey(projectUID string) string {
	return fmt.Sprintf(RENDERED_PROJECT_KEY, projectUID)
}

func UserKeysPattern(username string) string {
	return fmt.Sprintf(USER_KEYS_PATTERN, username)
}

func PostKeysPattern(postUID string) string {
	return fmt.Sprintf(POST_KEYS_PATTERN, postUID)
}

func ProjectKeysPattern(projectUID string) string {
	return fmt.Sprintf(PROJECT_KEYS_PATTERN, projectUID)
}
