package service

import (
	"context"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/markdown"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/BloggingApp/blog-service/internal/repository/docstore"
	"github.com/BloggingApp/blog-service/internal/repository/redisrepo"
	"github.com/BloggingApp/blog-service/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	PASSWORD_HASH_COST = 12

	TOKEN_TTL            = time.Hour * 24
	PERSISTENT_TOKEN_TTL = time.Hour * 24 * 31

	DEFAULT_COVER_URL = "/static/img/default-cover.jpg"
)

// New accounts get one of the bundled avatars until they upload their own.
var defaultProfileImgs = [...]string{
	"/static/img/profile0.png",
	"/static/img/profile1.png",
	"/static/img/profile2.png",
	"/static/img/profile3.png",
	"/static/img/profile4.png",
}

type userService struct {
	logger *zap.Logger
	repo *repository.Repository
}

func newUserService(logger *zap.Logger, repo *repository.Repository) User {
	return &userService{
		logger: logger,
		repo: repo,
	}
}

func (s *userService) SignUp(ctx context.Context, input dto.SignUpRequest) (*model.AuthUser, error) {
	emailTaken, err := s.repo.Docstore.User.EmailExists(ctx, input.Email)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check email(%s): %s", input.Email, err.Error())
		return nil, ErrInternal
	}
	if emailTaken {
		return nil, ErrEmailAlreadyTaken
	}

	usernameTaken, err := s.repo.Docstore.User.UsernameExists(ctx, input.Username)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check username(%s): %s", input.Username, err.Error())
		return nil, ErrInternal
	}
	if usernameTaken {
		return nil, ErrUsernameAlreadyTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), PASSWORD_HASH_COST)
	if err != nil {
		s.logger.Sugar().Errorf("failed to hash password for user(%s): %s", input.Username, err.Error())
		return nil, ErrInternal
	}

	creds := model.UserCreds{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hash),
	}
	info := model.UserInfo{
		Username:      input.Username,
		Email:         input.Email,
		Blogname:      input.Blogname,
		ProfileImgURL: defaultProfileImgs[rand.Intn(len(defaultProfileImgs))],
		CoverURL:      DEFAULT_COVER_URL,
		CreatedAt:     time.Now().UTC(),
		Tags:          map[string]int{},
	}
	about := model.UserAbout{
		Username: input.Username,
	}

	if err := s.repo.Docstore.User.Create(ctx, creds, info, about); err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s): %s", input.Username, err.Error())
		return nil, ErrInternal
	}

	return &model.AuthUser{Username: input.Username, Email: input.Email}, nil
}

func (s *userService) SignIn(ctx context.Context, input dto.SignInRequest) (string, error) {
	creds, err := s.repo.Docstore.User.FindCreds(ctx, input.Email)
	if err != nil {
		if err == docstore.ErrNotFound {
			return "", ErrAccountNotFound
		}

		s.logger.Sugar().Errorf("failed to find creds(%s): %s", input.Email, err.Error())
		return "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.Password), []byte(input.Password)); err != nil {
		return "", ErrInvalidPassword
	}

	ttl := TOKEN_TTL
	if input.Persistent {
		ttl = PERSISTENT_TOKEN_TTL
	}

	token, err := utils.SignJWT(jwt.MapClaims{
		"sub":   creds.Username,
		"email": creds.Email,
	}, []byte(os.Getenv("JWT_SECRET")), ttl)
	if err != nil {
		s.logger.Sugar().Errorf("failed to sign token for user(%s): %s", creds.Username, err.Error())
		return "", ErrInternal
	}

	return token, nil
}

func (s *userService) IsEmailUnique(ctx context.Context, email string) (bool, error) {
	exists, err := s.repo.Docstore.User.EmailExists(ctx, email)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check email(%s): %s", email, err.Error())
		return false, ErrInternal
	}
	return !exists, nil
}

func (s *userService) IsUsernameUnique(ctx context.Context, username string) (bool, error) {
	exists, err := s.repo.Docstore.User.UsernameExists(ctx, username)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check username(%s): %s", username, err.Error())
		return false, ErrInternal
	}
	return !exists, nil
}

// GetUsernames lists registered usernames, optionally narrowed to
// accounts with the gallery or changelog feature switched on.
func (s *userService) GetUsernames(ctx context.Context, feature string) ([]string, error) {
	var usernames []string
	var err error
	switch feature {
	case "gallery":
		usernames, err = s.repo.Docstore.User.FindGalleryEnabledUsernames(ctx)
	case "changelog":
		usernames, err = s.repo.Docstore.User.FindChangelogEnabledUsernames(ctx)
	default:
		usernames, err = s.repo.Docstore.User.FindAllUsernames(ctx)
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to find usernames(feature=%s): %s", feature, err.Error())
		return nil, ErrInternal
	}

	return usernames, nil
}

func (s *userService) GetProfile(ctx context.Context, username string) (*model.UserProfile, error) {
	cachedProfile, err := redisrepo.Get[model.UserProfile](s.repo.Redis.Default, ctx, redisrepo.UserProfileKey(username))
	if err == nil {
		return cachedProfile, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get user(%s) profile from redis: %s", username, err.Error())
		return nil, ErrInternal
	}

	info, err := s.repo.Docstore.User.FindInfo(ctx, username)
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil, err
		}

		s.logger.Sugar().Errorf("failed to find user(%s) info: %s", username, err.Error())
		return nil, ErrInternal
	}

	profile := model.UserProfile{
		Info:     *info,
		TagCloud: tagCloud(info.Tags),
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.UserProfileKey(username), profile, time.Hour); err != nil {
		s.logger.Sugar().Errorf("failed to set user(%s) profile in redis: %s", username, err.Error())
		return nil, ErrInternal
	}

	return &profile, nil
}

// tagCloud turns the per user tag counters into a list sorted by count,
// highest first. Tags whose counter dropped to zero are left out.
func tagCloud(tags map[string]int) []model.TagCount {
	cloud := []model.TagCount{}
	for name, count := range tags {
		if count <= 0 {
			continue
		}
		cloud = append(cloud, model.TagCount{Name: name, Count: count})
	}

	sort.Slice(cloud, func(i, j int) bool {
		if cloud[i].Count != cloud[j].Count {
			return cloud[i].Count > cloud[j].Count
		}
		return cloud[i].Name < cloud[j].Name
	})

	return cloud
}

func (s *userService) GetInfo(ctx context.Context, username string) (*model.UserInfo, error) {
	info, err := s.repo.Docstore.User.FindInfo(ctx, username)
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil, err
		}

		s.logger.Sugar().Errorf("failed to find user(%s) info: %s", username, err.Error())
		return nil, ErrInternal
	}

	return info, nil
}

func (s *userService) GetAboutPage(ctx context.Context, username string) (*model.AboutPage, error) {
	cachedPage, err := redisrepo.Get[model.AboutPage](s.repo.Redis.Default, ctx, redisrepo.UserAboutKey(username))
	if err == nil {
		return cachedPage, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get user(%s) about page from redis: %s", username, err.Error())
		return nil, ErrInternal
	}

	info, err := s.repo.Docstore.User.FindInfo(ctx, username)
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil, err
		}

		s.logger.Sugar().Errorf("failed to find user(%s) info: %s", username, err.Error())
		return nil, ErrInternal
	}

	about, err := s.repo.Docstore.User.FindAbout(ctx, username)
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil, err
		}

		s.logger.Sugar().Errorf("failed to find user(%s) about: %s", username, err.Error())
		return nil, ErrInternal
	}

	aboutHTML, err := markdown.RenderAbout(about.About)
	if err != nil {
		s.logger.Sugar().Errorf("failed to render user(%s) about: %s", username, err.Error())
		return nil, ErrInternal
	}

	page := model.AboutPage{
		Info:      *info,
		About:     about.About,
		AboutHTML: aboutHTML,
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.UserAboutKey(username), page, time.Hour); err != nil {
		s.logger.Sugar().Errorf("failed to set user(%s) about page in redis: %s", username, err.Error())
		return nil, ErrInternal
	}

	return &page, nil
}

func (s *userService) GetProfileImgURL(ctx context.Context, username string) (string, error) {
	info, err := s.GetInfo(ctx, username)
	if err != nil {
		return "", err
	}

	return info.ProfileImgURL, nil
}

func (s *userService) UpdateSettings(ctx context.Context, username string, input dto.UpdateSettingsRequest) error {
	info, err := s.GetInfo(ctx, username)
	if err != nil {
		return err
	}

	// An empty cover URL means "keep what I have", not "reset".
	coverURL := input.CoverURL
	if coverURL == "" {
		coverURL = info.CoverURL
	}

	settings := model.UserSettingsUpdate{
		Blogname:         input.Blogname,
		CoverURL:         coverURL,
		GalleryEnabled:   input.GalleryEnabled,
		ChangelogEnabled: input.ChangelogEnabled,
	}
	if err := s.repo.Docstore.User.UpdateSettings(ctx, username, settings); err != nil {
		s.logger.Sugar().Errorf("failed to update user(%s) settings: %s", username, err.Error())
		return ErrInternal
	}

	invalidateCache(ctx, s.logger, s.repo.Redis.Default, redisrepo.UserKeysPattern(username))

	return nil
}

func (s *userService) UpdateSocialLinks(ctx context.Context, username string, input dto.UpdateSocialLinksRequest) error {
	var links model.SocialLinks
	for i, link := range input.Links {
		links[i] = model.SocialLink{URL: link.URL, Platform: link.Platform}
	}

	if err := s.repo.Docstore.User.UpdateSocialLinks(ctx, username, links); err != nil {
		s.logger.Sugar().Errorf("failed to update user(%s) social links: %s", username, err.Error())
		return ErrInternal
	}

	invalidateCache(ctx, s.logger, s.repo.Redis.Default, redisrepo.UserKeysPattern(username))

	return nil
}

func (s *userService) UpdateAbout(ctx context.Context, username string, input dto.UpdateAboutRequest) error {
	info, err := s.GetInfo(ctx, username)
	if err != nil {
		return err
	}

	profileImgURL := input.ProfileImgURL
	if profileImgURL == "" {
		profileImgURL = info.ProfileImgURL
	}

	about := model.UserAboutUpdate{
		ProfileImgURL: profileImgURL,
		ShortBio:      input.ShortBio,
		About:         input.About,
	}
	if err := s.repo.Docstore.User.UpdateAbout(ctx, username, about); err != nil {
		s.logger.Sugar().Errorf("failed to update user(%s) about: %s", username, err.Error())
		return ErrInternal
	}

	invalidateCache(ctx, s.logger, s.repo.Redis.Default, redisrepo.UserKeysPattern(username))

	return nil
}

func (s *userService) ChangePassword(ctx context.Context, username string, input dto.ChangePasswordRequest) error {
	creds, err := s.repo.Docstore.User.FindCredsByUsername(ctx, username)
	if err != nil {
		if err == docstore.ErrNotFound {
			return ErrAccountNotFound
		}

		s.logger.Sugar().Errorf("failed to find user(%s) creds: %s", username, err.Error())
		return ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.Password), []byte(input.CurrentPassword)); err != nil {
		return ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), PASSWORD_HASH_COST)
	if err != nil {
		s.logger.Sugar().Errorf("failed to hash new password for user(%s): %s", username, err.Error())
		return ErrInternal
	}

	if err := s.repo.Docstore.User.UpdatePassword(ctx, username, string(hash)); err != nil {
		s.logger.Sugar().Errorf("failed to update user(%s) password: %s", username, err.Error())
		return ErrInternal
	}

	return nil
}

// DeleteAccount removes the account and everything that hangs off it:
// the author's posts, their comment threads, and the account documents
// themselves. Projects and changelog entries are left in place.
func (s *userService) DeleteAccount(ctx context.Context, username string, password string) error {
	creds, err := s.repo.Docstore.User.FindCredsByUsername(ctx, username)
	if err != nil {
		if err == docstore.ErrNotFound {
			return ErrAccountNotFound
		}

		s.logger.Sugar().Errorf("failed to find user(%s) creds: %s", username, err.Error())
		return ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.Password), []byte(password)); err != nil {
		return ErrInvalidPassword
	}

	postUIDs, err := s.repo.Docstore.Post.FindAuthorPostUIDs(ctx, username)
	if err != nil {
		s.logger.Sugar().Errorf("failed to collect user(%s) post UIDs: %s", username, err.Error())
		return ErrInternal
	}

	if err := s.repo.Docstore.Post.DeleteByAuthor(ctx, username); err != nil {
		s.logger.Sugar().Errorf("failed to delete user(%s) posts: %s", username, err.Error())
		return ErrInternal
	}
	s.logger.Sugar().Debugf("deleted %d posts of user(%s)", len(postUIDs), username)

	for _, postUID := range postUIDs {
		deleted, err := s.repo.Docstore.Comment.DeleteByPostUID(ctx, postUID)
		if err != nil {
			s.logger.Sugar().Errorf("failed to delete comments of post(%s): %s", postUID, err.Error())
			return ErrInternal
		}
		s.logger.Sugar().Debugf("deleted %d comments of post(%s)", deleted, postUID)

		invalidateCache(ctx, s.logger, s.repo.Redis.Default, redisrepo.PostKeysPattern(postUID))
	}

	if err := s.repo.Docstore.User.Delete(ctx, username); err != nil {
		s.logger.Sugar().Errorf("failed to delete user(%s): %s", username, err.Error())
		return ErrInternal
	}
	s.logger.Sugar().Debugf("deleted account documents of user(%s)", username)

	invalidateCache(ctx, s.logger, s.repo.Redis.Default, redisrepo.UserKeysPattern(username))

	return nil
}

func (s *userService) Export(ctx context.Context, username string) (*model.UserExport, error) {
	info, err := s.repo.Docstore.User.FindInfo(ctx, username)
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil, err
		}

		s.logger.Sugar().Errorf("failed to find user(%s) info: %s", username, err.Error())
		return nil, ErrInternal
	}

	about, err := s.repo.Docstore.User.FindAbout(ctx, username)
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil, err
		}

		s.logger.Sugar().Errorf("failed to find user(%s) about: %s", username, err.Error())
		return nil, ErrInternal
	}

	export := model.UserExport{
		Info:  exportedInfo(info, about),
		Posts: map[string]model.ExportedPost{},
	}

	posts, err := s.repo.Docstore.Post.FindAuthorPosts(ctx, username, docstore.ArchiveInclude)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%s) posts: %s", username, err.Error())
		return nil, ErrInternal
	}
	for _, post := range posts {
		full, err := s.repo.Docstore.Post.FindFull(ctx, post.PostUID)
		if err != nil {
			s.logger.Sugar().Errorf("failed to find full post(%s): %s", post.PostUID, err.Error())
			return nil, ErrInternal
		}
		export.Posts[post.PostUID] = model.ExportedPost{PostInfo: *post, Content: full.Content}
	}

	if info.GalleryEnabled {
		export.Projects = map[string]model.ExportedProject{}
		projects, err := s.repo.Docstore.Project.FindAuthorProjects(ctx, username, docstore.ArchiveInclude)
		if err != nil {
			s.logger.Sugar().Errorf("failed to find user(%s) projects: %s", username, err.Error())
			return nil, ErrInternal
		}
		for _, project := range projects {
			full, err := s.repo.Docstore.Project.FindFull(ctx, project.ProjectUID)
			if err != nil {
				s.logger.Sugar().Errorf("failed to find full project(%s): %s", project.ProjectUID, err.Error())
				return nil, ErrInternal
			}
			export.Projects[project.ProjectUID] = model.ExportedProject{ProjectInfo: *project, Content: full.Content}
		}
	}

	if info.ChangelogEnabled {
		export.Changelogs = map[string]model.Changelog{}
		changelogs, err := s.repo.Docstore.Changelog.FindAuthorChangelogs(ctx, username, false)
		if err != nil {
			s.logger.Sugar().Errorf("failed to find user(%s) changelogs: %s", username, err.Error())
			return nil, ErrInternal
		}
		for _, changelog := range changelogs {
			export.Changelogs[changelog.ChangelogUID] = *changelog
		}
	}

	return &export, nil
}

// exportedInfo strips the URLs of bundled assets; only images the user
// actually uploaded leave with the export.
func exportedInfo(info *model.UserInfo, about *model.UserAbout) model.ExportedInfo {
	exported := model.ExportedInfo{
		Username:      info.Username,
		Email:         info.Email,
		Blogname:      info.Blogname,
		ProfileImgURL: info.ProfileImgURL,
		CoverURL:      info.CoverURL,
		CreatedAt:     info.CreatedAt,
		ShortBio:      info.ShortBio,
		About:         about.About,
		TotalViews:    info.TotalViews,
	}

	if strings.Contains(exported.ProfileImgURL, "static") {
		exported.ProfileImgURL = ""
	}
	if strings.Contains(exported.CoverURL, "static") {
		exported.CoverURL = ""
	}

	for i, link := range info.SocialLinks {
		if link.URL == "" {
			break
		}
		exported.SocialLinks[i] = link
	}

	return exported
}

func (s *userService) Sitemap(ctx context.Context) (*model.Sitemap, error) {
	usernames, err := s.repo.Docstore.User.FindAllUsernames(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find usernames: %s", err.Error())
		return nil, ErrInternal
	}

	galleryUsernames, err := s.repo.Docstore.User.FindGalleryEnabledUsernames(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find gallery enabled usernames: %s", err.Error())
		return nil, ErrInternal
	}

	changelogUsernames, err := s.repo.Docstore.User.FindChangelogEnabledUsernames(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find changelog enabled usernames: %s", err.Error())
		return nil, ErrInternal
	}

	posts, err := s.repo.Docstore.Post.FindAll(ctx, false)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts for sitemap: %s", err.Error())
		return nil, ErrInternal
	}

	projects, err := s.repo.Docstore.Project.FindAll(ctx, false)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find projects for sitemap: %s", err.Error())
		return nil, ErrInternal
	}

	sitemap := model.Sitemap{
		Usernames:          usernames,
		GalleryUsernames:   galleryUsernames,
		ChangelogUsernames: changelogUsernames,
		Posts:              []model.SitemapEntry{},
		Projects:           []model.SitemapEntry{},
	}
	for _, post := range posts {
		sitemap.Posts = append(sitemap.Posts, model.SitemapEntry{
			Author:      post.Author,
			UID:         post.PostUID,
			Slug:        post.CustomSlug,
			LastUpdated: post.LastUpdated,
		})
	}
	for _, project := range projects {
		sitemap.Projects = append(sitemap.Projects, model.SitemapEntry{
			Author:      project.Author,
			UID:         project.ProjectUID,
			Slug:        project.CustomSlug,
			LastUpdated: project.LastUpdated,
		})
	}

	return &sitemap, nil
}

// TotalViewIncrement bumps the profile wide view counter in the
// background. Authors browsing their own pages are not counted.
func (s *userService) TotalViewIncrement(username string, viewer string) {
	if viewer == username {
		return
	}

	go func(username string) {
		ctx := context.Background()
		if err := s.repo.Docstore.User.IncrTotalViews(ctx, username); err != nil {
			s.logger.Sugar().Errorf("failed to increment total views for user(%s): %s", username, err.Error())
		}
	}(username)
}
