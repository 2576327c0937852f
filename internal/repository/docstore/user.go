package docstore

import (
	"context"
	"errors"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/storage"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type userRepo struct {
	store *storage.Store
}

func newUserRepo(store *storage.Store) User {
	return &userRepo{
		store: store,
	}
}

// Create inserts the credential, info and about documents that
// together make up one user account.
func (r *userRepo) Create(ctx context.Context, creds model.UserCreds, info model.UserInfo, about model.UserAbout) error {
	if err := r.store.UserCreds.InsertOne(ctx, creds); err != nil {
		return err
	}
	if err := r.store.UserInfo.InsertOne(ctx, info); err != nil {
		return err
	}
	return r.store.UserAbout.InsertOne(ctx, about)
}

func (r *userRepo) FindCreds(ctx context.Context, email string) (*model.UserCreds, error) {
	var creds model.UserCreds
	if err := r.store.UserCreds.FindOne(ctx, bson.M{"email": email}, &creds); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &creds, nil
}

func (r *userRepo) FindCredsByUsername(ctx context.Context, username string) (*model.UserCreds, error) {
	var creds model.UserCreds
	if err := r.store.UserCreds.FindOne(ctx, bson.M{"username": username}, &creds); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &creds, nil
}

func (r *userRepo) FindInfo(ctx context.Context, username string) (*model.UserInfo, error) {
	var info model.UserInfo
	if err := r.store.UserInfo.FindOne(ctx, bson.M{"username": username}, &info); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &info, nil
}

func (r *userRepo) FindAbout(ctx context.Context, username string) (*model.UserAbout, error) {
	var about model.UserAbout
	if err := r.store.UserAbout.FindOne(ctx, bson.M{"username": username}, &about); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &about, nil
}

func (r *userRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	n, err := r.store.UserInfo.Count(ctx, bson.M{"email": email})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *userRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	n, err := r.store.UserInfo.Count(ctx, bson.M{"username": username})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *userRepo) FindAllUsernames(ctx context.Context) ([]string, error) {
	return r.findUsernames(ctx, bson.M{})
}

func (r *userRepo) FindGalleryEnabledUsernames(ctx context.Context) ([]string, error) {
	return r.findUsernames(ctx, bson.M{"gallery_enabled": true})
}

func (r *userRepo) FindChangelogEnabledUsernames(ctx context.Context) ([]string, error) {
	return r.findUsernames(ctx, bson.M{"changelog_enabled": true})
}

func (r *userRepo) findUsernames(ctx context.Context, filter bson.M) ([]string, error) {
	var infos []*model.UserInfo
	if err := r.store.UserInfo.Find(ctx, filter).All(ctx, &infos); err != nil {
		return nil, err
	}

	usernames := make([]string, 0, len(infos))
	for _, info := range infos {
		usernames = append(usernames, info.Username)
	}
	return usernames, nil
}

func (r *userRepo) UpdateSettings(ctx context.Context, username string, settings model.UserSettingsUpdate) error {
	fields := bson.M{
		"blogname":          settings.Blogname,
		"cover_url":         settings.CoverURL,
		"gallery_enabled":   settings.GalleryEnabled,
		"changelog_enabled": settings.ChangelogEnabled,
	}
	return r.store.UserInfo.SetFields(ctx, bson.M{"username": username}, fields)
}

// UpdateAbout writes the profile fields to user-info and the about
// text to user-about.
func (r *userRepo) UpdateAbout(ctx context.Context, username string, about model.UserAboutUpdate) error {
	fields := bson.M{
		"profile_img_url": about.ProfileImgURL,
		"short_bio":       about.ShortBio,
	}
	if err := r.store.UserInfo.SetFields(ctx, bson.M{"username": username}, fields); err != nil {
		return err
	}
	return r.store.UserAbout.SetFields(ctx, bson.M{"username": username}, bson.M{"about": about.About})
}

func (r *userRepo) UpdateSocialLinks(ctx context.Context, username string, links model.SocialLinks) error {
	return r.store.UserInfo.SetFields(ctx, bson.M{"username": username}, bson.M{"social_links": links})
}

func (r *userRepo) UpdatePassword(ctx context.Context, username string, passwordHash string) error {
	return r.store.UserCreds.SetFields(ctx, bson.M{"username": username}, bson.M{"password": passwordHash})
}

func (r *userRepo) IncrTotalViews(ctx context.Context, username string) error {
	return r.store.UserInfo.IncFields(ctx, bson.M{"username": username}, bson.M{"total_views": 1}, false)
}

func (r *userRepo) Delete(ctx context.Context, username string) error {
	if err := r.store.UserCreds.DeleteOne(ctx, bson.M{"username": username}); err != nil {
		return err
	}
	if err := r.store.UserInfo.DeleteOne(ctx, bson.M{"username": username}); err != nil {
		return err
	}
	return r.store.UserAbout.DeleteOne(ctx, bson.M{"username": username})
}
