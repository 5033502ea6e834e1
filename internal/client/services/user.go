package services

import (
	"context"
	"fmt"
	"io"

	"github.com/avoskan/taskdeck/internal/client/api"
	"github.com/avoskan/taskdeck/internal/client/cache"
	"github.com/avoskan/taskdeck/internal/client/models"
	"github.com/avoskan/taskdeck/internal/client/session"
)

const userCachePrefix = "users:"

// UserService covers the account's own profile and the public directory.
// Profile mutations are written through to the session manager so the
// in-memory user and the persisted record stay current.
type UserService interface {
	Me(ctx context.Context, includeStats bool) (*models.User, error)
	Stats(ctx context.Context) (*models.UserStats, error)
	UpdateProfile(ctx context.Context, req models.UserUpdateRequest) (*models.User, error)
	DeleteAccount(ctx context.Context) error
	ByID(ctx context.Context, id string) (*models.UserPublic, error)
	ByUsername(ctx context.Context, username string) (*models.UserPublic, error)
	Search(ctx context.Context, params models.UserListParams) ([]models.UserPublic, error)
	UploadAvatar(ctx context.Context, filename string, file io.Reader) (*models.User, error)
	UploadHeaderBackground(ctx context.Context, filename string, file io.Reader) (*models.User, error)
	RemoveAvatar(ctx context.Context) (*models.User, error)
	RemoveHeaderBackground(ctx context.Context) (*models.User, error)
}

type userService struct {
	client  api.Client
	session *session.Manager
	cache   *cache.Cache
}

func NewUserService(client api.Client, sess *session.Manager, c *cache.Cache) UserService {
	return &userService{client: client, session: sess, cache: c}
}

func (s *userService) Me(ctx context.Context, includeStats bool) (*models.User, error) {
	return s.client.Me(ctx, includeStats)
}

func (s *userService) Stats(ctx context.Context) (*models.UserStats, error) {
	return s.client.MeStats(ctx)
}

func (s *userService) UpdateProfile(ctx context.Context, req models.UserUpdateRequest) (*models.User, error) {
	user, err := s.client.UpdateMe(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.session.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("profile updated but not persisted: %w", err)
	}

	s.cache.DeletePrefix(userCachePrefix)
	return user, nil
}

func (s *userService) DeleteAccount(ctx context.Context) error {
	return s.client.DeleteMe(ctx)
}

func (s *userService) ByID(ctx context.Context, id string) (*models.UserPublic, error) {
	key := userCachePrefix + "id:" + id
	if v, ok := s.cache.Get(key); ok {
		return v.(*models.UserPublic), nil
	}

	user, err := s.client.UserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, user)
	return user, nil
}

func (s *userService) ByUsername(ctx context.Context, username string) (*models.UserPublic, error) {
	key := userCachePrefix + "name:" + username
	if v, ok := s.cache.Get(key); ok {
		return v.(*models.UserPublic), nil
	}

	user, err := s.client.UserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, user)
	return user, nil
}

func (s *userService) Search(ctx context.Context, params models.UserListParams) ([]models.UserPublic, error) {
	return s.client.Users(ctx, params)
}

// refreshProfile re-reads the authenticated profile after an image change
// so the session carries the new URLs, not just the upload response.
func (s *userService) refreshProfile(ctx context.Context) (*models.User, error) {
	user, err := s.client.Me(ctx, false)
	if err != nil {
		return nil, err
	}
	if err := s.session.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	s.cache.DeletePrefix(userCachePrefix)
	return user, nil
}

func (s *userService) UploadAvatar(ctx context.Context, filename string, file io.Reader) (*models.User, error) {
	if _, err := s.client.UploadAvatar(ctx, filename, file); err != nil {
		return nil, err
	}
	return s.refreshProfile(ctx)
}

func (s *userService) UploadHeaderBackground(ctx context.Context, filename string, file io.Reader) (*models.User, error) {
	if _, err := s.client.UploadHeaderBackground(ctx, filename, file); err != nil {
		return nil, err
	}
	return s.refreshProfile(ctx)
}

func (s *userService) RemoveAvatar(ctx context.Context) (*models.User, error) {
	if err := s.client.DeleteAvatar(ctx); err != nil {
		return nil, err
	}
	return s.refreshProfile(ctx)
}

func (s *userService) RemoveHeaderBackground(ctx context.Context) (*models.User, error) {
	if err := s.client.DeleteHeaderBackground(ctx); err != nil {
		return nil, err
	}
	return s.refreshProfile(ctx)
}
