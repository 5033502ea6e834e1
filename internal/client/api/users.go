package api

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/avoskan/taskdeck/internal/client/models"
)

const usersPrefix = "users"

func (c *HTTPClient) Me(ctx context.Context, includeStats bool) (*models.User, error) {
	query := url.Values{}
	query.Set("include_stats", strconv.FormatBool(includeStats))

	var u models.User
	if err := c.get(ctx, usersPrefix+"/me", query, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) MeStats(ctx context.Context) (*models.UserStats, error) {
	var s models.UserStats
	if err := c.get(ctx, usersPrefix+"/me/stats", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) UpdateMe(ctx context.Context, req models.UserUpdateRequest) (*models.User, error) {
	var u models.User
	if err := c.put(ctx, usersPrefix+"/me", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) DeleteMe(ctx context.Context) error {
	return c.del(ctx, usersPrefix+"/me", nil)
}

func (c *HTTPClient) UserByID(ctx context.Context, id string) (*models.UserPublic, error) {
	var u models.UserPublic
	if err := c.get(ctx, usersPrefix+"/"+id, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) UserByUsername(ctx context.Context, username string) (*models.UserPublic, error) {
	var u models.UserPublic
	if err := c.get(ctx, usersPrefix+"/username/"+username, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Users(ctx context.Context, params models.UserListParams) ([]models.UserPublic, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Size > 0 {
		query.Set("size", strconv.Itoa(params.Size))
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}

	var users []models.UserPublic
	if err := c.get(ctx, usersPrefix+"/", query, &users); err != nil {
		return nil, err
	}
	return users, nil
}

const uploadPrefix = "upload"

func (c *HTTPClient) UploadAvatar(ctx context.Context, filename string, file io.Reader) (*models.UploadAvatarResponse, error) {
	var resp models.UploadAvatarResponse
	if err := c.upload(ctx, uploadPrefix+"/avatar", filename, file, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) UploadHeaderBackground(ctx context.Context, filename string, file io.Reader) (*models.UploadHeaderBackgroundResponse, error) {
	var resp models.UploadHeaderBackgroundResponse
	if err := c.upload(ctx, uploadPrefix+"/header-background", filename, file, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) DeleteAvatar(ctx context.Context) error {
	return c.del(ctx, uploadPrefix+"/avatar", nil)
}

func (c *HTTPClient) DeleteHeaderBackground(ctx context.Context) error {
	return c.del(ctx, uploadPrefix+"/header-background", nil)
}
