package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/avoskan/taskdeck/internal/client/cache"
	"github.com/avoskan/taskdeck/internal/client/models"
	"github.com/avoskan/taskdeck/internal/client/session"
	"github.com/stretchr/testify/require"
)

func setupUsers(t *testing.T, client *fakeClient) (UserService, *session.Manager) {
	t.Helper()
	store := setupStore(t)
	sess := session.NewManager(store, testLogger())
	c := cache.New(time.Minute)
	t.Cleanup(c.Close)
	return NewUserService(client, sess, c), sess
}

func loggedIn(t *testing.T, sess *session.Manager, username string) {
	t.Helper()
	u := &models.User{ID: "u-1", Username: username}
	require.NoError(t, sess.Login(context.Background(), u, "access-1", "refresh-1"))
}

func strPtr(s string) *string { return &s }

func TestUpdateProfile_WritesThroughToSession(t *testing.T) {
	client := &fakeClient{UpdateMeResp: &models.User{ID: "u-1", Username: "alice", Bio: "hello"}}
	svc, sess := setupUsers(t, client)
	loggedIn(t, sess, "alice")

	got, err := svc.UpdateProfile(context.Background(), models.UserUpdateRequest{Bio: strPtr("hello")})
	require.NoError(t, err)

	require.Equal(t, "hello", got.Bio)
	require.Equal(t, "hello", sess.CurrentUser().Bio)
	require.NotNil(t, client.LastUpdateMe.Bio)
}

func TestUserByID_Cached(t *testing.T) {
	client := &fakeClient{UserResp: &models.UserPublic{ID: "u-2", Username: "bob"}}
	svc, _ := setupUsers(t, client)
	ctx := context.Background()

	first, err := svc.ByID(ctx, "u-2")
	require.NoError(t, err)

	client.UserResp = nil // cache must answer the second read
	second, err := svc.ByID(ctx, "u-2")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestUploadAvatar_RefreshesSessionUser(t *testing.T) {
	client := &fakeClient{
		MeResp: &models.User{ID: "u-1", Username: "alice", AvatarURL: "/static/pic.png"},
	}
	svc, sess := setupUsers(t, client)
	loggedIn(t, sess, "alice")

	got, err := svc.UploadAvatar(context.Background(), "pic.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	require.Equal(t, "pic.png", client.LastUploadName)
	require.Equal(t, "/static/pic.png", got.AvatarURL)
	require.Equal(t, "/static/pic.png", sess.CurrentUser().AvatarURL)
}

func TestRemoveAvatar_RefreshesSessionUser(t *testing.T) {
	client := &fakeClient{
		MeResp: &models.User{ID: "u-1", Username: "alice"},
	}
	svc, sess := setupUsers(t, client)
	loggedIn(t, sess, "alice")

	got, err := svc.RemoveAvatar(context.Background())
	require.NoError(t, err)
	require.Empty(t, got.AvatarURL)
	require.Empty(t, sess.CurrentUser().AvatarURL)
}

func TestSearch_PassesThrough(t *testing.T) {
	client := &fakeClient{UsersResp: []models.UserPublic{{ID: "u-2", Username: "bob"}}}
	svc, _ := setupUsers(t, client)

	users, err := svc.Search(context.Background(), models.UserListParams{Search: "bo"})
	require.NoError(t, err)
	require.Len(t, users, 1)
}
