package api

import (
	"context"
	"io"

	"github.com/avoskan/taskdeck/internal/client/models"
)

// Client is the full API surface of the taskdeck backend as consumed by the
// application services. HTTPClient is the production implementation; tests
// substitute fakes.
type Client interface {
	// Auth.
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*models.RefreshResponse, error)
	Logout(ctx context.Context, refreshToken string) error

	// Users.
	Me(ctx context.Context, includeStats bool) (*models.User, error)
	MeStats(ctx context.Context) (*models.UserStats, error)
	UpdateMe(ctx context.Context, req models.UserUpdateRequest) (*models.User, error)
	DeleteMe(ctx context.Context) error
	UserByID(ctx context.Context, id string) (*models.UserPublic, error)
	UserByUsername(ctx context.Context, username string) (*models.UserPublic, error)
	Users(ctx context.Context, params models.UserListParams) ([]models.UserPublic, error)

	// Tasks.
	Tasks(ctx context.Context, filters models.TaskFilters) (*models.TaskList, error)
	Task(ctx context.Context, id string) (*models.Task, error)
	CreateTask(ctx context.Context, req models.TaskCreateRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, id string, req models.TaskUpdateRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error
	CompleteTask(ctx context.Context, id string) (*models.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus) (*models.Task, error)

	// Groups.
	Groups(ctx context.Context) ([]models.Group, error)
	Group(ctx context.Context, id string) (*models.GroupWithTasks, error)
	CreateGroup(ctx context.Context, req models.GroupCreateRequest) (*models.Group, error)
	UpdateGroup(ctx context.Context, id string, req models.GroupUpdateRequest) (*models.Group, error)
	DeleteGroup(ctx context.Context, id string) error
	AddGroupMember(ctx context.Context, groupID, userID string) (*models.Group, error)
	RemoveGroupMember(ctx context.Context, groupID, userID string) (*models.Group, error)
	GroupTasks(ctx context.Context, groupID string) (*models.GroupWithTasks, error)

	// Uploads.
	UploadAvatar(ctx context.Context, filename string, file io.Reader) (*models.UploadAvatarResponse, error)
	UploadHeaderBackground(ctx context.Context, filename string, file io.Reader) (*models.UploadHeaderBackgroundResponse, error)
	DeleteAvatar(ctx context.Context) error
	DeleteHeaderBackground(ctx context.Context) error
}

var _ Client = (*HTTPClient)(nil)
