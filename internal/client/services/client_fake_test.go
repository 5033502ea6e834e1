package services

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/avoskan/taskdeck/internal/client/api"
	"github.com/avoskan/taskdeck/internal/client/models"
)

// fakeClient реализует api.Client для юнит-тестов сервисов. Заполняются
// только поля, нужные конкретному тесту; остальные методы возвращают нули.
type fakeClient struct {
	RegisterResp *models.AuthResponse
	RegisterErr  error

	LoginResp *models.AuthResponse
	LoginErr  error

	LogoutErr   error
	LogoutCalls atomic.Int32
	// если задан, Logout блокируется, пока канал не закроют
	LogoutBlock chan struct{}

	MeResp *models.User
	MeErr  error

	StatsResp *models.UserStats

	UpdateMeResp *models.User
	UpdateMeErr  error

	DeleteMeErr error

	UserResp  *models.UserPublic
	UserErr   error
	UsersResp []models.UserPublic

	TasksResp  *models.TaskList
	TasksErr   error
	TasksCalls int

	TaskResp  *models.Task
	TaskErr   error
	TaskCalls int

	CreateTaskResp *models.Task
	CreateTaskErr  error

	DeleteTaskErr error

	GroupsResp  []models.Group
	GroupsErr   error
	GroupsCalls int

	GroupResp *models.GroupWithTasks
	GroupErr  error

	CreateGroupResp *models.Group
	CreateGroupErr  error

	AvatarErr error

	// записанные аргументы
	LastRegister     models.RegisterRequest
	LastLoginUser    string
	LastLoginPass    string
	LastLogoutToken  string
	LastTaskFilters  models.TaskFilters
	LastTaskID       string
	LastTaskStatus   models.TaskStatus
	LastGroupID      string
	LastGroupUpdate  models.GroupUpdateRequest
	LastMemberUserID string
	LastUpdateMe     models.UserUpdateRequest
	LastUploadName   string
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	f.LastRegister = req
	return f.RegisterResp, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	f.LastLoginUser, f.LastLoginPass = username, password
	return f.LoginResp, f.LoginErr
}

func (f *fakeClient) Refresh(ctx context.Context, refreshToken string) (*models.RefreshResponse, error) {
	return nil, nil
}

func (f *fakeClient) Logout(ctx context.Context, refreshToken string) error {
	f.LogoutCalls.Add(1)
	f.LastLogoutToken = refreshToken
	if f.LogoutBlock != nil {
		<-f.LogoutBlock
	}
	return f.LogoutErr
}

func (f *fakeClient) Me(ctx context.Context, includeStats bool) (*models.User, error) {
	return f.MeResp, f.MeErr
}

func (f *fakeClient) MeStats(ctx context.Context) (*models.UserStats, error) {
	return f.StatsResp, nil
}

func (f *fakeClient) UpdateMe(ctx context.Context, req models.UserUpdateRequest) (*models.User, error) {
	f.LastUpdateMe = req
	return f.UpdateMeResp, f.UpdateMeErr
}

func (f *fakeClient) DeleteMe(ctx context.Context) error { return f.DeleteMeErr }

func (f *fakeClient) UserByID(ctx context.Context, id string) (*models.UserPublic, error) {
	return f.UserResp, f.UserErr
}

func (f *fakeClient) UserByUsername(ctx context.Context, username string) (*models.UserPublic, error) {
	return f.UserResp, f.UserErr
}

func (f *fakeClient) Users(ctx context.Context, params models.UserListParams) ([]models.UserPublic, error) {
	return f.UsersResp, nil
}

func (f *fakeClient) Tasks(ctx context.Context, filters models.TaskFilters) (*models.TaskList, error) {
	f.TasksCalls++
	f.LastTaskFilters = filters
	return f.TasksResp, f.TasksErr
}

func (f *fakeClient) Task(ctx context.Context, id string) (*models.Task, error) {
	f.TaskCalls++
	f.LastTaskID = id
	return f.TaskResp, f.TaskErr
}

func (f *fakeClient) CreateTask(ctx context.Context, req models.TaskCreateRequest) (*models.Task, error) {
	return f.CreateTaskResp, f.CreateTaskErr
}

func (f *fakeClient) UpdateTask(ctx context.Context, id string, req models.TaskUpdateRequest) (*models.Task, error) {
	f.LastTaskID = id
	return f.TaskResp, f.TaskErr
}

func (f *fakeClient) DeleteTask(ctx context.Context, id string) error {
	f.LastTaskID = id
	return f.DeleteTaskErr
}

func (f *fakeClient) CompleteTask(ctx context.Context, id string) (*models.Task, error) {
	f.LastTaskID = id
	return f.TaskResp, f.TaskErr
}

func (f *fakeClient) UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus) (*models.Task, error) {
	f.LastTaskID, f.LastTaskStatus = id, status
	return f.TaskResp, f.TaskErr
}

func (f *fakeClient) Groups(ctx context.Context) ([]models.Group, error) {
	f.GroupsCalls++
	return f.GroupsResp, f.GroupsErr
}

func (f *fakeClient) Group(ctx context.Context, id string) (*models.GroupWithTasks, error) {
	f.LastGroupID = id
	return f.GroupResp, f.GroupErr
}

func (f *fakeClient) CreateGroup(ctx context.Context, req models.GroupCreateRequest) (*models.Group, error) {
	return f.CreateGroupResp, f.CreateGroupErr
}

func (f *fakeClient) UpdateGroup(ctx context.Context, id string, req models.GroupUpdateRequest) (*models.Group, error) {
	f.LastGroupID, f.LastGroupUpdate = id, req
	return f.CreateGroupResp, f.CreateGroupErr
}

func (f *fakeClient) DeleteGroup(ctx context.Context, id string) error {
	f.LastGroupID = id
	return nil
}

func (f *fakeClient) AddGroupMember(ctx context.Context, groupID, userID string) (*models.Group, error) {
	f.LastGroupID, f.LastMemberUserID = groupID, userID
	return f.CreateGroupResp, f.CreateGroupErr
}

func (f *fakeClient) RemoveGroupMember(ctx context.Context, groupID, userID string) (*models.Group, error) {
	f.LastGroupID, f.LastMemberUserID = groupID, userID
	return f.CreateGroupResp, f.CreateGroupErr
}

func (f *fakeClient) GroupTasks(ctx context.Context, groupID string) (*models.GroupWithTasks, error) {
	f.LastGroupID = groupID
	return f.GroupResp, f.GroupErr
}

func (f *fakeClient) UploadAvatar(ctx context.Context, filename string, file io.Reader) (*models.UploadAvatarResponse, error) {
	f.LastUploadName = filename
	if f.AvatarErr != nil {
		return nil, f.AvatarErr
	}
	return &models.UploadAvatarResponse{AvatarURL: "/static/" + filename}, nil
}

func (f *fakeClient) UploadHeaderBackground(ctx context.Context, filename string, file io.Reader) (*models.UploadHeaderBackgroundResponse, error) {
	f.LastUploadName = filename
	return &models.UploadHeaderBackgroundResponse{HeaderBackgroundURL: "/static/" + filename}, nil
}

func (f *fakeClient) DeleteAvatar(ctx context.Context) error { return f.AvatarErr }

func (f *fakeClient) DeleteHeaderBackground(ctx context.Context) error { return nil }
