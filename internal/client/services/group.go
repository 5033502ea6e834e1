package services

import (
	"context"

	"github.com/avoskan/taskdeck/internal/client/api"
	"github.com/avoskan/taskdeck/internal/client/cache"
	"github.com/avoskan/taskdeck/internal/client/models"
)

const groupCachePrefix = "groups:"

// GroupService mirrors TaskService for groups. Membership changes count as
// writes: they evict the group section and the task section, because group
// task listings embed member data.
type GroupService interface {
	List(ctx context.Context) ([]models.Group, error)
	Get(ctx context.Context, id string) (*models.GroupWithTasks, error)
	Create(ctx context.Context, req models.GroupCreateRequest) (*models.Group, error)
	Update(ctx context.Context, id string, req models.GroupUpdateRequest) (*models.Group, error)
	Delete(ctx context.Context, id string) error
	AddMember(ctx context.Context, groupID, userID string) (*models.Group, error)
	RemoveMember(ctx context.Context, groupID, userID string) (*models.Group, error)
	Tasks(ctx context.Context, groupID string) (*models.GroupWithTasks, error)
}

type groupService struct {
	client api.Client
	cache  *cache.Cache
}

func NewGroupService(client api.Client, c *cache.Cache) GroupService {
	return &groupService{client: client, cache: c}
}

func (s *groupService) invalidate() {
	s.cache.DeletePrefix(groupCachePrefix)
	s.cache.DeletePrefix(taskCachePrefix)
}

func (s *groupService) List(ctx context.Context) ([]models.Group, error) {
	key := groupCachePrefix + "list"
	if v, ok := s.cache.Get(key); ok {
		return v.([]models.Group), nil
	}

	groups, err := s.client.Groups(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, groups)
	return groups, nil
}

func (s *groupService) Get(ctx context.Context, id string) (*models.GroupWithTasks, error) {
	key := groupCachePrefix + "item:" + id
	if v, ok := s.cache.Get(key); ok {
		return v.(*models.GroupWithTasks), nil
	}

	group, err := s.client.Group(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, group)
	return group, nil
}

func (s *groupService) Create(ctx context.Context, req models.GroupCreateRequest) (*models.Group, error) {
	group, err := s.client.CreateGroup(ctx, req)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return group, nil
}

func (s *groupService) Update(ctx context.Context, id string, req models.GroupUpdateRequest) (*models.Group, error) {
	group, err := s.client.UpdateGroup(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return group, nil
}

func (s *groupService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteGroup(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *groupService) AddMember(ctx context.Context, groupID, userID string) (*models.Group, error) {
	group, err := s.client.AddGroupMember(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return group, nil
}

func (s *groupService) RemoveMember(ctx context.Context, groupID, userID string) (*models.Group, error) {
	group, err := s.client.RemoveGroupMember(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return group, nil
}

func (s *groupService) Tasks(ctx context.Context, groupID string) (*models.GroupWithTasks, error) {
	key := groupCachePrefix + "tasks:" + groupID
	if v, ok := s.cache.Get(key); ok {
		return v.(*models.GroupWithTasks), nil
	}

	group, err := s.client.GroupTasks(ctx, groupID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, group)
	return group, nil
}
