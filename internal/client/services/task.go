package services

import (
	"context"
	"fmt"

	"github.com/avoskan/taskdeck/internal/client/api"
	"github.com/avoskan/taskdeck/internal/client/cache"
	"github.com/avoskan/taskdeck/internal/client/models"
)

const taskCachePrefix = "tasks:"

// TaskService is the task surface of the client. Listings and single-task
// reads go through the response cache; every write evicts the whole task
// section so no stale listing survives a mutation.
type TaskService interface {
	List(ctx context.Context, filters models.TaskFilters) (*models.TaskList, error)
	Get(ctx context.Context, id string) (*models.Task, error)
	Create(ctx context.Context, req models.TaskCreateRequest) (*models.Task, error)
	Update(ctx context.Context, id string, req models.TaskUpdateRequest) (*models.Task, error)
	Delete(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) (*models.Task, error)
	SetStatus(ctx context.Context, id string, status models.TaskStatus) (*models.Task, error)
}

type taskService struct {
	client api.Client
	cache  *cache.Cache
}

func NewTaskService(client api.Client, c *cache.Cache) TaskService {
	return &taskService{client: client, cache: c}
}

func taskListKey(f models.TaskFilters) string {
	return fmt.Sprintf("%slist:%s|%s|%s|%d|%d", taskCachePrefix, f.Status, f.Priority, f.GroupID, f.Page, f.Limit)
}

func (s *taskService) List(ctx context.Context, filters models.TaskFilters) (*models.TaskList, error) {
	key := taskListKey(filters)
	if v, ok := s.cache.Get(key); ok {
		return v.(*models.TaskList), nil
	}

	list, err := s.client.Tasks(ctx, filters)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, list)
	return list, nil
}

func (s *taskService) Get(ctx context.Context, id string) (*models.Task, error) {
	key := taskCachePrefix + "item:" + id
	if v, ok := s.cache.Get(key); ok {
		return v.(*models.Task), nil
	}

	task, err := s.client.Task(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, task)
	return task, nil
}

func (s *taskService) Create(ctx context.Context, req models.TaskCreateRequest) (*models.Task, error) {
	task, err := s.client.CreateTask(ctx, req)
	if err != nil {
		return nil, err
	}
	s.cache.DeletePrefix(taskCachePrefix)
	return task, nil
}

func (s *taskService) Update(ctx context.Context, id string, req models.TaskUpdateRequest) (*models.Task, error) {
	task, err := s.client.UpdateTask(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.DeletePrefix(taskCachePrefix)
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteTask(ctx, id); err != nil {
		return err
	}
	s.cache.DeletePrefix(taskCachePrefix)
	return nil
}

func (s *taskService) Complete(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.client.CompleteTask(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.DeletePrefix(taskCachePrefix)
	return task, nil
}

func (s *taskService) SetStatus(ctx context.Context, id string, status models.TaskStatus) (*models.Task, error) {
	task, err := s.client.UpdateTaskStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.cache.DeletePrefix(taskCachePrefix)
	return task, nil
}
