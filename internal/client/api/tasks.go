package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/avoskan/taskdeck/internal/client/models"
)

const tasksPrefix = "tasks"

func (c *HTTPClient) Tasks(ctx context.Context, filters models.TaskFilters) (*models.TaskList, error) {
	query := url.Values{}
	if filters.Status != "" {
		query.Set("status", string(filters.Status))
	}
	if filters.Priority != "" {
		query.Set("priority", string(filters.Priority))
	}
	if filters.GroupID != "" {
		query.Set("group_id", filters.GroupID)
	}
	if filters.Page > 0 {
		query.Set("page", strconv.Itoa(filters.Page))
	}
	if filters.Limit > 0 {
		query.Set("limit", strconv.Itoa(filters.Limit))
	}

	var list models.TaskList
	if err := c.get(ctx, tasksPrefix+"/", query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *HTTPClient) Task(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task
	if err := c.get(ctx, tasksPrefix+"/"+id, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *HTTPClient) CreateTask(ctx context.Context, req models.TaskCreateRequest) (*models.Task, error) {
	var task models.Task
	if err := c.post(ctx, tasksPrefix+"/", req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *HTTPClient) UpdateTask(ctx context.Context, id string, req models.TaskUpdateRequest) (*models.Task, error) {
	var task models.Task
	if err := c.put(ctx, tasksPrefix+"/"+id, req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *HTTPClient) DeleteTask(ctx context.Context, id string) error {
	return c.del(ctx, tasksPrefix+"/"+id, nil)
}

func (c *HTTPClient) CompleteTask(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task
	if err := c.patch(ctx, tasksPrefix+"/"+id+"/complete", nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *HTTPClient) UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus) (*models.Task, error) {
	var task models.Task
	if err := c.patch(ctx, tasksPrefix+"/"+id+"/status", models.TaskStatusUpdateRequest{Status: status}, &task); err != nil {
		return nil, err
	}
	return &task, nil
}
