package api

import (
	"context"

	"github.com/avoskan/taskdeck/internal/client/models"
)

const groupsPrefix = "groups"

func (c *HTTPClient) Groups(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	if err := c.get(ctx, groupsPrefix+"/", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *HTTPClient) Group(ctx context.Context, id string) (*models.GroupWithTasks, error) {
	var group models.GroupWithTasks
	if err := c.get(ctx, groupsPrefix+"/"+id, nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *HTTPClient) CreateGroup(ctx context.Context, req models.GroupCreateRequest) (*models.Group, error) {
	var group models.Group
	if err := c.post(ctx, groupsPrefix+"/", req, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *HTTPClient) UpdateGroup(ctx context.Context, id string, req models.GroupUpdateRequest) (*models.Group, error) {
	var group models.Group
	if err := c.put(ctx, groupsPrefix+"/"+id, req, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *HTTPClient) DeleteGroup(ctx context.Context, id string) error {
	return c.del(ctx, groupsPrefix+"/"+id, nil)
}

func (c *HTTPClient) AddGroupMember(ctx context.Context, groupID, userID string) (*models.Group, error) {
	var group models.Group
	if err := c.post(ctx, groupsPrefix+"/"+groupID+"/members", models.GroupMemberRequest{UserID: userID}, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *HTTPClient) RemoveGroupMember(ctx context.Context, groupID, userID string) (*models.Group, error) {
	var group models.Group
	if err := c.del(ctx, groupsPrefix+"/"+groupID+"/members/"+userID, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *HTTPClient) GroupTasks(ctx context.Context, groupID string) (*models.GroupWithTasks, error) {
	var group models.GroupWithTasks
	if err := c.get(ctx, groupsPrefix+"/"+groupID+"/tasks", nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}
