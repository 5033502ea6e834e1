package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/avoskan/taskdeck/internal/client/models"
)

func formatTask(t models.Task) string {
	s := fmt.Sprintf("[%s] %s  (%s, %s)", t.ID, t.Title, t.Status, t.Priority)
	if t.DueDate != nil {
		s += "  due " + t.DueDate.Format("2006-01-02")
	}
	if t.Group != nil {
		s += "  #" + t.Group.Name
	}
	return s
}

// ListTasks prints the task listing. An optional first argument filters by
// status: "tasks pending", "tasks completed", etc.
func (a *App) ListTasks(ctx context.Context, args []string) error {
	filters := models.TaskFilters{}
	if len(args) > 0 {
		filters.Status = models.TaskStatus(args[0])
	}

	list, err := a.taskService.List(ctx, filters)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(list.Items) == 0 {
		printlnFn("No tasks")
		return nil
	}

	for _, t := range list.Items {
		printlnFn(formatTask(t))
	}
	printlnFn(fmt.Sprintf("-- page %d, %d total", list.Meta.Page, list.Meta.Total))
	return nil
}

func (a *App) ShowTask(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: show <id>")
		return nil
	}

	task, err := a.taskService.Get(ctx, args[0])
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(formatTask(*task))
	if task.Description != "" {
		printlnFn(task.Description)
	}
	if task.CompletedAt != nil {
		printlnFn("Completed at:", task.CompletedAt.Format(time.RFC3339))
	}
	return nil
}

// AddTask interactively collects a title, an optional multiline description,
// and an optional priority, then creates the task.
func (a *App) AddTask(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	if title == "" {
		printlnFn("Title is required")
		return nil
	}

	description, err := GetMultiline(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	priority, err := getSimpleText(a.reader, "Enter priority: low, medium or high (optional)", os.Stdout)
	if err != nil {
		return err
	}

	task, err := a.taskService.Create(ctx, models.TaskCreateRequest{
		Title:       title,
		Description: description,
		Priority:    models.TaskPriority(priority),
	})
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Created:", formatTask(*task))
	return nil
}

func (a *App) CompleteTask(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: done <id>")
		return nil
	}

	task, err := a.taskService.Complete(ctx, args[0])
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Completed:", formatTask(*task))
	return nil
}

func (a *App) SetTaskStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: status <id> <pending|in_progress|completed|cancelled>")
		return nil
	}

	task, err := a.taskService.SetStatus(ctx, args[0], models.TaskStatus(args[1]))
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Updated:", formatTask(*task))
	return nil
}

func (a *App) DeleteTask(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: rm <id>")
		return nil
	}

	if err := a.taskService.Delete(ctx, args[0]); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Deleted task", args[0])
	return nil
}
