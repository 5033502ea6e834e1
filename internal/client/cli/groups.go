package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/avoskan/taskdeck/internal/client/models"
)

func (a *App) ListGroups(ctx context.Context) error {
	groups, err := a.groupService.List(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(groups) == 0 {
		printlnFn("No groups")
		return nil
	}

	for _, g := range groups {
		line := fmt.Sprintf("[%s] %s", g.ID, g.Name)
		if len(g.Members) > 0 {
			line += fmt.Sprintf("  (%d members)", len(g.Members))
		}
		printlnFn(line)
	}
	return nil
}

func (a *App) ShowGroup(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: group <id>")
		return nil
	}

	group, err := a.groupService.Get(ctx, args[0])
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("[%s] %s", group.ID, group.Name))
	if group.Description != "" {
		printlnFn(group.Description)
	}
	for _, m := range group.Members {
		printlnFn("  member:", m.Username)
	}
	for _, t := range group.Tasks {
		printlnFn(" ", formatTask(t))
	}
	return nil
}

func (a *App) AddGroup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter group name", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		printlnFn("Name is required")
		return nil
	}

	description, err := GetMultiline(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	group, err := a.groupService.Create(ctx, models.GroupCreateRequest{Name: name, Description: description})
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Created group:", group.Name)
	return nil
}

// EditGroup updates group fields interactively. Empty answers keep the
// current values, mirroring the server's partial-update semantics.
func (a *App) EditGroup(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: editgroup <id>")
		return nil
	}

	name, err := getSimpleText(a.reader, "Enter new name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	description, err := GetMultiline(a.reader, "Enter new description (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	req := models.GroupUpdateRequest{}
	if name != "" {
		req.Name = &name
	}
	if description != "" {
		req.Description = &description
	}
	if req.Name == nil && req.Description == nil {
		printlnFn("Nothing to update")
		return nil
	}

	group, err := a.groupService.Update(ctx, args[0], req)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Updated group:", group.Name)
	return nil
}

func (a *App) DeleteGroup(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: rmgroup <id>")
		return nil
	}

	if err := a.groupService.Delete(ctx, args[0]); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Deleted group", args[0])
	return nil
}

func (a *App) AddMember(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: invite <group-id> <user-id>")
		return nil
	}

	group, err := a.groupService.AddMember(ctx, args[0], args[1])
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Added member to %s (%d members)", group.Name, len(group.Members)))
	return nil
}

func (a *App) RemoveMember(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: kick <group-id> <user-id>")
		return nil
	}

	group, err := a.groupService.RemoveMember(ctx, args[0], args[1])
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Removed member from %s (%d members)", group.Name, len(group.Members)))
	return nil
}
