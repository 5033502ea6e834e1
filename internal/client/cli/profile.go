package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avoskan/taskdeck/internal/client/models"
)

// EditProfile collects new profile values interactively. Empty answers leave
// the corresponding field unchanged, mirroring the server's partial-update
// semantics.
func (a *App) EditProfile(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	bio, err := GetMultiline(a.reader, "Enter bio (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	req := models.UserUpdateRequest{}
	if fullName != "" {
		req.FullName = &fullName
	}
	if bio != "" {
		req.Bio = &bio
	}
	if req.FullName == nil && req.Bio == nil {
		printlnFn("Nothing to update")
		return nil
	}

	user, err := a.userService.UpdateProfile(ctx, req)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Profile updated for", user.Username)
	return nil
}

// UploadAvatar sends a local image file as the new avatar.
func (a *App) UploadAvatar(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: avatar <path-to-image>")
		return nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	defer f.Close()

	user, err := a.userService.UploadAvatar(ctx, filepath.Base(args[0]), f)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Avatar updated:", user.AvatarURL)
	return nil
}

// RemoveAvatar resets the avatar to the default.
func (a *App) RemoveAvatar(ctx context.Context) error {
	if _, err := a.userService.RemoveAvatar(ctx); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Avatar removed")
	return nil
}

// UploadHeaderBackground sends a local image file as the profile header.
func (a *App) UploadHeaderBackground(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: header <path-to-image>")
		return nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	defer f.Close()

	user, err := a.userService.UploadHeaderBackground(ctx, filepath.Base(args[0]), f)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Header background updated:", user.HeaderBackgroundURL)
	return nil
}

// RemoveHeaderBackground resets the profile header to the default.
func (a *App) RemoveHeaderBackground(ctx context.Context) error {
	if _, err := a.userService.RemoveHeaderBackground(ctx); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Header background removed")
	return nil
}

// DeleteAccount asks for an explicit confirmation, deletes the account on
// the server, then ends the local session. The credential is dead server-side
// once the account is gone, so the teardown skips the revoke round-trip.
func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Type 'yes' to delete your account permanently", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		printlnFn("Aborted")
		return nil
	}

	if err := a.userService.DeleteAccount(ctx); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	a.authService.HandleUnauthorized(ctx)
	printlnFn("Account deleted")
	return nil
}

// FindUsers searches the public user directory.
func (a *App) FindUsers(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: find <text>")
		return nil
	}

	users, err := a.userService.Search(ctx, models.UserListParams{Search: strings.Join(args, " ")})
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(users) == 0 {
		printlnFn("No users found")
		return nil
	}

	for _, u := range users {
		line := fmt.Sprintf("[%s] %s", u.ID, u.Username)
		if u.FullName != "" {
			line += "  " + u.FullName
		}
		printlnFn(line)
	}
	return nil
}
