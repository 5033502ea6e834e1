package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/avoskan/taskdeck/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and attempts to create a new account
// via the AuthService. A successful registration also signs the user in.
//
// The password byte slice is securely wiped before returning. Any I/O or
// service error is reported to the user and returned unchanged.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	fullName, err := getSimpleText(a.reader, "Enter full name (optional)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, email, username, password, fullName); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Success! You are now logged in.")
	return nil
}

// Login prompts for credentials and tries to authenticate. On success the
// session manager persists the credential and the watchdog arms itself via
// the session change subscription.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, username, password); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn("Login successful")
	return nil
}

// Logout revokes the refresh token best-effort and tears the local session
// down. Safe to call when not logged in.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	printlnFn("Logged out")
	return nil
}

// WhoAmI fetches the authenticated profile from the server and prints it.
func (a *App) WhoAmI(ctx context.Context) error {
	user, err := a.userService.Me(ctx, false)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("%s <%s>", user.Username, user.Email))
	if user.FullName != "" {
		printlnFn("Name:", user.FullName)
	}
	if user.Bio != "" {
		printlnFn("Bio:", user.Bio)
	}
	if user.AvatarURL != "" {
		printlnFn("Avatar:", user.AvatarURL)
	}
	printlnFn("Member since:", user.CreatedAt.Format("2006-01-02"))
	return nil
}

// Stats prints the productivity summary for the authenticated user.
func (a *App) Stats(ctx context.Context) error {
	stats, err := a.userService.Stats(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Tasks: %d total, %d pending, %d in progress, %d completed",
		stats.TotalTasks, stats.PendingTasks, stats.InProgressTasks, stats.CompletedTasks))
	printlnFn(fmt.Sprintf("This week: %d created, %d completed", stats.TasksThisWeek, stats.TasksCompletedThisWeek))
	printlnFn(fmt.Sprintf("Groups: %d", stats.TotalGroups))
	printlnFn(fmt.Sprintf("Activity score: %.1f", stats.ActivityScore))
	return nil
}
