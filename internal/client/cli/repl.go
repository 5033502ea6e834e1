package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Stats(ctx context.Context) error
	ListTasks(ctx context.Context, args []string) error
	ShowTask(ctx context.Context, args []string) error
	AddTask(ctx context.Context) error
	CompleteTask(ctx context.Context, args []string) error
	SetTaskStatus(ctx context.Context, args []string) error
	DeleteTask(ctx context.Context, args []string) error
	ListGroups(ctx context.Context) error
	ShowGroup(ctx context.Context, args []string) error
	AddGroup(ctx context.Context) error
	EditGroup(ctx context.Context, args []string) error
	DeleteGroup(ctx context.Context, args []string) error
	AddMember(ctx context.Context, args []string) error
	RemoveMember(ctx context.Context, args []string) error
	EditProfile(ctx context.Context) error
	UploadAvatar(ctx context.Context, args []string) error
	RemoveAvatar(ctx context.Context) error
	UploadHeaderBackground(ctx context.Context, args []string) error
	RemoveHeaderBackground(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	FindUsers(ctx context.Context, args []string) error
}

// runREPL starts a simple read-eval-print loop for the taskdeck CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help                 — show available commands
//	  - tasks [status]       — list tasks, optionally filtered by status
//	  - show <id>            — show a single task
//	  - add                  — add a task (interactive prompts)
//	  - done <id>            — mark a task completed
//	  - status <id> <value>  — set task status
//	  - rm <id>              — delete a task
//	  - groups               — list groups
//	  - group <id>           — show a group with its tasks
//	  - addgroup             — create a group
//	  - editgroup <id>       — edit a group (interactive prompts)
//	  - rmgroup <id>         — delete a group
//	  - invite <gid> <uid>   — add a member to a group
//	  - kick <gid> <uid>     — remove a member from a group
//	  - whoami               — show the current profile
//	  - stats                — show productivity stats
//	  - edit                 — edit the profile
//	  - avatar <path>        — upload an avatar image
//	  - rmavatar             — remove the avatar
//	  - header <path>        — upload a header background image
//	  - rmheader             — remove the header background
//	  - find <text>          — search users
//	  - delaccount           — delete the account permanently
//	  - logout               — log out
//	  - exit | quit          — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("td> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: tasks, show, add, done, status, rm, groups, group, addgroup, editgroup, rmgroup, invite, kick, whoami, stats, edit, avatar, rmavatar, header, rmheader, find, delaccount, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "t", "tasks":
			_ = a.ListTasks(ctx, args)

		case "show":
			_ = a.ShowTask(ctx, args)

		case "add":
			_ = a.AddTask(ctx)

		case "done":
			_ = a.CompleteTask(ctx, args)

		case "status":
			_ = a.SetTaskStatus(ctx, args)

		case "rm":
			_ = a.DeleteTask(ctx, args)

		case "g", "groups":
			_ = a.ListGroups(ctx)

		case "group":
			_ = a.ShowGroup(ctx, args)

		case "addgroup":
			_ = a.AddGroup(ctx)

		case "editgroup":
			_ = a.EditGroup(ctx, args)

		case "rmgroup":
			_ = a.DeleteGroup(ctx, args)

		case "invite":
			_ = a.AddMember(ctx, args)

		case "kick":
			_ = a.RemoveMember(ctx, args)

		case "edit":
			_ = a.EditProfile(ctx)

		case "avatar":
			_ = a.UploadAvatar(ctx, args)

		case "rmavatar":
			_ = a.RemoveAvatar(ctx)

		case "header":
			_ = a.UploadHeaderBackground(ctx, args)

		case "rmheader":
			_ = a.RemoveHeaderBackground(ctx)

		case "delaccount":
			_ = a.DeleteAccount(ctx)

		case "find":
			_ = a.FindUsers(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
