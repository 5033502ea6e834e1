package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register", nil)
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) WhoAmI(ctx context.Context) error { return f.record("whoami", nil) }
func (f *fakeExec) Stats(ctx context.Context) error  { return f.record("stats", nil) }
func (f *fakeExec) ListTasks(ctx context.Context, args []string) error {
	return f.record("tasks", args)
}
func (f *fakeExec) ShowTask(ctx context.Context, args []string) error {
	return f.record("show", args)
}
func (f *fakeExec) AddTask(ctx context.Context) error { return f.record("add", nil) }
func (f *fakeExec) CompleteTask(ctx context.Context, args []string) error {
	return f.record("done", args)
}
func (f *fakeExec) SetTaskStatus(ctx context.Context, args []string) error {
	return f.record("status", args)
}
func (f *fakeExec) DeleteTask(ctx context.Context, args []string) error {
	return f.record("rm", args)
}
func (f *fakeExec) ListGroups(ctx context.Context) error { return f.record("groups", nil) }
func (f *fakeExec) ShowGroup(ctx context.Context, args []string) error {
	return f.record("group", args)
}
func (f *fakeExec) AddGroup(ctx context.Context) error { return f.record("addgroup", nil) }
func (f *fakeExec) EditGroup(ctx context.Context, args []string) error {
	return f.record("editgroup", args)
}
func (f *fakeExec) DeleteGroup(ctx context.Context, args []string) error {
	return f.record("rmgroup", args)
}
func (f *fakeExec) AddMember(ctx context.Context, args []string) error {
	return f.record("invite", args)
}
func (f *fakeExec) RemoveMember(ctx context.Context, args []string) error {
	return f.record("kick", args)
}
func (f *fakeExec) EditProfile(ctx context.Context) error { return f.record("edit", nil) }
func (f *fakeExec) UploadAvatar(ctx context.Context, args []string) error {
	return f.record("avatar", args)
}
func (f *fakeExec) RemoveAvatar(ctx context.Context) error { return f.record("rmavatar", nil) }
func (f *fakeExec) UploadHeaderBackground(ctx context.Context, args []string) error {
	return f.record("header", args)
}
func (f *fakeExec) RemoveHeaderBackground(ctx context.Context) error {
	return f.record("rmheader", nil)
}
func (f *fakeExec) DeleteAccount(ctx context.Context) error {
	f.loggedIn = false
	return f.record("delaccount", nil)
}
func (f *fakeExec) FindUsers(ctx context.Context, args []string) error {
	return f.record("find", args)
}

func silencePrintln(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"tasks pending",
		"show 123",
		"done 123",
		"groups",
		"whoami",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "tasks", "show", "done", "groups", "whoami", "logout"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_ArgsPassedThrough(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("status 42 in_progress\ninvite g1 u2\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 2 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if got := exec.args[0]; len(got) != 2 || got[0] != "42" || got[1] != "in_progress" {
		t.Fatalf("status args mismatch: %v", got)
	}
	if got := exec.args[1]; len(got) != 2 || got[0] != "g1" || got[1] != "u2" {
		t.Fatalf("invite args mismatch: %v", got)
	}
}

func TestRunREPL_ProfileAndGroupEditCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"editgroup g1",
		"header bg.png",
		"rmheader",
		"rmavatar",
		"delaccount",
		"quit",
	}, "\n"))
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	want := []string{"editgroup", "header", "rmheader", "rmavatar", "delaccount"}
	if len(exec.calls) != len(want) {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	for i, c := range exec.calls {
		if c != want[i] {
			t.Fatalf("commands mismatch: got %v, want %v", exec.calls, want)
		}
	}
	if got := exec.args[0]; len(got) != 1 || got[0] != "g1" {
		t.Fatalf("editgroup args mismatch: %v", got)
	}
	if got := exec.args[1]; len(got) != 1 || got[0] != "bg.png" {
		t.Fatalf("header args mismatch: %v", got)
	}
	if exec.loggedIn {
		t.Fatal("delaccount should end the session")
	}
}

func TestRunREPL_EmptyLinesAndQuit(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("\n   \nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
