package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/avoskan/taskdeck/internal/client/api"
	"github.com/avoskan/taskdeck/internal/client/cache"
	"github.com/avoskan/taskdeck/internal/client/config"
	"github.com/avoskan/taskdeck/internal/client/models"
	"github.com/avoskan/taskdeck/internal/client/repositories"
	"github.com/avoskan/taskdeck/internal/client/repositories/credentials"
	"github.com/avoskan/taskdeck/internal/client/services"
	"github.com/avoskan/taskdeck/internal/client/session"
	"github.com/avoskan/taskdeck/internal/client/watchdog"
	"github.com/avoskan/taskdeck/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config       *config.Config
	db           *sql.DB
	cache        *cache.Cache
	session      *session.Manager
	watchdog     *watchdog.Watchdog
	authService  services.AuthService
	taskService  services.TaskService
	groupService services.GroupService
	userService  services.UserService
	log          logging.Logger
	reader       *bufio.Reader
}

// NewApp wires the whole client together: local database, credential store,
// session manager, HTTP transport, application services, and the token
// watchdog. The watchdog arms and disarms on session transitions and funnels
// expiry into the same teardown path the transport's 401 callback uses.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {

	ctx := context.Background()

	db, err := repositories.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := credentials.NewSQLiteRepository(db)
	sess := session.NewManager(store, log)
	responses := cache.New(c.CacheTTL)

	apiClient := api.NewHTTPClient(c.ServerBaseURL, func(ctx context.Context) string {
		// read fresh on every request so a replaced session is picked up
		tok, err := store.AccessToken(ctx)
		if err != nil {
			return ""
		}
		return tok
	}, c.RequestTimeout)

	as := services.NewAuthService(apiClient, sess, store, responses, log)

	apiClient.SetOnUnauthorized(func() {
		as.HandleUnauthorized(context.Background())
	})

	wd := watchdog.New(store.AccessToken, as.HandleUnauthorized, c.WatchInterval, log)

	sess.OnChange(func(u *models.User) {
		if u != nil {
			wd.Arm()
		} else {
			wd.Disarm()
		}
	})

	return &App{
		config:       c,
		db:           db,
		cache:        responses,
		session:      sess,
		watchdog:     wd,
		authService:  as,
		taskService:  services.NewTaskService(apiClient, responses),
		groupService: services.NewGroupService(apiClient, responses),
		userService:  services.NewUserService(apiClient, sess, responses),
		log:          log,
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if u := a.session.CurrentUser(); u != nil {
		return "(" + u.Username + ")"
	}
	return ""
}

// Run restores the persisted session, starts the watchdog, and hands control
// to the REPL. It blocks until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.authService.Rehydrate(ctx)

	go a.watchdog.Run(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) Close() {
	a.cache.Close()
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "error closing database", "error", err)
	}
}
