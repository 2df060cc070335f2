// Package cli implements the trackkeeper command line commands.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/trackkeeper/internal/client/iocli"
)

// ErrNotLoggedIn is returned by commands that need a session.
var ErrNotLoggedIn = errors.New("not authenticated. Please run 'trackkeeper login' first")

// ErrUsage indicates wrong command arguments.
var ErrUsage = errors.New("usage error")

// Cli выполняет команды клиента
type Cli struct {
	io      iocli.IO
	auth    AuthService
	tracker TrackerService
	syncer  SyncService
	remote  Remote
	network Network
}

// Option настраивает Cli
type Option func(*Cli)

// WithTracker подключает сервисы, доступные только после входа
func WithTracker(trackerService TrackerService, syncService SyncService) Option {
	return func(c *Cli) {
		c.tracker = trackerService
		c.syncer = syncService
	}
}

// WithRemote подключает сервер для команд sync и list --pull
func WithRemote(remote Remote, network Network) Option {
	return func(c *Cli) {
		c.remote = remote
		c.network = network
	}
}

// New создает Cli
func New(io iocli.IO, authService AuthService, opts ...Option) *Cli {
	c := &Cli{io: io, auth: authService}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run выполняет команду. args не включают имя команды.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	}

	if c.tracker == nil || c.syncer == nil {
		if isKnownCommand(command) {
			return ErrNotLoggedIn
		}
		return fmt.Errorf("%w: unknown command %q", ErrUsage, command)
	}

	switch command {
	case "add":
		return c.runAdd(ctx, args)
	case "toggle":
		return c.runToggle(ctx, args)
	case "done":
		return c.runDone(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "list":
		return c.runList(ctx, args)
	case "sync":
		return c.runSync(ctx)
	case "failed":
		return c.runFailed(ctx)
	case "retry":
		return c.runRetry(ctx, args)
	case "discard":
		return c.runDiscard(ctx, args)
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, command)
	}
}

func isKnownCommand(command string) bool {
	switch command {
	case "add", "toggle", "done", "delete", "list", "sync", "failed", "retry", "discard", "daemon":
		return true
	}
	return false
}

// PrintUsage печатает справку
func PrintUsage(io iocli.IO) {
	io.Println(usageText)
}

const usageText = `TrackKeeper Client

Usage:
  trackkeeper [OPTIONS] COMMAND [ARGS]

Options:
  --version            Show version information
  --server URL         Server URL (default: http://localhost:8080)
  --db PATH            Path to local database (default: trackkeeper-client.db)
  --user-id ID         Scope the local queue to this user (default: logged in user)

Commands:
  register                         Register new user
  login                            Login to server
  logout                           Logout and delete local session
  status                           Show session and sync status
  add weight <kg> [note]           Record a weight measurement
  add habit <name>                 Create a habit
  add task <title> [--due DATE]    Create a task (DATE is YYYY-MM-DD)
  toggle <habit-id> [DATE]         Mark or unmark a habit day (default: today)
  done <task-id>                   Complete a task
  delete <collection> <id>         Delete a record (entries, habits, tasks)
  list <collection> [--pull]       List records, optionally refreshing from server
  sync                             Push queued operations to the server
  failed                           Show operations that exhausted their retries
  retry <id>|--all                 Move failed operations back to the queue
  discard <id>|--all               Drop failed operations
  daemon                           Keep syncing in the background

Examples:
  trackkeeper login
  trackkeeper add weight 72.4 after run
  trackkeeper add task "Buy milk" --due 2026-03-15
  trackkeeper --server https://example.com sync`
