// Package cli implements the interactive user directory client: a
// read–eval–print loop over the in-memory record set, with a
// prompt-driven form for create/edit sessions and a confirmation gate
// for deletions.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/api"
	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/config"
	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/logging"
	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/session"
	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/store"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

type App struct {
	config *config.Config
	log    logging.Logger

	reader *bufio.Reader
	out    io.Writer

	store     *store.Store
	forms     *session.Controller
	deletions *session.Confirmor
	api       *api.Client
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	st := store.New()
	return &App{
		config:    cfg,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		store:     st,
		forms:     session.NewController(st, log),
		deletions: session.NewConfirmor(st, log),
		api:       api.NewClient(cfg.APIEndpoint, cfg.RequestTimeout, log),
	}
}

// Run performs the one-shot initial load and enters the command loop.
// When stdin is not a terminal (piped input) the prompt and banner are
// suppressed so scripted runs produce clean output.
func (a *App) Run(ctx context.Context) {
	a.loadUsers(ctx)

	interactive := isTerminal(int(os.Stdin.Fd()))
	if interactive {
		printlnFn("Welcome to the user directory CLI (type 'help' for commands)")
	}

	promptFn := func() string {
		if !interactive {
			return ""
		}
		return fmt.Sprintf("users (%d)> ", a.store.Len())
	}

	runREPL(ctx, a, promptFn, a.reader)
}

// loadUsers fetches the initial record set. A failure is reported once
// and leaves the set empty; the application stays interactive.
func (a *App) loadUsers(ctx context.Context) {
	printlnFn("Loading users ...")

	users, err := a.api.FetchUsers(ctx)
	if err != nil {
		a.log.Error(ctx, "initial load failed", "error", err)
		printlnFn("Could not load users:", err.Error())
		return
	}

	a.store.Load(users)
	a.log.Info(ctx, "users loaded", "count", a.store.Len())
}
