// Command travelplan is the terminal client for the travel-planner service:
// authentication, a dashboard, and the budget, packing, itinerary, culinary
// and posts collections.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/travelplan/travelplan-go/internal/api"
	"github.com/travelplan/travelplan-go/internal/cache"
	"github.com/travelplan/travelplan-go/internal/config"
	"github.com/travelplan/travelplan-go/internal/resource"
	"github.com/travelplan/travelplan-go/internal/session"
)

var errNotLoggedIn = errors.New("not logged in (run 'travelplan login' first)")

func main() {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()
	cfg := config.Load()

	if err := run(os.Args[1:], cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	store     *session.Store
	resources *resource.Resources
	stdinRaw  io.Reader
	stdin     *bufio.Reader
	stdout    io.Writer
	stderr    io.Writer
}

func run(args []string, cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	store := session.NewStore(cfg.TokenFile)
	client := api.NewClient(cfg.APIBaseURL, store)
	store.SetAuthAPI(client)

	a := &app{
		store:     store,
		resources: resource.New(client, cache.New(cfg.CacheTTL)),
		stdinRaw:  stdin,
		stdin:     bufio.NewReader(stdin),
		stdout:    stdout,
		stderr:    stderr,
	}

	if len(args) == 0 {
		args = []string{"dashboard"}
	}
	cmd, rest := args[0], args[1:]
	ctx := context.Background()

	switch cmd {
	case "login":
		return a.login(ctx, rest)
	case "register":
		return a.register(ctx, rest)
	case "logout":
		a.store.Logout()
		fmt.Fprintln(a.stdout, "Logged out.")
		return nil
	case "whoami":
		return a.whoami(ctx)
	case "dashboard":
		return a.withSession(ctx, func(ctx context.Context) error { return a.dashboard(ctx) })
	case "posts":
		return a.withSession(ctx, func(ctx context.Context) error { return a.postsCmd(ctx, rest) })
	case "budget":
		return a.withSession(ctx, func(ctx context.Context) error { return a.budgetCmd(ctx, rest) })
	case "packing":
		return a.withSession(ctx, func(ctx context.Context) error { return a.packingCmd(ctx, rest) })
	case "itinerary":
		return a.withSession(ctx, func(ctx context.Context) error { return a.itineraryCmd(ctx, rest) })
	case "culinary":
		return a.withSession(ctx, func(ctx context.Context) error { return a.culinaryCmd(ctx, rest) })
	case "help", "-h", "--help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// withSession gates a protected command behind an active session. With a
// token present it first refreshes the profile; a failed refresh clears the
// session and the command is refused, same as having no token at all.
func (a *app) withSession(ctx context.Context, fn func(ctx context.Context) error) error {
	if !a.store.IsAuthenticated() {
		return errNotLoggedIn
	}
	if err := a.store.Refresh(ctx); err != nil {
		return fmt.Errorf("session expired, please log in again: %w", err)
	}
	return fn(ctx)
}

func (a *app) usage() {
	fmt.Fprintln(a.stderr, `Usage: travelplan <command> [flags]

Commands:
  login        Log in (-email, -password)
  register     Create an account (-email, -name, -password)
  logout       Clear the stored session
  whoami       Show the current user
  dashboard    Collection counts and budget total (default)
  posts        list | add | edit | delete
  budget       list | add | edit | delete
  packing      list | add | edit | delete | toggle
  itinerary    list | add | edit | delete
  culinary     list | add | edit | delete

Run 'travelplan <command> <action> -h' for the flags of an action.`)
}
