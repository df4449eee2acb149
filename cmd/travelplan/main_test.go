package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelplan/travelplan-go/internal/api"
	"github.com/travelplan/travelplan-go/internal/apitest"
	"github.com/travelplan/travelplan-go/internal/config"
	"github.com/travelplan/travelplan-go/internal/model"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

type cliFixture struct {
	srv    *apitest.Server
	cfg    config.Config
	userID int64
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()
	srv := apitest.NewServer()
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return &cliFixture{
		srv: srv,
		cfg: config.Config{
			APIBaseURL: ts.URL + "/api",
			TokenFile:  filepath.Join(t.TempDir(), "token"),
			CacheTTL:   time.Hour,
		},
		userID: srv.SeedUser("trip@example.com", "password123", "Traveler"),
	}
}

// exec runs one CLI invocation and returns stdout.
func (f *cliFixture) exec(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, f.cfg, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), err
}

func (f *cliFixture) login(t *testing.T) {
	t.Helper()
	out, err := f.exec(t, "", "login", "-email", "trip@example.com", "-password", "password123")
	require.NoError(t, err)
	require.Contains(t, out, "Logged in as trip@example.com")
}

// apiClient talks to the fake service directly, for fixture setup.
func (f *cliFixture) apiClient() *api.Client {
	return api.NewClient(f.cfg.APIBaseURL, staticToken(f.srv.TokenFor(f.userID)))
}

func TestProtectedCommandRequiresLogin(t *testing.T) {
	f := newCLIFixture(t)
	_, err := f.exec(t, "", "budget", "list")
	assert.ErrorIs(t, err, errNotLoggedIn)
}

func TestLoginThenDashboard(t *testing.T) {
	f := newCLIFixture(t)
	f.login(t)

	out, err := f.exec(t, "", "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "Budget Items")
	assert.Contains(t, out, "Total Expenses")
}

func TestRegisterCommand(t *testing.T) {
	f := newCLIFixture(t)
	out, err := f.exec(t, "", "register", "-email", "new@example.com", "-name", "Newcomer", "-password", "hunter22")
	require.NoError(t, err)
	assert.Contains(t, out, "Registered and logged in as new@example.com")

	out, err = f.exec(t, "", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Newcomer")
}

func TestBudgetAddAndTotal(t *testing.T) {
	f := newCLIFixture(t)
	f.login(t)

	_, err := f.exec(t, "", "budget", "add", "-category", "Food", "-quantity", "2", "-unit-cost", "10", "-description", "Dinner")
	require.NoError(t, err)
	_, err = f.exec(t, "", "budget", "add", "-category", "Transportation", "-quantity", "1", "-unit-cost", "5", "-description", "Bus")
	require.NoError(t, err)

	out, err := f.exec(t, "", "budget", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Expenses: $25.00")
}

func TestBudgetAddValidation(t *testing.T) {
	f := newCLIFixture(t)
	f.login(t)

	_, err := f.exec(t, "", "budget", "add", "-quantity", "2", "-unit-cost", "10", "-description", "Dinner")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category")
}

func TestDeleteAsksForConfirmation(t *testing.T) {
	f := newCLIFixture(t)
	f.login(t)

	post, err := f.apiClient().CreatePost(context.Background(), model.PostInput{
		Title: "Day one", Content: "We landed.",
	})
	require.NoError(t, err)
	id := strconv.FormatInt(post.ID, 10)

	out, err := f.exec(t, "n\n", "posts", "delete", "-id", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")

	list, err := f.exec(t, "", "posts", "list")
	require.NoError(t, err)
	assert.Contains(t, list, "Day one", "declined delete must not remove the post")

	out, err = f.exec(t, "y\n", "posts", "delete", "-id", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted post "+id)

	list, err = f.exec(t, "", "posts", "list")
	require.NoError(t, err)
	assert.NotContains(t, list, "Day one")
}

func TestPackingToggle(t *testing.T) {
	f := newCLIFixture(t)
	f.login(t)

	_, err := f.exec(t, "", "packing", "add", "-name", "Socks", "-category", "Clothes", "-quantity", "4")
	require.NoError(t, err)

	out, err := f.exec(t, "", "packing", "toggle", "-id", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Socks is now packed")

	out, err = f.exec(t, "", "packing", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "(1/1 packed)")
}

func TestLogoutBlocksProtectedCommands(t *testing.T) {
	f := newCLIFixture(t)
	f.login(t)

	out, err := f.exec(t, "", "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out.")

	_, err = f.exec(t, "", "budget", "list")
	assert.ErrorIs(t, err, errNotLoggedIn)
}

func TestStaleTokenSelfHeals(t *testing.T) {
	f := newCLIFixture(t)

	// A signed token for a user the service doesn't know: the startup
	// profile refresh fails and the session is cleared.
	require.NoError(t, os.MkdirAll(filepath.Dir(f.cfg.TokenFile), 0o700))
	require.NoError(t, os.WriteFile(f.cfg.TokenFile, []byte(f.srv.TokenFor(9999)), 0o600))

	_, err := f.exec(t, "", "whoami")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session expired")

	_, statErr := os.Stat(f.cfg.TokenFile)
	assert.True(t, os.IsNotExist(statErr), "stale token must be cleared")

	_, err = f.exec(t, "", "whoami")
	assert.ErrorIs(t, err, errNotLoggedIn)
}

func TestUnknownCommand(t *testing.T) {
	f := newCLIFixture(t)
	_, err := f.exec(t, "", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
