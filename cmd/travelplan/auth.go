package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Password (prompts when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return fmt.Errorf("missing required flag: -email")
	}

	pw, err := a.resolvePassword(*password)
	if err != nil {
		return err
	}
	if err := a.store.Login(ctx, *email, pw); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Logged in as %s\n", *email)
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	email := fs.String("email", "", "Account email")
	name := fs.String("name", "", "Display name")
	password := fs.String("password", "", "Password (prompts when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return fmt.Errorf("missing required flag: -email")
	}
	if *name == "" {
		return fmt.Errorf("missing required flag: -name")
	}

	pw, err := a.resolvePassword(*password)
	if err != nil {
		return err
	}
	if err := a.store.Register(ctx, *email, pw, *name); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Registered and logged in as %s\n", *email)
	return nil
}

func (a *app) whoami(ctx context.Context) error {
	return a.withSession(ctx, func(ctx context.Context) error {
		user := a.store.User()
		fmt.Fprintf(a.stdout, "%s <%s> (id %d)\n", user.Username, user.Email, user.ID)
		return nil
	})
}

// resolvePassword uses the -password flag when given, otherwise prompts:
// without echo on a real terminal, as a plain line read otherwise so tests
// and pipes work.
func (a *app) resolvePassword(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	fmt.Fprint(a.stdout, "Password: ")
	if f, ok := a.stdinRaw.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		data, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.stdout)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(data), nil
	}

	line, err := a.stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimSpace(line), nil
}
