package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"github.com/datefy/datefy-api/internal/app"
	"github.com/datefy/datefy-api/internal/config"
	"github.com/datefy/datefy-api/internal/lib/password"
	"github.com/datefy/datefy-api/internal/storage"
	"golang.org/x/term"
	"io"
	"os"
	"strings"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", os.Getenv("CONFIG_PATH"), "path to config file")
	name := fs.String("nome", "", "Display name")
	email := fs.String("email", "", "Email used to log in")
	passwordFlag := fs.String("senha", "", "Password (optional, will prompt if omitted)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" || *configPath == "" {
		fmt.Fprintln(stdout, "Usage: adduser -config <path> -email <email> [-nome <name>] [-senha <password>]")
		fs.PrintDefaults()
		return errors.New("missing required flags: config, email")
	}

	raw := *passwordFlag
	if raw == "" {
		fmt.Fprint(stdout, "Senha: ")
		var err error
		raw, err = readPassword(stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(stdout)
	}

	if strings.TrimSpace(raw) == "" {
		return errors.New("password cannot be empty")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	store, err := app.OpenStorage(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Stop()

	hash, err := password.Hash(raw)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := store.SaveUser(context.Background(), *name, *email, hash)
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			return errors.New("Email já cadastrado.")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Fprintf(stdout, "User %s created successfully with ID %d\n", *email, id)
	return nil
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
