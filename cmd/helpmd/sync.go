package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	helpmd "github.com/helpmd/go-helpmd"
	"github.com/helpmd/go-helpmd/internal/config"
)

// ErrNoToken means the access token environment variable is unset.
var ErrNoToken = errors.New("no access token")

// loadSyncConfig loads the config file and merges CLI flag overrides.
func loadSyncConfig(flags *syncFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		loaded, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override config
	if flags.workspace != "" {
		cfg.Workspace = flags.workspace
	}
	if flags.locale != "" {
		cfg.DefaultLocale = flags.locale
	}
	if flags.baseURL != "" {
		cfg.BaseURL = flags.baseURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds a logger writing to stderr at a level derived from the
// quiet/verbose flags.
func newLogger(env *Environment, common commonFlags) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(env.Stderr)
	switch {
	case common.quiet:
		l.SetLevel(logrus.ErrorLevel)
	case common.verbose:
		l.SetLevel(logrus.DebugLevel)
	default:
		l.SetLevel(logrus.InfoLevel)
	}
	return l
}

// newSyncer wires a Syncer from config, flags, and the environment.
func newSyncer(flags *syncFlags, env *Environment) (*helpmd.Syncer, error) {
	cfg, err := loadSyncConfig(flags)
	if err != nil {
		return nil, err
	}

	token := env.Getenv(cfg.TokenEnv)
	if token == "" {
		return nil, fmt.Errorf("%w: set %s", ErrNoToken, cfg.TokenEnv)
	}

	return helpmd.NewSyncer(token,
		helpmd.WithWorkspace(cfg.Workspace),
		helpmd.WithLocale(cfg.DefaultLocale),
		helpmd.WithBaseURL(cfg.BaseURL),
		helpmd.WithPerPage(cfg.PerPage),
		helpmd.WithLogger(newLogger(env, flags.common)),
	)
}

// runPull fetches all remote articles into the workspace.
func runPull(args []string, env *Environment) error {
	flags, _, err := parseSyncFlags("pull", args)
	if err != nil {
		return err
	}

	s, err := newSyncer(flags, env)
	if err != nil {
		return err
	}

	result, err := s.Pull(context.Background())
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		if flags.common.verbose {
			for _, path := range result.Written {
				fmt.Fprintf(env.Stdout, "Pulled %s\n", path)
			}
		}
		fmt.Fprintf(env.Stdout, "%d file(s) written\n", len(result.Written))
	}
	return nil
}

// runPush sends workspace files to the help center.
func runPush(args []string, env *Environment) error {
	flags, _, err := parseSyncFlags("push", args)
	if err != nil {
		return err
	}

	s, err := newSyncer(flags, env)
	if err != nil {
		return err
	}

	result, err := s.Push(context.Background())
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		if flags.common.verbose {
			printPaths(env.Stdout, "Created", result.Created)
			printPaths(env.Stdout, "Updated", result.Updated)
			printPaths(env.Stdout, "Skipped", result.Skipped)
		}
		fmt.Fprintf(env.Stdout, "%d created, %d updated, %d skipped\n",
			len(result.Created), len(result.Updated), len(result.Skipped))
	}
	return nil
}

func printPaths(w io.Writer, verb string, paths []string) {
	for _, p := range paths {
		fmt.Fprintf(w, "%s %s\n", verb, p)
	}
}
