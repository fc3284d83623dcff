package main

import (
	"errors"
	"fmt"
)

// Sentinel errors for command dispatch.
var (
	ErrNoCommand      = errors.New("no command specified")
	ErrUnknownCommand = errors.New("unknown command")
)

// run dispatches to the requested subcommand.
func run(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ErrNoCommand
	}

	switch args[0] {
	case "pull":
		return runPull(args[1:], env)
	case "push":
		return runPush(args[1:], env)
	case "preview":
		return runPreview(args[1:], env)
	case "strip":
		return runStrip(args[1:], env)
	case "version":
		fmt.Fprintf(env.Stdout, "helpmd %s\n", Version)
		return nil
	case "help":
		runHelp(args[1:], env)
		return nil
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
}
