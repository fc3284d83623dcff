package main

import (
	"fmt"
	"io"
	"os"

	helpmd "github.com/helpmd/go-helpmd"
)

// runStrip removes signed URL parameters from article HTML. Reads from
// the given file, or stdin when the argument is "-" or absent.
func runStrip(args []string, env *Environment) error {
	flags, positional, err := parseStripFlags(args)
	if err != nil {
		return err
	}

	var input []byte
	if len(positional) == 0 || positional[0] == "-" {
		input, err = io.ReadAll(env.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		input, err = os.ReadFile(positional[0]) // #nosec G304 -- user-provided path
		if err != nil {
			return err
		}
	}

	stripped := helpmd.StripSignatures(string(input))

	if flags.output == "" {
		_, err = io.WriteString(env.Stdout, stripped)
		return err
	}
	// #nosec G306 -- article HTML is not a secret
	if err := os.WriteFile(flags.output, []byte(stripped), filePermissions); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
	}
	return nil
}
