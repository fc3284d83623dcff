package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: helpmd <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  pull       Fetch remote articles into the workspace as Markdown")
	fmt.Fprintln(w, "  push       Send workspace articles to the help center")
	fmt.Fprintln(w, "  preview    Render an article file to a local HTML page")
	fmt.Fprintln(w, "  strip      Remove signed URL parameters from article HTML")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'helpmd help <command>' for details on a specific command.")
}

// printSyncUsage prints usage for the pull and push commands.
func printSyncUsage(w io.Writer, name, summary string) {
	fmt.Fprintf(w, "Usage: helpmd %s [flags]\n", name)
	fmt.Fprintln(w)
	fmt.Fprintln(w, summary)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workspace <dir>     Local article directory")
	fmt.Fprintln(w, "      --locale <s>          Default article locale")
	fmt.Fprintln(w, "      --base-url <url>      API endpoint override")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-article detail")
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: helpmd preview <file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render an article Markdown file to a standalone HTML page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output HTML path (default: alongside input)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
}

// printStripUsage prints usage for the strip command.
func printStripUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: helpmd strip [file] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Remove signed URL parameters from article HTML.")
	fmt.Fprintln(w, "Reads the file, or stdin when the argument is \"-\" or absent.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output path (default: stdout)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "pull":
		printSyncUsage(env.Stdout, "pull", "Fetch every remote article into the workspace as Markdown files.")
	case "push":
		printSyncUsage(env.Stdout, "push", "Encode workspace files and send them to the help center.")
	case "preview":
		printPreviewUsage(env.Stdout)
	case "strip":
		printStripUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: helpmd version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: helpmd help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
