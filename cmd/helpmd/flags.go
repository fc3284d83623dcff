package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// syncFlags holds flags for the pull and push commands.
type syncFlags struct {
	common    commonFlags
	workspace string
	locale    string
	baseURL   string
}

// previewFlags holds flags for the preview command.
type previewFlags struct {
	common commonFlags
	output string
}

// stripFlags holds flags for the strip command.
type stripFlags struct {
	common commonFlags
	output string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-article detail")
}

// addSyncFlags adds pull/push flags to a FlagSet.
func addSyncFlags(fs *flag.FlagSet, f *syncFlags) {
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.workspace, "workspace", "w", "", "local article directory")
	fs.StringVar(&f.locale, "locale", "", "default article locale")
	fs.StringVar(&f.baseURL, "base-url", "", "API endpoint override")
}

// parseSyncFlags parses pull/push flags and returns positional args.
func parseSyncFlags(name string, args []string) (*syncFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	f := &syncFlags{}
	addSyncFlags(fs, f)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parsePreviewFlags parses preview flags and returns positional args.
func parsePreviewFlags(args []string) (*previewFlags, []string, error) {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	f := &previewFlags{}
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "output HTML path (default: alongside input)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseStripFlags parses strip flags and returns positional args.
func parseStripFlags(args []string) (*stripFlags, []string, error) {
	fs := flag.NewFlagSet("strip", flag.ContinueOnError)
	f := &stripFlags{}
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "output path (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
