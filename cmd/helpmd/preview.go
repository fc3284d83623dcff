package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/helpmd/go-helpmd/internal/document"
	"github.com/helpmd/go-helpmd/internal/preview"
	"github.com/helpmd/go-helpmd/internal/scan"
)

// ErrNoInput means no input file was given on the command line.
var ErrNoInput = errors.New("no input file specified")

const filePermissions = 0o644

// runPreview renders one article file to a local HTML page.
func runPreview(args []string, env *Environment) error {
	flags, positional, err := parsePreviewFlags(args)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return ErrNoInput
	}
	inputPath := positional[0]
	if err := scan.ValidateMarkdownPath(inputPath); err != nil {
		return err
	}

	doc, err := document.Load(inputPath)
	if err != nil {
		return err
	}

	title := doc.Meta.Title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	}

	html, err := preview.NewRenderer().Render(context.Background(), title, doc.Body)
	if err != nil {
		return err
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".html"
	}
	// #nosec G306 -- preview pages are meant to be readable
	if err := os.WriteFile(outputPath, []byte(html), filePermissions); err != nil {
		return fmt.Errorf("writing preview: %w", err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", outputPath)
	}
	return nil
}
