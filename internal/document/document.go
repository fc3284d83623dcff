// Package document reads and writes local article files: YAML front matter
// describing the remote linkage, followed by the Markdown body. The codec
// never sees metadata; callers split it off here before converting.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/helpmd/go-helpmd/internal/yamlutil"
)

// Sentinel errors for document operations.
var (
	ErrEmptyBody = errors.New("document body cannot be empty")
)

// Meta is the front matter of a local article file.
type Meta struct {
	ID       string `yaml:"id,omitempty" json:"id,omitempty"`
	Title    string `yaml:"title" json:"title"`
	Locale   string `yaml:"locale,omitempty" json:"locale,omitempty"`
	State    string `yaml:"state,omitempty" json:"state,omitempty"`
	ParentID string `yaml:"parent_id,omitempty" json:"parent_id,omitempty"`
}

// Document is one local article: its metadata, body, and origin path.
type Document struct {
	Path string
	Meta Meta
	Body string
}

// Split separates front matter from the Markdown body. Input without front
// matter yields a zero Meta and the full content as body.
func Split(src []byte) (Meta, string, error) {
	var meta Meta
	body, err := frontmatter.Parse(bytes.NewReader(src), &meta)
	if err != nil {
		return Meta{}, "", fmt.Errorf("parsing front matter: %w", err)
	}
	return meta, strings.TrimSpace(string(body)), nil
}

// Join serializes metadata and body back into file form, with the metadata
// between --- fences.
func Join(meta Meta, body string) ([]byte, error) {
	head, err := yamlutil.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("serializing front matter: %w", err)
	}

	var b bytes.Buffer
	b.WriteString("---\n")
	b.Write(head)
	b.WriteString("---\n\n")
	b.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		b.WriteString("\n")
	}
	return b.Bytes(), nil
}

// Load reads and splits a document file.
func Load(path string) (*Document, error) {
	src, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	meta, body, err := Split(src)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return &Document{Path: path, Meta: meta, Body: body}, nil
}

// Save joins and writes a document to its path.
func (d *Document) Save() error {
	if d.Body == "" {
		return ErrEmptyBody
	}
	out, err := Join(d.Meta, d.Body)
	if err != nil {
		return err
	}
	if err := os.WriteFile(d.Path, out, 0o644); err != nil { // #nosec G306 -- article files are not secrets
		return fmt.Errorf("writing %s: %w", d.Path, err)
	}
	return nil
}
