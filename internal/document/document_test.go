package document_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/helpmd/go-helpmd/internal/document"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantMeta document.Meta
		wantBody string
	}{
		{
			name: "full front matter",
			input: "---\nid: \"123\"\ntitle: Getting Started\nlocale: en\nstate: published\nparent_id: \"77\"\n---\n\n# Intro\n\nHello.",
			wantMeta: document.Meta{
				ID: "123", Title: "Getting Started", Locale: "en",
				State: "published", ParentID: "77",
			},
			wantBody: "# Intro\n\nHello.",
		},
		{
			name:     "no front matter",
			input:    "# Just markdown\n\nbody text",
			wantMeta: document.Meta{},
			wantBody: "# Just markdown\n\nbody text",
		},
		{
			name:     "partial front matter",
			input:    "---\ntitle: Draft\n---\nbody",
			wantMeta: document.Meta{Title: "Draft"},
			wantBody: "body",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			meta, body, err := document.Split([]byte(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if meta != tt.wantMeta {
				t.Errorf("meta = %+v, want %+v", meta, tt.wantMeta)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestJoinSplitRoundTrip(t *testing.T) {
	t.Parallel()

	meta := document.Meta{ID: "42", Title: "Guide", Locale: "fr", State: "draft"}
	body := "# Guide\n\nSome **bold** text."

	joined, err := document.Join(meta, body)
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if !strings.HasPrefix(string(joined), "---\n") {
		t.Errorf("joined output missing front matter fence: %q", joined)
	}

	gotMeta, gotBody, err := document.Split(joined)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if gotMeta != meta {
		t.Errorf("meta = %+v, want %+v", gotMeta, meta)
	}
	if gotBody != body {
		t.Errorf("body = %q, want %q", gotBody, body)
	}
}

func TestJoinOmitsEmptyFields(t *testing.T) {
	t.Parallel()

	joined, err := document.Join(document.Meta{Title: "Only Title"}, "body")
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	s := string(joined)
	for _, field := range []string{"id:", "locale:", "state:", "parent_id:"} {
		if strings.Contains(s, field) {
			t.Errorf("Join output contains empty field %q: %s", field, s)
		}
	}
}

func TestLoadSave(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "article.md")

	doc := &document.Document{
		Path: path,
		Meta: document.Meta{ID: "9", Title: "Saved"},
		Body: "content here",
	}
	if err := doc.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := document.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Meta != doc.Meta {
		t.Errorf("meta = %+v, want %+v", loaded.Meta, doc.Meta)
	}
	if loaded.Body != doc.Body {
		t.Errorf("body = %q, want %q", loaded.Body, doc.Body)
	}
}

func TestSaveEmptyBody(t *testing.T) {
	t.Parallel()

	doc := &document.Document{Path: filepath.Join(t.TempDir(), "x.md")}
	if err := doc.Save(); !errors.Is(err, document.ErrEmptyBody) {
		t.Errorf("Save() error = %v, want ErrEmptyBody", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := document.Load(filepath.Join(t.TempDir(), "missing.md"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}
