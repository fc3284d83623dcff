package main

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/helpmd/go-helpmd/internal/config"
)

func tokenEnv() func(string) string {
	return func(key string) string {
		if key == "INTERCOM_ACCESS_TOKEN" {
			return "cli-test-token"
		}
		return ""
	}
}

func TestPullCommand(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{
			"pages": {"page": 1, "total_pages": 1},
			"data": [{"id": 5, "title": "Hello", "body": "<h1>Hello</h1>", "state": "published", "default_locale": "en"}]
		}`)
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	env, stdout, _ := testEnv()
	env.Getenv = tokenEnv()

	err := run([]string{"pull", "-w", dir, "--base-url", srv.URL, "-q"}, env)
	if err != nil {
		t.Fatalf("pull failed: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("quiet run wrote to stdout: %q", stdout.String())
	}

	data, err := os.ReadFile(filepath.Join(dir, "5.md"))
	if err != nil {
		t.Fatalf("pulled file missing: %v", err)
	}
	if !strings.Contains(string(data), "# Hello") {
		t.Errorf("pulled file content:\n%s", data)
	}
}

func TestPushCommandSummary(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":1,"title":"New"}`)
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	content := "---\ntitle: New\n---\n\nbody\n"
	if err := os.WriteFile(filepath.Join(dir, "new.md"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	env, stdout, _ := testEnv()
	env.Getenv = tokenEnv()

	if err := run([]string{"push", "-w", dir, "--base-url", srv.URL}, env); err != nil {
		t.Fatalf("push failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "1 created, 0 updated, 0 skipped") {
		t.Errorf("summary = %q", stdout.String())
	}
}

func TestLoadSyncConfigFlagOverrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("workspace: ./from-config\ndefaultLocale: de"), 0o644); err != nil {
		t.Fatal(err)
	}

	flags := &syncFlags{
		common:    commonFlags{config: path},
		workspace: "./from-flag",
	}
	cfg, err := loadSyncConfig(flags)
	if err != nil {
		t.Fatalf("loadSyncConfig failed: %v", err)
	}
	if cfg.Workspace != "./from-flag" {
		t.Errorf("Workspace = %q, flag should win", cfg.Workspace)
	}
	if cfg.DefaultLocale != "de" {
		t.Errorf("DefaultLocale = %q, config should hold", cfg.DefaultLocale)
	}
}

func TestLoadSyncConfigMissing(t *testing.T) {
	t.Parallel()

	flags := &syncFlags{common: commonFlags{config: filepath.Join(t.TempDir(), "nope.yaml")}}
	if _, err := loadSyncConfig(flags); !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("error = %v, want ErrConfigNotFound", err)
	}
}
