package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	env := &Environment{
		Stdin:  strings.NewReader(""),
		Stdout: stdout,
		Stderr: stderr,
		Getenv: func(string) string { return "" },
	}
	return env, stdout, stderr
}

func TestRunNoCommand(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv()
	if err := run(nil, env); !errors.Is(err, ErrNoCommand) {
		t.Errorf("error = %v, want ErrNoCommand", err)
	}
	if !strings.Contains(stderr.String(), "Usage: helpmd") {
		t.Errorf("usage not printed: %q", stderr.String())
	}
}

func TestRunUnknownCommand(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	err := run([]string{"bogus"}, env)
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("error = %v, want ErrUnknownCommand", err)
	}
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	if err := run([]string{"version"}, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "helpmd") {
		t.Errorf("version output = %q", stdout.String())
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bare help", []string{"help"}, "Commands:"},
		{"help pull", []string{"help", "pull"}, "Usage: helpmd pull"},
		{"help push", []string{"help", "push"}, "Usage: helpmd push"},
		{"help preview", []string{"help", "preview"}, "Usage: helpmd preview"},
		{"help strip", []string{"help", "strip"}, "Usage: helpmd strip"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, _ := testEnv()
			if err := run(tt.args, env); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("output missing %q: %q", tt.want, stdout.String())
			}
		})
	}
}

func TestPullRequiresToken(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	err := run([]string{"pull"}, env)
	if !errors.Is(err, ErrNoToken) {
		t.Errorf("error = %v, want ErrNoToken", err)
	}
	if !strings.Contains(err.Error(), "INTERCOM_ACCESS_TOKEN") {
		t.Errorf("error should name the env var: %v", err)
	}
}
